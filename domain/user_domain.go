package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessRegister      = "user registered successfully"
	MessageSuccessLogin         = "login successful"
	MessageSuccessGetProfile    = "success get profile"
	MessageSuccessUpdateProfile = "profile updated successfully"
	MessageSuccessUploadAvatar  = "avatar uploaded successfully"

	MessageFailedRegister      = "failed to register user"
	MessageFailedLogin         = "failed to login"
	MessageFailedGetProfile    = "failed to get profile"
	MessageFailedUpdateProfile = "failed to update profile"
	MessageFailedUploadAvatar  = "failed to upload avatar"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyUsed   = errors.New("email already in use")
	ErrUsernameTaken      = errors.New("username already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required,min=3"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	RegisterResponse struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	ProfileResponse struct {
		ID                  string `json:"id"`
		Username            string `json:"username"`
		Email               string `json:"email"`
		Bio                 string `json:"bio,omitempty"`
		AvatarURL           string `json:"avatar_url,omitempty"`
		IsAdmin             bool   `json:"is_admin"`
		DietaryRestrictions []uint `json:"dietary_restrictions"`
	}

	UpdateProfileRequest struct {
		Bio                 *string `json:"bio" validate:"omitempty"`
		DietaryRestrictions []uint  `json:"dietary_restrictions"`
	}

	UploadAvatarRequest struct {
		Avatar *multipart.FileHeader `json:"avatar" form:"avatar" validate:"required"`
	}
)
