package user

import (
	"Recipehub-Backend/domain"
	"Recipehub-Backend/entities"
	"Recipehub-Backend/internal/utils/storage"
	"Recipehub-Backend/pkg/jwt"
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error)
		UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string) (domain.ProfileResponse, error)
		UploadAvatar(ctx context.Context, userID string, avatar *multipart.FileHeader) (string, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		s3             storage.AwsS3
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, s3 storage.AwsS3) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		s3:             s3,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyUsed
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}

	if _, err := s.userRepository.GetUserByUsername(ctx, req.Username); err == nil {
		return domain.RegisterResponse{}, domain.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := entities.User{
		ID:       uuid.New(),
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
	}

	if err := s.userRepository.CreateUser(ctx, &user); err != nil {
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	role := domain.RoleUser
	if user.IsAdmin {
		role = domain.RoleAdmin
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), role)
	return domain.LoginResponse{Token: token, Role: role}, nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return domain.ProfileResponse{}, domain.ErrParseUUID
	}

	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProfileResponse{}, domain.ErrUserNotFound
		}
		return domain.ProfileResponse{}, err
	}

	restrictions, err := s.userRepository.GetDietaryRestrictionIDs(ctx, id)
	if err != nil {
		return domain.ProfileResponse{}, err
	}

	return buildProfileResponse(user, restrictions), nil
}

func (s *userService) UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string) (domain.ProfileResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return domain.ProfileResponse{}, domain.ErrParseUUID
	}

	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProfileResponse{}, domain.ErrUserNotFound
		}
		return domain.ProfileResponse{}, err
	}

	if req.Bio != nil {
		user.Bio = *req.Bio
		if err := s.userRepository.UpdateUser(ctx, user); err != nil {
			return domain.ProfileResponse{}, err
		}
	}

	if req.DietaryRestrictions != nil {
		if err := s.userRepository.ReplaceDietaryRestrictions(ctx, id, req.DietaryRestrictions); err != nil {
			return domain.ProfileResponse{}, err
		}
	}

	restrictions, err := s.userRepository.GetDietaryRestrictionIDs(ctx, id)
	if err != nil {
		return domain.ProfileResponse{}, err
	}

	return buildProfileResponse(user, restrictions), nil
}

func (s *userService) UploadAvatar(ctx context.Context, userID string, avatar *multipart.FileHeader) (string, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return "", domain.ErrParseUUID
	}

	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", err
	}

	key := fmt.Sprintf("avatars/%s/%s", user.ID, avatar.Filename)
	avatarURL, err := s.s3.UploadFile(ctx, avatar, key)
	if err != nil {
		return "", err
	}

	user.AvatarURL = avatarURL
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return "", err
	}

	return avatarURL, nil
}

func buildProfileResponse(user *entities.User, restrictions []uint) domain.ProfileResponse {
	return domain.ProfileResponse{
		ID:                  user.ID.String(),
		Username:            user.Username,
		Email:               user.Email,
		Bio:                 user.Bio,
		AvatarURL:           user.AvatarURL,
		IsAdmin:             user.IsAdmin,
		DietaryRestrictions: restrictions,
	}
}
