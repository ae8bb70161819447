package user

import (
	"Recipehub-Backend/domain"
	"Recipehub-Backend/entities"
	"Recipehub-Backend/pkg/jwt"
	"context"
	"mime/multipart"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetDietaryRestrictionIDs(ctx context.Context, userID uuid.UUID) ([]uint, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockUserRepository) ReplaceDietaryRestrictions(ctx context.Context, userID uuid.UUID, ids []uint) error {
	args := m.Called(ctx, userID, ids)
	return args.Error(0)
}

// MockAwsS3 is a mock implementation of storage.AwsS3.
type MockAwsS3 struct {
	mock.Mock
}

func (m *MockAwsS3) UploadFile(ctx context.Context, file *multipart.FileHeader, key string) (string, error) {
	args := m.Called(ctx, file, key)
	return args.String(0), args.Error(1)
}

func TestUserService_Register(t *testing.T) {
	tests := []struct {
		name          string
		req           domain.RegisterRequest
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name: "successful registration",
			req:  domain.RegisterRequest{Username: "newcook", Email: "new@example.com", Password: "password123"},
			setupMock: func(m *MockUserRepository) {
				m.On("GetUserByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("GetUserByUsername", mock.Anything, "newcook").Return(nil, gorm.ErrRecordNotFound)
				m.On("CreateUser", mock.Anything, mock.AnythingOfType("*entities.User")).Return(nil)
			},
		},
		{
			name: "email already used",
			req:  domain.RegisterRequest{Username: "newcook", Email: "taken@example.com", Password: "password123"},
			setupMock: func(m *MockUserRepository) {
				m.On("GetUserByEmail", mock.Anything, "taken@example.com").Return(&entities.User{Email: "taken@example.com"}, nil)
			},
			expectedError: domain.ErrEmailAlreadyUsed,
		},
		{
			name: "username taken",
			req:  domain.RegisterRequest{Username: "taken", Email: "new@example.com", Password: "password123"},
			setupMock: func(m *MockUserRepository) {
				m.On("GetUserByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("GetUserByUsername", mock.Anything, "taken").Return(&entities.User{Username: "taken"}, nil)
			},
			expectedError: domain.ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewUserService(mockRepo, jwt.NewJWTService(), new(MockAwsS3))
			res, err := service.Register(context.Background(), tt.req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.req.Username, res.Username)
				assert.Equal(t, tt.req.Email, res.Email)
				assert.NotEmpty(t, res.ID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	tests := []struct {
		name          string
		req           domain.LoginRequest
		setupMock     func(*MockUserRepository)
		expectedError error
		wantRole      string
	}{
		{
			name: "regular user logs in",
			req:  domain.LoginRequest{Email: "cook@example.com", Password: "password123"},
			setupMock: func(m *MockUserRepository) {
				m.On("GetUserByEmail", mock.Anything, "cook@example.com").Return(&entities.User{
					ID:       uuid.New(),
					Email:    "cook@example.com",
					Password: string(hashed),
				}, nil)
			},
			wantRole: domain.RoleUser,
		},
		{
			name: "admin gets admin role",
			req:  domain.LoginRequest{Email: "admin@example.com", Password: "password123"},
			setupMock: func(m *MockUserRepository) {
				m.On("GetUserByEmail", mock.Anything, "admin@example.com").Return(&entities.User{
					ID:       uuid.New(),
					Email:    "admin@example.com",
					Password: string(hashed),
					IsAdmin:  true,
				}, nil)
			},
			wantRole: domain.RoleAdmin,
		},
		{
			name: "unknown email",
			req:  domain.LoginRequest{Email: "ghost@example.com", Password: "password123"},
			setupMock: func(m *MockUserRepository) {
				m.On("GetUserByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			req:  domain.LoginRequest{Email: "cook@example.com", Password: "wrongpass"},
			setupMock: func(m *MockUserRepository) {
				m.On("GetUserByEmail", mock.Anything, "cook@example.com").Return(&entities.User{
					ID:       uuid.New(),
					Email:    "cook@example.com",
					Password: string(hashed),
				}, nil)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewUserService(mockRepo, jwt.NewJWTService(), new(MockAwsS3))
			res, err := service.Login(context.Background(), tt.req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.Token)
				assert.Equal(t, tt.wantRole, res.Role)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_UpdateProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("bio and restrictions updated", func(t *testing.T) {
		bio := "I cook things."
		mockRepo := new(MockUserRepository)
		mockRepo.On("GetUserByID", mock.Anything, userID).Return(&entities.User{ID: userID, Username: "cook"}, nil)
		mockRepo.On("UpdateUser", mock.Anything, mock.AnythingOfType("*entities.User")).Return(nil)
		mockRepo.On("ReplaceDietaryRestrictions", mock.Anything, userID, []uint{1, 3}).Return(nil)
		mockRepo.On("GetDietaryRestrictionIDs", mock.Anything, userID).Return([]uint{1, 3}, nil)

		service := NewUserService(mockRepo, jwt.NewJWTService(), new(MockAwsS3))
		res, err := service.UpdateProfile(context.Background(), domain.UpdateProfileRequest{
			Bio:                 &bio,
			DietaryRestrictions: []uint{1, 3},
		}, userID.String())

		assert.NoError(t, err)
		assert.Equal(t, bio, res.Bio)
		assert.Equal(t, []uint{1, 3}, res.DietaryRestrictions)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("GetUserByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		service := NewUserService(mockRepo, jwt.NewJWTService(), new(MockAwsS3))
		_, err := service.UpdateProfile(context.Background(), domain.UpdateProfileRequest{}, userID.String())

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
