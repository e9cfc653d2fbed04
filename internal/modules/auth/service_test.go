package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"hotelhub/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	u.ID = 1
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type stubJWT struct{}

func (stubJWT) GenerateToken(userID int64, role string) (string, error) {
	return "test-token", nil
}

func TestService_Register_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByEmail", mock.Anything, "guest@example.com").Return(nil, nil)
	mockUsers.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	service := NewService(mockUsers, stubJWT{})

	user, err := service.Register(context.Background(), RegisterRequest{
		Email:    "  Guest@Example.com ",
		Password: "secret123",
		Name:     "Guest",
	})

	assert.NoError(t, err)
	assert.Equal(t, "guest@example.com", user.Email)
	assert.Equal(t, domain.RoleClient, user.Role)
	assert.Empty(t, user.PasswordHash)
	mockUsers.AssertExpectations(t)
}

func TestService_Register_ManagerFlag(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByEmail", mock.Anything, "owner@example.com").Return(nil, nil)
	mockUsers.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	service := NewService(mockUsers, stubJWT{})

	user, err := service.Register(context.Background(), RegisterRequest{
		Email:    "owner@example.com",
		Password: "secret123",
		Name:     "Owner",
		Manager:  true,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleManager, user.Role)
}

func TestService_Register_EmailTaken(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByEmail", mock.Anything, "guest@example.com").
		Return(&domain.User{ID: 1, Email: "guest@example.com"}, nil)

	service := NewService(mockUsers, stubJWT{})

	_, err := service.Register(context.Background(), RegisterRequest{
		Email:    "guest@example.com",
		Password: "secret123",
		Name:     "Guest",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Login_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	assert.NoError(t, err)

	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByEmail", mock.Anything, "guest@example.com").Return(&domain.User{
		ID: 1, Email: "guest@example.com", PasswordHash: string(hash), Role: domain.RoleClient,
	}, nil)

	service := NewService(mockUsers, stubJWT{})

	result, err := service.Login(context.Background(), LoginRequest{
		Email: "guest@example.com", Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "test-token", result.AccessToken)
	assert.Empty(t, result.User.PasswordHash)
}

func TestService_Login_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	assert.NoError(t, err)

	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByEmail", mock.Anything, "guest@example.com").Return(&domain.User{
		ID: 1, Email: "guest@example.com", PasswordHash: string(hash),
	}, nil)

	service := NewService(mockUsers, stubJWT{})

	_, err = service.Login(context.Background(), LoginRequest{
		Email: "guest@example.com", Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	service := NewService(mockUsers, stubJWT{})

	_, err := service.Login(context.Background(), LoginRequest{
		Email: "nobody@example.com", Password: "irrelevant",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
