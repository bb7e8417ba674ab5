package usecase

import (
	"context"
	"testing"
	"time"

	"shop-backend/internal/data/entity"
	"shop-backend/internal/data/repository"
	"shop-backend/internal/dto/request"
	"shop-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(userRepo *MockUserRepository, tokens *utils.TokenIssuer) AuthService {
	repo := &repository.Repository{User: userRepo}
	config := &utils.Config{Auth: utils.AuthConfig{BcryptCost: bcrypt.MinCost}}
	return NewAuthService(repo, config, tokens, zap.NewNop())
}

func TestRegisterThenLogin_RoundTrip(t *testing.T) {
	tokens := utils.NewTokenIssuer("test-secret", time.Hour)
	userRepo := new(MockUserRepository)

	var stored *entity.User
	userRepo.On("FindByPhone", mock.Anything, "0912345678").Return(nil, entity.ErrUserNotFound).Once()
	userRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*entity.User)
		stored.ID = primitive.NewObjectID()
	}).Return(nil)

	svc := newAuthService(userRepo, tokens)

	auth, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Alice",
		Phone:    "0912345678",
		Password: "s3cret",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, auth.Token)
	assert.NotEqual(t, "s3cret", stored.PasswordHash)

	// The issued token resolves back to the stored user
	userID, err := tokens.Verify(auth.Token)
	assert.NoError(t, err)
	assert.Equal(t, stored.ID.Hex(), userID)

	// Logging in with the same phone and password succeeds
	userRepo.On("FindByPhone", mock.Anything, "0912345678").Return(stored, nil)

	login, err := svc.Login(context.Background(), &request.LoginRequest{
		Phone:    "0912345678",
		Password: "s3cret",
	})
	assert.NoError(t, err)

	userID, err = tokens.Verify(login.Token)
	assert.NoError(t, err)
	assert.Equal(t, stored.ID.Hex(), userID)
}

func TestRegister_DuplicatePhone(t *testing.T) {
	tokens := utils.NewTokenIssuer("test-secret", time.Hour)
	userRepo := new(MockUserRepository)

	userRepo.On("FindByPhone", mock.Anything, "0912345678").Return(&entity.User{
		ID:    primitive.NewObjectID(),
		Phone: "0912345678",
	}, nil)

	_, err := newAuthService(userRepo, tokens).Register(context.Background(), &request.RegisterRequest{
		Name:     "Bob",
		Phone:    "0912345678",
		Password: "other",
	})

	assert.ErrorIs(t, err, entity.ErrPhoneTaken)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_WrongPassword(t *testing.T) {
	tokens := utils.NewTokenIssuer("test-secret", time.Hour)
	userRepo := new(MockUserRepository)

	hash, err := utils.HashPassword("right", bcrypt.MinCost)
	assert.NoError(t, err)

	userRepo.On("FindByPhone", mock.Anything, "0912345678").Return(&entity.User{
		ID:           primitive.NewObjectID(),
		Phone:        "0912345678",
		PasswordHash: hash,
	}, nil)

	_, err = newAuthService(userRepo, tokens).Login(context.Background(), &request.LoginRequest{
		Phone:    "0912345678",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestLogin_UnknownPhone(t *testing.T) {
	tokens := utils.NewTokenIssuer("test-secret", time.Hour)
	userRepo := new(MockUserRepository)

	userRepo.On("FindByPhone", mock.Anything, "0000000000").Return(nil, entity.ErrUserNotFound)

	_, err := newAuthService(userRepo, tokens).Login(context.Background(), &request.LoginRequest{
		Phone:    "0000000000",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}
