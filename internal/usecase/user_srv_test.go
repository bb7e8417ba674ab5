package usecase

import (
	"context"
	"testing"

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

func newUserService(userRepo *MockUserRepository) UserService {
	repo := &repository.Repository{User: userRepo}
	config := &utils.Config{Auth: utils.AuthConfig{BcryptCost: bcrypt.MinCost}}
	return NewUserService(repo, config, zap.NewNop())
}

func TestResetPassword_StoresNewHash(t *testing.T) {
	userID := primitive.NewObjectID()
	userRepo := new(MockUserRepository)

	userRepo.On("FindByPhone", mock.Anything, "0912345678").Return(&entity.User{
		ID:    userID,
		Phone: "0912345678",
	}, nil)

	var storedHash string
	userRepo.On("UpdatePassword", mock.Anything, userID, mock.Anything).Run(func(args mock.Arguments) {
		storedHash = args.String(2)
	}).Return(nil)

	err := newUserService(userRepo).ResetPassword(context.Background(), &request.ResetPasswordRequest{
		Phone:       "0912345678",
		NewPassword: "brand-new",
	})

	assert.NoError(t, err)
	assert.NotEqual(t, "brand-new", storedHash)
	assert.True(t, utils.CheckPasswordHash("brand-new", storedHash))
}

func TestResetPassword_UnknownPhone(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindByPhone", mock.Anything, "0000000000").Return(nil, entity.ErrUserNotFound)

	err := newUserService(userRepo).ResetPassword(context.Background(), &request.ResetPasswordRequest{
		Phone:       "0000000000",
		NewPassword: "irrelevant",
	})

	assert.ErrorIs(t, err, entity.ErrUserNotFound)
	userRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestEditProfile_HashesIncomingPassword(t *testing.T) {
	userID := primitive.NewObjectID()
	userRepo := new(MockUserRepository)

	var captured repository.UserUpdate
	userRepo.On("Update", mock.Anything, userID, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(2).(repository.UserUpdate)
	}).Return(&entity.User{ID: userID, Name: "Alice"}, nil)

	password := "rotated"
	name := "Alice"
	user, err := newUserService(userRepo).EditProfile(context.Background(), userID, &request.EditProfileRequest{
		Name:     &name,
		Password: &password,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.NotNil(t, captured.PasswordHash)
	assert.NotEqual(t, "rotated", *captured.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("rotated", *captured.PasswordHash))
}

func TestProfile_UserGone(t *testing.T) {
	userID := primitive.NewObjectID()
	userRepo := new(MockUserRepository)
	userRepo.On("FindByID", mock.Anything, userID).Return(nil, entity.ErrUserNotFound)

	_, err := newUserService(userRepo).Profile(context.Background(), userID)

	assert.ErrorIs(t, err, entity.ErrUserNotFound)
}
