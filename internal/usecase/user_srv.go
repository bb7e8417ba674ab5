package usecase

import (
	"context"
	"fmt"

	"shop-backend/internal/data/entity"
	"shop-backend/internal/data/repository"
	"shop-backend/internal/dto/request"
	"shop-backend/internal/dto/response"
	"shop-backend/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type UserService interface {
	Profile(ctx context.Context, userID primitive.ObjectID) (*response.User, error)
	EditProfile(ctx context.Context, id primitive.ObjectID, req *request.EditProfileRequest) (*response.User, error)
	UpdateLocation(ctx context.Context, userID primitive.ObjectID, req *request.UpdateLocationRequest) (*response.User, error)
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
}

type userService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewUserService(repo *repository.Repository, config *utils.Config, log *zap.Logger) UserService {
	return &userService{
		repo:   repo,
		config: config,
		log:    log,
	}
}

func (s *userService) Profile(ctx context.Context, userID primitive.ObjectID) (*response.User, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) EditProfile(ctx context.Context, id primitive.ObjectID, req *request.EditProfileRequest) (*response.User, error) {
	update := repository.UserUpdate{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	}

	// Incoming passwords are hashed before they ever reach the store.
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password, s.config.Auth.BcryptCost)
		if err != nil {
			s.log.Error("Failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("hash password: %w", err)
		}
		update.PasswordHash = &hashed
	}

	if req.Address != nil {
		update.Address = &entity.Address{
			City:       req.Address.City,
			State:      req.Address.State,
			PostalCode: req.Address.PostalCode,
		}
	}

	user, err := s.repo.User.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.log.Info("User profile updated", zap.String("user_id", id.Hex()))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateLocation(ctx context.Context, userID primitive.ObjectID, req *request.UpdateLocationRequest) (*response.User, error) {
	user, err := s.repo.User.Update(ctx, userID, repository.UserUpdate{
		Address: &entity.Address{
			City:       req.City,
			State:      req.State,
			PostalCode: req.PostalCode,
		},
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("User location updated", zap.String("user_id", userID.Hex()))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	user, err := s.repo.User.FindByPhone(ctx, req.Phone)
	if err != nil {
		return err
	}

	hashed, err := utils.HashPassword(req.NewPassword, s.config.Auth.BcryptCost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.User.UpdatePassword(ctx, user.ID, hashed); err != nil {
		return err
	}

	s.log.Info("Password reset", zap.String("user_id", user.ID.Hex()))
	return nil
}
