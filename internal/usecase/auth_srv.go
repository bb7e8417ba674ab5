package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shop-backend/internal/data/entity"
	"shop-backend/internal/data/repository"
	"shop-backend/internal/dto/request"
	"shop-backend/internal/dto/response"
	"shop-backend/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.Auth, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.Auth, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	tokens *utils.TokenIssuer
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	tokens *utils.TokenIssuer,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		tokens: tokens,
		log:    log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.Auth, error) {
	phone := strings.TrimSpace(req.Phone)

	// The unique index is the real guard; this check gives a clean conflict
	// for the common case.
	_, err := s.repo.User.FindByPhone(ctx, phone)
	if err == nil {
		return nil, entity.ErrPhoneTaken
	}
	if !errors.Is(err, entity.ErrUserNotFound) {
		s.log.Error("Failed to check phone", zap.Error(err))
		return nil, fmt.Errorf("check phone: %w", err)
	}

	hashedPassword, err := utils.HashPassword(req.Password, s.config.Auth.BcryptCost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Name:         strings.TrimSpace(req.Name),
		Phone:        phone,
		PasswordHash: hashedPassword,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID.Hex())
	if err != nil {
		s.log.Error("Failed to issue token", zap.String("user_id", user.ID.Hex()), zap.Error(err))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.Hex()),
		zap.String("phone", user.Phone))

	return &response.Auth{
		User:  response.UserToResponse(user),
		Token: token,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.Auth, error) {
	user, err := s.repo.User.FindByPhone(ctx, strings.TrimSpace(req.Phone))
	if errors.Is(err, entity.ErrUserNotFound) {
		return nil, entity.ErrInvalidCredentials
	}
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err))
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.Hex()))
		return nil, entity.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID.Hex())
	if err != nil {
		s.log.Error("Failed to issue token", zap.String("user_id", user.ID.Hex()), zap.Error(err))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.Hex()))

	return &response.Auth{
		User:  response.UserToResponse(user),
		Token: token,
	}, nil
}
