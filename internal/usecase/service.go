package usecase

import (
	"shop-backend/internal/data/repository"
	"shop-backend/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Product ProductService
	Cart    CartService
	Contact ContactService
}

func NewService(repo *repository.Repository, config *utils.Config, tokens *utils.TokenIssuer, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, tokens, log),
		User:    NewUserService(repo, config, log),
		Product: NewProductService(repo, log),
		Cart:    NewCartService(repo, log),
		Contact: NewContactService(repo, log),
	}
}
