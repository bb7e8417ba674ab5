package usecase

import (
	"context"

	"shop-backend/internal/data/entity"
	"shop-backend/internal/data/repository"
	"shop-backend/internal/dto/request"

	"go.uber.org/zap"
)

type ContactService interface {
	Submit(ctx context.Context, req *request.ContactRequest) error
}

type contactService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewContactService(repo *repository.Repository, log *zap.Logger) ContactService {
	return &contactService{
		repo: repo,
		log:  log,
	}
}

func (s *contactService) Submit(ctx context.Context, req *request.ContactRequest) error {
	contact := &entity.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	if err := s.repo.Contact.Create(ctx, contact); err != nil {
		return err
	}

	s.log.Info("Contact message saved", zap.String("email", req.Email))
	return nil
}
