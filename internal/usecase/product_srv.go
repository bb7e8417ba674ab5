package usecase

import (
	"context"

	"shop-backend/internal/data/entity"
	"shop-backend/internal/data/repository"
	"shop-backend/internal/dto/request"
	"shop-backend/internal/dto/response"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ProductService interface {
	SaveProducts(ctx context.Context, reqs []request.SaveProductRequest) ([]response.Product, error)
	ListProducts(ctx context.Context) ([]response.Product, error)
	ProductDetail(ctx context.Context, productID string) (*response.ProductDetail, error)
}

type productService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProductService(repo *repository.Repository, log *zap.Logger) ProductService {
	return &productService{
		repo: repo,
		log:  log,
	}
}

func (s *productService) SaveProducts(ctx context.Context, reqs []request.SaveProductRequest) ([]response.Product, error) {
	products := make([]*entity.Product, 0, len(reqs))
	for i := range reqs {
		products = append(products, reqs[i].ToEntity())
	}

	saved, err := s.repo.Product.InsertMany(ctx, products)
	if err != nil {
		return nil, err
	}

	s.log.Info("Products saved", zap.Int("count", len(saved)))

	return response.ProductsToResponse(saved), nil
}

func (s *productService) ListProducts(ctx context.Context) ([]response.Product, error) {
	products, err := s.repo.Product.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, entity.ErrNoProducts
	}

	return response.ProductsToResponse(products), nil
}

func (s *productService) ProductDetail(ctx context.Context, productID string) (*response.ProductDetail, error) {
	id, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, entity.ErrProductNotFound
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	related, err := s.repo.Product.FindRelated(ctx, product.Category, product.ID)
	if err != nil {
		return nil, err
	}

	return &response.ProductDetail{
		Product:         response.ProductToResponse(product),
		RelatedProducts: response.ProductsToResponse(related),
	}, nil
}
