package usecase

import (
	"context"

	"shop-backend/internal/data/entity"
	"shop-backend/internal/data/repository"
	"shop-backend/internal/dto/response"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type CartService interface {
	AddProduct(ctx context.Context, userID primitive.ObjectID, productID string) (*response.User, error)
	UserProducts(ctx context.Context, userID primitive.ObjectID) (*response.Cart, error)
	RemoveProduct(ctx context.Context, userID primitive.ObjectID, productID string) (*response.User, error)
	RemoveOneUnit(ctx context.Context, userID primitive.ObjectID, productID string) (*response.User, error)
}

type cartService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCartService(repo *repository.Repository, log *zap.Logger) CartService {
	return &cartService{
		repo: repo,
		log:  log,
	}
}

// AddProduct appends one unit of the product to the user's cart. Repeated
// adds of the same product stack up as duplicate references.
func (s *cartService) AddProduct(ctx context.Context, userID primitive.ObjectID, productID string) (*response.User, error) {
	id, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, entity.ErrProductNotFound
	}

	if _, err := s.repo.Product.FindByID(ctx, id); err != nil {
		return nil, err
	}

	user, err := s.repo.User.PushProduct(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	s.log.Info("Product added to cart",
		zap.String("user_id", userID.Hex()),
		zap.String("product_id", id.Hex()))

	resp := response.UserToResponse(user)
	return &resp, nil
}

// UserProducts aggregates the raw cart references into unique products with
// per-product quantities. References that no longer resolve in the catalog
// are dropped from the output; the unit count still reflects the raw list.
func (s *cartService) UserProducts(ctx context.Context, userID primitive.ObjectID) (*response.Cart, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(user.Products) == 0 {
		return nil, entity.ErrCartEmpty
	}

	counts := make(map[primitive.ObjectID]int, len(user.Products))
	unique := make([]primitive.ObjectID, 0, len(user.Products))
	for _, id := range user.Products {
		if counts[id] == 0 {
			unique = append(unique, id)
		}
		counts[id]++
	}

	products, err := s.repo.Product.FindByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}

	items := make([]response.CartItem, 0, len(products))
	for _, product := range products {
		items = append(items, response.CartItem{
			Product:  response.ProductToResponse(product),
			Quantity: counts[product.ID],
		})
	}

	return &response.Cart{
		Msg:            "User products",
		Products:       items,
		ProductsLength: len(user.Products),
	}, nil
}

// RemoveProduct drops every unit of the product from the cart.
func (s *cartService) RemoveProduct(ctx context.Context, userID primitive.ObjectID, productID string) (*response.User, error) {
	id, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, entity.ErrProductNotFound
	}

	user, err := s.repo.User.PullProduct(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	s.log.Info("Product removed from cart",
		zap.String("user_id", userID.Hex()),
		zap.String("product_id", id.Hex()))

	resp := response.UserToResponse(user)
	return &resp, nil
}

// RemoveOneUnit removes a single occurrence of the product from the cart.
// The fetch-mutate-save sequence is not transactional; concurrent cart
// updates for the same user can race.
func (s *cartService) RemoveOneUnit(ctx context.Context, userID primitive.ObjectID, productID string) (*response.User, error) {
	id, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, entity.ErrProductNotFound
	}

	if _, err := s.repo.Product.FindByID(ctx, id); err != nil {
		return nil, err
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	index := -1
	for i, ref := range user.Products {
		if ref == id {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, entity.ErrNotInCart
	}

	products := append(user.Products[:index:index], user.Products[index+1:]...)

	updated, err := s.repo.User.SetProducts(ctx, userID, products)
	if err != nil {
		return nil, err
	}

	s.log.Info("One unit removed from cart",
		zap.String("user_id", userID.Hex()),
		zap.String("product_id", id.Hex()))

	resp := response.UserToResponse(updated)
	return &resp, nil
}
