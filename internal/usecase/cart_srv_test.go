package usecase

import (
	"context"
	"testing"

	"shop-backend/internal/data/entity"
	"shop-backend/internal/data/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newCartService(userRepo *MockUserRepository, productRepo *MockProductRepository) CartService {
	repo := &repository.Repository{User: userRepo, Product: productRepo}
	return NewCartService(repo, zap.NewNop())
}

func TestUserProducts_AggregatesDuplicatesIntoQuantities(t *testing.T) {
	userID := primitive.NewObjectID()
	p1 := primitive.NewObjectID()
	p2 := primitive.NewObjectID()

	userRepo := new(MockUserRepository)
	productRepo := new(MockProductRepository)

	userRepo.On("FindByID", mock.Anything, userID).Return(&entity.User{
		ID:       userID,
		Products: []primitive.ObjectID{p1, p1, p2},
	}, nil)
	productRepo.On("FindByIDs", mock.Anything, []primitive.ObjectID{p1, p2}).Return([]*entity.Product{
		{ID: p1, Title: "first"},
		{ID: p2, Title: "second"},
	}, nil)

	cart, err := newCartService(userRepo, productRepo).UserProducts(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, cart.Products, 2)
	assert.Equal(t, 3, cart.ProductsLength)

	quantities := map[string]int{}
	for _, item := range cart.Products {
		quantities[item.ID] = item.Quantity
	}
	assert.Equal(t, 2, quantities[p1.Hex()])
	assert.Equal(t, 1, quantities[p2.Hex()])
}

func TestUserProducts_DropsUnresolvableReferences(t *testing.T) {
	userID := primitive.NewObjectID()
	p1 := primitive.NewObjectID()
	gone := primitive.NewObjectID()

	userRepo := new(MockUserRepository)
	productRepo := new(MockProductRepository)

	userRepo.On("FindByID", mock.Anything, userID).Return(&entity.User{
		ID:       userID,
		Products: []primitive.ObjectID{p1, gone},
	}, nil)
	// The catalog no longer has the second product
	productRepo.On("FindByIDs", mock.Anything, []primitive.ObjectID{p1, gone}).Return([]*entity.Product{
		{ID: p1, Title: "still here"},
	}, nil)

	cart, err := newCartService(userRepo, productRepo).UserProducts(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, cart.Products, 1)
	assert.Equal(t, p1.Hex(), cart.Products[0].ID)
	assert.Equal(t, 2, cart.ProductsLength)
}

func TestUserProducts_EmptyCart(t *testing.T) {
	userID := primitive.NewObjectID()

	userRepo := new(MockUserRepository)
	productRepo := new(MockProductRepository)

	userRepo.On("FindByID", mock.Anything, userID).Return(&entity.User{ID: userID}, nil)

	_, err := newCartService(userRepo, productRepo).UserProducts(context.Background(), userID)

	assert.ErrorIs(t, err, entity.ErrCartEmpty)
	productRepo.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
}

func TestAddProduct_UnknownProduct(t *testing.T) {
	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()

	userRepo := new(MockUserRepository)
	productRepo := new(MockProductRepository)

	productRepo.On("FindByID", mock.Anything, productID).Return(nil, entity.ErrProductNotFound)

	_, err := newCartService(userRepo, productRepo).AddProduct(context.Background(), userID, productID.Hex())

	assert.ErrorIs(t, err, entity.ErrProductNotFound)
	userRepo.AssertNotCalled(t, "PushProduct", mock.Anything, mock.Anything, mock.Anything)
}

func TestRemoveOneUnit_DecrementsSingleOccurrence(t *testing.T) {
	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()

	userRepo := new(MockUserRepository)
	productRepo := new(MockProductRepository)

	productRepo.On("FindByID", mock.Anything, productID).Return(&entity.Product{ID: productID}, nil)
	userRepo.On("FindByID", mock.Anything, userID).Return(&entity.User{
		ID:       userID,
		Products: []primitive.ObjectID{productID, productID},
	}, nil)
	userRepo.On("SetProducts", mock.Anything, userID, []primitive.ObjectID{productID}).Return(&entity.User{
		ID:       userID,
		Products: []primitive.ObjectID{productID},
	}, nil)

	user, err := newCartService(userRepo, productRepo).RemoveOneUnit(context.Background(), userID, productID.Hex())

	assert.NoError(t, err)
	assert.Len(t, user.Products, 1)
	userRepo.AssertExpectations(t)
}

func TestRemoveOneUnit_NotInCart(t *testing.T) {
	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()

	userRepo := new(MockUserRepository)
	productRepo := new(MockProductRepository)

	productRepo.On("FindByID", mock.Anything, productID).Return(&entity.Product{ID: productID}, nil)
	userRepo.On("FindByID", mock.Anything, userID).Return(&entity.User{
		ID:       userID,
		Products: []primitive.ObjectID{primitive.NewObjectID()},
	}, nil)

	_, err := newCartService(userRepo, productRepo).RemoveOneUnit(context.Background(), userID, productID.Hex())

	assert.ErrorIs(t, err, entity.ErrNotInCart)
	userRepo.AssertNotCalled(t, "SetProducts", mock.Anything, mock.Anything, mock.Anything)
}
