package repository

import (
	"context"
	"errors"
	"fmt"

	"shop-backend/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type ProductRepository interface {
	InsertMany(ctx context.Context, products []*entity.Product) ([]*entity.Product, error)
	FindAll(ctx context.Context) ([]*entity.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Product, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.Product, error)
	FindRelated(ctx context.Context, category string, exclude primitive.ObjectID) ([]*entity.Product, error)
}

type productRepository struct {
	collection *mongo.Collection
	log        *zap.Logger
}

func NewProductRepository(db *mongo.Database, log *zap.Logger) ProductRepository {
	return &productRepository{
		collection: db.Collection("products"),
		log:        log,
	}
}

// InsertMany persists a batch of products. The discounted price is derived
// here, right before the write, never taken from the caller.
func (pr *productRepository) InsertMany(ctx context.Context, products []*entity.Product) ([]*entity.Product, error) {
	if len(products) == 0 {
		return products, nil
	}

	docs := make([]interface{}, 0, len(products))
	for _, product := range products {
		if product.ID.IsZero() {
			product.ID = primitive.NewObjectID()
		}
		product.ApplyDiscount()
		docs = append(docs, product)
	}

	if _, err := pr.collection.InsertMany(ctx, docs); err != nil {
		pr.log.Error("Failed to insert products",
			zap.Int("count", len(products)),
			zap.Error(err))
		return nil, fmt.Errorf("insert products: %w", err)
	}

	return products, nil
}

func (pr *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	cursor, err := pr.collection.Find(ctx, bson.M{})
	if err != nil {
		pr.log.Error("Failed to list products", zap.Error(err))
		return nil, fmt.Errorf("list products: %w", err)
	}

	return decodeProducts(ctx, cursor)
}

func (pr *productRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Product, error) {
	var product entity.Product
	err := pr.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrProductNotFound
	}
	if err != nil {
		pr.log.Error("Failed to find product",
			zap.String("product_id", id.Hex()),
			zap.Error(err))
		return nil, fmt.Errorf("find product %s: %w", id.Hex(), err)
	}

	return &product, nil
}

// FindByIDs fetches all products whose id is in ids with a single query.
// Ids that no longer resolve are simply absent from the result.
func (pr *productRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.Product, error) {
	cursor, err := pr.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		pr.log.Error("Failed to find products by ids",
			zap.Int("count", len(ids)),
			zap.Error(err))
		return nil, fmt.Errorf("find products by ids: %w", err)
	}

	return decodeProducts(ctx, cursor)
}

func (pr *productRepository) FindRelated(ctx context.Context, category string, exclude primitive.ObjectID) ([]*entity.Product, error) {
	filter := bson.M{
		"category": category,
		"_id":      bson.M{"$ne": exclude},
	}

	cursor, err := pr.collection.Find(ctx, filter)
	if err != nil {
		pr.log.Error("Failed to find related products",
			zap.String("category", category),
			zap.Error(err))
		return nil, fmt.Errorf("find related products: %w", err)
	}

	return decodeProducts(ctx, cursor)
}

func decodeProducts(ctx context.Context, cursor *mongo.Cursor) ([]*entity.Product, error) {
	defer cursor.Close(ctx)

	products := []*entity.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	return products, nil
}
