package repository

import (
	"context"
	"fmt"
	"time"

	"shop-backend/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
}

type contactRepository struct {
	collection *mongo.Collection
	log        *zap.Logger
}

func NewContactRepository(db *mongo.Database, log *zap.Logger) ContactRepository {
	return &contactRepository{
		collection: db.Collection("contacts"),
		log:        log,
	}
}

func (cr *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	if contact.ID.IsZero() {
		contact.ID = primitive.NewObjectID()
	}
	contact.CreatedAt = time.Now()

	if _, err := cr.collection.InsertOne(ctx, contact); err != nil {
		cr.log.Error("Failed to save contact message",
			zap.String("email", contact.Email),
			zap.Error(err))
		return fmt.Errorf("save contact message: %w", err)
	}

	return nil
}
