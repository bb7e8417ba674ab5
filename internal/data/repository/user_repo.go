package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"shop-backend/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// UserUpdate carries the optional profile fields of a partial update.
// Nil fields are left untouched.
type UserUpdate struct {
	Name         *string
	Phone        *string
	Email        *string
	PasswordHash *string
	Address      *entity.Address
}

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error)
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)
	Update(ctx context.Context, id primitive.ObjectID, update UserUpdate) (*entity.User, error)
	UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
	PushProduct(ctx context.Context, id, productID primitive.ObjectID) (*entity.User, error)
	PullProduct(ctx context.Context, id, productID primitive.ObjectID) (*entity.User, error)
	SetProducts(ctx context.Context, id primitive.ObjectID, products []primitive.ObjectID) (*entity.User, error)
}

type userRepository struct {
	collection *mongo.Collection
	log        *zap.Logger
}

func NewUserRepository(db *mongo.Database, log *zap.Logger) UserRepository {
	collection := db.Collection("users")

	// Ensure unique sparse indexes on the login keys (idempotent)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "phone", Value: 1}}, Options: options.Index().SetUnique(true).SetSparse(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetSparse(true)},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Warn("Failed to create indexes for users collection", zap.Error(err))
	}

	return &userRepository{
		collection: collection,
		log:        log,
	}
}

func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Products == nil {
		user.Products = []primitive.ObjectID{}
	}
	if user.WishList == nil {
		user.WishList = []primitive.ObjectID{}
	}

	_, err := ur.collection.InsertOne(ctx, user)
	if err != nil {
		if dupErr := duplicateKeyError(err); dupErr != nil {
			ur.log.Warn("Duplicate key on user create",
				zap.String("phone", user.Phone),
				zap.Error(err))
			return dupErr
		}
		ur.log.Error("Failed to create user",
			zap.String("phone", user.Phone),
			zap.Error(err))
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	var user entity.User
	err := ur.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrUserNotFound
	}
	if err != nil {
		ur.log.Error("Failed to find user by id",
			zap.String("user_id", id.Hex()),
			zap.Error(err))
		return nil, fmt.Errorf("find user by id %s: %w", id.Hex(), err)
	}

	return &user, nil
}

func (ur *userRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	var user entity.User
	err := ur.collection.FindOne(ctx, bson.M{"phone": phone}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrUserNotFound
	}
	if err != nil {
		ur.log.Error("Failed to find user by phone",
			zap.String("phone", phone),
			zap.Error(err))
		return nil, fmt.Errorf("find user by phone: %w", err)
	}

	return &user, nil
}

func (ur *userRepository) Update(ctx context.Context, id primitive.ObjectID, update UserUpdate) (*entity.User, error) {
	set := bson.M{"updated_at": time.Now()}
	if update.Name != nil {
		set["name"] = strings.TrimSpace(*update.Name)
	}
	if update.Phone != nil {
		set["phone"] = strings.TrimSpace(*update.Phone)
	}
	if update.Email != nil {
		set["email"] = strings.TrimSpace(*update.Email)
	}
	if update.PasswordHash != nil {
		set["password"] = *update.PasswordHash
	}
	if update.Address != nil {
		set["address"] = *update.Address
	}

	return ur.findOneAndUpdate(ctx, id, bson.M{"$set": set})
}

func (ur *userRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	_, err := ur.findOneAndUpdate(ctx, id, bson.M{
		"$set": bson.M{"password": passwordHash, "updated_at": time.Now()},
	})
	return err
}

// PushProduct appends one unit of a product to the cart atomically.
func (ur *userRepository) PushProduct(ctx context.Context, id, productID primitive.ObjectID) (*entity.User, error) {
	return ur.findOneAndUpdate(ctx, id, bson.M{
		"$push": bson.M{"products": productID},
		"$set":  bson.M{"updated_at": time.Now()},
	})
}

// PullProduct removes every unit of a product from the cart atomically.
func (ur *userRepository) PullProduct(ctx context.Context, id, productID primitive.ObjectID) (*entity.User, error) {
	return ur.findOneAndUpdate(ctx, id, bson.M{
		"$pull": bson.M{"products": productID},
		"$set":  bson.M{"updated_at": time.Now()},
	})
}

// SetProducts replaces the whole cart. Used by remove-one-unit, which has no
// single-occurrence atomic operator; the fetch-mutate-save race is accepted.
func (ur *userRepository) SetProducts(ctx context.Context, id primitive.ObjectID, products []primitive.ObjectID) (*entity.User, error) {
	if products == nil {
		products = []primitive.ObjectID{}
	}
	return ur.findOneAndUpdate(ctx, id, bson.M{
		"$set": bson.M{"products": products, "updated_at": time.Now()},
	})
}

func (ur *userRepository) findOneAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*entity.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user entity.User
	err := ur.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrUserNotFound
	}
	if err != nil {
		if dupErr := duplicateKeyError(err); dupErr != nil {
			return nil, dupErr
		}
		ur.log.Error("Failed to update user",
			zap.String("user_id", id.Hex()),
			zap.Error(err))
		return nil, fmt.Errorf("update user %s: %w", id.Hex(), err)
	}

	return &user, nil
}

// duplicateKeyError maps mongo duplicate-key failures (code 11000) on the
// unique phone/email indexes to domain errors, nil otherwise.
func duplicateKeyError(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return nil
	}
	if strings.Contains(err.Error(), "email_1") {
		return entity.ErrEmailTaken
	}
	return entity.ErrPhoneTaken
}
