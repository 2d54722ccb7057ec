package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/jontropati/storefront/internal/domain"
	"github.com/jontropati/storefront/internal/persistence"
)

// UserRepository defines persistence access for identity records.
type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Upsert(ctx context.Context, email string, profile domain.UserProfile) (*UpdateResult, error)
	MergeUpdate(ctx context.Context, email string, fields bson.M) (*UpdateResult, error)
	SetRole(ctx context.Context, email string, role domain.Role) (*UpdateResult, error)
	FindReviews(ctx context.Context) ([]domain.Review, error)
}

type userRepository struct {
	col *mongo.Collection
}

// NewUserRepository returns a Mongo-backed implementation.
func NewUserRepository(store *persistence.Mongo) UserRepository {
	return &userRepository{col: store.Collection(UsersCollection)}
}

func (r *userRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, storeErr(err, "users")
	}
	users := make([]domain.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, storeErr(err, "users")
	}
	return users, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, storeErr(err, "user")
	}
	return &user, nil
}

func (r *userRepository) Upsert(ctx context.Context, email string, profile domain.UserProfile) (*UpdateResult, error) {
	profile.Email = email
	filter := bson.M{"email": email}
	update := bson.M{"$set": profile}
	opts := options.UpdateOne().SetUpsert(true)

	res, err := r.col.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return nil, storeErr(err, "user")
	}
	return newUpdateResult(res), nil
}

func (r *userRepository) MergeUpdate(ctx context.Context, email string, fields bson.M) (*UpdateResult, error) {
	res, err := r.col.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": fields})
	if err != nil {
		return nil, storeErr(err, "user")
	}
	return newUpdateResult(res), nil
}

func (r *userRepository) SetRole(ctx context.Context, email string, role domain.Role) (*UpdateResult, error) {
	res, err := r.col.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return nil, storeErr(err, "user")
	}
	return newUpdateResult(res), nil
}

func (r *userRepository) FindReviews(ctx context.Context) ([]domain.Review, error) {
	filter := bson.M{"review": bson.M{"$exists": true, "$ne": ""}}
	opts := options.Find().SetProjection(bson.M{"name": 1, "rating": 1, "review": 1})

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, storeErr(err, "reviews")
	}
	reviews := make([]domain.Review, 0)
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, storeErr(err, "reviews")
	}
	return reviews, nil
}
