package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/jontropati/storefront/internal/domain"
	"github.com/jontropati/storefront/internal/persistence"
)

// ProductRepository defines persistence access for catalog items.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*domain.Product, error)
	Insert(ctx context.Context, product *domain.Product) (*InsertResult, error)
	UpdateQuantity(ctx context.Context, id bson.ObjectID, quantity int64) (*UpdateResult, error)
	Delete(ctx context.Context, id bson.ObjectID) (*DeleteResult, error)
}

type productRepository struct {
	col *mongo.Collection
}

// NewProductRepository returns a Mongo-backed implementation.
func NewProductRepository(store *persistence.Mongo) ProductRepository {
	return &productRepository{col: store.Collection(ProductsCollection)}
}

func (r *productRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, storeErr(err, "products")
	}
	products := make([]domain.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, storeErr(err, "products")
	}
	return products, nil
}

func (r *productRepository) FindByID(ctx context.Context, id bson.ObjectID) (*domain.Product, error) {
	var product domain.Product
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
		return nil, storeErr(err, "product")
	}
	return &product, nil
}

func (r *productRepository) Insert(ctx context.Context, product *domain.Product) (*InsertResult, error) {
	res, err := r.col.InsertOne(ctx, product)
	if err != nil {
		return nil, storeErr(err, "product")
	}
	return newInsertResult(res), nil
}

func (r *productRepository) UpdateQuantity(ctx context.Context, id bson.ObjectID, quantity int64) (*UpdateResult, error) {
	update := bson.M{"$set": bson.M{"quantity": quantity}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, storeErr(err, "product")
	}
	return newUpdateResult(res), nil
}

func (r *productRepository) Delete(ctx context.Context, id bson.ObjectID) (*DeleteResult, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, storeErr(err, "product")
	}
	return newDeleteResult(res), nil
}
