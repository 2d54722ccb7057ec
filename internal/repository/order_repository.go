package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/jontropati/storefront/internal/domain"
	"github.com/jontropati/storefront/internal/persistence"
)

// OrderRepository defines persistence access for orders.
type OrderRepository interface {
	Find(ctx context.Context, filter bson.M) ([]domain.Order, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*domain.Order, error)
	Insert(ctx context.Context, order *domain.Order) (*InsertResult, error)
	SetDeliveryStatus(ctx context.Context, id bson.ObjectID, status string) (*UpdateResult, error)
	RecordPayment(ctx context.Context, id bson.ObjectID, payment domain.PaymentRecord) (*UpdateResult, error)
	Delete(ctx context.Context, id bson.ObjectID) (*DeleteResult, error)
}

type orderRepository struct {
	col *mongo.Collection
}

// NewOrderRepository returns a Mongo-backed implementation.
func NewOrderRepository(store *persistence.Mongo) OrderRepository {
	return &orderRepository{col: store.Collection(OrdersCollection)}
}

func (r *orderRepository) Find(ctx context.Context, filter bson.M) ([]domain.Order, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, storeErr(err, "orders")
	}
	orders := make([]domain.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, storeErr(err, "orders")
	}
	return orders, nil
}

func (r *orderRepository) FindByID(ctx context.Context, id bson.ObjectID) (*domain.Order, error) {
	var order domain.Order
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&order); err != nil {
		return nil, storeErr(err, "order")
	}
	return &order, nil
}

func (r *orderRepository) Insert(ctx context.Context, order *domain.Order) (*InsertResult, error) {
	res, err := r.col.InsertOne(ctx, order)
	if err != nil {
		return nil, storeErr(err, "order")
	}
	return newInsertResult(res), nil
}

func (r *orderRepository) SetDeliveryStatus(ctx context.Context, id bson.ObjectID, status string) (*UpdateResult, error) {
	update := bson.M{"$set": bson.M{"deliveryStatus": status}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, storeErr(err, "order")
	}
	return newUpdateResult(res), nil
}

func (r *orderRepository) RecordPayment(ctx context.Context, id bson.ObjectID, payment domain.PaymentRecord) (*UpdateResult, error) {
	update := bson.M{"$set": bson.M{
		"paid":          true,
		"transactionId": payment.TransactionID,
		"payment":       payment,
	}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, storeErr(err, "order")
	}
	return newUpdateResult(res), nil
}

func (r *orderRepository) Delete(ctx context.Context, id bson.ObjectID) (*DeleteResult, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, storeErr(err, "order")
	}
	return newDeleteResult(res), nil
}
