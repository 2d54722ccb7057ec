package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	apperrors "github.com/jontropati/storefront/pkg/util"
)

// Collection names in the jontropati database.
const (
	UsersCollection    = "users"
	ProductsCollection = "products"
	OrdersCollection   = "orders"
)

// InsertResult reports the outcome of an insert, mirroring the driver result.
type InsertResult struct {
	InsertedID string `json:"insertedId"`
}

// UpdateResult reports the outcome of an update or upsert.
type UpdateResult struct {
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

// DeleteResult reports the outcome of a delete.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

func newInsertResult(res *mongo.InsertOneResult) *InsertResult {
	out := &InsertResult{}
	if res == nil {
		return out
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		out.InsertedID = oid.Hex()
	}
	return out
}

func newUpdateResult(res *mongo.UpdateResult) *UpdateResult {
	out := &UpdateResult{}
	if res == nil {
		return out
	}
	out.MatchedCount = res.MatchedCount
	out.ModifiedCount = res.ModifiedCount
	if oid, ok := res.UpsertedID.(bson.ObjectID); ok {
		out.UpsertedID = oid.Hex()
	}
	return out
}

func newDeleteResult(res *mongo.DeleteResult) *DeleteResult {
	out := &DeleteResult{}
	if res == nil {
		return out
	}
	out.DeletedCount = res.DeletedCount
	return out
}

// storeErr maps driver failures onto the application taxonomy: a miss is
// a NotFound, everything else is an upstream failure.
func storeErr(err error, resource string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperrors.NewNotFound(resource)
	}
	return apperrors.NewUpstreamFailure(err)
}
