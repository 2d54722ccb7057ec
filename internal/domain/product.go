package domain

import "go.mongodb.org/mongo-driver/v2/bson"

// Product is a catalog item.
type Product struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string        `bson:"name" json:"name"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	Image       string        `bson:"image,omitempty" json:"image,omitempty"`
	Supplier    string        `bson:"supplier,omitempty" json:"supplier,omitempty"`
	Price       float64       `bson:"price" json:"price"`
	Quantity    int64         `bson:"quantity" json:"quantity"`
	MinOrder    int64         `bson:"minOrder,omitempty" json:"minOrder,omitempty"`
}
