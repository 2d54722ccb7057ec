package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Order is a placed order document. Email identifies the owning identity.
type Order struct {
	ID             bson.ObjectID  `bson:"_id,omitempty" json:"_id,omitempty"`
	Email          string         `bson:"email" json:"email"`
	ProductID      string         `bson:"productId,omitempty" json:"productId,omitempty"`
	ProductName    string         `bson:"productName,omitempty" json:"productName,omitempty"`
	Quantity       int64          `bson:"quantity,omitempty" json:"quantity,omitempty"`
	Price          float64        `bson:"price,omitempty" json:"price,omitempty"`
	Address        string         `bson:"address,omitempty" json:"address,omitempty"`
	Phone          string         `bson:"phone,omitempty" json:"phone,omitempty"`
	Paid           bool           `bson:"paid,omitempty" json:"paid,omitempty"`
	DeliveryStatus string         `bson:"deliveryStatus,omitempty" json:"deliveryStatus,omitempty"`
	TransactionID  string         `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Payment        *PaymentRecord `bson:"payment,omitempty" json:"payment,omitempty"`
}

// PaymentRecord captures the provider confirmation stored on a paid order.
type PaymentRecord struct {
	TransactionID string    `bson:"transactionId" json:"transactionId"`
	Email         string    `bson:"email,omitempty" json:"email,omitempty"`
	Amount        float64   `bson:"amount,omitempty" json:"amount,omitempty"`
	CreatedAt     time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
