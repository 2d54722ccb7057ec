package dto

// CreateOrderRequest payload for placing an order.
type CreateOrderRequest struct {
	Email       string  `json:"email"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int64   `json:"quantity"`
	Price       float64 `json:"price"`
	Address     string  `json:"address"`
	Phone       string  `json:"phone"`
}

// UpdateDeliveryRequest payload for delivery state changes.
type UpdateDeliveryRequest struct {
	DeliveryStatus string `json:"deliveryStatus"`
}

// RecordPaymentRequest payload for marking an order paid.
type RecordPaymentRequest struct {
	TransactionID string  `json:"transactionId"`
	Email         string  `json:"email"`
	Amount        float64 `json:"amount"`
}
