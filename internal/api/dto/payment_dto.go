package dto

// CreatePaymentIntentRequest payload carrying the order price.
type CreatePaymentIntentRequest struct {
	Price float64 `json:"price"`
}

// CreatePaymentIntentResponse returns the provider client secret.
type CreatePaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
