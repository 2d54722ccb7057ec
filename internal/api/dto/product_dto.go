package dto

// CreateProductRequest payload for new catalog items.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Supplier    string  `json:"supplier"`
	Price       float64 `json:"price"`
	Quantity    int64   `json:"quantity"`
	MinOrder    int64   `json:"minOrder"`
}

// UpdateQuantityRequest payload for stock updates.
type UpdateQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}
