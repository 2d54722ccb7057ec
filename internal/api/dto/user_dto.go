package dto

import (
	"time"

	"github.com/jontropati/storefront/internal/repository"
)

// UpsertUserRequest payload for PUT /user/:email. The email comes from
// the path, never the body.
type UpsertUserRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Image   string `json:"image"`
	Rating  string `json:"rating"`
	Review  string `json:"review"`
}

// UpsertUserResponse returns the store result together with a freshly
// issued token.
type UpsertUserResponse struct {
	Result    *repository.UpdateResult `json:"result"`
	Token     string                   `json:"token"`
	ExpiresAt time.Time                `json:"expires_at"`
}

// SetRoleRequest payload for role grants.
type SetRoleRequest struct {
	Role string `json:"role"`
}

// AdminCheckResponse reports whether an email holds the admin role.
type AdminCheckResponse struct {
	Admin bool `json:"admin"`
}
