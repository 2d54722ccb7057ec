package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jontropati/storefront/internal/api/dto"
	"github.com/jontropati/storefront/internal/domain"
	"github.com/jontropati/storefront/internal/service"
	apperrors "github.com/jontropati/storefront/pkg/util"
)

// UsersHandler exposes identity record endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users *service.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// List handles GET /user.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// Get handles GET /user/:email.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	user, err := h.users.Get(c.UserContext(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// Upsert handles PUT /user/:email. The response carries the store
// result and a freshly issued token for the email.
func (h *UsersHandler) Upsert(c *fiber.Ctx) error {
	var req dto.UpsertUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}

	result, token, expiresAt, err := h.users.Upsert(c.UserContext(), c.Params("email"), domain.UserProfile{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Image:   req.Image,
		Rating:  req.Rating,
		Review:  req.Review,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.UpsertUserResponse{Result: result, Token: token, ExpiresAt: expiresAt})
}

// Update handles PATCH /user/:email. Ownership-gated by the router.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	var req dto.UpsertUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}

	result, err := h.users.Merge(c.UserContext(), c.Params("email"), domain.UserProfile{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Image:   req.Image,
		Rating:  req.Rating,
		Review:  req.Review,
	})
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// IsAdmin handles GET /admin/:email.
func (h *UsersHandler) IsAdmin(c *fiber.Ctx) error {
	admin, err := h.users.IsAdmin(c.UserContext(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(dto.AdminCheckResponse{Admin: admin})
}

// SetRole handles PUT /user/admin/:email. Admin-gated by the router.
func (h *UsersHandler) SetRole(c *fiber.Ctx) error {
	var req dto.SetRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}

	result, err := h.users.SetRole(c.UserContext(), c.Params("email"), domain.Role(req.Role))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// Reviews handles GET /review.
func (h *UsersHandler) Reviews(c *fiber.Ctx) error {
	reviews, err := h.users.Reviews(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(reviews)
}
