package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jontropati/storefront/internal/repository"
	apperrors "github.com/jontropati/storefront/pkg/util"
)

const subjectKey = "auth_subject"

// Middleware carries the ordered gate stages applied per route. Each
// stage short-circuits on failure: no later stage or handler runs.
type Middleware struct {
	tokens *TokenManager
	users  repository.UserRepository
}

// NewMiddleware constructs the gate.
func NewMiddleware(tokens *TokenManager, users repository.UserRepository) *Middleware {
	return &Middleware{tokens: tokens, users: users}
}

// RequireAuth is the authentication stage. An absent Authorization
// header is 401; any token verification failure is 403. The scheme
// prefix is optional: a bare token in the header is accepted.
func (m *Middleware) RequireAuth(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return apperrors.NewUnauthorized()
	}

	token := header
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 {
		token = parts[1]
	}

	claims, err := m.tokens.Verify(token)
	if err != nil {
		return apperrors.NewForbidden()
	}

	c.Locals(subjectKey, claims.SubjectEmail())
	return c.Next()
}

// SubjectFromContext retrieves the authenticated subject attached by
// RequireAuth. The value lives only for this request.
func SubjectFromContext(c *fiber.Ctx) (string, bool) {
	val := c.Locals(subjectKey)
	if val == nil {
		return "", false
	}
	subject, ok := val.(string)
	return subject, ok && subject != ""
}
