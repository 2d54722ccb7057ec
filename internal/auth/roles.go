package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jontropati/storefront/internal/domain"
	apperrors "github.com/jontropati/storefront/pkg/util"
)

// RequireAdmin is the role stage, composed after RequireAuth. The
// identity record is looked up per request; decisions are never cached.
// A missing identity denies rather than faulting.
func (m *Middleware) RequireAdmin(c *fiber.Ctx) error {
	subject, ok := SubjectFromContext(c)
	if !ok {
		return apperrors.NewForbidden()
	}

	user, err := m.users.FindByEmail(c.UserContext(), subject)
	if err != nil || user == nil {
		return apperrors.NewForbidden()
	}
	if user.Role != domain.RoleAdmin {
		return apperrors.NewForbidden()
	}
	return c.Next()
}

// RequireOwnerQuery ensures the authenticated subject matches the owner
// declared in the named query parameter.
func RequireOwnerQuery(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		subject, ok := SubjectFromContext(c)
		if !ok || c.Query(param) != subject {
			return apperrors.NewForbidden()
		}
		return c.Next()
	}
}

// RequireOwnerParam ensures the authenticated subject matches the owner
// declared in the named path parameter.
func RequireOwnerParam(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		subject, ok := SubjectFromContext(c)
		if !ok || c.Params(param) != subject {
			return apperrors.NewForbidden()
		}
		return c.Next()
	}
}
