package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jontropati/storefront/internal/auth"
	"github.com/jontropati/storefront/internal/domain"
	"github.com/jontropati/storefront/internal/events"
	"github.com/jontropati/storefront/internal/repository"
	apperrors "github.com/jontropati/storefront/pkg/util"
)

// UserService coordinates identity record flows: upsert with token
// issuance, profile merge, role grants and review projection.
type UserService struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	dispatcher events.Dispatcher
	tokenTTL   time.Duration
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, tokens *auth.TokenManager, dispatcher events.Dispatcher, tokenTTL time.Duration) *UserService {
	return &UserService{
		users:      users,
		tokens:     tokens,
		dispatcher: dispatcher,
		tokenTTL:   tokenTTL,
	}
}

// List returns all identity records.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

// Get fetches one identity record by email.
func (s *UserService) Get(ctx context.Context, email string) (*domain.User, error) {
	return s.users.FindByEmail(ctx, email)
}

// Upsert writes the profile under the email and issues a fresh token
// bound to that email. Calling it twice with the same body keeps a
// single stored record.
func (s *UserService) Upsert(ctx context.Context, email string, profile domain.UserProfile) (*repository.UpdateResult, string, time.Time, error) {
	result, err := s.users.Upsert(ctx, email, profile)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	token, expiresAt, err := s.tokens.Issue(email, s.tokenTTL)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return result, token, expiresAt, nil
}

// Merge applies a partial profile update. Role and email never pass
// through here.
func (s *UserService) Merge(ctx context.Context, email string, profile domain.UserProfile) (*repository.UpdateResult, error) {
	fields := bson.M{}
	if profile.Name != "" {
		fields["name"] = profile.Name
	}
	if profile.Phone != "" {
		fields["phone"] = profile.Phone
	}
	if profile.Address != "" {
		fields["address"] = profile.Address
	}
	if profile.Image != "" {
		fields["image"] = profile.Image
	}
	if profile.Rating != "" {
		fields["rating"] = profile.Rating
	}
	if profile.Review != "" {
		fields["review"] = profile.Review
	}
	if len(fields) == 0 {
		return nil, apperrors.NewValidationError("no fields to update", nil)
	}
	return s.users.MergeUpdate(ctx, email, fields)
}

// IsAdmin reports whether the identity holds the admin role. An
// unknown email is simply not an admin.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		var domainErr *apperrors.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == "NOT_FOUND" {
			return false, nil
		}
		return false, err
	}
	return user.Role == domain.RoleAdmin, nil
}

// SetRole grants or revokes the admin role.
func (s *UserService) SetRole(ctx context.Context, email string, role domain.Role) (*repository.UpdateResult, error) {
	if !role.Valid() {
		return nil, apperrors.NewValidationError("role must be user or admin", nil)
	}

	result, err := s.users.SetRole(ctx, email, role)
	if err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventUserRoleChanged, email, events.UserRoleChangedPayload{
			Email: email,
			Role:  string(role),
		}))
	}
	return result, nil
}

// Reviews projects review fields out of the identity records.
func (s *UserService) Reviews(ctx context.Context) ([]domain.Review, error) {
	return s.users.FindReviews(ctx)
}
