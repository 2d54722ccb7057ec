package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jontropati/storefront/internal/auth"
	"github.com/jontropati/storefront/internal/domain"
	"github.com/jontropati/storefront/internal/events"
	"github.com/jontropati/storefront/internal/repository"
	apperrors "github.com/jontropati/storefront/pkg/util"
)

// memoryUserRepo keeps one record per email, like the unique index in
// the real store.
type memoryUserRepo struct {
	records map[string]domain.User
	merges  []bson.M
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{records: make(map[string]domain.User)}
}

func (m *memoryUserRepo) FindAll(context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(m.records))
	for _, u := range m.records {
		out = append(out, u)
	}
	return out, nil
}

func (m *memoryUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := m.records[email]
	if !ok {
		return nil, apperrors.NewNotFound("user")
	}
	return &user, nil
}

func (m *memoryUserRepo) Upsert(_ context.Context, email string, profile domain.UserProfile) (*repository.UpdateResult, error) {
	existing, found := m.records[email]
	existing.Email = email
	existing.Name = profile.Name
	existing.Phone = profile.Phone
	existing.Address = profile.Address
	m.records[email] = existing

	if found {
		return &repository.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return &repository.UpdateResult{UpsertedID: bson.NewObjectID().Hex()}, nil
}

func (m *memoryUserRepo) MergeUpdate(_ context.Context, email string, fields bson.M) (*repository.UpdateResult, error) {
	m.merges = append(m.merges, fields)
	if _, ok := m.records[email]; !ok {
		return &repository.UpdateResult{}, nil
	}
	return &repository.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *memoryUserRepo) SetRole(_ context.Context, email string, role domain.Role) (*repository.UpdateResult, error) {
	user := m.records[email]
	user.Email = email
	user.Role = role
	m.records[email] = user
	return &repository.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *memoryUserRepo) FindReviews(context.Context) ([]domain.Review, error) {
	out := make([]domain.Review, 0)
	for _, u := range m.records {
		if u.Review != "" {
			out = append(out, domain.Review{Name: u.Name, Rating: u.Rating, Review: u.Review})
		}
	}
	return out, nil
}

func newUserService(repo repository.UserRepository) *UserService {
	return NewUserService(repo, auth.NewTokenManager("secret"), events.NewInMemoryDispatcher(), time.Hour)
}

func TestUpsertIsIdempotentAndIssuesFreshTokens(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newUserService(repo)
	profile := domain.UserProfile{Name: "Buyer", Phone: "0123"}

	first, token1, exp1, err := svc.Upsert(context.Background(), "buyer@x.com", profile)
	require.NoError(t, err)
	require.NotEmpty(t, token1)
	assert.NotEmpty(t, first.UpsertedID)

	second, token2, exp2, err := svc.Upsert(context.Background(), "buyer@x.com", profile)
	require.NoError(t, err)
	require.NotEmpty(t, token2)
	assert.Empty(t, second.UpsertedID)
	assert.Equal(t, int64(1), second.MatchedCount)

	assert.Len(t, repo.records, 1)
	assert.False(t, exp2.Before(exp1))
}

func TestMergeNeverWritesRoleOrEmail(t *testing.T) {
	repo := newMemoryUserRepo()
	repo.records["buyer@x.com"] = domain.User{Email: "buyer@x.com"}
	svc := newUserService(repo)

	_, err := svc.Merge(context.Background(), "buyer@x.com", domain.UserProfile{Name: "New Name", Address: "Dhaka"})
	require.NoError(t, err)

	require.Len(t, repo.merges, 1)
	assert.NotContains(t, repo.merges[0], "role")
	assert.NotContains(t, repo.merges[0], "email")
	assert.Equal(t, "New Name", repo.merges[0]["name"])
}

func TestMergeRejectsEmptyUpdate(t *testing.T) {
	svc := newUserService(newMemoryUserRepo())

	_, err := svc.Merge(context.Background(), "buyer@x.com", domain.UserProfile{})
	require.Error(t, err)
	de := apperrors.ToDomainError(err)
	assert.Equal(t, 400, de.HTTPStatus)
}

func TestIsAdmin(t *testing.T) {
	repo := newMemoryUserRepo()
	repo.records["admin@x.com"] = domain.User{Email: "admin@x.com", Role: domain.RoleAdmin}
	repo.records["buyer@x.com"] = domain.User{Email: "buyer@x.com", Role: domain.RoleUser}
	svc := newUserService(repo)

	admin, err := svc.IsAdmin(context.Background(), "admin@x.com")
	require.NoError(t, err)
	assert.True(t, admin)

	admin, err = svc.IsAdmin(context.Background(), "buyer@x.com")
	require.NoError(t, err)
	assert.False(t, admin)

	// An unknown email is simply not an admin, never an error.
	admin, err = svc.IsAdmin(context.Background(), "ghost@x.com")
	require.NoError(t, err)
	assert.False(t, admin)
}

func TestSetRoleValidatesRole(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newUserService(repo)

	_, err := svc.SetRole(context.Background(), "buyer@x.com", domain.Role("superuser"))
	require.Error(t, err)

	result, err := svc.SetRole(context.Background(), "buyer@x.com", domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ModifiedCount)
	assert.Equal(t, domain.RoleAdmin, repo.records["buyer@x.com"].Role)
}

func TestReviewsProjection(t *testing.T) {
	repo := newMemoryUserRepo()
	repo.records["a@x.com"] = domain.User{Email: "a@x.com", Name: "A", Rating: "5", Review: "great"}
	repo.records["b@x.com"] = domain.User{Email: "b@x.com", Name: "B"}
	svc := newUserService(repo)

	reviews, err := svc.Reviews(context.Background())
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "great", reviews[0].Review)
}
