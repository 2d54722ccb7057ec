package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"github.com/jontropati/storefront/internal/domain"
	"github.com/jontropati/storefront/internal/events"
	"github.com/jontropati/storefront/internal/repository"
	apperrors "github.com/jontropati/storefront/pkg/util"
)

type fakeProductRepo struct {
	products map[string]domain.Product
	inserts  int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]domain.Product)}
}

func (f *fakeProductRepo) FindAll(context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id bson.ObjectID) (*domain.Product, error) {
	p, ok := f.products[id.Hex()]
	if !ok {
		return nil, apperrors.NewNotFound("product")
	}
	return &p, nil
}

func (f *fakeProductRepo) Insert(_ context.Context, product *domain.Product) (*repository.InsertResult, error) {
	f.inserts++
	id := bson.NewObjectID()
	product.ID = id
	f.products[id.Hex()] = *product
	return &repository.InsertResult{InsertedID: id.Hex()}, nil
}

func (f *fakeProductRepo) UpdateQuantity(_ context.Context, id bson.ObjectID, quantity int64) (*repository.UpdateResult, error) {
	p, ok := f.products[id.Hex()]
	if !ok {
		return &repository.UpdateResult{}, nil
	}
	p.Quantity = quantity
	f.products[id.Hex()] = p
	return &repository.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id bson.ObjectID) (*repository.DeleteResult, error) {
	if _, ok := f.products[id.Hex()]; !ok {
		return &repository.DeleteResult{}, nil
	}
	delete(f.products, id.Hex())
	return &repository.DeleteResult{DeletedCount: 1}, nil
}

func newCatalog(repo repository.ProductRepository) *CatalogService {
	return NewCatalogService(repo, nil, events.NewInMemoryDispatcher(), zap.NewNop(), 0)
}

func TestCreateThenGetProduct(t *testing.T) {
	repo := newFakeProductRepo()
	svc := newCatalog(repo)

	result, err := svc.Create(context.Background(), &domain.Product{Name: "X", Price: 10, Quantity: 5})
	require.NoError(t, err)
	require.NotEmpty(t, result.InsertedID)

	product, err := svc.Get(context.Background(), result.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, "X", product.Name)
	assert.Equal(t, float64(10), product.Price)
	assert.Equal(t, int64(5), product.Quantity)
}

func TestCreateValidatesProduct(t *testing.T) {
	repo := newFakeProductRepo()
	svc := newCatalog(repo)

	_, err := svc.Create(context.Background(), &domain.Product{Price: 10})
	require.Error(t, err)

	_, err = svc.Create(context.Background(), &domain.Product{Name: "X", Price: 0})
	require.Error(t, err)

	assert.Zero(t, repo.inserts)
}

func TestGetRejectsMalformedID(t *testing.T) {
	svc := newCatalog(newFakeProductRepo())

	_, err := svc.Get(context.Background(), "not-a-hex-id")
	require.Error(t, err)
	de := apperrors.ToDomainError(err)
	assert.Equal(t, 400, de.HTTPStatus)
}

func TestSetQuantityRejectsNegative(t *testing.T) {
	svc := newCatalog(newFakeProductRepo())

	_, err := svc.SetQuantity(context.Background(), bson.NewObjectID().Hex(), -1)
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.ToDomainError(err).HTTPStatus)
}
