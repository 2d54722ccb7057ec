package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jontropati/storefront/internal/domain"
	"github.com/jontropati/storefront/internal/events"
	"github.com/jontropati/storefront/internal/repository"
	apperrors "github.com/jontropati/storefront/pkg/util"
)

type fakeOrderRepo struct {
	lastFilter bson.M
	payments   []domain.PaymentRecord
	inserted   []domain.Order
}

func (f *fakeOrderRepo) Find(_ context.Context, filter bson.M) ([]domain.Order, error) {
	f.lastFilter = filter
	return []domain.Order{}, nil
}

func (f *fakeOrderRepo) FindByID(context.Context, bson.ObjectID) (*domain.Order, error) {
	return nil, apperrors.NewNotFound("order")
}

func (f *fakeOrderRepo) Insert(_ context.Context, order *domain.Order) (*repository.InsertResult, error) {
	f.inserted = append(f.inserted, *order)
	return &repository.InsertResult{InsertedID: bson.NewObjectID().Hex()}, nil
}

func (f *fakeOrderRepo) SetDeliveryStatus(context.Context, bson.ObjectID, string) (*repository.UpdateResult, error) {
	return &repository.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeOrderRepo) RecordPayment(_ context.Context, _ bson.ObjectID, payment domain.PaymentRecord) (*repository.UpdateResult, error) {
	f.payments = append(f.payments, payment)
	return &repository.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeOrderRepo) Delete(context.Context, bson.ObjectID) (*repository.DeleteResult, error) {
	return &repository.DeleteResult{DeletedCount: 1}, nil
}

func TestListTranslatesKnownFilters(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewOrderService(repo, nil)

	_, err := svc.List(context.Background(), OrderFilter{Email: "buyer@x.com", DeliveryStatus: "shipped"})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"email": "buyer@x.com", "deliveryStatus": "shipped"}, repo.lastFilter)

	_, err = svc.List(context.Background(), OrderFilter{})
	require.NoError(t, err)
	assert.Equal(t, bson.M{}, repo.lastFilter)
}

func TestRecordPaymentPublishesOrderPaid(t *testing.T) {
	repo := &fakeOrderRepo{}
	dispatcher := events.NewInMemoryDispatcher()

	var received []events.Event
	dispatcher.Subscribe(events.EventOrderPaid, func(_ context.Context, e events.Event) error {
		received = append(received, e)
		return nil
	})

	svc := NewOrderService(repo, dispatcher)
	id := bson.NewObjectID().Hex()

	result, err := svc.RecordPayment(context.Background(), id, domain.PaymentRecord{TransactionID: "txn_123"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ModifiedCount)

	require.Len(t, repo.payments, 1)
	assert.False(t, repo.payments[0].CreatedAt.IsZero())

	require.Len(t, received, 1)
	assert.Equal(t, id, received[0].Subject)
}

func TestRecordPaymentRequiresTransactionID(t *testing.T) {
	svc := NewOrderService(&fakeOrderRepo{}, nil)

	_, err := svc.RecordPayment(context.Background(), bson.NewObjectID().Hex(), domain.PaymentRecord{})
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.ToDomainError(err).HTTPStatus)
}

func TestOrderMalformedIdentifier(t *testing.T) {
	svc := NewOrderService(&fakeOrderRepo{}, nil)

	for _, call := range []func() error{
		func() error { _, err := svc.Get(context.Background(), "not-hex"); return err },
		func() error { _, err := svc.SetDeliveryStatus(context.Background(), "short", "shipped"); return err },
		func() error { _, err := svc.Delete(context.Background(), "zz"); return err },
	} {
		err := call()
		require.Error(t, err)
		assert.Equal(t, 400, apperrors.ToDomainError(err).HTTPStatus)
	}
}

func TestPlaceRequiresEmail(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewOrderService(repo, nil)

	_, err := svc.Place(context.Background(), &domain.Order{})
	require.Error(t, err)
	assert.Empty(t, repo.inserted)

	_, err = svc.Place(context.Background(), &domain.Order{Email: "buyer@x.com"})
	require.NoError(t, err)
	assert.Len(t, repo.inserted, 1)
}
