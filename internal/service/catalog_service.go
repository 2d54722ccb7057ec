package service

import (
	"context"
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"github.com/jontropati/storefront/internal/domain"
	"github.com/jontropati/storefront/internal/events"
	"github.com/jontropati/storefront/internal/persistence"
	"github.com/jontropati/storefront/internal/repository"
	apperrors "github.com/jontropati/storefront/pkg/util"
)

const productCacheKey = "cache:products"

// CatalogService coordinates product reads and writes. The public
// product listing is served through a Redis read-through cache that
// every mutation invalidates.
type CatalogService struct {
	products   repository.ProductRepository
	cache      *persistence.Redis
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cacheTTL   time.Duration
}

// NewCatalogService builds the service.
func NewCatalogService(products repository.ProductRepository, cache *persistence.Redis, dispatcher events.Dispatcher, logger *zap.Logger, cacheTTL time.Duration) *CatalogService {
	return &CatalogService{
		products:   products,
		cache:      cache,
		dispatcher: dispatcher,
		logger:     logger,
		cacheTTL:   cacheTTL,
	}
}

// List returns all products, preferring the cache.
func (s *CatalogService) List(ctx context.Context) ([]domain.Product, error) {
	if cached, ok := s.cachedList(ctx); ok {
		return cached, nil
	}

	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	s.storeList(ctx, products)
	return products, nil
}

// Get fetches one product by its hex identifier.
func (s *CatalogService) Get(ctx context.Context, idHex string) (*domain.Product, error) {
	id, err := parseObjectID(idHex, "product")
	if err != nil {
		return nil, err
	}
	return s.products.FindByID(ctx, id)
}

// Create inserts a product and invalidates the listing cache.
func (s *CatalogService) Create(ctx context.Context, product *domain.Product) (*repository.InsertResult, error) {
	if product.Name == "" {
		return nil, apperrors.NewValidationError("name is required", nil)
	}
	if product.Price <= 0 {
		return nil, apperrors.NewValidationError("price must be positive", nil)
	}

	result, err := s.products.Insert(ctx, product)
	if err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	s.publish(ctx, events.NewEvent(events.EventProductCreated, result.InsertedID, events.ProductCreatedPayload{
		ProductID: result.InsertedID,
		Name:      product.Name,
		Price:     product.Price,
	}))
	return result, nil
}

// SetQuantity updates a product's stock level.
func (s *CatalogService) SetQuantity(ctx context.Context, idHex string, quantity int64) (*repository.UpdateResult, error) {
	id, err := parseObjectID(idHex, "product")
	if err != nil {
		return nil, err
	}
	if quantity < 0 {
		return nil, apperrors.NewValidationError("quantity must not be negative", nil)
	}

	result, err := s.products.UpdateQuantity(ctx, id, quantity)
	if err != nil {
		return nil, err
	}
	s.invalidateList(ctx)
	return result, nil
}

// Delete removes a product.
func (s *CatalogService) Delete(ctx context.Context, idHex string) (*repository.DeleteResult, error) {
	id, err := parseObjectID(idHex, "product")
	if err != nil {
		return nil, err
	}

	result, err := s.products.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	s.publish(ctx, events.NewEvent(events.EventProductDeleted, idHex, events.ProductDeletedPayload{
		ProductID: idHex,
	}))
	return result, nil
}

func (s *CatalogService) cachedList(ctx context.Context) ([]domain.Product, bool) {
	if s.cache == nil || s.cache.Client == nil {
		return nil, false
	}
	raw, err := s.cache.Client.Get(ctx, productCacheKey).Result()
	if err != nil {
		return nil, false
	}
	var products []domain.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		return nil, false
	}
	return products, true
}

func (s *CatalogService) storeList(ctx context.Context, products []domain.Product) {
	if s.cache == nil || s.cache.Client == nil {
		return
	}
	raw, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := s.cache.Client.Set(ctx, productCacheKey, raw, s.cacheTTL).Err(); err != nil {
		s.logger.Debug("product cache write failed", zap.Error(err))
	}
}

func (s *CatalogService) invalidateList(ctx context.Context) {
	if s.cache == nil || s.cache.Client == nil {
		return
	}
	if err := s.cache.Client.Del(ctx, productCacheKey).Err(); err != nil {
		s.logger.Debug("product cache invalidation failed", zap.Error(err))
	}
}

func (s *CatalogService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}

// parseObjectID converts a 24-char hex path segment into a store
// identifier. Malformed identifiers are a client error, not a fault.
func parseObjectID(idHex, resource string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		return bson.ObjectID{}, apperrors.NewBadRequest("invalid " + resource + " id")
	}
	return id, nil
}
