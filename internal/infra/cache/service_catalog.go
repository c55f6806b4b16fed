package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"booking-core/internal/domain/pricing"
	"booking-core/internal/pkg/config"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// serviceEntry is the cached form of a service definition.
type serviceEntry struct {
	ID               uuid.UUID           `json:"id"`
	ProviderID       uuid.UUID           `json:"provider_id"`
	Name             string              `json:"name"`
	UnitPriceCents   int64               `json:"unit_price_cents"`
	BillingUnit      pricing.BillingUnit `json:"billing_unit"`
	DurationMinutes  int64               `json:"duration_minutes"`
	Capacity         int                 `json:"capacity"`
	RequiresStaffing bool                `json:"requires_staffing"`
}

// ServiceCatalog is a read-through cache in front of another catalog.
// Redis failures are logged and the request falls through to the origin.
type ServiceCatalog struct {
	origin shared.ServiceCatalog
	client redis.UniversalClient
	ttl    time.Duration
}

func NewServiceCatalog(origin shared.ServiceCatalog, client redis.UniversalClient, ttl time.Duration) *ServiceCatalog {
	return &ServiceCatalog{origin: origin, client: client, ttl: ttl}
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
}

func (c *ServiceCatalog) FindByID(ctx context.Context, id uuid.UUID) (*pricing.ServiceDefinition, error) {
	data, err := c.client.Get(ctx, serviceKey(id)).Bytes()
	switch {
	case err == nil:
		var entry serviceEntry
		if err := json.Unmarshal(data, &entry); err == nil {
			return entry.toDomain()
		}
		slog.WarnContext(ctx, "discarding undecodable service cache entry", "service_id", id)
	case !errs.Is(err, redis.Nil):
		slog.WarnContext(ctx, "service cache read failed", "service_id", id, "error", err)
	}

	svc, err := c.origin.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, svc)
	return svc, nil
}

func (c *ServiceCatalog) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*pricing.ServiceDefinition, error) {
	return c.origin.ListByProvider(ctx, providerID)
}

func (c *ServiceCatalog) Save(ctx context.Context, svc *pricing.ServiceDefinition) error {
	if err := c.origin.Save(ctx, svc); err != nil {
		return err
	}
	if err := c.client.Del(ctx, serviceKey(svc.ID())).Err(); err != nil {
		slog.WarnContext(ctx, "service cache invalidation failed", "service_id", svc.ID(), "error", err)
	}
	return nil
}

func (c *ServiceCatalog) store(ctx context.Context, svc *pricing.ServiceDefinition) {
	payload, err := json.Marshal(newServiceEntry(svc))
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, serviceKey(svc.ID()), payload, c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "service cache write failed", "service_id", svc.ID(), "error", err)
	}
}

func newServiceEntry(svc *pricing.ServiceDefinition) serviceEntry {
	return serviceEntry{
		ID:               svc.ID(),
		ProviderID:       svc.ProviderID(),
		Name:             svc.Name(),
		UnitPriceCents:   svc.UnitPrice().Cents(),
		BillingUnit:      svc.BillingUnit(),
		DurationMinutes:  int64(svc.Duration() / time.Minute),
		Capacity:         svc.Capacity(),
		RequiresStaffing: svc.RequiresStaffing(),
	}
}

func (e serviceEntry) toDomain() (*pricing.ServiceDefinition, error) {
	return pricing.NewServiceDefinition(pricing.ServiceDefinitionParams{
		ID:               e.ID,
		ProviderID:       e.ProviderID,
		Name:             e.Name,
		UnitPriceCents:   e.UnitPriceCents,
		BillingUnit:      e.BillingUnit,
		Duration:         time.Duration(e.DurationMinutes) * time.Minute,
		Capacity:         e.Capacity,
		RequiresStaffing: e.RequiresStaffing,
	})
}

func serviceKey(id uuid.UUID) string {
	return fmt.Sprintf("cache:service:%s", id)
}
