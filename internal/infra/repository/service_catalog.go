package repository

import (
	"context"
	"time"

	"booking-core/internal/domain/pricing"
	"booking-core/internal/infra"
	"booking-core/internal/infra/db"
	"booking-core/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	serviceColumns = `id, provider_id, name, unit_price_cents, billing_unit, duration_minutes, capacity, requires_staffing`

	selectServiceSQL           = `SELECT ` + serviceColumns + ` FROM service_definitions WHERE id = $1`
	listServicesByProviderSQL  = `SELECT ` + serviceColumns + ` FROM service_definitions WHERE provider_id = $1 ORDER BY name, id`
	upsertServiceDefinitionSQL = `INSERT INTO service_definitions (` + serviceColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name,
		unit_price_cents = EXCLUDED.unit_price_cents,
		billing_unit = EXCLUDED.billing_unit,
		duration_minutes = EXCLUDED.duration_minutes,
		capacity = EXCLUDED.capacity,
		requires_staffing = EXCLUDED.requires_staffing,
		updated_at = now()`
)

// ServiceCatalog reads service definitions straight from the pool; lookups
// never need to join a booking transaction.
type ServiceCatalog struct {
	db db.DBTX
}

func NewServiceCatalog(dbtx db.DBTX) *ServiceCatalog {
	return &ServiceCatalog{db: dbtx}
}

func (r *ServiceCatalog) FindByID(ctx context.Context, id uuid.UUID) (*pricing.ServiceDefinition, error) {
	svc, err := scanService(r.db.QueryRow(ctx, selectServiceSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, pricing.ErrServiceNotFound
		}
		return nil, infra.WrapRepoErr("failed to find service definition", err)
	}
	return svc, nil
}

func (r *ServiceCatalog) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*pricing.ServiceDefinition, error) {
	rows, err := r.db.Query(ctx, listServicesByProviderSQL, providerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list service definitions", err)
	}
	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*pricing.ServiceDefinition, error) {
		return scanService(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan service definitions", err)
	}
	return result, nil
}

func (r *ServiceCatalog) Save(ctx context.Context, svc *pricing.ServiceDefinition) error {
	_, err := r.db.Exec(ctx, upsertServiceDefinitionSQL,
		svc.ID(),
		svc.ProviderID(),
		svc.Name(),
		svc.UnitPrice().Cents(),
		svc.BillingUnit().String(),
		int32(svc.Duration()/time.Minute),
		int32(svc.Capacity()),
		svc.RequiresStaffing(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save service definition", err)
	}
	return nil
}

func scanService(row pgx.Row) (*pricing.ServiceDefinition, error) {
	var (
		p        pricing.ServiceDefinitionParams
		unit     string
		minutes  int32
		capacity int32
	)
	if err := row.Scan(&p.ID, &p.ProviderID, &p.Name, &p.UnitPriceCents, &unit, &minutes, &capacity, &p.RequiresStaffing); err != nil {
		return nil, err
	}
	p.BillingUnit = pricing.BillingUnit(unit)
	p.Duration = time.Duration(minutes) * time.Minute
	p.Capacity = int(capacity)
	return pricing.NewServiceDefinition(p)
}
