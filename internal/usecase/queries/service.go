package queries

//go:generate mockgen -source=service.go -destination=../../../tests/mock/queries/service.go -package=queriesmock

import (
	"context"

	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type ServiceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*ServiceView, error)
}

type serviceQueriesImpl struct {
	catalog shared.ServiceCatalog
}

func NewServiceQueries(catalog shared.ServiceCatalog) ServiceQueries {
	return &serviceQueriesImpl{catalog: catalog}
}

func (q *serviceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	svc, err := q.catalog.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewServiceView(svc), nil
}

func (q *serviceQueriesImpl) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*ServiceView, error) {
	rows, err := q.catalog.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}
	result := make([]*ServiceView, len(rows))
	for i, svc := range rows {
		result[i] = NewServiceView(svc)
	}
	return result, nil
}
