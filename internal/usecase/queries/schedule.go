package queries

//go:generate mockgen -source=schedule.go -destination=../../../tests/mock/queries/schedule.go -package=queriesmock

import (
	"context"

	"booking-core/internal/domain/schedule"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type ScheduleQueries interface {
	ListAssignments(ctx context.Context, providerID, serviceID uuid.UUID) ([]*AssignmentView, error)
}

type scheduleQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewScheduleQueries(uow shared.UnitOfWork) ScheduleQueries {
	return &scheduleQueriesImpl{uow: uow}
}

func (q *scheduleQueriesImpl) ListAssignments(ctx context.Context, providerID, serviceID uuid.UUID) ([]*AssignmentView, error) {
	var rows []*schedule.Assignment
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		rows, err = tx.Schedules().ListAssignments(ctx, providerID, serviceID)
		return err
	})
	if err != nil {
		return nil, err
	}

	result := make([]*AssignmentView, len(rows))
	for i, a := range rows {
		result[i] = NewAssignmentView(a)
	}
	return result, nil
}
