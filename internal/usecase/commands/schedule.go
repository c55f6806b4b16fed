package commands

//go:generate mockgen -source=schedule.go -destination=../../../tests/mock/commands/schedule.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"booking-core/internal/domain/schedule"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/usecase/queries"
	"booking-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type AssignStaffRequest struct {
	StaffID   uuid.UUID
	ServiceID uuid.UUID
}

type SetWindowRequest struct {
	DayOfWeek   int
	Start       string
	End         string
	IsAvailable bool
}

type ScheduleCommands interface {
	Assign(ctx context.Context, req AssignStaffRequest, providerID uuid.UUID) (*queries.AssignmentView, error)
	Unassign(ctx context.Context, assignmentID, providerID uuid.UUID) error
	SetWindow(ctx context.Context, assignmentID uuid.UUID, req SetWindowRequest, providerID uuid.UUID) (*queries.WindowView, error)
	RemoveWindow(ctx context.Context, windowID, providerID uuid.UUID) error
	CheckStaffable(ctx context.Context, providerID, serviceID uuid.UUID, at time.Time) (bool, error)
}

type scheduleCommandsImpl struct {
	uow      shared.UnitOfWork
	catalog  shared.ServiceCatalog
	clock    clock.Clock
	location *time.Location
}

func NewScheduleCommands(uow shared.UnitOfWork, catalog shared.ServiceCatalog, clk clock.Clock, location *time.Location) ScheduleCommands {
	return &scheduleCommandsImpl{
		uow:      uow,
		catalog:  catalog,
		clock:    clk,
		location: location,
	}
}

func (uc *scheduleCommandsImpl) Assign(ctx context.Context, req AssignStaffRequest, providerID uuid.UUID) (*queries.AssignmentView, error) {
	if req.ServiceID == uuid.Nil {
		return nil, schedule.ErrServiceRequired
	}
	svc, err := uc.catalog.FindByID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc.ProviderID() != providerID {
		return nil, shared.ErrNotOwner
	}

	var created *schedule.Assignment
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, derr := schedule.NewAssignment(providerID, req.StaffID, req.ServiceID, uc.clock.Now())
		if derr != nil {
			return derr
		}

		existing, derr := tx.Schedules().ListAssignments(ctx, providerID, req.ServiceID)
		if derr != nil {
			return derr
		}
		for _, e := range existing {
			if e.StaffID() == req.StaffID {
				return schedule.ErrAlreadyAssigned
			}
		}

		if derr = tx.Schedules().CreateAssignment(ctx, a); derr != nil {
			return derr
		}
		created = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "staff assigned", "assignment_id", created.ID(), "staff_id", req.StaffID, "service_id", req.ServiceID)
	return queries.NewAssignmentView(created), nil
}

func (uc *scheduleCommandsImpl) Unassign(ctx context.Context, assignmentID, providerID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := tx.Schedules().FindAssignmentForUpdate(ctx, assignmentID)
		if err != nil {
			return err
		}
		if a.ProviderID() != providerID {
			return shared.ErrNotOwner
		}
		return tx.Schedules().DeleteAssignment(ctx, assignmentID)
	})
}

// SetWindow locks the assignment so two concurrent writers cannot both pass
// the overlap check.
func (uc *scheduleCommandsImpl) SetWindow(ctx context.Context, assignmentID uuid.UUID, req SetWindowRequest, providerID uuid.UUID) (*queries.WindowView, error) {
	start, err := schedule.ParseTimeOfDay(req.Start)
	if err != nil {
		return nil, err
	}
	end, err := schedule.ParseTimeOfDay(req.End)
	if err != nil {
		return nil, err
	}

	var added schedule.Window
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, derr := tx.Schedules().FindAssignmentForUpdate(ctx, assignmentID)
		if derr != nil {
			return derr
		}
		if a.ProviderID() != providerID {
			return shared.ErrNotOwner
		}

		added, derr = a.AddWindow(req.DayOfWeek, start, end, req.IsAvailable)
		if derr != nil {
			return derr
		}
		return tx.Schedules().AddWindow(ctx, added)
	})
	if err != nil {
		return nil, err
	}
	return queries.NewWindowView(added), nil
}

func (uc *scheduleCommandsImpl) RemoveWindow(ctx context.Context, windowID, providerID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, err := tx.Schedules().FindAssignmentByWindow(ctx, windowID)
		if err != nil {
			return err
		}
		if a.ProviderID() != providerID {
			return shared.ErrNotOwner
		}
		if err = a.RemoveWindow(windowID); err != nil {
			return err
		}
		return tx.Schedules().DeleteWindow(ctx, windowID)
	})
}

func (uc *scheduleCommandsImpl) CheckStaffable(ctx context.Context, providerID, serviceID uuid.UUID, at time.Time) (bool, error) {
	svc, err := uc.catalog.FindByID(ctx, serviceID)
	if err != nil {
		return false, err
	}
	if svc.ProviderID() != providerID {
		return false, nil
	}

	var assignments []*schedule.Assignment
	err = uc.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		assignments, err = tx.Schedules().ListAssignments(ctx, providerID, serviceID)
		return err
	})
	if err != nil {
		return false, err
	}
	return schedule.Staffable(assignments, at, uc.location, staffedDuration(svc)), nil
}
