package repository

import (
	"context"
	"time"

	"booking-core/internal/domain/schedule"
	"booking-core/internal/infra"
	"booking-core/internal/infra/db"
	"booking-core/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	assignmentColumns = `id, provider_id, staff_id, service_id, created_at`
	windowColumns     = `id, assignment_id, day_of_week, start_minute, end_minute, is_available`

	insertAssignmentSQL = `INSERT INTO schedule_assignments (` + assignmentColumns + `) VALUES ($1, $2, $3, $4, $5)`
	deleteAssignmentSQL = `DELETE FROM schedule_assignments WHERE id = $1`

	selectAssignmentSQL          = `SELECT ` + assignmentColumns + ` FROM schedule_assignments WHERE id = $1`
	selectAssignmentForUpdateSQL = selectAssignmentSQL + ` FOR UPDATE`
	selectAssignmentByWindowSQL  = `SELECT a.id, a.provider_id, a.staff_id, a.service_id, a.created_at
	FROM schedule_assignments a
	JOIN availability_windows w ON w.assignment_id = a.id
	WHERE w.id = $1
	FOR UPDATE OF a`

	listAssignmentsSQL = `SELECT ` + assignmentColumns + ` FROM schedule_assignments
	WHERE provider_id = $1 AND ($2::uuid IS NULL OR service_id = $2)
	ORDER BY created_at, id`

	listWindowsSQL = `SELECT ` + windowColumns + ` FROM availability_windows
	WHERE assignment_id = ANY($1)
	ORDER BY day_of_week, start_minute`

	insertWindowSQL = `INSERT INTO availability_windows (` + windowColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	deleteWindowSQL = `DELETE FROM availability_windows WHERE id = $1`
)

type ScheduleRepository struct {
	db db.DBTX
}

func NewScheduleRepository(dbtx db.DBTX) *ScheduleRepository {
	return &ScheduleRepository{db: dbtx}
}

func (r *ScheduleRepository) CreateAssignment(ctx context.Context, a *schedule.Assignment) error {
	_, err := r.db.Exec(ctx, insertAssignmentSQL, a.ID(), a.ProviderID(), a.StaffID(), a.ServiceID(), a.CreatedAt())
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return schedule.ErrAlreadyAssigned
		}
		return infra.WrapRepoErr("failed to create schedule assignment", err)
	}
	return nil
}

func (r *ScheduleRepository) DeleteAssignment(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteAssignmentSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete schedule assignment", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrAssignmentNotFound
	}
	return nil
}

func (r *ScheduleRepository) FindAssignment(ctx context.Context, id uuid.UUID) (*schedule.Assignment, error) {
	return r.findOne(ctx, selectAssignmentSQL, id, schedule.ErrAssignmentNotFound)
}

func (r *ScheduleRepository) FindAssignmentForUpdate(ctx context.Context, id uuid.UUID) (*schedule.Assignment, error) {
	return r.findOne(ctx, selectAssignmentForUpdateSQL, id, schedule.ErrAssignmentNotFound)
}

func (r *ScheduleRepository) FindAssignmentByWindow(ctx context.Context, windowID uuid.UUID) (*schedule.Assignment, error) {
	return r.findOne(ctx, selectAssignmentByWindowSQL, windowID, schedule.ErrWindowNotFound)
}

func (r *ScheduleRepository) ListAssignments(ctx context.Context, providerID, serviceID uuid.UUID) ([]*schedule.Assignment, error) {
	service := pgconv.UUIDPtrToPgtype(nil)
	if serviceID != uuid.Nil {
		service = pgconv.UUIDToPgtype(serviceID)
	}

	rows, err := r.db.Query(ctx, listAssignmentsSQL, providerID, service)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list schedule assignments", err)
	}
	heads, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (assignmentHead, error) {
		return scanAssignmentHead(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan schedule assignments", err)
	}
	return r.attachWindows(ctx, heads)
}

func (r *ScheduleRepository) AddWindow(ctx context.Context, w schedule.Window) error {
	_, err := r.db.Exec(ctx, insertWindowSQL,
		w.ID, w.AssignmentID, int16(w.DayOfWeek), int32(w.Start.Minutes()), int32(w.End.Minutes()), w.IsAvailable)
	if err != nil {
		if pgconv.IsExclusionViolation(err) {
			return schedule.ErrWindowOverlap
		}
		return infra.WrapRepoErr("failed to add availability window", err)
	}
	return nil
}

func (r *ScheduleRepository) DeleteWindow(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteWindowSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete availability window", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrWindowNotFound
	}
	return nil
}

func (r *ScheduleRepository) findOne(ctx context.Context, query string, id uuid.UUID, notFound error) (*schedule.Assignment, error) {
	head, err := scanAssignmentHead(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, notFound
		}
		return nil, infra.WrapRepoErr("failed to find schedule assignment", err)
	}
	list, err := r.attachWindows(ctx, []assignmentHead{head})
	if err != nil {
		return nil, err
	}
	return list[0], nil
}

type assignmentHead struct {
	id, providerID, staffID, serviceID uuid.UUID
	createdAt                          time.Time
}

func scanAssignmentHead(row pgx.Row) (assignmentHead, error) {
	var h assignmentHead
	err := row.Scan(&h.id, &h.providerID, &h.staffID, &h.serviceID, &h.createdAt)
	return h, err
}

func (r *ScheduleRepository) attachWindows(ctx context.Context, heads []assignmentHead) ([]*schedule.Assignment, error) {
	if len(heads) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, len(heads))
	for i, h := range heads {
		ids[i] = h.id
	}

	rows, err := r.db.Query(ctx, listWindowsSQL, pgconv.UUIDsToPgtype(ids))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list availability windows", err)
	}
	windows, err := pgx.CollectRows(rows, scanWindow)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan availability windows", err)
	}

	byAssignment := make(map[uuid.UUID][]schedule.Window, len(heads))
	for _, w := range windows {
		byAssignment[w.AssignmentID] = append(byAssignment[w.AssignmentID], w)
	}

	result := make([]*schedule.Assignment, len(heads))
	for i, h := range heads {
		result[i] = schedule.ReconstructAssignment(h.id, h.providerID, h.staffID, h.serviceID, h.createdAt, byAssignment[h.id])
	}
	return result, nil
}

func scanWindow(row pgx.CollectableRow) (schedule.Window, error) {
	var (
		w          schedule.Window
		day        int16
		start, end int32
	)
	if err := row.Scan(&w.ID, &w.AssignmentID, &day, &start, &end, &w.IsAvailable); err != nil {
		return schedule.Window{}, err
	}
	w.DayOfWeek = time.Weekday(day)
	w.Start = schedule.TimeOfDay(start)
	w.End = schedule.TimeOfDay(end)
	return w, nil
}
