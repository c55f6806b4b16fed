package schedule

import (
	"time"

	"github.com/google/uuid"
)

// Window is a weekly recurring slot during which the assigned staff member can
// deliver the service. Intervals are half-open: [Start, End).
type Window struct {
	ID           uuid.UUID
	AssignmentID uuid.UUID
	DayOfWeek    time.Weekday
	Start        TimeOfDay
	End          TimeOfDay
	IsAvailable  bool
}

func (w Window) overlaps(day time.Weekday, start, end TimeOfDay) bool {
	return w.DayOfWeek == day && start < w.End && w.Start < end
}

// covers reports whether [tod, tod+d) fits inside the window. A zero duration
// only requires tod to fall inside it.
func (w Window) covers(day time.Weekday, tod TimeOfDay, d time.Duration) bool {
	if !w.IsAvailable || w.DayOfWeek != day {
		return false
	}
	if tod < w.Start || tod >= w.End {
		return false
	}
	return tod+TimeOfDay(d/time.Minute) <= w.End
}

type Assignment struct {
	id         uuid.UUID
	providerID uuid.UUID
	staffID    uuid.UUID
	serviceID  uuid.UUID
	windows    []Window
	createdAt  time.Time
}

func NewAssignment(providerID, staffID, serviceID uuid.UUID, now time.Time) (*Assignment, error) {
	if providerID == uuid.Nil {
		return nil, ErrProviderRequired
	}
	if staffID == uuid.Nil {
		return nil, ErrStaffRequired
	}
	if serviceID == uuid.Nil {
		return nil, ErrServiceRequired
	}
	return &Assignment{
		id:         uuid.New(),
		providerID: providerID,
		staffID:    staffID,
		serviceID:  serviceID,
		createdAt:  now,
	}, nil
}

func ReconstructAssignment(id, providerID, staffID, serviceID uuid.UUID, createdAt time.Time, windows []Window) *Assignment {
	return &Assignment{
		id:         id,
		providerID: providerID,
		staffID:    staffID,
		serviceID:  serviceID,
		windows:    append([]Window(nil), windows...),
		createdAt:  createdAt,
	}
}

// AddWindow appends a weekly window. Any intersection with another window on
// the same day is rejected, available or not.
func (a *Assignment) AddWindow(day int, start, end TimeOfDay, available bool) (Window, error) {
	if day < 0 || day > 6 {
		return Window{}, ErrInvalidDay
	}
	if start < 0 || end > EndOfDay || start >= end {
		return Window{}, ErrInvalidWindow
	}
	weekday := time.Weekday(day)
	for _, w := range a.windows {
		if w.overlaps(weekday, start, end) {
			return Window{}, ErrWindowOverlap
		}
	}

	w := Window{
		ID:           uuid.New(),
		AssignmentID: a.id,
		DayOfWeek:    weekday,
		Start:        start,
		End:          end,
		IsAvailable:  available,
	}
	a.windows = append(a.windows, w)
	return w, nil
}

func (a *Assignment) RemoveWindow(id uuid.UUID) error {
	for i, w := range a.windows {
		if w.ID == id {
			a.windows = append(a.windows[:i], a.windows[i+1:]...)
			return nil
		}
	}
	return ErrWindowNotFound
}

func (a *Assignment) HasWindow(id uuid.UUID) bool {
	for _, w := range a.windows {
		if w.ID == id {
			return true
		}
	}
	return false
}

// Covers evaluates at in loc, the time zone the windows are written in.
func (a *Assignment) Covers(at time.Time, loc *time.Location, d time.Duration) bool {
	local := at.In(loc)
	day, tod := local.Weekday(), TimeOfDayOf(local)
	for _, w := range a.windows {
		if w.covers(day, tod, d) {
			return true
		}
	}
	return false
}

func (a *Assignment) ID() uuid.UUID         { return a.id }
func (a *Assignment) ProviderID() uuid.UUID { return a.providerID }
func (a *Assignment) StaffID() uuid.UUID    { return a.staffID }
func (a *Assignment) ServiceID() uuid.UUID  { return a.serviceID }
func (a *Assignment) CreatedAt() time.Time  { return a.createdAt }
func (a *Assignment) Windows() []Window     { return append([]Window(nil), a.windows...) }

// Staffable reports whether any of the assignments can cover the appointment.
func Staffable(assignments []*Assignment, at time.Time, loc *time.Location, d time.Duration) bool {
	for _, a := range assignments {
		if a.Covers(at, loc, d) {
			return true
		}
	}
	return false
}
