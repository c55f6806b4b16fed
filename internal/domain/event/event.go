package event

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	BookingCreated   Type = "BookingCreated"
	BookingAccepted  Type = "BookingAccepted"
	BookingDeclined  Type = "BookingDeclined"
	BookingCancelled Type = "BookingCancelled"
	BookingCompleted Type = "BookingCompleted"
	BookingRepriced  Type = "BookingRepriced"
	CodeIssued       Type = "CodeIssued"
	CodeVerified     Type = "CodeVerified"
)

func (t Type) String() string {
	return string(t)
}

// Event is a domain fact recorded by an aggregate and delivered to the
// notification collaborator through the outbox. Payload must be JSON-encodable.
type Event struct {
	ID         uuid.UUID
	Type       Type
	BookingID  uuid.UUID
	OccurredAt time.Time
	Payload    map[string]any
}

func New(t Type, bookingID uuid.UUID, at time.Time, payload map[string]any) Event {
	if payload == nil {
		payload = map[string]any{}
	}
	return Event{
		ID:         uuid.New(),
		Type:       t,
		BookingID:  bookingID,
		OccurredAt: at,
		Payload:    payload,
	}
}

// Recorder collects events until the owning use case drains them.
type Recorder struct {
	pending []Event
}

func (r *Recorder) Record(e Event) {
	r.pending = append(r.pending, e)
}

func (r *Recorder) PullEvents() []Event {
	out := r.pending
	r.pending = nil
	return out
}
