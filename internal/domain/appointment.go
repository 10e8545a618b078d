package domain

import (
	"time"

	"github.com/Cameron8325/teahouse-booking/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending      AppointmentStatus = "pending"
	StatusConfirmed    AppointmentStatus = "confirmed"
	StatusDenied       AppointmentStatus = "denied"
	StatusFlagged      AppointmentStatus = "flagged"
	StatusToCompletion AppointmentStatus = "to_completion"
)

// Appointment represents a booking of one user on one available day
type Appointment struct {
	ID     int64
	UserID int64
	Date   types.DateString
	Status AppointmentStatus

	// FlagReason is set only while the appointment is flagged
	FlagReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// statusTransitions legal transitions of the appointment status machine
// Approve and deny stay available while flagged so an admin can resolve a flag
var statusTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:      {StatusConfirmed, StatusDenied, StatusFlagged},
	StatusConfirmed:    {StatusFlagged, StatusToCompletion},
	StatusFlagged:      {StatusConfirmed, StatusDenied},
	StatusToCompletion: {StatusFlagged},
	StatusDenied:       {},
}

// IsValid returns true if the status belongs to the known set
func (s AppointmentStatus) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransitionTo reports whether the status machine allows moving to target.
// A repeated transition to the current status is allowed and treated as a no-op
func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	if s == target {
		return true
	}
	for _, allowed := range statusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsFlagged returns true if the appointment is currently flagged
func (a *Appointment) IsFlagged() bool {
	return a.Status == StatusFlagged
}
