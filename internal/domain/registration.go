package domain

import "time"

type RegistrationStatus string

const (
	RegistrationStatusPending   RegistrationStatus = "pending"
	RegistrationStatusAccepted  RegistrationStatus = "accepted"
	RegistrationStatusRejected  RegistrationStatus = "rejected"
	RegistrationStatusCancelled RegistrationStatus = "cancelled"
)

// Registration records one user's intent to attend one event. It starts
// pending and is moved between statuses only by an admin decision (or by the
// scheduler once the event date has passed).
type Registration struct {
	ID        string             `json:"id"`
	EventID   string             `json:"event_id"`
	UserID    string             `json:"user_id"`
	Status    RegistrationStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// ActionStatus maps an admin form action to the resulting status. Unknown
// actions are rejected rather than silently ignored.
func ActionStatus(action string) (RegistrationStatus, error) {
	switch action {
	case "accept":
		return RegistrationStatusAccepted, nil
	case "reject":
		return RegistrationStatusRejected, nil
	case "cancel":
		return RegistrationStatusCancelled, nil
	default:
		return "", ErrInvalidAction
	}
}
