package domain

import "time"

// Event is a single campus activity. Capacity is nil when attendance is
// unlimited; otherwise it bounds the number of accepted registrations.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Venue       string    `json:"venue"`
	EventDate   time.Time `json:"event_date"`
	Capacity    *int      `json:"capacity"`
	CreatedAt   time.Time `json:"created_at"`
}

type EventDetails struct {
	Event          Event         `json:"event"`
	AcceptedCount  int           `json:"accepted_count"`
	MyRegistration *Registration `json:"my_registration"`
}

type CreateEventInput struct {
	Title       string
	Description string
	Venue       string
	EventDate   time.Time
	Capacity    *int
}
