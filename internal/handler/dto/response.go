package dto

import (
	"time"

	"github.com/Cod-Harsh/college-events/internal/domain"
)

type EventResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Venue       string `json:"venue,omitempty"`
	EventDate   string `json:"event_date"`
	Capacity    *int   `json:"capacity"`
	CreatedAt   string `json:"created_at"`
}

type EventDetailsResponse struct {
	Event          EventResponse         `json:"event"`
	AcceptedCount  int                   `json:"accepted_count"`
	MyRegistration *RegistrationResponse `json:"my_registration,omitempty"`
}

type RegistrationResponse struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	UserID    string `json:"user_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type DashboardResponse struct {
	Events               []EventResponse        `json:"events"`
	PendingRegistrations []RegistrationResponse `json:"pending_registrations"`
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Venue:       e.Venue,
		EventDate:   e.EventDate.Format(time.RFC3339),
		Capacity:    e.Capacity,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventListResponse(events []*domain.Event) []EventResponse {
	resp := make([]EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, ToEventResponse(e))
	}
	return resp
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	resp := EventDetailsResponse{
		Event:         ToEventResponse(&d.Event),
		AcceptedCount: d.AcceptedCount,
	}
	if d.MyRegistration != nil {
		reg := ToRegistrationResponse(d.MyRegistration)
		resp.MyRegistration = &reg
	}
	return resp
}

func ToRegistrationResponse(r *domain.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:        r.ID,
		EventID:   r.EventID,
		UserID:    r.UserID,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

func ToRegistrationListResponse(regs []*domain.Registration) []RegistrationResponse {
	resp := make([]RegistrationResponse, 0, len(regs))
	for _, r := range regs {
		resp = append(resp, ToRegistrationResponse(r))
	}
	return resp
}
