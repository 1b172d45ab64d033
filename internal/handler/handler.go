package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/Cod-Harsh/college-events/internal/domain"
	"github.com/Cod-Harsh/college-events/internal/handler/dto"
	"github.com/Cod-Harsh/college-events/internal/middleware"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

// eventDateLayout is the fixed textual format of the event form's date field.
const eventDateLayout = "2006-01-02 15:04"

type EventSvc interface {
	Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Event, error)
	ListPast(ctx context.Context) ([]*domain.Event, error)
	ListUpcoming(ctx context.Context) ([]*domain.Event, error)
	GetDetails(ctx context.Context, id, viewerID string) (*domain.EventDetails, error)
}

type RegistrationSvc interface {
	Register(ctx context.Context, eventID, userID string) (*domain.Registration, error)
	Decide(ctx context.Context, regID, action string) (*domain.Registration, error)
	ListPending(ctx context.Context) ([]*domain.Registration, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Registration, error)
}

type UserSvc interface {
	Register(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

type Handler struct {
	eventService        EventSvc
	registrationService RegistrationSvc
	userService         UserSvc
	sessions            *middleware.SessionManager
}

func NewHandler(
	eventService EventSvc,
	registrationService RegistrationSvc,
	userService UserSvc,
	sessions *middleware.SessionManager,
) *Handler {
	return &Handler{
		eventService:        eventService,
		registrationService: registrationService,
		userService:         userService,
		sessions:            sessions,
	}
}

// Listings

func (h *Handler) Index(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventListResponse(events))
}

func (h *Handler) PastEvents(c *ginext.Context) {
	events, err := h.eventService.ListPast(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventListResponse(events))
}

func (h *Handler) UpcomingEvents(c *ginext.Context) {
	events, err := h.eventService.ListUpcoming(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventListResponse(events))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	viewerID := ""
	if user := middleware.CurrentUser(c); user != nil {
		viewerID = user.ID
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id, viewerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) Contacts(c *ginext.Context) {
	c.JSON(http.StatusOK, ginext.H{
		"email": "events@college.edu",
		"phone": "+1 555 0100",
		"office": "Student Affairs, Main Building, Room 14",
	})
}

// Accounts & sessions

func (h *Handler) ShowSignup(c *ginext.Context) {
	if middleware.CurrentUser(c) != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	c.JSON(http.StatusOK, ginext.H{
		"fields": []string{"name", "email", "password", "password_confirm"},
	})
}

func (h *Handler) Signup(c *ginext.Context) {
	if middleware.CurrentUser(c) != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	var req dto.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:  domain.ErrValidation.Error(),
			Fields: fieldErrors(err),
		})
		return
	}

	input := domain.CreateUserInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	}

	if _, err := h.userService.Register(c.Request.Context(), input); err != nil {
		// A taken email is not a validation failure: the account exists, so
		// the caller is sent to the login form instead.
		if errors.Is(err, domain.ErrEmailTaken) {
			c.Redirect(http.StatusSeeOther, "/login?notice="+url.QueryEscape("email already registered, please log in"))
			return
		}
		h.handleError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *Handler) ShowLogin(c *ginext.Context) {
	if middleware.CurrentUser(c) != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	c.JSON(http.StatusOK, ginext.H{
		"fields": []string{"email", "password"},
	})
}

func (h *Handler) Login(c *ginext.Context) {
	if middleware.CurrentUser(c) != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:  domain.ErrValidation.Error(),
			Fields: fieldErrors(err),
		})
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if err := h.sessions.Login(c, user.ID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, h.safeNext(c))
}

func (h *Handler) Logout(c *ginext.Context) {
	if err := h.sessions.Logout(c); err != nil {
		h.handleError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// safeNext returns the post-login redirect target. Only local paths are
// honored so the login form cannot be used as an open redirect.
func (h *Handler) safeNext(c *ginext.Context) string {
	next := c.Query("next")
	if next == "" {
		next = c.PostForm("next")
	}
	if next == "" || next[0] != '/' || (len(next) > 1 && next[1] == '/') {
		return "/"
	}
	return next
}

// Registrations

func (h *Handler) RegisterForEvent(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	user := middleware.CurrentUser(c)

	_, err := h.registrationService.Register(c.Request.Context(), eventID, user.ID)
	if err != nil {
		// Full or duplicate are user-level notices on the event page, not
		// API failures; everything else goes through the error mapping.
		if errors.Is(err, domain.ErrEventFull) || errors.Is(err, domain.ErrAlreadyRegistered) {
			c.Redirect(http.StatusSeeOther, "/event/"+eventID+"?notice="+url.QueryEscape(noticeFor(err)))
			return
		}
		h.handleError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/my-registrations")
}

func (h *Handler) MyRegistrations(c *ginext.Context) {
	user := middleware.CurrentUser(c)

	regs, err := h.registrationService.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistrationListResponse(regs))
}

// Admin

func (h *Handler) AdminDashboard(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	pending, err := h.registrationService.ListPending(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DashboardResponse{
		Events:               dto.ToEventListResponse(events),
		PendingRegistrations: dto.ToRegistrationListResponse(pending),
	})
}

func (h *Handler) ShowCreateEvent(c *ginext.Context) {
	c.JSON(http.StatusOK, ginext.H{
		"fields":      []string{"title", "description", "venue", "date", "capacity"},
		"date_format": eventDateLayout,
	})
}

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:  domain.ErrValidation.Error(),
			Fields: fieldErrors(err),
		})
		return
	}

	eventDate, err := time.Parse(eventDateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:  domain.ErrValidation.Error(),
			Fields: map[string]string{"date": "must match format " + eventDateLayout},
		})
		return
	}

	input := domain.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Venue:       req.Venue,
		EventDate:   eventDate,
		Capacity:    req.Capacity,
	}

	if _, err := h.eventService.Create(c.Request.Context(), input); err != nil {
		h.handleError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin")
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin")
}

func (h *Handler) RegistrationAction(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	var req dto.RegistrationActionRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:  domain.ErrValidation.Error(),
			Fields: fieldErrors(err),
		})
		return
	}

	if _, err := h.registrationService.Decide(c.Request.Context(), id, req.Action); err != nil {
		h.handleError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin")
}

func noticeFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrEventFull):
		return "this event is full"
	case errors.Is(err, domain.ErrAlreadyRegistered):
		return "you already registered for this event"
	default:
		return err.Error()
	}
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRegistrationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEventFull),
		errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrInvalidAction),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrInvalidCredentials.Error()})

	case errors.Is(err, domain.ErrValidation):
		resp := dto.ErrorResponse{Error: domain.ErrValidation.Error()}
		var fe domain.FieldErrors
		if errors.As(err, &fe) {
			resp.Fields = fe
		}
		c.JSON(http.StatusBadRequest, resp)

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
