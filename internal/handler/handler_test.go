package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Cod-Harsh/college-events/internal/domain"
	"github.com/Cod-Harsh/college-events/internal/handler"
	"github.com/Cod-Harsh/college-events/internal/handler/dto"
	"github.com/Cod-Harsh/college-events/internal/handler/mocks"
	"github.com/Cod-Harsh/college-events/internal/middleware"
	"github.com/Cod-Harsh/college-events/internal/router"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type testEnv struct {
	eventSvc *mocks.MockEventSvc
	regSvc   *mocks.MockRegistrationSvc
	userSvc  *mocks.MockUserSvc
	handler  *handler.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		eventSvc: mocks.NewMockEventSvc(t),
		regSvc:   mocks.NewMockRegistrationSvc(t),
		userSvc:  mocks.NewMockUserSvc(t),
	}
	sessions := middleware.NewSessionManager("test-secret", "ce_session", time.Hour)
	env.handler = handler.NewHandler(env.eventSvc, env.regSvc, env.userSvc, sessions)
	return env
}

// router serves requests as the given user; nil means anonymous. The session
// middleware is replaced with a direct identity injection so tests do not have
// to juggle cookies.
func (e *testEnv) router(user *domain.User) http.Handler {
	inject := func(c *ginext.Context) {
		if user != nil {
			c.Set(middleware.ContextUserKey, user)
		}
		c.Next()
	}
	return router.InitRouter("test", e.handler, middleware.RequireAuth(), middleware.RequireAdmin(), inject)
}

func (e *testEnv) do(user *domain.User, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.router(user).ServeHTTP(w, req)
	return w
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

var (
	student = &domain.User{ID: uuid.NewString(), Name: "Alice", Email: "alice@college.edu"}
	admin   = &domain.User{ID: uuid.NewString(), Name: "Admin", Email: "admin@college.edu", IsAdmin: true}
)

func TestIndex(t *testing.T) {
	env := newTestEnv(t)
	env.eventSvc.EXPECT().List(mock.Anything).Return([]*domain.Event{
		{ID: uuid.NewString(), Title: "Tech Fest", EventDate: time.Now().UTC()},
	}, nil)

	w := env.do(nil, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var events []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "Tech Fest", events[0].Title)
}

func TestPastAndUpcomingEvents(t *testing.T) {
	env := newTestEnv(t)
	env.eventSvc.EXPECT().ListPast(mock.Anything).Return([]*domain.Event{
		{ID: uuid.NewString(), Title: "Freshers 2024"},
	}, nil)
	env.eventSvc.EXPECT().ListUpcoming(mock.Anything).Return([]*domain.Event{
		{ID: uuid.NewString(), Title: "Tech Fest"},
	}, nil)

	w := env.do(nil, httptest.NewRequest(http.MethodGet, "/past-events", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var past []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &past))
	require.Len(t, past, 1)
	assert.Equal(t, "Freshers 2024", past[0].Title)

	w = env.do(nil, httptest.NewRequest(http.MethodGet, "/upcoming-events", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var upcoming []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &upcoming))
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Tech Fest", upcoming[0].Title)
}

func TestContacts(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(nil, httptest.NewRequest(http.MethodGet, "/contacts", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(student, httptest.NewRequest(http.MethodGet, "/logout", nil))

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestGetEvent(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.do(nil, httptest.NewRequest(http.MethodGet, "/event/not-a-uuid", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("anonymous viewer", func(t *testing.T) {
		env := newTestEnv(t)
		eventID := uuid.NewString()

		env.eventSvc.EXPECT().
			GetDetails(mock.Anything, eventID, "").
			Return(&domain.EventDetails{
				Event:         domain.Event{ID: eventID, Title: "Tech Fest"},
				AcceptedCount: 7,
			}, nil)

		w := env.do(nil, httptest.NewRequest(http.MethodGet, "/event/"+eventID, nil))
		require.Equal(t, http.StatusOK, w.Code)

		var details dto.EventDetailsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &details))
		assert.Equal(t, 7, details.AcceptedCount)
		assert.Nil(t, details.MyRegistration)
	})

	t.Run("logged-in viewer sees own registration", func(t *testing.T) {
		env := newTestEnv(t)
		eventID := uuid.NewString()

		env.eventSvc.EXPECT().
			GetDetails(mock.Anything, eventID, student.ID).
			Return(&domain.EventDetails{
				Event: domain.Event{ID: eventID, Title: "Tech Fest"},
				MyRegistration: &domain.Registration{
					ID: "reg-1", EventID: eventID, UserID: student.ID,
					Status: domain.RegistrationStatusPending,
				},
			}, nil)

		w := env.do(student, httptest.NewRequest(http.MethodGet, "/event/"+eventID, nil))
		require.Equal(t, http.StatusOK, w.Code)

		var details dto.EventDetailsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &details))
		require.NotNil(t, details.MyRegistration)
		assert.Equal(t, "pending", details.MyRegistration.Status)
	})

	t.Run("not found", func(t *testing.T) {
		env := newTestEnv(t)
		eventID := uuid.NewString()

		env.eventSvc.EXPECT().
			GetDetails(mock.Anything, eventID, "").
			Return(nil, domain.ErrEventNotFound)

		w := env.do(nil, httptest.NewRequest(http.MethodGet, "/event/"+eventID, nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSignup(t *testing.T) {
	form := url.Values{
		"name":             {"Alice"},
		"email":            {"alice@college.edu"},
		"password":         {"secret1"},
		"password_confirm": {"secret1"},
	}

	t.Run("success redirects to login", func(t *testing.T) {
		env := newTestEnv(t)
		env.userSvc.EXPECT().
			Register(mock.Anything, domain.CreateUserInput{
				Name:            "Alice",
				Email:           "alice@college.edu",
				Password:        "secret1",
				PasswordConfirm: "secret1",
			}).
			Return(&domain.User{ID: uuid.NewString()}, nil)

		w := env.do(nil, postForm("/register", form))

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("taken email redirects to login with notice", func(t *testing.T) {
		env := newTestEnv(t)
		env.userSvc.EXPECT().
			Register(mock.Anything, mock.AnythingOfType("domain.CreateUserInput")).
			Return(nil, domain.ErrEmailTaken)

		w := env.do(nil, postForm("/register", form))

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Contains(t, w.Header().Get("Location"), "/login?notice=")
	})

	t.Run("binding failure names the field", func(t *testing.T) {
		env := newTestEnv(t)

		bad := url.Values{
			"name":             {"Alice"},
			"password":         {"secret1"},
			"password_confirm": {"secret1"},
		}
		w := env.do(nil, postForm("/register", bad))

		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp.Fields, "email")
	})

	t.Run("already logged in goes home", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.do(student, postForm("/register", form))

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})
}

func TestLogin(t *testing.T) {
	form := url.Values{
		"email":    {"alice@college.edu"},
		"password": {"secret1"},
	}

	t.Run("success sets session and goes home", func(t *testing.T) {
		env := newTestEnv(t)
		env.userSvc.EXPECT().
			Authenticate(mock.Anything, "alice@college.edu", "secret1").
			Return(student, nil)

		w := env.do(nil, postForm("/login", form))

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		assert.NotEmpty(t, w.Header().Get("Set-Cookie"))
	})

	t.Run("honors local next", func(t *testing.T) {
		env := newTestEnv(t)
		env.userSvc.EXPECT().
			Authenticate(mock.Anything, "alice@college.edu", "secret1").
			Return(student, nil)

		w := env.do(nil, postForm("/login?next=%2Fmy-registrations", form))

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/my-registrations", w.Header().Get("Location"))
	})

	t.Run("rejects offsite next", func(t *testing.T) {
		env := newTestEnv(t)
		env.userSvc.EXPECT().
			Authenticate(mock.Anything, "alice@college.edu", "secret1").
			Return(student, nil)

		w := env.do(nil, postForm("/login?next=%2F%2Fevil.example", form))

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})

	t.Run("bad credentials", func(t *testing.T) {
		env := newTestEnv(t)
		env.userSvc.EXPECT().
			Authenticate(mock.Anything, "alice@college.edu", "secret1").
			Return(nil, domain.ErrInvalidCredentials)

		w := env.do(nil, postForm("/login", form))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireAuth(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(nil, httptest.NewRequest(http.MethodGet, "/my-registrations", nil))

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?next=%2Fmy-registrations", w.Header().Get("Location"))
}

func TestRegisterForEvent(t *testing.T) {
	eventID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		env := newTestEnv(t)
		env.regSvc.EXPECT().
			Register(mock.Anything, eventID, student.ID).
			Return(&domain.Registration{
				ID: "reg-1", EventID: eventID, UserID: student.ID,
				Status: domain.RegistrationStatusPending,
			}, nil)

		w := env.do(student, postForm("/event/"+eventID+"/register", nil))

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/my-registrations", w.Header().Get("Location"))
	})

	t.Run("full event bounces back with a notice", func(t *testing.T) {
		env := newTestEnv(t)
		env.regSvc.EXPECT().
			Register(mock.Anything, eventID, student.ID).
			Return(nil, domain.ErrEventFull)

		w := env.do(student, postForm("/event/"+eventID+"/register", nil))

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/event/"+eventID+"?notice=this+event+is+full", w.Header().Get("Location"))
	})

	t.Run("duplicate bounces back with a notice", func(t *testing.T) {
		env := newTestEnv(t)
		env.regSvc.EXPECT().
			Register(mock.Anything, eventID, student.ID).
			Return(nil, domain.ErrAlreadyRegistered)

		w := env.do(student, postForm("/event/"+eventID+"/register", nil))

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Contains(t, w.Header().Get("Location"), "/event/"+eventID+"?notice=")
	})

	t.Run("anonymous is sent to login", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.do(nil, postForm("/event/"+eventID+"/register", nil))

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Contains(t, w.Header().Get("Location"), "/login?next=")
	})
}

func TestMyRegistrations(t *testing.T) {
	env := newTestEnv(t)
	env.regSvc.EXPECT().
		ListByUser(mock.Anything, student.ID).
		Return([]*domain.Registration{
			{ID: "reg-1", UserID: student.ID, Status: domain.RegistrationStatusAccepted},
		}, nil)

	w := env.do(student, httptest.NewRequest(http.MethodGet, "/my-registrations", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var regs []dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &regs))
	require.Len(t, regs, 1)
	assert.Equal(t, "accepted", regs[0].Status)
}

func TestAdminDashboard(t *testing.T) {
	t.Run("forbidden for non-admins", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.do(student, httptest.NewRequest(http.MethodGet, "/admin", nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin sees events and pending registrations", func(t *testing.T) {
		env := newTestEnv(t)
		env.eventSvc.EXPECT().List(mock.Anything).Return([]*domain.Event{
			{ID: uuid.NewString(), Title: "Tech Fest"},
		}, nil)
		env.regSvc.EXPECT().ListPending(mock.Anything).Return([]*domain.Registration{
			{ID: "reg-1", Status: domain.RegistrationStatusPending},
		}, nil)

		w := env.do(admin, httptest.NewRequest(http.MethodGet, "/admin", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.DashboardResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Events, 1)
		assert.Len(t, resp.PendingRegistrations, 1)
	})
}

func TestCreateEvent(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		env := newTestEnv(t)

		var input domain.CreateEventInput
		env.eventSvc.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("domain.CreateEventInput")).
			Run(func(ctx context.Context, in domain.CreateEventInput) {
				input = in
			}).
			Return(&domain.Event{ID: uuid.NewString()}, nil)

		form := url.Values{
			"title":    {"Tech Fest"},
			"venue":    {"Main auditorium"},
			"date":     {"2026-10-01 18:00"},
			"capacity": {"50"},
		}
		w := env.do(admin, postForm("/admin/event/create", form))

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/admin", w.Header().Get("Location"))

		assert.Equal(t, "Tech Fest", input.Title)
		assert.Equal(t, time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC), input.EventDate)
		require.NotNil(t, input.Capacity)
		assert.Equal(t, 50, *input.Capacity)
	})

	t.Run("malformed date", func(t *testing.T) {
		env := newTestEnv(t)

		form := url.Values{
			"title": {"Tech Fest"},
			"date":  {"October 1st"},
		}
		w := env.do(admin, postForm("/admin/event/create", form))

		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp.Fields, "date")
	})

	t.Run("forbidden for non-admins", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.do(student, postForm("/admin/event/create", url.Values{"title": {"x"}}))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestDeleteEvent(t *testing.T) {
	eventID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		env := newTestEnv(t)
		env.eventSvc.EXPECT().Delete(mock.Anything, eventID).Return(nil)

		w := env.do(admin, postForm("/admin/event/"+eventID+"/delete", nil))

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/admin", w.Header().Get("Location"))
	})

	t.Run("not found", func(t *testing.T) {
		env := newTestEnv(t)
		env.eventSvc.EXPECT().Delete(mock.Anything, eventID).Return(domain.ErrEventNotFound)

		w := env.do(admin, postForm("/admin/event/"+eventID+"/delete", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRegistrationAction(t *testing.T) {
	regID := uuid.NewString()

	t.Run("accept", func(t *testing.T) {
		env := newTestEnv(t)
		env.regSvc.EXPECT().
			Decide(mock.Anything, regID, "accept").
			Return(&domain.Registration{ID: regID, Status: domain.RegistrationStatusAccepted}, nil)

		w := env.do(admin, postForm("/admin/registration/"+regID+"/action", url.Values{"action": {"accept"}}))

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/admin", w.Header().Get("Location"))
	})

	t.Run("unknown action conflicts", func(t *testing.T) {
		env := newTestEnv(t)
		env.regSvc.EXPECT().
			Decide(mock.Anything, regID, "approve").
			Return(nil, domain.ErrInvalidAction)

		w := env.do(admin, postForm("/admin/registration/"+regID+"/action", url.Values{"action": {"approve"}}))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("accepting into a full event conflicts", func(t *testing.T) {
		env := newTestEnv(t)
		env.regSvc.EXPECT().
			Decide(mock.Anything, regID, "accept").
			Return(nil, domain.ErrEventFull)

		w := env.do(admin, postForm("/admin/registration/"+regID+"/action", url.Values{"action": {"accept"}}))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("missing action field", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.do(admin, postForm("/admin/registration/"+regID+"/action", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestNoRoute(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(nil, httptest.NewRequest(http.MethodGet, "/no-such-page", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
