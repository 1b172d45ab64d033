package middleware

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/Cod-Harsh/college-events/internal/domain"
	"github.com/gorilla/sessions"
	"github.com/wb-go/wbf/ginext"
)

const sessionUserKey = "user_id"

// ContextUserKey is where ResolveUser stores the caller identity for the
// request; handlers read it through CurrentUser.
const ContextUserKey = "current_user"

type UserLoader interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// SessionManager wraps the cookie store so handlers deal with user ids, not
// raw sessions.
type SessionManager struct {
	store      *sessions.CookieStore
	cookieName string
}

func NewSessionManager(secret, cookieName string, maxAge time.Duration) *SessionManager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &SessionManager{
		store:      store,
		cookieName: cookieName,
	}
}

func (m *SessionManager) Login(c *ginext.Context, userID string) error {
	session, _ := m.store.Get(c.Request, m.cookieName)
	session.Values[sessionUserKey] = userID
	return session.Save(c.Request, c.Writer)
}

func (m *SessionManager) Logout(c *ginext.Context) error {
	session, _ := m.store.Get(c.Request, m.cookieName)
	delete(session.Values, sessionUserKey)
	session.Options.MaxAge = -1
	return session.Save(c.Request, c.Writer)
}

func (m *SessionManager) userID(r *http.Request) string {
	session, err := m.store.Get(r, m.cookieName)
	if err != nil {
		return ""
	}

	id, _ := session.Values[sessionUserKey].(string)
	return id
}

// ResolveUser loads the session user once per request. A stale or missing id
// resolves to anonymous; it never fails the request.
func ResolveUser(m *SessionManager, users UserLoader) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if id := m.userID(c.Request); id != "" {
			if user, err := users.GetByID(c.Request.Context(), id); err == nil {
				c.Set(ContextUserKey, user)
			}
		}

		c.Next()
	}
}

// CurrentUser returns the resolved caller identity, or nil for anonymous.
func CurrentUser(c *ginext.Context) *domain.User {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil
	}

	user, _ := v.(*domain.User)
	return user
}

// RequireAuth redirects anonymous callers to the login form, preserving the
// requested path for the post-login redirect.
func RequireAuth() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if CurrentUser(c) == nil {
			next := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusSeeOther, "/login?next="+next)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAdmin answers 403 for authenticated non-admins. It must run after
// RequireAuth: not-logged-in and not-permitted are distinct outcomes.
func RequireAdmin() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "forbidden"})
			return
		}

		c.Next()
	}
}
