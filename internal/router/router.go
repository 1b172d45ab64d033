package router

import (
	"net/http"

	"github.com/Cod-Harsh/college-events/internal/handler"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Index(c *ginext.Context)
	PastEvents(c *ginext.Context)
	UpcomingEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	Contacts(c *ginext.Context)
	ShowSignup(c *ginext.Context)
	Signup(c *ginext.Context)
	ShowLogin(c *ginext.Context)
	Login(c *ginext.Context)
	Logout(c *ginext.Context)
	RegisterForEvent(c *ginext.Context)
	MyRegistrations(c *ginext.Context)
	AdminDashboard(c *ginext.Context)
	ShowCreateEvent(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	RegistrationAction(c *ginext.Context)
}

func InitRouter(
	mode string,
	h Handler,
	requireAuth ginext.HandlerFunc,
	requireAdmin ginext.HandlerFunc,
	mw ...ginext.HandlerFunc,
) *ginext.Engine {
	handler.RegisterFormFieldNames()

	router := ginext.New(mode)
	router.Use(mw...)

	// Public
	router.GET("/", h.Index)
	router.GET("/past-events", h.PastEvents)
	router.GET("/upcoming-events", h.UpcomingEvents)
	router.GET("/contacts", h.Contacts)
	router.GET("/event/:id", h.GetEvent)
	router.GET("/register", h.ShowSignup)
	router.POST("/register", h.Signup)
	router.GET("/login", h.ShowLogin)
	router.POST("/login", h.Login)

	// Authenticated
	authed := router.Group("", requireAuth)
	{
		authed.GET("/logout", h.Logout)
		authed.POST("/event/:id/register", h.RegisterForEvent)
		authed.GET("/my-registrations", h.MyRegistrations)
	}

	// Admin only; RequireAdmin runs after RequireAuth so anonymous callers
	// are redirected to login while authenticated non-admins get 403.
	admin := router.Group("/admin", requireAuth, requireAdmin)
	{
		admin.GET("", h.AdminDashboard)
		admin.GET("/event/create", h.ShowCreateEvent)
		admin.POST("/event/create", h.CreateEvent)
		admin.POST("/event/:id/delete", h.DeleteEvent)
		admin.POST("/registration/:id/action", h.RegistrationAction)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.NoRoute(func(c *ginext.Context) {
		c.JSON(http.StatusNotFound, ginext.H{"error": "page not found"})
	})

	return router
}
