package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/taskledger/taskledger/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	healthHandler     *Health
	meetingHandler    *Meeting
	actionItemHandler *ActionItem
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, healthHandler *Health, meetingHandler *Meeting, actionItemHandler *ActionItem) *Router {
	return &Router{
		cfg:               cfg,
		healthHandler:     healthHandler,
		meetingHandler:    meetingHandler,
		actionItemHandler: actionItemHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/", rt.healthHandler.Root)
	e.GET("/health", rt.healthHandler.Check)
	e.GET("/health/detailed", rt.healthHandler.Detailed)

	rt.setupMeetingRoutes(e)
	rt.setupActionItemRoutes(e)
}

func (rt *Router) setupMeetingRoutes(e *echo.Echo) {
	meetings := e.Group("/meetings")

	meetings.POST("", rt.meetingHandler.Create)
	meetings.GET("", rt.meetingHandler.List)
	meetings.GET("/:id", rt.meetingHandler.Get)
	meetings.DELETE("/:id", rt.meetingHandler.Delete)
	meetings.GET("/:id/action-items", rt.actionItemHandler.ListForMeeting)
}

func (rt *Router) setupActionItemRoutes(e *echo.Echo) {
	items := e.Group("/action-items")

	items.GET("/:id", rt.actionItemHandler.Get)
	items.PUT("/:id", rt.actionItemHandler.Update)
	items.POST("/:id/clarify", rt.actionItemHandler.Clarify)
}
