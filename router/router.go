package router

import (
	"github.com/labstack/echo/v4"
)

// Collection is the handler set every REST collection exposes.
type Collection interface {
	List(echo.Context) error
	Create(echo.Context) error
	Update(echo.Context) error
	Delete(echo.Context) error
}

type Controllers struct {
	Tasks       Collection
	Supervisors Collection
	Plots       Collection
	Inventory   Collection
	Upload      interface{ UploadURL(echo.Context) error }
	Health      interface{ Health(echo.Context) error }
	Metrics     echo.HandlerFunc // optional
}

func New(e *echo.Echo, ctl Controllers) *echo.Echo {
	e.GET("/health", ctl.Health.Health)
	if ctl.Metrics != nil {
		e.GET("/metrics", ctl.Metrics)
	}

	collection(e.Group("/tasks"), ctl.Tasks)
	collection(e.Group("/supervisors"), ctl.Supervisors)
	collection(e.Group("/plots"), ctl.Plots)
	collection(e.Group("/inventory"), ctl.Inventory)

	e.POST("/upload-url", ctl.Upload.UploadURL)
	return e
}

func collection(g *echo.Group, h Collection) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}
