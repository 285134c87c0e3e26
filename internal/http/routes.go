package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	config "todolist-api.com/todolist-api/internal/configs"
	middleware "todolist-api.com/todolist-api/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, cfg config.Config) {
	e.Use(middleware.RequestID())
	e.Use(middleware.RateLimiter(cfg.RateLimit, time.Minute))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{cfg.CORSOrigin},
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
		},
	}))

	g := e.Group("/todolist/tasks")
	g.POST("", h.CreateTask)
	g.GET("", h.ListTasks)
	g.GET("/:id", h.GetTask)
	g.PUT("/:id", h.UpdateTask)
	g.DELETE("/:id", h.DeleteTask)
}
