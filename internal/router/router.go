package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/taskwell/backend/api/handler"
)

type Handlers struct {
	Task   *apiHandler.TaskHandler
	Health *apiHandler.HealthHandler
}

func New(handlers Handlers, accessLog func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Task routes
	r.GET("/api/v1/tasks", accessLog(handlers.Task.ListTasks))
	r.POST("/api/v1/tasks", accessLog(handlers.Task.CreateTask))
	r.GET("/api/v1/tasks/{id}", accessLog(handlers.Task.GetTask))
	r.PUT("/api/v1/tasks/{id}", accessLog(handlers.Task.UpdateTask))
	r.POST("/api/v1/tasks/{id}/done", accessLog(handlers.Task.CompleteTask))
	r.DELETE("/api/v1/tasks/{id}", accessLog(handlers.Task.DeleteTask))

	return r
}
