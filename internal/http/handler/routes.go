package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "llmcorp/docs"
	"llmcorp/internal/model"
	"llmcorp/internal/service"
)

// Services groups the use cases the HTTP layer depends on. The catalog
// services are optional: nil leaves their routes unmounted.
type Services struct {
	Chat      service.ChatService
	Employees service.RecordService[model.Employee]
	Models    service.RecordService[model.Model]
	Tasks     service.RecordService[model.Task]
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. db may be nil
// when no database is configured.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc Services) {
	var p pinger
	if db != nil {
		p = db
	}

	app.Get("/", Root())
	app.Get("/health", HealthCheck(p))
	app.Get("/healthz", LivenessProbe())
	app.Get("/swagger/*", swagger.HandlerDefault)

	chat := app.Group("/chat")
	chat.Get("/", ListChats(svc.Chat))
	chat.Post("/", CreateChat(svc.Chat))
	chat.Get("/:id", GetChat(svc.Chat))
	chat.Post("/:id/messages", SendMessage(svc.Chat))
	chat.Delete("/:id", DeleteChat(svc.Chat))

	if svc.Employees != nil {
		registerRecordRoutes[model.Employee, createEmployeeRequest](app.Group("/employees"), "employee", svc.Employees)
	}
	if svc.Models != nil {
		registerRecordRoutes[model.Model, createModelRequest](app.Group("/models"), "model", svc.Models)
	}
	if svc.Tasks != nil {
		registerRecordRoutes[model.Task, createTaskRequest](app.Group("/tasks"), "task", svc.Tasks)
	}
}
