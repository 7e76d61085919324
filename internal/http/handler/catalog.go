package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"llmcorp/internal/model"
	"llmcorp/internal/service"
)

// recordRequest is a validated create body that converts to a catalog record.
type recordRequest[T any] interface {
	toRecord() *T
}

type createEmployeeRequest struct {
	Name     *string `json:"name" validate:"required"`
	Position *string `json:"position" validate:"required"`
}

func (r createEmployeeRequest) toRecord() *model.Employee {
	return &model.Employee{Name: *r.Name, Position: *r.Position}
}

type createModelRequest struct {
	Name    *string `json:"name" validate:"required"`
	Version *string `json:"version" validate:"required"`
}

func (r createModelRequest) toRecord() *model.Model {
	return &model.Model{Name: *r.Name, Version: *r.Version}
}

type createTaskRequest struct {
	Description *string `json:"description" validate:"required"`
	Status      *string `json:"status" validate:"required"`
}

func (r createTaskRequest) toRecord() *model.Task {
	return &model.Task{Description: *r.Description, Status: *r.Status}
}

type recordResponse[T any] struct {
	Success bool `json:"success"`
	Data    *T   `json:"data"`
}

type recordListResponse[T any] struct {
	Success bool `json:"success"`
	Data    []T  `json:"data"`
	Total   int  `json:"total"`
}

type recordDeletedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// registerRecordRoutes mounts list/create/get/delete for one catalog table on r.
// noun is the singular resource name used in messages ("employee").
func registerRecordRoutes[T any, R recordRequest[T]](r fiber.Router, noun string, svc service.RecordService[T]) {
	r.Get("/", ListRecords(svc))
	r.Post("/", CreateRecord[T, R](svc))
	r.Get("/:id", GetRecord(svc, noun))
	r.Delete("/:id", DeleteRecord(svc, noun))
}

func parseRecordID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ListRecords serves a page of records using limit & offset query parameters.
func ListRecords[T any](svc service.RecordService[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(recordListResponse[T]{Success: true, Data: res.Items, Total: res.Total})
	}
}

// CreateRecord decodes and validates an R body and stores the resulting record.
func CreateRecord[T any, R recordRequest[T]](svc service.RecordService[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req R
		if err := bindJSON(c, &req); err != nil {
			return writeBindError(c, err)
		}
		rec, err := svc.Create(c.UserContext(), req.toRecord())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(recordResponse[T]{Success: true, Data: rec})
	}
}

// GetRecord serves a single record by its numeric id.
func GetRecord[T any](svc service.RecordService[T], noun string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseRecordID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		rec, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", noun+" not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(recordResponse[T]{Success: true, Data: rec})
	}
}

// DeleteRecord removes a record by its numeric id.
func DeleteRecord[T any](svc service.RecordService[T], noun string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseRecordID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", noun+" not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(recordDeletedResponse{Success: true, Message: noun + " deleted", ID: id})
	}
}
