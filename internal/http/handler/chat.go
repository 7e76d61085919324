package handler

import (
	"errors"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"llmcorp/internal/model"
	"llmcorp/internal/service"
)

type chatParams struct {
	ID string `json:"id" validate:"required"`
}

type createChatRequest struct {
	Title *string `json:"title" validate:"required"`
}

type sendMessageRequest struct {
	Content *string `json:"content" validate:"required"`
	Role    *string `json:"role"`
}

type chatSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

type chatDetail struct {
	ID       string        `json:"id"`
	Messages []messageView `json:"messages"`
}

type messageView struct {
	ChatID    string    `json:"chatId"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type listChatsResponse struct {
	Success bool          `json:"success"`
	Chats   []chatSummary `json:"chats"`
}

type getChatResponse struct {
	Success bool       `json:"success"`
	Chat    chatDetail `json:"chat"`
}

type createChatResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Chat    chatSummary `json:"chat"`
}

type sendMessageResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    messageView `json:"data"`
}

type deleteChatResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ChatID  string `json:"chatId"`
}

func toSummary(ch model.Chat) chatSummary {
	return chatSummary{ID: ch.ID, Title: ch.Title, CreatedAt: ch.CreatedAt}
}

func toMessageView(m model.Message) messageView {
	return messageView{ChatID: m.ChatID, Content: m.Content, Timestamp: m.Timestamp}
}

// bindChatParams decodes and validates the :id path parameter.
func bindChatParams(c *fiber.Ctx) (chatParams, error) {
	id, err := url.PathUnescape(c.Params("id"))
	if err != nil {
		return chatParams{}, &validationError{Fields: []fieldError{{
			Field:   "id",
			Rule:    "encoding",
			Message: "id is not a valid path segment",
		}}}
	}
	p := chatParams{ID: id}
	return p, validateStruct(&p)
}

func writeChatServiceError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrIDRequired) {
		return writeErrorDetails(c, fiber.StatusUnprocessableEntity, "VALIDATION_FAILED", "request validation failed",
			[]fieldError{{Field: "id", Rule: "required", Message: "id is required"}})
	}
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// ListChats godoc
// @Summary List chats
// @Tags chat
// @Produce json
// @Success 200 {object} handler.listChatsResponse
// @Router /chat/ [get]
func ListChats(svc service.ChatService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		chats, err := svc.List(c.UserContext())
		if err != nil {
			return writeChatServiceError(c, err)
		}
		out := make([]chatSummary, 0, len(chats))
		for _, ch := range chats {
			out = append(out, toSummary(ch))
		}
		return c.JSON(listChatsResponse{Success: true, Chats: out})
	}
}

// GetChat godoc
// @Summary Get a chat
// @Tags chat
// @Produce json
// @Param id path string true "Chat ID"
// @Success 200 {object} handler.getChatResponse
// @Failure 422 {object} handler.errorPayload
// @Router /chat/{id} [get]
func GetChat(svc service.ChatService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := bindChatParams(c)
		if err != nil {
			return writeBindError(c, err)
		}
		chat, err := svc.Get(c.UserContext(), p.ID)
		if err != nil {
			return writeChatServiceError(c, err)
		}
		msgs := make([]messageView, 0, len(chat.Messages))
		for _, m := range chat.Messages {
			msgs = append(msgs, toMessageView(m))
		}
		return c.JSON(getChatResponse{
			Success: true,
			Chat:    chatDetail{ID: chat.ID, Messages: msgs},
		})
	}
}

// CreateChat godoc
// @Summary Create a chat
// @Tags chat
// @Accept json
// @Produce json
// @Param body body handler.createChatRequest true "Chat"
// @Success 200 {object} handler.createChatResponse
// @Failure 400 {object} handler.errorPayload
// @Failure 422 {object} handler.errorPayload
// @Router /chat/ [post]
func CreateChat(svc service.ChatService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createChatRequest
		if err := bindJSON(c, &req); err != nil {
			return writeBindError(c, err)
		}
		chat, err := svc.Create(c.UserContext(), *req.Title)
		if err != nil {
			return writeChatServiceError(c, err)
		}
		return c.JSON(createChatResponse{
			Success: true,
			Message: "Chat created",
			Chat:    toSummary(*chat),
		})
	}
}

// SendMessage godoc
// @Summary Send a message to a chat
// @Tags chat
// @Accept json
// @Produce json
// @Param id path string true "Chat ID"
// @Param body body handler.sendMessageRequest true "Message"
// @Success 200 {object} handler.sendMessageResponse
// @Failure 400 {object} handler.errorPayload
// @Failure 422 {object} handler.errorPayload
// @Router /chat/{id}/messages [post]
func SendMessage(svc service.ChatService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := bindChatParams(c)
		if err != nil {
			return writeBindError(c, err)
		}
		var req sendMessageRequest
		if err := bindJSON(c, &req); err != nil {
			return writeBindError(c, err)
		}
		role := ""
		if req.Role != nil {
			role = *req.Role
		}
		msg, err := svc.SendMessage(c.UserContext(), p.ID, *req.Content, role)
		if err != nil {
			return writeChatServiceError(c, err)
		}
		return c.JSON(sendMessageResponse{
			Success: true,
			Message: "Message sent",
			Data:    toMessageView(*msg),
		})
	}
}

// DeleteChat godoc
// @Summary Delete a chat
// @Tags chat
// @Produce json
// @Param id path string true "Chat ID"
// @Success 200 {object} handler.deleteChatResponse
// @Failure 422 {object} handler.errorPayload
// @Router /chat/{id} [delete]
func DeleteChat(svc service.ChatService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := bindChatParams(c)
		if err != nil {
			return writeBindError(c, err)
		}
		if err := svc.Delete(c.UserContext(), p.ID); err != nil {
			return writeChatServiceError(c, err)
		}
		return c.JSON(deleteChatResponse{
			Success: true,
			Message: "Chat deleted",
			ChatID:  p.ID,
		})
	}
}
