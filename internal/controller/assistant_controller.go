package controller

import (
	"errors"

	"astro-observer/internal/dto"
	"astro-observer/internal/pkg/serverutils"
	"astro-observer/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Sessions(ctx *fiber.Ctx) error
}

type assistantController struct {
	service service.IAssistantService
}

func NewAssistantController(service service.IAssistantService) IAssistantController {
	return &assistantController{service: service}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tianxun-ai", serverutils.JwtMiddleware)
	h.Post("/chat", c.Chat)
	h.Get("/history", c.History)
	h.Get("/sessions", c.Sessions)
}

func (c *assistantController) Chat(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	result, err := c.service.Chat(ctx.Context(), userId, &req)
	if err != nil {
		if errors.Is(err, service.ErrUsageLimitReached) {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(serverutils.ErrorResponse(err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Chat response generated", fiber.Map{
		"result": result,
	}))
}

func (c *assistantController) History(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	sessionId := ctx.Query("session_id")
	if sessionId == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("session_id is required"))
	}

	items, err := c.service.History(ctx.Context(), userId, sessionId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(err.Error()))
	}
	return ctx.JSON(fiber.Map{"history": items})
}

func (c *assistantController) Sessions(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	sessions, err := c.service.Sessions(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(err.Error()))
	}
	return ctx.JSON(fiber.Map{"sessions": sessions})
}
