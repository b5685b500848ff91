package controller

import (
	"astro-observer/internal/dto"
	"astro-observer/internal/pkg/serverutils"
	"astro-observer/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISpaceEngineController interface {
	RegisterRoutes(r fiber.Router)
	SaveView(ctx *fiber.Ctx) error
	GetData(ctx *fiber.Ctx) error
}

type spaceEngineController struct {
	service service.ISpaceEngineService
}

func NewSpaceEngineController(service service.ISpaceEngineService) ISpaceEngineController {
	return &spaceEngineController{service: service}
}

func (c *spaceEngineController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/space-engine", serverutils.JwtMiddleware)
	h.Post("/save-view", c.SaveView)
	h.Get("/get-data", c.GetData)
}

func (c *spaceEngineController) SaveView(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.SaveViewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	view, err := c.service.SaveView(ctx.Context(), userId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("View saved", fiber.Map{
		"view": view,
	}))
}

func (c *spaceEngineController) GetData(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	items, err := c.service.GetData(ctx.Context(), userId, ctx.Query("type"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(err.Error()))
	}
	return ctx.JSON(fiber.Map{"data": items})
}
