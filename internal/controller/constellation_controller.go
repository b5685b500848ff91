package controller

import (
	"strconv"

	"astro-observer/internal/pkg/serverutils"
	"astro-observer/internal/pkg/upload"
	"astro-observer/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IConstellationController interface {
	RegisterRoutes(r fiber.Router)
	Recognize(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type constellationController struct {
	service   service.IConstellationService
	uploadDir string
}

func NewConstellationController(service service.IConstellationService, uploadDir string) IConstellationController {
	return &constellationController{service: service, uploadDir: uploadDir}
}

func (c *constellationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/constellation", serverutils.JwtMiddleware)
	h.Post("/recognize", c.Recognize)
	h.Get("/history", c.History)
}

func (c *constellationController) Recognize(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("No image uploaded"))
	}

	imagePath, err := upload.Save(ctx, file, c.uploadDir, "constellation")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(err.Error()))
	}

	result, err := c.service.Recognize(ctx.Context(), userId, imagePath)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Recognition complete", fiber.Map{
		"result": result,
	}))
}

func (c *constellationController) History(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(ctx.Query("limit"))
	items, err := c.service.History(ctx.Context(), userId, limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(err.Error()))
	}
	return ctx.JSON(fiber.Map{"history": items})
}
