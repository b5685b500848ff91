package controller

import (
	"strconv"

	"astro-observer/internal/pkg/serverutils"
	"astro-observer/internal/pkg/upload"
	"astro-observer/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IGalaxyController interface {
	RegisterRoutes(r fiber.Router)
	Classify(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type galaxyController struct {
	service   service.IGalaxyService
	uploadDir string
}

func NewGalaxyController(service service.IGalaxyService, uploadDir string) IGalaxyController {
	return &galaxyController{service: service, uploadDir: uploadDir}
}

func (c *galaxyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/galaxy", serverutils.JwtMiddleware)
	h.Post("/classify", c.Classify)
	h.Get("/history", c.History)
}

func (c *galaxyController) Classify(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("No image uploaded"))
	}

	imagePath, err := upload.Save(ctx, file, c.uploadDir, "galaxy")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(err.Error()))
	}

	result, err := c.service.Classify(ctx.Context(), userId, imagePath)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Classification complete", fiber.Map{
		"result": result,
	}))
}

func (c *galaxyController) History(ctx *fiber.Ctx) error {
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
