package controller

import (
	"strconv"

	"astro-observer/internal/pkg/serverutils"
	"astro-observer/internal/pkg/upload"
	"astro-observer/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPositioningController interface {
	RegisterRoutes(r fiber.Router)
	Solve(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type positioningController struct {
	service   service.IPositioningService
	uploadDir string
}

func NewPositioningController(service service.IPositioningService, uploadDir string) IPositioningController {
	return &positioningController{service: service, uploadDir: uploadDir}
}

func (c *positioningController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/positioning", serverutils.JwtMiddleware)
	h.Post("/solve", c.Solve)
	h.Get("/history", c.History)
}

// Solve blocks for up to the solver's MaxWait; the client polls nothing, it
// just waits on this request.
func (c *positioningController) Solve(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("No image uploaded"))
	}

	imagePath, err := upload.Save(ctx, file, c.uploadDir, "positioning")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(err.Error()))
	}

	result, err := c.service.Solve(ctx.Context(), userId, imagePath)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Solve complete", fiber.Map{
		"result": result,
	}))
}

func (c *positioningController) History(ctx *fiber.Ctx) error {
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
