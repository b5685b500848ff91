package controller

import (
	"astro-observer/internal/pkg/serverutils"
	"astro-observer/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IHomepageController interface {
	RegisterRoutes(r fiber.Router)
	GetContent(ctx *fiber.Ctx) error
}

type homepageController struct {
	service service.IHomepageService
}

func NewHomepageController(service service.IHomepageService) IHomepageController {
	return &homepageController{service: service}
}

// Homepage content is public: the landing page renders before login.
func (c *homepageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/homepage")
	h.Get("/content", c.GetContent)
}

func (c *homepageController) GetContent(ctx *fiber.Ctx) error {
	contentType := ctx.Query("type")

	items, err := c.service.GetContent(ctx.Context(), contentType)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(err.Error()))
	}
	return ctx.JSON(fiber.Map{"contents": items})
}
