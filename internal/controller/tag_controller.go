// FILE: internal/controller/tag_controller.go
package controller

import (
	"promptly-be/internal/pkg/serverutils"
	"promptly-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITagController interface {
	RegisterRoutes(r fiber.Router)
	Cloud(ctx *fiber.Ctx) error
}

type tagController struct {
	tagService service.ITagService
}

func NewTagController(tagService service.ITagService) ITagController {
	return &tagController{
		tagService: tagService,
	}
}

func (c *tagController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tag/v1")
	h.Get("cloud", c.Cloud)
}

func (c *tagController) Cloud(ctx *fiber.Ctx) error {
	res, err := c.tagService.GetTagCloud(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success tag cloud", res))
}
