// FILE: internal/controller/prompt_controller.go
package controller

import (
	"strings"

	"promptly-be/internal/dto"
	"promptly-be/internal/pkg/serverutils"
	"promptly-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPromptController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	ToggleFavorite(ctx *fiber.Ctx) error
	Use(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type promptController struct {
	promptService service.IPromptService
}

func NewPromptController(promptService service.IPromptService) IPromptController {
	return &promptController{
		promptService: promptService,
	}
}

func (c *promptController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/prompt/v1")
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Patch(":id/favorite", c.ToggleFavorite)
	h.Post(":id/use", c.Use)
	h.Delete(":id", c.Delete)
}

func (c *promptController) Create(ctx *fiber.Ctx) error {
	var req dto.CreatePromptRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.promptService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create prompt", res))
}

// List applies the filter criteria from the query string. Tags arrive as a
// comma separated list.
func (c *promptController) List(ctx *fiber.Ctx) error {
	req := dto.ListPromptsRequest{
		FavoritesOnly: ctx.QueryBool("favorites_only"),
		Search:        ctx.Query("search"),
	}

	if raw := ctx.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid category_id")
		}
		req.CategoryId = &id
	}

	if raw := ctx.Query("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				req.Tags = append(req.Tags, tag)
			}
		}
	}

	res, err := c.promptService.List(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list prompts", res))
}

func (c *promptController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.promptService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show prompt", res))
}

func (c *promptController) Update(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdatePromptRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.promptService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update prompt", res))
}

func (c *promptController) ToggleFavorite(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.promptService.ToggleFavorite(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success toggle favorite", res))
}

func (c *promptController) Use(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.promptService.Use(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success use prompt", res))
}

// Delete moves the prompt to the recycle bin; nothing is removed permanently
// from this endpoint.
func (c *promptController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.promptService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Prompt moved to recycle bin", nil))
}

func parseIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	return id, nil
}
