// FILE: internal/controller/category_controller.go
package controller

import (
	"promptly-be/internal/dto"
	"promptly-be/internal/pkg/serverutils"
	"promptly-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICategoryController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type categoryController struct {
	categoryService service.ICategoryService
}

func NewCategoryController(categoryService service.ICategoryService) ICategoryController {
	return &categoryController{
		categoryService: categoryService,
	}
}

func (c *categoryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/category/v1")
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *categoryController) List(ctx *fiber.Ctx) error {
	res, err := c.categoryService.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list categories", res))
}

func (c *categoryController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.categoryService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create category", res))
}

func (c *categoryController) Update(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.categoryService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update category", res))
}

// Delete fails with a 409 when prompts still reference the category.
func (c *categoryController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.categoryService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete category", nil))
}
