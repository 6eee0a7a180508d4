// FILE: internal/controller/recycle_bin_controller.go
package controller

import (
	"log"

	"promptly-be/internal/dto"
	"promptly-be/internal/pkg/serverutils"
	"promptly-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRecycleBinController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Count(ctx *fiber.Ctx) error
	ExpiringSoon(ctx *fiber.Ctx) error
	MoveToBin(ctx *fiber.Ctx) error
	Restore(ctx *fiber.Ctx) error
	RestoreMany(ctx *fiber.Ctx) error
	PermanentlyDelete(ctx *fiber.Ctx) error
	PermanentlyDeleteMany(ctx *fiber.Ctx) error
	Empty(ctx *fiber.Ctx) error
	Cleanup(ctx *fiber.Ctx) error
}

type recycleBinController struct {
	recycleBinService service.IRecycleBinService
}

func NewRecycleBinController(recycleBinService service.IRecycleBinService) IRecycleBinController {
	return &recycleBinController{
		recycleBinService: recycleBinService,
	}
}

func (c *recycleBinController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/recycle-bin/v1")
	h.Get("", c.List)
	h.Get("count", c.Count)
	h.Get("expiring-soon", c.ExpiringSoon)
	h.Post("", c.MoveToBin)
	h.Post("restore", c.RestoreMany)
	h.Post("purge", c.PermanentlyDeleteMany)
	h.Post("cleanup", c.Cleanup)
	h.Post(":id/restore", c.Restore)
	h.Delete("all", c.Empty)
	h.Delete(":id", c.PermanentlyDelete)
}

// List sweeps expired items before returning the bin, so a client opening the
// bin never sees items past their retention window.
func (c *recycleBinController) List(ctx *fiber.Ctx) error {
	if _, err := c.recycleBinService.CleanupExpiredItems(ctx.Context()); err != nil {
		// A failed sweep must not block reading the bin.
		log.Printf("[WARN] Recycle bin sweep failed: %v", err)
	}

	res, err := c.recycleBinService.GetAllRecycleBinItems(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list recycle bin items", res))
}

func (c *recycleBinController) Count(ctx *fiber.Ctx) error {
	count, err := c.recycleBinService.GetRecycleBinCount(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success count recycle bin items", dto.RecycleBinCountResponse{
		Count: count,
	}))
}

func (c *recycleBinController) ExpiringSoon(ctx *fiber.Ctx) error {
	res, err := c.recycleBinService.GetItemsExpiringSoon(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list expiring items", res))
}

// MoveToBin soft deletes a batch of prompts.
func (c *recycleBinController) MoveToBin(ctx *fiber.Ctx) error {
	var req dto.MoveToRecycleBinRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.recycleBinService.MoveManyToRecycleBin(ctx.Context(), req.Ids); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Prompts moved to recycle bin", nil))
}

func (c *recycleBinController) Restore(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.recycleBinService.RestorePrompt(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success restore prompt", res))
}

func (c *recycleBinController) RestoreMany(ctx *fiber.Ctx) error {
	var req dto.RestorePromptsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.recycleBinService.RestorePrompts(ctx.Context(), req.Ids)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success restore prompts", res))
}

func (c *recycleBinController) PermanentlyDelete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.recycleBinService.PermanentlyDelete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success permanently delete item", nil))
}

func (c *recycleBinController) PermanentlyDeleteMany(ctx *fiber.Ctx) error {
	var req dto.PermanentlyDeleteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.recycleBinService.PermanentlyDeleteMany(ctx.Context(), req.Ids); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success permanently delete items", nil))
}

func (c *recycleBinController) Empty(ctx *fiber.Ctx) error {
	if err := c.recycleBinService.EmptyRecycleBin(ctx.Context()); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Recycle bin emptied", nil))
}

// Cleanup triggers the retention sweep on demand and reports how many items
// were purged.
func (c *recycleBinController) Cleanup(ctx *fiber.Ctx) error {
	purged, err := c.recycleBinService.CleanupExpiredItems(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success cleanup expired items", dto.CleanupResponse{
		Purged: purged,
	}))
}
