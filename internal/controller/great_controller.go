package controller

import (
	"ustory-be/internal/pkg/serverutils"
	"ustory-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IGreatController interface {
	RegisterRoutes(r fiber.Router)
	Like(ctx *fiber.Ctx) error
	Unlike(ctx *fiber.Ctx) error
	IsLiked(ctx *fiber.Ctx) error
	Count(ctx *fiber.Ctx) error
	ListLiked(ctx *fiber.Ctx) error
}

type greatController struct {
	service service.IGreatService
	auth    fiber.Handler
}

func NewGreatController(service service.IGreatService, auth fiber.Handler) IGreatController {
	return &greatController{service: service, auth: auth}
}

func (c *greatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/papers")
	h.Get("/greats", c.auth, c.ListLiked)
	h.Post("/:paperId/great", c.auth, c.Like)
	h.Delete("/:paperId/great", c.auth, c.Unlike)
	h.Get("/:paperId/great", c.auth, c.IsLiked)
	h.Get("/:paperId/count", c.Count)
}

func (c *greatController) Like(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	paperId, err := serverutils.ParamUUID(ctx, "paperId")
	if err != nil {
		return err
	}

	if err := c.service.Like(ctx.Context(), userId, paperId); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusCreated)
}

func (c *greatController) Unlike(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	paperId, err := serverutils.ParamUUID(ctx, "paperId")
	if err != nil {
		return err
	}

	if err := c.service.Unlike(ctx.Context(), userId, paperId); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *greatController) IsLiked(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	paperId, err := serverutils.ParamUUID(ctx, "paperId")
	if err != nil {
		return err
	}

	res, err := c.service.IsLiked(ctx.Context(), userId, paperId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Like status", res))
}

func (c *greatController) Count(ctx *fiber.Ctx) error {
	paperId, err := serverutils.ParamUUID(ctx, "paperId")
	if err != nil {
		return err
	}

	res, err := c.service.CountLikes(ctx.Context(), paperId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Like count", res))
}

func (c *greatController) ListLiked(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}
	page, err := serverutils.ParsePage(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListLikedPapers(ctx.Context(), userId, page.Page, page.Size)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Liked papers", res))
}
