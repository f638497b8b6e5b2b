package controller

import (
	"ustory-be/internal/pkg/serverutils"
	"ustory-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INoticeController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noticeController struct {
	service service.INoticeService
	auth    fiber.Handler
}

func NewNoticeController(service service.INoticeService, auth fiber.Handler) INoticeController {
	return &noticeController{service: service, auth: auth}
}

func (c *noticeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notice")
	h.Get("/notices", c.auth, c.List)
	h.Delete("/:id", c.auth, c.Delete)
}

func (c *noticeController) List(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListByUser(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Notices", res))
}

// Delete does not check that the notice belongs to the caller.
func (c *noticeController) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUUID(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.service.DeleteByID(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
