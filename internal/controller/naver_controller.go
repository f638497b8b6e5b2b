package controller

import (
	"ustory-be/internal/dto"
	"ustory-be/internal/pkg/apperror"
	"ustory-be/internal/pkg/serverutils"
	"ustory-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INaverController interface {
	RegisterRoutes(r fiber.Router)
	Redirect(ctx *fiber.Ctx) error
	Callback(ctx *fiber.Ctx) error
	LoginWithToken(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type naverController struct {
	service service.INaverService
	auth    fiber.Handler
}

func NewNaverController(service service.INaverService, auth fiber.Handler) INaverController {
	return &naverController{service: service, auth: auth}
}

func (c *naverController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/naver")
	h.Get("/login", c.Redirect)
	h.Get("/callback", c.Callback)
	h.Post("/login", c.LoginWithToken)
	h.Post("/logout", c.auth, c.Logout)
}

func (c *naverController) Redirect(ctx *fiber.Ctx) error {
	url, err := c.service.LoginURL(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.Redirect(url, fiber.StatusTemporaryRedirect)
}

func (c *naverController) Callback(ctx *fiber.Ctx) error {
	var q dto.NaverCallbackQuery
	if err := ctx.QueryParser(&q); err != nil {
		return apperror.BadRequest("invalid query")
	}
	if err := serverutils.ValidateRequest(q); err != nil {
		return err
	}

	res, err := c.service.HandleCallback(ctx.Context(), q.Code, q.State)
	if err != nil {
		return err
	}
	return c.respondLogin(ctx, res)
}

func (c *naverController) LoginWithToken(ctx *fiber.Ctx) error {
	var req dto.NaverTokenLoginRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.LoginWithToken(ctx.Context(), req.AccessToken)
	if err != nil {
		return err
	}
	return c.respondLogin(ctx, res)
}

func (c *naverController) respondLogin(ctx *fiber.Ctx, res *dto.LoginResponse) error {
	ctx.Set(fiber.HeaderAuthorization, "Bearer "+res.AccessToken)
	return ctx.JSON(serverutils.SuccessResponse("Login success", res))
}

func (c *naverController) Logout(ctx *fiber.Ctx) error {
	accessToken, _ := ctx.Locals(serverutils.LocalAccessToken).(string)
	if err := c.service.LogOut(ctx.Context(), accessToken); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
