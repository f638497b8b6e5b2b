package controller

import (
	"time"

	"ustory-be/internal/dto"
	"ustory-be/internal/pkg/apperror"
	"ustory-be/internal/pkg/serverutils"
	"ustory-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const civilDateLayout = "2006-01-02"

type IPaperController interface {
	RegisterRoutes(r fiber.Router)
	ListByDiary(ctx *fiber.Ctx) error
	ListMine(ctx *fiber.Ctx) error
	ListByWriter(ctx *fiber.Ctx) error
	Recommend(ctx *fiber.Ctx) error
}

type paperController struct {
	service  service.IPaperService
	auth     fiber.Handler
	location *time.Location
}

// NewPaperController interprets startDate and endDate as civil dates in loc.
func NewPaperController(service service.IPaperService, auth fiber.Handler, loc *time.Location) IPaperController {
	if loc == nil {
		loc = time.UTC
	}
	return &paperController{service: service, auth: auth, location: loc}
}

func (c *paperController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/papers")
	h.Get("/diaries/:diaryId", c.auth, c.ListByDiary)
	h.Get("/mine", c.auth, c.ListMine)
	h.Get("/writers/:writerId", c.auth, c.ListByWriter)
	h.Get("/recommend", c.auth, c.Recommend)
}

func requestTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, apperror.BadRequest("requestTime must be RFC3339")
	}
	return t, nil
}

func (c *paperController) civilDate(name, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(civilDateLayout, raw, c.location)
	if err != nil {
		return nil, apperror.BadRequest(name + " must be YYYY-MM-DD")
	}
	return &t, nil
}

func (c *paperController) ListByDiary(ctx *fiber.Ctx) error {
	diaryId, err := serverutils.ParamUUID(ctx, "diaryId")
	if err != nil {
		return err
	}
	page, err := serverutils.ParsePage(ctx)
	if err != nil {
		return err
	}
	var q dto.DiaryPapersQuery
	if err := ctx.QueryParser(&q); err != nil {
		return apperror.BadRequest("invalid query")
	}
	cursor, err := requestTime(q.RequestTime)
	if err != nil {
		return err
	}
	start, err := c.civilDate("startDate", q.StartDate)
	if err != nil {
		return err
	}
	end, err := c.civilDate("endDate", q.EndDate)
	if err != nil {
		return err
	}

	res, err := c.service.FindByDiaryAndDateRange(ctx.Context(), diaryId, cursor, page.Page, page.Size, start, end)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Diary papers", res))
}

func (c *paperController) ListMine(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.FindAllByUser(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("My papers", res))
}

func (c *paperController) ListByWriter(ctx *fiber.Ctx) error {
	writerId, err := serverutils.ParamUUID(ctx, "writerId")
	if err != nil {
		return err
	}
	page, err := serverutils.ParsePage(ctx)
	if err != nil {
		return err
	}
	var q dto.WriterPapersQuery
	if err := ctx.QueryParser(&q); err != nil {
		return apperror.BadRequest("invalid query")
	}
	cursor, err := requestTime(q.RequestTime)
	if err != nil {
		return err
	}

	res, err := c.service.FindByWriter(ctx.Context(), writerId, cursor, page.Page, page.Size)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Writer papers", res))
}

func (c *paperController) Recommend(ctx *fiber.Ctx) error {
	var q dto.AddressPapersQuery
	if err := ctx.QueryParser(&q); err != nil {
		return apperror.BadRequest("invalid query")
	}
	if err := serverutils.ValidateRequest(q); err != nil {
		return err
	}

	res, err := c.service.FindByAddress(ctx.Context(), q.City, q.Store)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Recommended papers", res))
}
