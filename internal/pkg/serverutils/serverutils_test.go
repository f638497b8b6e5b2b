package serverutils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"ustory-be/internal/pkg/apperror"
	"ustory-be/internal/pkg/logger"
	"ustory-be/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: NewErrorHandler(logger.NewNopLogger())})
	app.Use(ErrorHandlerMiddleware(logger.NewNopLogger()))
	return app
}


func TestErrorHandlerMapsKinds(t *testing.T) {
	tests := []struct {
		err  error
		code int
		msg  string
	}{
		{apperror.NotFound("paper not found"), fiber.StatusNotFound, "paper not found"},
		{apperror.Conflict("already liked"), fiber.StatusConflict, "already liked"},
		{apperror.BadRequest("bad page"), fiber.StatusBadRequest, "bad page"},
		{apperror.Unauthorized("missing token"), fiber.StatusUnauthorized, "missing token"},
		{apperror.Internal("db down", assert.AnError), fiber.StatusInternalServerError, "internal server error"},
		{fiber.NewError(fiber.StatusTeapot, "teapot"), fiber.StatusTeapot, "teapot"},
	}

	for _, tt := range tests {
		app := newTestApp()
		err := tt.err
		app.Get("/", func(ctx *fiber.Ctx) error { return err })

		resp, reqErr := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, reqErr)
		assert.Equal(t, tt.code, resp.StatusCode)

		var body BaseResponse[any]
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.False(t, body.Success)
		assert.Equal(t, tt.msg, body.Message)
	}
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		query string
		page  int
		size  int
		code  int
	}{
		{"", 1, DefaultPageSize, fiber.StatusOK},
		{"?page=2&size=10", 2, 10, fiber.StatusOK},
		{"?page=0", 0, 0, fiber.StatusBadRequest},
		{"?size=101", 0, 0, fiber.StatusBadRequest},
		{"?size=-1", 0, 0, fiber.StatusBadRequest},
		{"?page=abc", 0, 0, fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		app := newTestApp()
		var got PageRequest
		app.Get("/", func(ctx *fiber.Ctx) error {
			p, err := ParsePage(ctx)
			if err != nil {
				return err
			}
			got = p
			return ctx.SendStatus(fiber.StatusOK)
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/"+tt.query, nil))
		require.NoError(t, err)
		assert.Equal(t, tt.code, resp.StatusCode, tt.query)
		if tt.code == fiber.StatusOK {
			assert.Equal(t, PageRequest{Page: tt.page, Size: tt.size}, got)
		}
	}
}

func TestJwtMiddleware(t *testing.T) {
	provider := token.NewProvider("secret", time.Hour, time.Hour)
	userID := uuid.New()
	access, err := provider.GenerateAccessToken(userID.String(), "NAVER")
	require.NoError(t, err)
	refresh, err := provider.GenerateRefreshToken(userID.String(), "NAVER")
	require.NoError(t, err)

	app := newTestApp()
	app.Get("/me", NewJwtMiddleware(provider), func(ctx *fiber.Ctx) error {
		id, err := CurrentUserID(ctx)
		if err != nil {
			return err
		}
		return ctx.SendString(id.String())
	})

	tests := []struct {
		name   string
		header string
		code   int
	}{
		{"valid", "Bearer " + access, fiber.StatusOK},
		{"missing", "", fiber.StatusUnauthorized},
		{"not bearer", "Basic abc", fiber.StatusUnauthorized},
		{"refresh token", "Bearer " + refresh, fiber.StatusUnauthorized},
		{"garbage", "Bearer abc.def.ghi", fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.code, resp.StatusCode)
		})
	}
}

func TestValidateRequest(t *testing.T) {
	type body struct {
		Email string `validate:"required,email"`
	}

	assert.NoError(t, ValidateRequest(body{Email: "minsu@example.com"}))

	err := ValidateRequest(body{Email: "nope"})
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindBadRequest))
	assert.Contains(t, err.Error(), "Email")
}
