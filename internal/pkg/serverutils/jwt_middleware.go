package serverutils

import (
	"strings"

	"ustory-be/internal/pkg/apperror"
	"ustory-be/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	LocalUserID      = "user_id"
	LocalAccessToken = "access_token"
)

type TokenParser interface {
	Parse(expectedType, tokenStr string) (*token.Claims, error)
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(ctx *fiber.Ctx) (string, bool) {
	authHeader := ctx.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	tok := strings.TrimSpace(authHeader[len("Bearer "):])
	return tok, tok != ""
}

func NewJwtMiddleware(parser TokenParser) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr, ok := BearerToken(ctx)
		if !ok {
			return apperror.Unauthorized("missing token")
		}

		claims, err := parser.Parse(token.TypeAccess, tokenStr)
		if err != nil {
			return apperror.Unauthorized("invalid token")
		}

		ctx.Locals(LocalUserID, claims.UserID)
		ctx.Locals(LocalAccessToken, tokenStr)
		return ctx.Next()
	}
}

func CurrentUserID(ctx *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, ok := ctx.Locals(LocalUserID).(string)
	if !ok || userIDStr == "" {
		return uuid.Nil, apperror.Unauthorized("missing user identity")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, apperror.Unauthorized("invalid user identity")
	}
	return userID, nil
}

// ParamUUID parses a path parameter as a uuid.
func ParamUUID(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, apperror.BadRequest(name + " must be a valid id")
	}
	return id, nil
}
