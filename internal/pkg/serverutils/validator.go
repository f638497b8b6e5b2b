package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"ustory-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateRequest returns a BadRequest describing the failed fields.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperror.BadRequest(err.Error())
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s", fe.Field(), fe.Tag()))
		}
	}
	return apperror.BadRequest(strings.Join(msgs, "; "))
}

type PageRequest struct {
	Page int `query:"page" validate:"min=1"`
	Size int `query:"size" validate:"min=1,max=100"`
}

// ParsePage reads page and size from the query string. Missing values default to page 1 and DefaultPageSize.
func ParsePage(ctx *fiber.Ctx) (PageRequest, error) {
	req := PageRequest{Page: 1, Size: DefaultPageSize}
	if err := ctx.QueryParser(&req); err != nil {
		return req, apperror.BadRequest("page and size must be integers")
	}
	if err := ValidateRequest(req); err != nil {
		return req, err
	}
	return req, nil
}

// ParseBody decodes and validates a JSON body.
func ParseBody(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		return apperror.BadRequest("malformed request body")
	}
	return ValidateRequest(req)
}
