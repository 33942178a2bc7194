package http

import (
	"errors"
	"net/http"

	"github.com/WWStoryMode/project-firefly/internal/core/application/usecases/commands"
	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/delivery"
	"github.com/WWStoryMode/project-firefly/internal/core/domain/model/order"
	"github.com/WWStoryMode/project-firefly/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Machine-readable error kinds exposed alongside the human message.
const (
	KindInvalidInput      = "invalid_input"
	KindInvalidTransition = "invalid_transition"
	KindNotFound          = "not_found"
	KindDependencyFailure = "dependency_failure"
)

// ErrorResponse is the envelope every failing endpoint returns.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// respondError classifies an application error into a status code and kind.
// Dependency failures are logged server-side and answered with an opaque
// message; everything else surfaces the error text to the caller.
func (s *Server) respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound) || errors.Is(err, commands.ErrNoOrderFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Error: err.Error(),
			Kind:  KindNotFound,
		})

	case errors.Is(err, order.ErrInvalidStatusTransition) ||
		errors.Is(err, delivery.ErrInvalidStatusTransition):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
			Kind:  KindInvalidTransition,
		})

	case errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) ||
		errors.Is(err, commands.ErrItemsAreRequired) ||
		errors.Is(err, commands.ErrAddressIsRequired):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
			Kind:  KindInvalidInput,
		})

	default:
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "internal error",
			Kind:  KindDependencyFailure,
		})
	}
}

// respondInvalidInput answers a boundary validation failure that never
// reached the application layer, such as an unparsable body or identifier.
func respondInvalidInput(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Error: message,
		Kind:  KindInvalidInput,
	})
}
