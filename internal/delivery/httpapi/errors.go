package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/aliskhannn/flashcards/internal/domain/entities"
	"github.com/aliskhannn/flashcards/internal/service"
	"github.com/aliskhannn/flashcards/internal/srs"
	"github.com/aliskhannn/flashcards/internal/validation"
)

var (
	errInvalidUserID = echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	errInvalidID     = echo.NewHTTPError(http.StatusBadRequest, "invalid id")
)

var (
	badRequestErrors = []error{
		srs.ErrInvalidQuality,
		service.ErrInvalidReminderHour,
		entities.ErrInvalidTimezone,
	}
	notFoundErrors = []error{
		entities.ErrFlashcardNotFound,
		entities.ErrDeckNotFound,
		entities.ErrUserNotFound,
		entities.ErrReviewStateNotFound,
		entities.ErrNoCardsDue,
	}
)

// newErrorHandler returns an echo.HTTPErrorHandler that maps domain errors to status codes.
func newErrorHandler(logger *zap.Logger, v *validation.Validator) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		code, message := classify(err, v)
		if code == http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}

		if m, ok := message.(string); ok {
			message = echo.Map{"error": m}
		}

		if c.Response().Committed {
			return
		}
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, message)
		}
		if err != nil {
			logger.Error("failed to write error response", zap.Error(err))
		}
	}
}

func classify(err error, v *validation.Validator) (int, any) {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if inner, ok := httpErr.Internal.(*echo.HTTPError); ok {
			httpErr = inner
		}
		return httpErr.Code, httpErr.Message
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest, v.Fields(verrs)
	}

	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest, target.Error()
		}
	}
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return http.StatusNotFound, target.Error()
		}
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
