package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/dataria445/Monsta/pkg/apiutil"
	"github.com/dataria445/Monsta/pkg/logger"
	"github.com/golang-jwt/jwt/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewHTTPErrorHandler converts every error escaping a handler into the
// uniform error envelope. In development the response carries the real
// message and a stack; in production internal errors collapse to a
// generic message.
func NewHTTPErrorHandler(development bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		log := logger.FromEcho(c)

		apiErr := translateError(err, c, development)
		if development {
			apiErr.Stack = string(debug.Stack())
		}

		if apiErr.StatusCode >= http.StatusInternalServerError {
			log.Error("request failed",
				zap.Int("status", apiErr.StatusCode),
				zap.String("path", c.Request().URL.Path),
				zap.Error(err))
		} else {
			log.Warn("request rejected",
				zap.Int("status", apiErr.StatusCode),
				zap.String("path", c.Request().URL.Path),
				zap.String("message", apiErr.Message))
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(apiErr.StatusCode)
			return
		}
		_ = c.JSON(apiErr.StatusCode, apiErr.Envelope(development))
	}
}

func translateError(err error, c echo.Context, development bool) *apiutil.Error {
	var apiErr *apiutil.Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.Code {
		case http.StatusNotFound:
			return apiutil.NewError(http.StatusNotFound,
				fmt.Sprintf("Route %s not found", c.Request().URL.Path))
		case http.StatusMethodNotAllowed:
			return apiutil.NewError(http.StatusMethodNotAllowed, "Method not allowed")
		case http.StatusRequestEntityTooLarge:
			return apiutil.NewError(http.StatusBadRequest, "Request body is too large")
		}
		return apiutil.NewError(httpErr.Code, fmt.Sprintf("%v", httpErr.Message))
	}

	// Unique index races surface as 23505 even after the application-level
	// duplicate check passed
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return apiutil.NewError(http.StatusConflict, "Duplicate value already exists").
			WithErrors([]apiutil.FieldError{{Field: pgErr.ConstraintName, Message: pgErr.Detail}})
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apiutil.NewError(http.StatusNotFound, "Resource not found")
	}
	if errors.Is(err, jwt.ErrTokenExpired) {
		return apiutil.NewError(http.StatusUnauthorized, "Token expired. Please login again")
	}

	if development {
		return apiutil.NewError(http.StatusInternalServerError, err.Error())
	}
	return apiutil.NewError(http.StatusInternalServerError, "Internal Server Error")
}
