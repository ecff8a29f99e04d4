package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/DUBIX17/Dubix-sophia/domain"
	"github.com/DUBIX17/Dubix-sophia/utils/log"
)

// MissingInputMessage is the 400 body text when api_key or text is absent.
const MissingInputMessage = "Missing api_key or text"

type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler renders every failure as {"error": "..."} with the status
// matching its kind. It is installed as echo's HTTPErrorHandler.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, msg := statusFor(err)
	if status == http.StatusInternalServerError {
		var upErr *domain.UpstreamError
		if !errors.As(err, &upErr) {
			log.WithCtx(c.Request().Context()).Error("unhandled error", zap.Error(err))
		}
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, ErrorResponse{Error: msg})
	}
	if err != nil {
		log.WithCtx(c.Request().Context()).Error("writing error response", zap.Error(err))
	}
}

func statusFor(err error) (int, string) {
	var (
		upErr   *domain.UpstreamError
		httpErr *echo.HTTPError
	)
	switch {
	case errors.Is(err, domain.ErrMissingInput):
		return http.StatusBadRequest, MissingInputMessage
	case errors.As(err, &upErr):
		return http.StatusInternalServerError, upErr.Error()
	case errors.As(err, &httpErr):
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}
