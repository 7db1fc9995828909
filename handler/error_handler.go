package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/sourcefeed/pkg/logger"
)

// DefaultErrorHandler writes the key of an HTTPError with its status, and
// 500 "internal_error" for anything else.
func DefaultErrorHandler[C Context](ctx C, err error) {
	httpErr := asHTTPError(err)
	http.Error(ctx.ResponseWriter(), httpErr.Key, httpErr.Code)
}

// NewErrorHandler returns an ErrorHandler that logs server errors at error
// level and client errors at debug level before writing the response.
func NewErrorHandler[C Context](log *slog.Logger) ErrorHandler[C] {
	if log == nil {
		log = logger.NewNop()
	}
	return func(ctx C, err error) {
		httpErr := asHTTPError(err)
		r := ctx.Request()
		attrs := []any{
			logger.Error(err),
			slog.Int("status", httpErr.Code),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		}
		if httpErr.Code >= http.StatusInternalServerError {
			log.ErrorContext(ctx, "request failed", attrs...)
		} else {
			log.DebugContext(ctx, "request rejected", attrs...)
		}
		http.Error(ctx.ResponseWriter(), httpErr.Key, httpErr.Code)
	}
}

func asHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return ErrInternalServerError
}
