package errutil

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/constrisk/pkg/utils/logging"
)

// Handle logs the error with a message and reports it to Sentry when a
// client is configured. The error is returned unchanged.
func Handle(ctx context.Context, err error, msg string) error {
	if err == nil {
		return nil
	}

	logger := logging.From(ctx)

	var ge *goerr.Error
	if errors.As(err, &ge) {
		logger.Error(msg,
			"error", err.Error(),
			"values", ge.Values(),
			"stack", ge.Stacks(),
		)
	} else {
		logger.Error(msg, "error", err.Error())
	}

	report(ctx, err)
	return err
}

// ErrorResponse is the JSON body written for failed API requests
type ErrorResponse struct {
	Error    string `json:"error"`
	Field    string `json:"field,omitempty"`
	Expected string `json:"expected,omitempty"`
}

// HandleHTTP logs the error and writes a JSON error response. Client errors
// (4xx) are logged at warn level; server errors are logged at error level
// and reported to Sentry.
func HandleHTTP(ctx context.Context, w http.ResponseWriter, err error, statusCode int) {
	WriteHTTPError(ctx, w, err, statusCode, ErrorResponse{Error: http.StatusText(statusCode)})
}

// WriteHTTPError is HandleHTTP with a caller supplied response body.
func WriteHTTPError(ctx context.Context, w http.ResponseWriter, err error, statusCode int, body ErrorResponse) {
	if err == nil {
		return
	}

	logger := logging.From(ctx)
	attrs := []any{
		"status", statusCode,
		"error", err.Error(),
	}
	var ge *goerr.Error
	if errors.As(err, &ge) {
		attrs = append(attrs, "values", ge.Values())
		if statusCode >= http.StatusInternalServerError {
			attrs = append(attrs, "stack", ge.Stacks())
		}
	}

	if statusCode >= http.StatusInternalServerError {
		logger.Error("HTTP error", attrs...)
		report(ctx, err)
	} else {
		logger.Warn("HTTP client error", attrs...)
	}

	if body.Error == "" {
		body.Error = http.StatusText(statusCode)
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

func report(ctx context.Context, err error) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	if hub.Client() == nil {
		return
	}
	hub.CaptureException(err)
}
