package errutil_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/constrisk/pkg/utils/errutil"
	"github.com/secmon-lab/constrisk/pkg/utils/logging"
)

func newLoggedContext() (context.Context, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	return logging.With(context.Background(), logger), &buf
}

func TestHandle(t *testing.T) {
	ctx, buf := newLoggedContext()

	gt.NoError(t, errutil.Handle(ctx, nil, "nothing"))

	err := goerr.New("boom", goerr.V("key", "value"))
	gt.Value(t, errutil.Handle(ctx, err, "handled")).Equal(error(err))
	gt.String(t, buf.String()).Contains("handled")
	gt.String(t, buf.String()).Contains("value")
}

func TestHandleHTTP(t *testing.T) {
	t.Run("writes JSON body with status text", func(t *testing.T) {
		ctx, buf := newLoggedContext()
		w := httptest.NewRecorder()

		errutil.HandleHTTP(ctx, w, errors.New("db down"), http.StatusInternalServerError)

		gt.Value(t, w.Code).Equal(http.StatusInternalServerError)
		gt.Value(t, w.Header().Get("Content-Type")).Equal("application/json")

		var resp errutil.ErrorResponse
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp)).Required()
		gt.Value(t, resp.Error).Equal("Internal Server Error")
		gt.String(t, buf.String()).Contains("db down")
	})

	t.Run("client errors keep the caller body", func(t *testing.T) {
		ctx, buf := newLoggedContext()
		w := httptest.NewRecorder()

		errutil.WriteHTTPError(ctx, w, errors.New("bad"), http.StatusBadRequest, errutil.ErrorResponse{
			Error:    "invalid field value",
			Field:    "duration",
			Expected: "integer >= 0",
		})

		gt.Value(t, w.Code).Equal(http.StatusBadRequest)
		var resp errutil.ErrorResponse
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp)).Required()
		gt.Value(t, resp.Field).Equal("duration")
		gt.Value(t, resp.Expected).Equal("integer >= 0")
		gt.String(t, buf.String()).Contains(`"level":"WARN"`)
	})

	t.Run("nil error writes nothing", func(t *testing.T) {
		w := httptest.NewRecorder()
		errutil.HandleHTTP(context.Background(), w, nil, http.StatusBadRequest)
		gt.Value(t, w.Body.Len()).Equal(0)
	})
}
