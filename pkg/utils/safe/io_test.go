package safe_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/constrisk/pkg/utils/logging"
	"github.com/secmon-lab/constrisk/pkg/utils/safe"
)

type failingCloser struct{ called bool }

func (c *failingCloser) Close() error {
	c.called = true
	return errors.New("close failed")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func newContext(buf *bytes.Buffer) context.Context {
	logger := slog.New(slog.NewTextHandler(buf, nil))
	return logging.With(context.Background(), logger)
}

func TestClose(t *testing.T) {
	t.Run("logs close error", func(t *testing.T) {
		var buf bytes.Buffer
		c := &failingCloser{}
		safe.Close(newContext(&buf), c)
		gt.B(t, c.called).True()
		gt.S(t, buf.String()).Contains("close failed")
	})

	t.Run("nil closer is ignored", func(t *testing.T) {
		var buf bytes.Buffer
		safe.Close(newContext(&buf), nil)
		gt.Value(t, buf.Len()).Equal(0)
	})
}

func TestWrite(t *testing.T) {
	t.Run("writes data", func(t *testing.T) {
		var out, logs bytes.Buffer
		safe.Write(newContext(&logs), &out, []byte("hello"))
		gt.Value(t, out.String()).Equal("hello")
		gt.Value(t, logs.Len()).Equal(0)
	})

	t.Run("logs write error", func(t *testing.T) {
		var logs bytes.Buffer
		safe.Write(newContext(&logs), failingWriter{}, []byte("hello"))
		gt.S(t, logs.String()).Contains("broken pipe")
	})

	t.Run("nil writer is ignored", func(t *testing.T) {
		var logs bytes.Buffer
		safe.Write(newContext(&logs), nil, []byte("hello"))
		gt.Value(t, logs.Len()).Equal(0)
	})
}
