package safe

import (
	"context"
	"io"
	"log/slog"

	"github.com/secmon-lab/constrisk/pkg/utils/logging"
)

// Close closes closer and logs the error instead of returning it. A nil
// closer is ignored.
func Close(ctx context.Context, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.From(ctx).Warn("failed to close", slog.Any("error", err))
	}
}

// Write writes data to w and logs a failed or short write. A nil writer is
// ignored.
func Write(ctx context.Context, w io.Writer, data []byte) {
	if w == nil {
		return
	}
	n, err := w.Write(data)
	if err != nil {
		logging.From(ctx).Warn("failed to write response",
			slog.Any("error", err),
			slog.Int("written", n),
			slog.Int("size", len(data)),
		)
	}
}
