package transfer

import (
	"context"
	"log/slog"
	"os"

	"github.com/aretw0/lifecycle"
)

// Runner performs asynchronous file imports: the file is read off the
// calling goroutine and apply runs only on successful completion.
//
// Known hazard, kept on purpose: starting a second import before the first
// completes is allowed and the later completion wins, regardless of start
// order. With a single user driving one keeper this is acceptable; it is
// documented by a test rather than coordinated away.
type Runner struct {
	logger *slog.Logger
}

// NewRunner creates a Runner. A nil logger falls back to the default.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{logger: logger}
}

// ImportFile reads path in a supervised goroutine and invokes apply with
// the raw bytes once the read completes. The returned channel receives the
// outcome exactly once: the read error, or whatever apply returned.
//
// There is no cancellation of an in-flight read beyond ctx itself.
func (r *Runner) ImportFile(ctx context.Context, path string, apply func(ctx context.Context, data []byte) error) <-chan error {
	done := make(chan error, 1)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		data, err := os.ReadFile(path)
		if err != nil {
			r.logger.Warn("import read failed", "path", path, "error", err)
			done <- err
			return nil
		}

		if err := ctx.Err(); err != nil {
			done <- err
			return nil
		}

		done <- apply(ctx, data)
		return nil
	}, lifecycle.WithErrorHandler(func(err error) {
		r.logger.Error("import panic", "path", path, "error", err)
		done <- err
	}))

	return done
}
