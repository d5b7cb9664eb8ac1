package app

import (
	"context"
	"time"

	"github.com/randomtoy/spinwheel/internal/domain"
	"github.com/randomtoy/spinwheel/internal/ports"
)

// Animate feeds frames to r, one per interval, until the source runs dry
// or ctx ends. The first frame is rendered immediately.
func Animate(ctx context.Context, frames *domain.FrameSource, interval time.Duration, r ports.FrameRenderer) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		f, ok := frames.Next()
		if !ok {
			return nil
		}
		if err := r.RenderFrame(ctx, f); err != nil {
			return err
		}
		if f.Final {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
