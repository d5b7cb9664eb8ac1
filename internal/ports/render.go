package ports

import (
	"context"

	"github.com/randomtoy/spinwheel/internal/domain"
)

// FrameRenderer draws one rotation sample. Returning an error stops the spin.
type FrameRenderer interface {
	RenderFrame(ctx context.Context, f domain.Frame) error
}

// Chime plays spin feedback sounds. Implementations must not block.
type Chime interface {
	// Tick marks a slice boundary passing a pointer.
	Tick()
	// Land marks the wheel coming to rest.
	Land()
}
