package bmfg

import (
	"errors"
	"fmt"
)

// Sentinel errors for the engine lifecycle and operations.
var (
	// ErrShutDown is returned by operations on an engine that has been
	// shut down but not yet released.
	ErrShutDown = errors.New("bmfg: engine is shut down")

	// ErrReleased is returned by operations on a released engine.
	ErrReleased = errors.New("bmfg: engine is released")

	// ErrNotShutDown is returned by Release when the engine is still
	// running; Shutdown must complete first.
	ErrNotShutDown = errors.New("bmfg: release requires shutdown first")

	// ErrInvalidState is returned by LoadState for a state outside the
	// declared constants.
	ErrInvalidState = errors.New("bmfg: invalid state")

	// ErrInvalidDelta is returned by UpdateFrame for a negative or
	// non-finite delta time.
	ErrInvalidDelta = errors.New("bmfg: invalid delta time")

	// ErrNoFont is returned by RebakeFont when no font has been
	// imported.
	ErrNoFont = errors.New("bmfg: no font imported")

	// ErrNoBake is returned by ExportFont when no bake exists.
	ErrNoBake = errors.New("bmfg: no bake to export")

	// ErrNoFrame is returned by SwapBuffers before the first Render.
	ErrNoFrame = errors.New("bmfg: no rendered frame to present")
)

// WindowSizeError reports a rejected window resize. The engine keeps
// its previous window state when returning one.
type WindowSizeError struct {
	Width  int
	Height int
}

func (e *WindowSizeError) Error() string {
	return fmt.Sprintf("bmfg: invalid window size %dx%d", e.Width, e.Height)
}
