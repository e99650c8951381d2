package bmfg

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// UpdateFrame advances the engine clock by dt seconds. The clock
// drives time-dependent preview drawing (the selection blink); the
// host calls it once per loop iteration with its measured frame time.
func (e *Engine) UpdateFrame(dt float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.requireRunning(); err != nil {
		return err
	}
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidDelta, dt)
	}
	e.clock += dt
	return nil
}

// Render draws the active screen into the back buffer. It does not
// present anything: SwapBuffers publishes the frame, so a host can
// pace scene work and presentation independently.
func (e *Engine) Render() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.requireRunning(); err != nil {
		return err
	}

	w, h := e.win.width, e.win.height
	if e.back == nil || e.back.Width() != w || e.back.Height() != h {
		e.back = gg.NewPixmap(w, h)
	}

	dc := gg.NewContext(w, h, gg.WithPixmap(e.back))
	e.drawScreen(dc)
	return nil
}

// SwapBuffers makes the back buffer the current frame and hands it to
// the presenter. Before the first Render there is nothing to present
// and SwapBuffers fails with ErrNoFrame.
func (e *Engine) SwapBuffers() error {
	e.mu.Lock()
	if err := e.requireRunning(); err != nil {
		e.mu.Unlock()
		return err
	}
	if e.back == nil {
		e.mu.Unlock()
		return ErrNoFrame
	}
	e.front, e.back = e.back, e.front
	e.frames++
	frame, p := e.front, e.presenter
	e.mu.Unlock()

	if p != nil {
		if err := p.Present(frame); err != nil {
			return fmt.Errorf("bmfg: present failed: %w", err)
		}
	}
	return nil
}

// Frame returns the most recently presented frame, nil before the
// first SwapBuffers. The engine draws the next-but-one frame into the
// same pixmap, so hosts that keep frames across swaps must copy.
func (e *Engine) Frame() *gg.Pixmap {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.front
}

// FrameCount returns the number of presented frames.
func (e *Engine) FrameCount() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frames
}

// Clock returns the accumulated frame time in seconds.
func (e *Engine) Clock() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.clock
}
