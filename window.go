package bmfg

// windowState is the engine-owned window descriptor. Its lifetime is
// coupled to the engine handle; there is no separate create/destroy.
type windowState struct {
	width      int
	height     int
	x, y       int
	borderless bool
}

// validateWindowSize rejects dimensions that would corrupt the window
// or frame buffer state.
func validateWindowSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return &WindowSizeError{Width: width, Height: height}
	}
	return nil
}

// WindowWidth returns the window width.
func (e *Engine) WindowWidth() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.win.width
}

// WindowHeight returns the window height.
func (e *Engine) WindowHeight() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.win.height
}

// WindowPosition returns the window position.
func (e *Engine) WindowPosition() (x, y int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.win.x, e.win.y
}

// Borderless reports whether the window is borderless.
func (e *Engine) Borderless() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.win.borderless
}

// WindowHandle returns the presenter's opaque native surface handle
// for host-side embedding, or 0 when presenting headless.
func (e *Engine) WindowHandle() uintptr {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.presenter == nil {
		return 0
	}
	return e.presenter.NativeHandle()
}

// SetWindowSize resizes the window. Invalid dimensions are rejected
// with a *WindowSizeError and the previous size is kept. The frame
// buffers pick up the new size at the next Render.
func (e *Engine) SetWindowSize(width, height int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.requireRunning(); err != nil {
		return err
	}
	if err := validateWindowSize(width, height); err != nil {
		return err
	}
	e.win.width = width
	e.win.height = height
	Logger().Debug("window resized", "width", width, "height", height)
	return nil
}

// SetWindowPosition moves the window.
func (e *Engine) SetWindowPosition(x, y int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.requireRunning(); err != nil {
		return err
	}
	e.win.x = x
	e.win.y = y
	return nil
}

// SetWindowSizeAndBorderless applies a resize and a style change as
// one transition, so a host never observes the intermediate
// resized-but-still-framed window. On invalid dimensions neither
// change is applied.
func (e *Engine) SetWindowSizeAndBorderless(width, height int, borderless bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.requireRunning(); err != nil {
		return err
	}
	if err := validateWindowSize(width, height); err != nil {
		return err
	}
	e.win.width = width
	e.win.height = height
	e.win.borderless = borderless
	Logger().Debug("window restyled",
		"width", width, "height", height, "borderless", borderless)
	return nil
}
