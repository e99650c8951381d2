package bmfg

// Option configures an Engine during creation.
//
// Example:
//
//	// Headless engine with defaults
//	e, err := bmfg.New()
//
//	// Engine embedded in a host window
//	e, err := bmfg.New(
//	    bmfg.WithWindowSize(1280, 720),
//	    bmfg.WithPresenter(hostPresenter),
//	    bmfg.WithListener(host),
//	)
type Option func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	listener   Listener
	presenter  Presenter
	width      int
	height     int
	x, y       int
	borderless bool
	sampleText string
}

// defaultEngineOptions returns the default engine options.
func defaultEngineOptions() engineOptions {
	return engineOptions{
		width:      1024,
		height:     640,
		sampleText: "Sphinx of black quartz, judge my vow",
	}
}

// WithListener registers a listener before the engine can emit its
// first message.
func WithListener(l Listener) Option {
	return func(o *engineOptions) { o.listener = l }
}

// WithPresenter sets the presenter frames are published to. The
// default is an in-memory presenter (see NewMemoryPresenter).
func WithPresenter(p Presenter) Option {
	return func(o *engineOptions) { o.presenter = p }
}

// WithWindowSize sets the initial window size. New rejects
// non-positive dimensions.
func WithWindowSize(width, height int) Option {
	return func(o *engineOptions) {
		o.width = width
		o.height = height
	}
}

// WithWindowPosition sets the initial window position.
func WithWindowPosition(x, y int) Option {
	return func(o *engineOptions) {
		o.x = x
		o.y = y
	}
}

// WithBorderless sets the initial borderless flag.
func WithBorderless(borderless bool) Option {
	return func(o *engineOptions) { o.borderless = borderless }
}

// WithSampleText sets the text shown on the preview screen.
func WithSampleText(text string) Option {
	return func(o *engineOptions) {
		if text != "" {
			o.sampleText = text
		}
	}
}
