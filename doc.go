// Package bmfg provides the bitmap font baking engine behind the BMFG
// tool.
//
// # Overview
//
// The engine owns one imported font, one baked glyph atlas, and a
// small preview renderer. A host drives it through an explicit
// handle: import a font, rebake its atlas with new parameters, export
// the result as a BMFont .fnt descriptor plus PNG page, and poll the
// frame loop to show previews.
//
// # Quick Start
//
//	import "github.com/EliasRenko/bmfg"
//
//	bmfg.Bootstrap()
//
//	engine, err := bmfg.New(bmfg.WithListener(bmfg.ListenerFunc(func(m bmfg.Message) {
//	    log.Println(m.Text)
//	})))
//	if err != nil { ... }
//
//	if err := engine.ImportFont("fonts/Roboto-Regular.ttf", 32); err != nil { ... }
//	if err := engine.ExportFont("out/roboto"); err != nil { ... }
//
//	for engine.IsRunning() {
//	    engine.UpdateFrame(dt)
//	    engine.Render()
//	    engine.SwapBuffers()
//	}
//
//	engine.Shutdown()
//	engine.Release()
//
// # Lifecycle
//
// An Engine moves through Running, ShutDown and Released, in that
// order and only in that order. Shutdown stops the subsystems and
// drops the bake and frame buffers but keeps the handle addressable;
// Release frees the handle. Out-of-order transitions are rejected
// with typed errors rather than left undefined.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Engine, Listener, Presenter, State
//   - bake: glyph rasterization, shelf packing, kerning extraction
//   - bmfont: the .fnt + PNG page codec
//
// Preview frames are drawn with github.com/gogpu/gg and published
// through a Presenter; the default presenter keeps frames in memory so
// the engine runs fully headless.
package bmfg
