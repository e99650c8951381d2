package bmfg

import (
	"fmt"
	"math"
)

// OnMouseClick forwards a click at window-local coordinates. On the
// atlas screen a click selects the glyph cell under the cursor (and a
// click on empty space clears the selection); a new selection is
// announced through the listener. Other screens ignore clicks.
func (e *Engine) OnMouseClick(x, y int) error {
	e.mu.Lock()
	if err := e.requireRunning(); err != nil {
		e.mu.Unlock()
		return err
	}
	msg, notify := e.clickLocked(float64(x), float64(y))
	e.mu.Unlock()

	if notify {
		e.emit(MessageInfo, msg)
	}
	return nil
}

// OnMouseButton forwards a full button event. Listeners implementing
// the MouseListener capability receive the event as-is; a left click
// additionally behaves like OnMouseClick.
func (e *Engine) OnMouseButton(x, y float64, button MouseButton) error {
	e.mu.Lock()
	if err := e.requireRunning(); err != nil {
		e.mu.Unlock()
		return err
	}
	var msg string
	var notify bool
	if button == MouseLeft {
		msg, notify = e.clickLocked(x, y)
	}
	e.mu.Unlock()

	if slot := e.listener.Load(); slot != nil {
		if ml, ok := slot.l.(MouseListener); ok {
			ml.MouseDown(x, y, button)
		}
	}
	if notify {
		e.emit(MessageInfo, msg)
	}
	return nil
}

// clickLocked runs the atlas hit test and updates the selection.
// Callers hold mu. The returned message is emitted after unlocking.
func (e *Engine) clickLocked(x, y float64) (string, bool) {
	if e.screen != StateAtlas || e.bake == nil {
		return "", false
	}

	bounds := e.bake.Atlas.Bounds()
	ax, ay, scale := atlasLayout(e.win.width, e.win.height, bounds.Dx(), bounds.Dy())
	if scale <= 0 {
		return "", false
	}

	// Window coordinates back to atlas pixels.
	px := (x - ax) / scale
	py := (y - ay) / scale

	for _, g := range e.bake.Glyphs {
		if px < float64(g.X) || px >= float64(g.X+g.Width) ||
			py < float64(g.Y) || py >= float64(g.Y+g.Height) {
			continue
		}
		e.selected = g.Rune
		e.hasSelected = true
		Logger().Debug("glyph selected",
			"rune", string(g.Rune), "x", math.Floor(px), "y", math.Floor(py))
		return fmt.Sprintf("selected %q (U+%04X)", g.Rune, g.Rune), true
	}

	e.hasSelected = false
	return "", false
}

// SelectedGlyph returns the rune of the selected glyph cell, ok false
// when nothing is selected.
func (e *Engine) SelectedGlyph() (r rune, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.hasSelected {
		return 0, false
	}
	return e.selected, true
}
