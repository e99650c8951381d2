package bmfg

import (
	"strings"
	"sync"
	"testing"
)

// mouseRecorder records forwarded button events alongside messages.
type mouseRecorder struct {
	recordingListener

	mu     sync.Mutex
	downs  []MouseButton
	coords [][2]float64
}

func (m *mouseRecorder) MouseDown(x, y float64, button MouseButton) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.downs = append(m.downs, button)
	m.coords = append(m.coords, [2]float64{x, y})
}

func (m *mouseRecorder) buttons() []MouseButton {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MouseButton, len(m.downs))
	copy(out, m.downs)
	return out
}

// loadedEngine builds a 256x256 engine holding the synthetic bake.
// With that window the 64x64 atlas sits at (96, 96) unscaled, so the
// 'A' cell covers window pixels [96,112)x[96,112).
func loadedEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e := newTestEngine(t, append([]Option{WithWindowSize(256, 256)}, opts...)...)
	if err := e.LoadFont(saveSyntheticBake(t)); err != nil {
		t.Fatalf("LoadFont failed: %v", err)
	}
	return e
}

func TestOnMouseClickSelectsGlyph(t *testing.T) {
	l := &recordingListener{}
	e := loadedEngine(t, WithListener(l))

	if _, ok := e.SelectedGlyph(); ok {
		t.Fatal("a glyph is selected before any click")
	}

	if err := e.OnMouseClick(100, 100); err != nil {
		t.Fatalf("OnMouseClick failed: %v", err)
	}
	r, ok := e.SelectedGlyph()
	if !ok || r != 'A' {
		t.Fatalf("SelectedGlyph() = (%q, %v), want ('A', true)", r, ok)
	}

	var announced bool
	for _, text := range l.texts() {
		if strings.Contains(text, "selected") && strings.Contains(text, "A") {
			announced = true
		}
	}
	if !announced {
		t.Errorf("selection not announced; messages: %v", l.texts())
	}
}

func TestOnMouseClickMissClearsSelection(t *testing.T) {
	e := loadedEngine(t)

	if err := e.OnMouseClick(100, 100); err != nil {
		t.Fatalf("OnMouseClick failed: %v", err)
	}
	if _, ok := e.SelectedGlyph(); !ok {
		t.Fatal("click on a cell did not select")
	}

	// (10, 10) is outside the centered atlas entirely.
	if err := e.OnMouseClick(10, 10); err != nil {
		t.Fatalf("OnMouseClick failed: %v", err)
	}
	if _, ok := e.SelectedGlyph(); ok {
		t.Error("click on empty space kept the selection")
	}
}

func TestOnMouseClickIgnoredOffAtlasScreen(t *testing.T) {
	e := loadedEngine(t)
	if err := e.LoadState(StatePreview); err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}

	if err := e.OnMouseClick(100, 100); err != nil {
		t.Fatalf("OnMouseClick failed: %v", err)
	}
	if _, ok := e.SelectedGlyph(); ok {
		t.Error("click selected a glyph on the preview screen")
	}
}

func TestOnMouseClickWithoutBake(t *testing.T) {
	e := newTestEngine(t)
	if err := e.OnMouseClick(100, 100); err != nil {
		t.Errorf("OnMouseClick without a bake = %v, want nil", err)
	}
}

func TestOnMouseButtonForwarding(t *testing.T) {
	m := &mouseRecorder{}
	e := loadedEngine(t, WithListener(m))

	if err := e.OnMouseButton(100, 100, MouseRight); err != nil {
		t.Fatalf("OnMouseButton failed: %v", err)
	}
	if err := e.OnMouseButton(100, 100, MouseLeft); err != nil {
		t.Fatalf("OnMouseButton failed: %v", err)
	}

	got := m.buttons()
	if len(got) != 2 || got[0] != MouseRight || got[1] != MouseLeft {
		t.Errorf("forwarded buttons = %v, want [MouseRight MouseLeft]", got)
	}

	// Only the left button runs the hit test.
	if r, ok := e.SelectedGlyph(); !ok || r != 'A' {
		t.Errorf("SelectedGlyph() = (%q, %v) after left click, want ('A', true)", r, ok)
	}
}

func TestOnMouseButtonPlainListener(t *testing.T) {
	// A listener without the MouseListener capability still works;
	// the event is simply not forwarded.
	l := &recordingListener{}
	e := loadedEngine(t, WithListener(l))

	if err := e.OnMouseButton(100, 100, MouseMiddle); err != nil {
		t.Errorf("OnMouseButton = %v, want nil", err)
	}
}
