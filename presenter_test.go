package bmfg

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
)

func TestPresenterRegistry(t *testing.T) {
	found := false
	for _, name := range Presenters() {
		if name == "memory" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Presenters() = %v, missing built-in %q", Presenters(), "memory")
	}

	p, err := NewPresenterByName("memory")
	if err != nil {
		t.Fatalf("NewPresenterByName failed: %v", err)
	}
	if _, ok := p.(*MemoryPresenter); !ok {
		t.Errorf("memory backend produced %T, want *MemoryPresenter", p)
	}

	if _, err := NewPresenterByName("no-such-backend"); err == nil {
		t.Error("NewPresenterByName accepted an unregistered name")
	}
}

func TestRegisterPresenterReplaces(t *testing.T) {
	name := "test-backend"
	RegisterPresenter(name, func() (Presenter, error) {
		return NewMemoryPresenter(), nil
	})

	marker := NewMemoryPresenter()
	RegisterPresenter(name, func() (Presenter, error) {
		return marker, nil
	})

	p, err := NewPresenterByName(name)
	if err != nil {
		t.Fatalf("NewPresenterByName failed: %v", err)
	}
	if p != Presenter(marker) {
		t.Error("re-registration did not replace the factory")
	}
}

func TestMemoryPresenter(t *testing.T) {
	p := NewMemoryPresenter()

	if p.LastFrame() != nil {
		t.Error("LastFrame() non-nil before any Present")
	}

	frame := gg.NewPixmap(16, 16)
	if err := p.Present(frame); err != nil {
		t.Fatalf("Present failed: %v", err)
	}
	if p.LastFrame() != frame {
		t.Error("LastFrame() did not return the presented frame")
	}
	if got := p.PresentCount(); got != 1 {
		t.Errorf("PresentCount() = %d, want 1", got)
	}

	if err := p.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if p.LastFrame() != nil {
		t.Error("LastFrame() non-nil after Close")
	}
	if err := p.Present(frame); !errors.Is(err, ErrPresenterClosed) {
		t.Errorf("Present after Close = %v, want ErrPresenterClosed", err)
	}
}
