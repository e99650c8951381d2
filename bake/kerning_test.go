package bake

import (
	"errors"
	"math"
	"os"
	"testing"
)

// testFontData loads a real font from the host for tests that need
// actual shaping, skipping when none is installed.
func testFontData(t *testing.T) []byte {
	t.Helper()
	candidates := []string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
		"/usr/share/fonts/dejavu/DejaVuSans.ttf",
		"/System/Library/Fonts/Supplemental/Arial.ttf",
		"C:\\Windows\\Fonts\\arial.ttf",
	}
	for _, path := range candidates {
		if data, err := os.ReadFile(path); err == nil {
			return data
		}
	}
	t.Skip("no system font available for shaping tests")
	return nil
}

func TestNewShapedKernerEmptyData(t *testing.T) {
	if _, err := NewShapedKerner(nil, 16); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewShapedKerner(nil) = %v, want ErrEmptyFontData", err)
	}
}

func TestNewShapedKernerGarbageData(t *testing.T) {
	if _, err := NewShapedKerner([]byte("not a font"), 16); err == nil {
		t.Error("NewShapedKerner accepted garbage data")
	}
}

func TestShapedKernerKern(t *testing.T) {
	const size = 32.0
	k, err := NewShapedKerner(testFontData(t), size)
	if err != nil {
		t.Fatalf("NewShapedKerner failed: %v", err)
	}

	// The adjustment is pair advance minus solo advances, so it must
	// match what shape reports directly.
	first, second := 'A', 'V'
	pair := k.shape([]rune{first, second})
	solo := k.shape([]rune{first}) + k.shape([]rune{second})
	if want := float64(pair-solo) / 64; k.Kern(first, second) != want {
		t.Errorf("Kern(%q, %q) = %v, want %v", first, second, k.Kern(first, second), want)
	}

	// Sanity: a real font's adjustment stays well under the size, and
	// repeated calls hit the advance cache without drifting.
	got := k.Kern(first, second)
	if math.IsNaN(got) || math.Abs(got) >= size {
		t.Errorf("Kern(%q, %q) = %v, not a plausible adjustment", first, second, got)
	}
	if again := k.Kern(first, second); again != got {
		t.Errorf("Kern not deterministic: %v then %v", got, again)
	}
}
