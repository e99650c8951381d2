package bmfg

import (
	"fmt"
	"path/filepath"

	"github.com/EliasRenko/bmfg/bake"
	"github.com/EliasRenko/bmfg/bmfont"
)

// ImportFont loads a TTF or OTF source font and bakes it immediately
// with the engine's default atlas parameters at the given size in
// pixels. The import replaces any previous source and bake.
func (e *Engine) ImportFont(path string, size float64) error {
	e.mu.Lock()
	err := e.importFontLocked(path, size)
	msgs := e.takePending()
	e.mu.Unlock()
	e.flush(msgs)
	return err
}

func (e *Engine) importFontLocked(path string, size float64) error {
	if err := e.requireRunning(); err != nil {
		return err
	}

	source, err := bake.NewSourceFromFile(path)
	if err != nil {
		e.queue(MessageError, err.Error())
		return err
	}

	cfg := bake.DefaultConfig(size)
	b, err := e.bakeLocked(source, cfg)
	if err != nil {
		e.queue(MessageError, err.Error())
		return err
	}

	e.source = source
	e.fontPath = path
	e.cfg = cfg
	e.setBakeLocked(b)

	Logger().Info("font imported",
		"path", path, "face", source.Name(), "size", size)
	e.queue(MessageInfo, fmt.Sprintf("imported %s at %gpx", displayName(source, path), size))
	return nil
}

// RebakeFont regenerates the atlas from the imported source with new
// parameters. A zero NumChars validates the config but keeps the
// current bake. On any error the previous bake stays current; there
// are no partial bakes.
func (e *Engine) RebakeFont(cfg bake.Config) error {
	e.mu.Lock()
	err := e.rebakeFontLocked(cfg)
	msgs := e.takePending()
	e.mu.Unlock()
	e.flush(msgs)
	return err
}

func (e *Engine) rebakeFontLocked(cfg bake.Config) error {
	if err := e.requireRunning(); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		e.queue(MessageError, err.Error())
		return err
	}
	if cfg.NumChars == 0 {
		return nil
	}
	if e.source == nil {
		e.queue(MessageError, ErrNoFont.Error())
		return ErrNoFont
	}

	b, err := e.bakeLocked(e.source, cfg)
	if err != nil {
		e.queue(MessageError, err.Error())
		return err
	}

	e.cfg = cfg
	e.setBakeLocked(b)

	Logger().Info("font rebaked",
		"face", e.source.Name(), "size", cfg.Size,
		"atlas", fmt.Sprintf("%dx%d", cfg.AtlasWidth, cfg.AtlasHeight),
		"glyphs", len(b.Glyphs))
	e.queue(MessageInfo, fmt.Sprintf("rebaked %d glyphs into %dx%d",
		len(b.Glyphs), cfg.AtlasWidth, cfg.AtlasHeight))
	return nil
}

// ExportFont writes the current bake as a BMFont descriptor and atlas
// page: path.fnt plus path_0.png.
func (e *Engine) ExportFont(path string) error {
	e.mu.Lock()
	err := e.exportFontLocked(path)
	msgs := e.takePending()
	e.mu.Unlock()
	e.flush(msgs)
	return err
}

func (e *Engine) exportFontLocked(path string) error {
	if err := e.requireRunning(); err != nil {
		return err
	}
	if e.bake == nil {
		e.queue(MessageError, ErrNoBake.Error())
		return ErrNoBake
	}

	if err := bmfont.Save(path, e.bake); err != nil {
		e.queue(MessageError, err.Error())
		return err
	}

	Logger().Info("font exported", "path", path)
	e.queue(MessageInfo, "exported "+filepath.Base(path))
	return nil
}

// LoadFont loads a previously exported bake back in, bypassing import
// and rebake. The loaded bake becomes current; the imported source, if
// any, is untouched and a later RebakeFont still works from it.
func (e *Engine) LoadFont(name string) error {
	e.mu.Lock()
	err := e.loadFontLocked(name)
	msgs := e.takePending()
	e.mu.Unlock()
	e.flush(msgs)
	return err
}

func (e *Engine) loadFontLocked(name string) error {
	if err := e.requireRunning(); err != nil {
		return err
	}

	b, err := bmfont.Load(name)
	if err != nil {
		e.queue(MessageError, err.Error())
		return err
	}
	e.setBakeLocked(b)

	Logger().Info("font loaded", "name", name, "glyphs", len(b.Glyphs))
	e.queue(MessageInfo, "loaded "+filepath.Base(name))
	return nil
}

// CurrentBake returns the engine's current bake, nil when none exists.
// The bake is shared, not copied; treat it as read-only.
func (e *Engine) CurrentBake() *bake.Bake {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.bake
}

// BakeConfig returns the parameters of the current bake.
func (e *Engine) BakeConfig() bake.Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg
}

// bakeLocked runs one bake from a source. Callers hold mu.
func (e *Engine) bakeLocked(source *bake.Source, cfg bake.Config) (*bake.Bake, error) {
	face, err := source.Face(cfg.Size)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	opts := []bake.BakerOption{bake.WithFaceName(source.Name())}
	if kerner, err := bake.NewShapedKerner(source.Data(), cfg.Size); err != nil {
		// The opentype parse succeeded, so a shaping failure only
		// costs kerning pairs. Bake without them.
		Logger().Warn("kerning unavailable", "face", source.Name(), "error", err)
		e.queue(MessageWarn, "kerning unavailable for "+displayName(source, e.fontPath))
	} else {
		opts = append(opts, bake.WithKerner(kerner))
	}

	return bake.NewBaker(face, opts...).Bake(cfg)
}

// setBakeLocked installs a new current bake. Callers hold mu.
func (e *Engine) setBakeLocked(b *bake.Bake) {
	e.bake = b
	e.atlasBuf = nil
	e.hasSelected = false
}

// displayName prefers the font's family name, falling back to the
// file name for fonts without one.
func displayName(source *bake.Source, path string) string {
	if name := source.Name(); name != "" {
		return name
	}
	return filepath.Base(path)
}
