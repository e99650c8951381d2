// Command bmfgbake bakes a bitmap font from the command line.
//
// It drives the same engine the GUI host embeds: import, rebake,
// export, and optionally a PNG snapshot of the atlas screen.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/EliasRenko/bmfg"
	"github.com/EliasRenko/bmfg/bake"
)

func main() {
	var (
		fontPath = flag.String("font", "", "source font file (TTF or OTF)")
		size     = flag.Float64("size", 32, "font size in pixels")
		atlasW   = flag.Int("atlas-width", 512, "atlas page width")
		atlasH   = flag.Int("atlas-height", 512, "atlas page height")
		first    = flag.Int("first-char", 32, "first character code")
		count    = flag.Int("num-chars", 95, "number of characters")
		padding  = flag.Int("padding", 1, "pixels between glyph cells")
		output   = flag.String("output", "baked", "output path for .fnt and _0.png")
		preview  = flag.String("preview", "", "optional atlas preview PNG")
		verbose  = flag.Bool("v", false, "print engine messages")
	)
	flag.Parse()

	if *fontPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	var opts []bmfg.Option
	if *verbose {
		opts = append(opts, bmfg.WithListener(bmfg.ListenerFunc(func(m bmfg.Message) {
			log.Printf("[%s] %s", m.Kind, m.Text)
		})))
	}

	engine, err := bmfg.New(opts...)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	if err := engine.ImportFont(*fontPath, *size); err != nil {
		log.Fatalf("Failed to import font: %v", err)
	}

	cfg := bake.Config{
		Size:        *size,
		AtlasWidth:  *atlasW,
		AtlasHeight: *atlasH,
		FirstChar:   *first,
		NumChars:    *count,
		Padding:     *padding,
	}
	if err := engine.RebakeFont(cfg); err != nil {
		log.Fatalf("Failed to bake: %v", err)
	}

	if err := engine.ExportFont(*output); err != nil {
		log.Fatalf("Failed to export: %v", err)
	}

	b := engine.CurrentBake()
	log.Printf("Baked %d glyphs from %s into %dx%d (%s.fnt)",
		len(b.Glyphs), b.Info.Face, *atlasW, *atlasH, *output)

	if *preview != "" {
		if err := engine.Render(); err != nil {
			log.Fatalf("Failed to render preview: %v", err)
		}
		if err := engine.SwapBuffers(); err != nil {
			log.Fatalf("Failed to present preview: %v", err)
		}
		if err := engine.Frame().SavePNG(*preview); err != nil {
			log.Fatalf("Failed to save preview: %v", err)
		}
		log.Printf("Preview saved to %s", *preview)
	}

	if err := engine.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down: %v", err)
	}
	if err := engine.Release(); err != nil {
		log.Fatalf("Failed to release: %v", err)
	}
}
