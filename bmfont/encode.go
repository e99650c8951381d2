package bmfont

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/EliasRenko/bmfg/bake"
)

// Encode writes the descriptor in the BMFont text format.
func Encode(w io.Writer, f *File) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw,
		"info face=%q size=%d bold=%d italic=%d charset=%q unicode=%d stretchH=%d smooth=%d aa=%d padding=%d,%d,%d,%d spacing=%d,%d\n",
		f.Info.Face, f.Info.Size, b2i(f.Info.Bold), b2i(f.Info.Italic),
		f.Info.Charset, b2i(f.Info.Unicode), f.Info.StretchH,
		b2i(f.Info.Smooth), f.Info.AA,
		f.Info.Padding[0], f.Info.Padding[1], f.Info.Padding[2], f.Info.Padding[3],
		f.Info.Spacing[0], f.Info.Spacing[1])

	fmt.Fprintf(bw,
		"common lineHeight=%d base=%d scaleW=%d scaleH=%d pages=%d packed=%d\n",
		f.Common.LineHeight, f.Common.Base, f.Common.ScaleW, f.Common.ScaleH,
		f.Common.Pages, b2i(f.Common.Packed))

	for id, page := range f.Pages {
		fmt.Fprintf(bw, "page id=%d file=%q\n", id, page)
	}

	fmt.Fprintf(bw, "chars count=%d\n", len(f.Chars))
	for _, c := range f.Chars {
		fmt.Fprintf(bw,
			"char id=%d x=%d y=%d width=%d height=%d xoffset=%d yoffset=%d xadvance=%d page=%d chnl=%d\n",
			c.ID, c.X, c.Y, c.Width, c.Height, c.XOffset, c.YOffset,
			c.XAdvance, c.Page, c.Channel)
	}

	if len(f.Kernings) > 0 {
		fmt.Fprintf(bw, "kernings count=%d\n", len(f.Kernings))
		for _, k := range f.Kernings {
			fmt.Fprintf(bw, "kerning first=%d second=%d amount=%d\n",
				k.First, k.Second, k.Amount)
		}
	}

	return bw.Flush()
}

// Save writes b as path.fnt plus path_0.png. The path may be given
// with or without the .fnt extension; parent directories must exist.
func Save(path string, b *bake.Bake) error {
	path = strings.TrimSuffix(path, ".fnt")
	pageFile := filepath.Base(path) + "_0.png"

	f, err := FromBake(b, pageFile)
	if err != nil {
		return err
	}

	desc, err := os.Create(path + ".fnt")
	if err != nil {
		return fmt.Errorf("bmfont: failed to create descriptor: %w", err)
	}
	if err := Encode(desc, f); err != nil {
		desc.Close()
		return err
	}
	if err := desc.Close(); err != nil {
		return fmt.Errorf("bmfont: failed to write descriptor: %w", err)
	}

	page, err := os.Create(filepath.Join(filepath.Dir(path), pageFile))
	if err != nil {
		return fmt.Errorf("bmfont: failed to create page: %w", err)
	}
	if err := png.Encode(page, b.RGBA()); err != nil {
		page.Close()
		return fmt.Errorf("bmfont: failed to encode page: %w", err)
	}
	if err := page.Close(); err != nil {
		return fmt.Errorf("bmfont: failed to write page: %w", err)
	}
	return nil
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
