// Package bmfont reads and writes bakes in the AngelCode BMFont text
// format: a .fnt descriptor next to one PNG atlas page.
//
// Only the subset a single-page coverage bake needs is produced: one
// page, channel 15 (glyph in all channels), no outline or packed
// modes. The parser is more forgiving and ignores fields it does not
// know, so descriptors written by other generators load as long as
// they use the text (not binary or XML) flavor.
//
//	err := bmfont.Save("out/roboto", bakeResult) // out/roboto.fnt + out/roboto_0.png
//	b, err := bmfont.Load("out/roboto")          // back to a *bake.Bake
package bmfont
