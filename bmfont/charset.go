package bmfont

import "golang.org/x/text/encoding/charmap"

// knownCharmaps lists the 8-bit encodings a descriptor's charset name
// can be mapped back to. Keyed by Charmap.String(), which is also what
// bake.Config.CharsetName records on export.
var knownCharmaps = func() map[string]*charmap.Charmap {
	maps := []*charmap.Charmap{
		charmap.CodePage437,
		charmap.CodePage850,
		charmap.CodePage852,
		charmap.CodePage866,
		charmap.ISO8859_1,
		charmap.ISO8859_2,
		charmap.ISO8859_3,
		charmap.ISO8859_4,
		charmap.ISO8859_5,
		charmap.ISO8859_6,
		charmap.ISO8859_7,
		charmap.ISO8859_8,
		charmap.ISO8859_9,
		charmap.ISO8859_10,
		charmap.ISO8859_13,
		charmap.ISO8859_14,
		charmap.ISO8859_15,
		charmap.ISO8859_16,
		charmap.KOI8R,
		charmap.KOI8U,
		charmap.Macintosh,
		charmap.Windows874,
		charmap.Windows1250,
		charmap.Windows1251,
		charmap.Windows1252,
		charmap.Windows1253,
		charmap.Windows1254,
		charmap.Windows1255,
		charmap.Windows1256,
		charmap.Windows1257,
		charmap.Windows1258,
	}
	out := make(map[string]*charmap.Charmap, len(maps))
	for _, m := range maps {
		out[m.String()] = m
	}
	return out
}()

// charsetByName resolves a descriptor charset name to its charmap.
func charsetByName(name string) (*charmap.Charmap, bool) {
	m, ok := knownCharmaps[name]
	return m, ok
}
