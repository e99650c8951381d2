package bake

import "unicode/utf8"

// runes resolves the configured character range to the runes actually
// submitted to the rasterizer.
//
// Without a charset the range is Unicode code points. With one, each
// code is a byte of the 8-bit encoding and is decoded through the
// charmap; codes the encoding leaves undefined are dropped.
func (c *Config) runes() []rune {
	out := make([]rune, 0, c.NumChars)
	for i := 0; i < c.NumChars; i++ {
		code := c.FirstChar + i
		if c.Charset != nil {
			r := c.Charset.DecodeByte(byte(code))
			if r == utf8.RuneError {
				continue
			}
			out = append(out, r)
			continue
		}
		out = append(out, rune(code))
	}
	return out
}
