package bmfont

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/EliasRenko/bmfg/bake"
)

// Decode parses a descriptor in the BMFont text format. Unknown tags
// and fields are ignored.
func Decode(r io.Reader) (*File, error) {
	f := &File{}
	pages := map[int]string{}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		tag, fields, err := splitLine(text)
		if err != nil {
			return nil, &ParseError{Line: line, Msg: err.Error()}
		}

		switch tag {
		case "info":
			f.Info = Info{
				Face:     fields.str("face"),
				Size:     fields.num("size"),
				Bold:     fields.num("bold") != 0,
				Italic:   fields.num("italic") != 0,
				Charset:  fields.str("charset"),
				Unicode:  fields.num("unicode") != 0,
				StretchH: fields.num("stretchH"),
				Smooth:   fields.num("smooth") != 0,
				AA:       fields.num("aa"),
				Padding:  [4]int(fields.nums("padding", 4)),
				Spacing:  [2]int(fields.nums("spacing", 2)),
			}
		case "common":
			f.Common = Common{
				LineHeight: fields.num("lineHeight"),
				Base:       fields.num("base"),
				ScaleW:     fields.num("scaleW"),
				ScaleH:     fields.num("scaleH"),
				Pages:      fields.num("pages"),
				Packed:     fields.num("packed") != 0,
			}
		case "page":
			pages[fields.num("id")] = fields.str("file")
		case "char":
			f.Chars = append(f.Chars, Char{
				ID:       fields.num("id"),
				X:        fields.num("x"),
				Y:        fields.num("y"),
				Width:    fields.num("width"),
				Height:   fields.num("height"),
				XOffset:  fields.num("xoffset"),
				YOffset:  fields.num("yoffset"),
				XAdvance: fields.num("xadvance"),
				Page:     fields.num("page"),
				Channel:  fields.num("chnl"),
			})
		case "kerning":
			f.Kernings = append(f.Kernings, Kerning{
				First:  fields.num("first"),
				Second: fields.num("second"),
				Amount: fields.num("amount"),
			})
		case "chars", "kernings":
			// Count lines carry no information the char/kerning tags
			// don't repeat.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("bmfont: failed to read descriptor: %w", err)
	}

	f.Pages = make([]string, len(pages))
	for id, file := range pages {
		if id < 0 || id >= len(pages) {
			return nil, &ParseError{Line: 0, Msg: fmt.Sprintf("page id %d out of range", id)}
		}
		f.Pages[id] = file
	}

	return f, nil
}

// Load reads path.fnt plus its single atlas page and converts them
// back to a bake. The path may be given with or without the .fnt
// extension; the page file is resolved relative to the descriptor.
func Load(path string) (*bake.Bake, error) {
	if !strings.HasSuffix(path, ".fnt") {
		path += ".fnt"
	}

	desc, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bmfont: failed to open descriptor: %w", err)
	}
	defer desc.Close()

	f, err := Decode(desc)
	if err != nil {
		return nil, err
	}
	if len(f.Pages) == 0 {
		return nil, ErrNoPages
	}
	if len(f.Pages) > 1 {
		return nil, ErrMultiPage
	}

	pagePath := filepath.Join(filepath.Dir(path), f.Pages[0])
	// #nosec G304 -- page path comes from the descriptor the user chose to load
	pageFile, err := os.Open(pagePath)
	if err != nil {
		return nil, fmt.Errorf("bmfont: failed to open page: %w", err)
	}
	defer pageFile.Close()

	page, err := png.Decode(pageFile)
	if err != nil {
		return nil, fmt.Errorf("bmfont: failed to decode page: %w", err)
	}

	return ToBake(f, page)
}

// fieldSet holds the key=value fields of one descriptor line.
type fieldSet map[string]string

// str returns a string field, unquoted.
func (fs fieldSet) str(key string) string {
	return fs[key]
}

// num returns an integer field, 0 when absent or malformed.
func (fs fieldSet) num(key string) int {
	v, err := strconv.Atoi(fs[key])
	if err != nil {
		return 0
	}
	return v
}

// nums returns a comma-separated integer field padded to n entries.
func (fs fieldSet) nums(key string, n int) []int {
	out := make([]int, n)
	parts := strings.Split(fs[key], ",")
	for i := 0; i < n && i < len(parts); i++ {
		out[i], _ = strconv.Atoi(strings.TrimSpace(parts[i]))
	}
	return out
}

// splitLine splits a descriptor line into its tag and fields. Values
// may be quoted and contain spaces or the = sign.
func splitLine(line string) (string, fieldSet, error) {
	var tag string
	fields := fieldSet{}

	i := 0
	readToken := func() string {
		start := i
		for i < len(line) && line[i] != ' ' && line[i] != '=' {
			i++
		}
		return line[start:i]
	}
	skipSpaces := func() {
		for i < len(line) && line[i] == ' ' {
			i++
		}
	}

	tag = readToken()
	if tag == "" {
		return "", nil, fmt.Errorf("missing tag")
	}

	for {
		skipSpaces()
		if i >= len(line) {
			return tag, fields, nil
		}

		key := readToken()
		if i >= len(line) || line[i] != '=' {
			return "", nil, fmt.Errorf("field %q has no value", key)
		}
		i++ // consume '='

		var value string
		if i < len(line) && line[i] == '"' {
			i++
			start := i
			for i < len(line) && line[i] != '"' {
				i++
			}
			if i >= len(line) {
				return "", nil, fmt.Errorf("unterminated quote in field %q", key)
			}
			value = line[start:i]
			i++ // consume closing quote
		} else {
			start := i
			for i < len(line) && line[i] != ' ' {
				i++
			}
			value = line[start:i]
		}
		fields[key] = value
	}
}
