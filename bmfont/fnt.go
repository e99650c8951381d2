package bmfont

// File is the in-memory form of a .fnt descriptor.
type File struct {
	Info     Info
	Common   Common
	Pages    []string // page file names, indexed by page id
	Chars    []Char
	Kernings []Kerning
}

// Info mirrors the descriptor's info tag: how the font was generated.
type Info struct {
	Face     string
	Size     int
	Bold     bool
	Italic   bool
	Charset  string
	Unicode  bool
	StretchH int
	Smooth   bool
	AA       int
	Padding  [4]int // up, right, down, left
	Spacing  [2]int // horizontal, vertical
}

// Common mirrors the common tag: values shared by all characters.
type Common struct {
	LineHeight int
	Base       int
	ScaleW     int
	ScaleH     int
	Pages      int
	Packed     bool
}

// Char mirrors one char tag. ID is the character code: a Unicode code
// point when Info.Unicode is set, a charset byte otherwise.
type Char struct {
	ID       int
	X        int
	Y        int
	Width    int
	Height   int
	XOffset  int
	YOffset  int
	XAdvance int
	Page     int
	Channel  int
}

// Kerning mirrors one kerning tag.
type Kerning struct {
	First  int
	Second int
	Amount int
}
