package bake

// shelfPacker packs variable-sized glyph cells into an atlas page
// using horizontal shelves. Cells are placed left-to-right on the
// current shelf; a new shelf opens below when the current one cannot
// hold the cell. Packing quality depends on submission order, so the
// baker feeds cells tallest-first.
type shelfPacker struct {
	width   int
	height  int
	padding int
	shelves []shelf

	usedArea int
}

// shelf is one horizontal strip of the page.
type shelf struct {
	y      int // top of the strip
	height int // tallest cell placed so far
	x      int // next free slot
}

func newShelfPacker(width, height, padding int) *shelfPacker {
	return &shelfPacker{
		width:   width,
		height:  height,
		padding: padding,
		shelves: make([]shelf, 0, 16),
	}
}

// pack finds space for a w x h cell. Returns the cell position and
// true, or -1, -1, false when the page is full.
func (p *shelfPacker) pack(w, h int) (x, y int, ok bool) {
	paddedW := w + p.padding
	paddedH := h + p.padding

	// A cell wider than the page can never fit, on any shelf.
	if paddedW > p.width {
		return -1, -1, false
	}

	for i := range p.shelves {
		s := &p.shelves[i]
		if s.x+paddedW > p.width {
			continue
		}
		if h > s.height {
			// Taller than the shelf. The last shelf may grow downward
			// if the page still has room.
			if i != len(p.shelves)-1 || s.y+paddedH > p.height {
				continue
			}
			s.height = h
		}
		x, y = s.x, s.y
		s.x += paddedW
		p.usedArea += w * h
		return x, y, true
	}

	newY := 0
	if n := len(p.shelves); n > 0 {
		last := p.shelves[n-1]
		newY = last.y + last.height + p.padding
	}
	if newY+paddedH > p.height {
		return -1, -1, false
	}

	p.shelves = append(p.shelves, shelf{y: newY, height: h, x: paddedW})
	p.usedArea += w * h
	return 0, newY, true
}

// reset clears all placements, keeping shelf capacity.
func (p *shelfPacker) reset() {
	p.shelves = p.shelves[:0]
	p.usedArea = 0
}

// utilization returns the fraction of page area covered by cells.
func (p *shelfPacker) utilization() float64 {
	if p.width <= 0 || p.height <= 0 {
		return 0
	}
	return float64(p.usedArea) / float64(p.width*p.height)
}
