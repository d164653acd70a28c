package atlas

import (
	"fmt"
	"sync"
)

// Region is a rectangle of atlas texels.
type Region struct {
	X, Y          int
	Width, Height int
}

// IsValid reports whether the region has a positive area.
func (r Region) IsValid() bool {
	return r.Width > 0 && r.Height > 0
}

// Contains reports whether texel (x, y) lies inside the region.
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// String returns a string representation of the region.
func (r Region) String() string {
	return fmt.Sprintf("Region(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// shelf is one horizontal row of the packer.
type shelf struct {
	y      int
	height int
	nextX  int
}

// shelfAllocator packs rectangles into horizontal shelves. A rectangle goes
// on the first shelf with room for it, otherwise a new shelf is opened below
// the last one. Nothing is ever freed individually; Reset empties the area.
type shelfAllocator struct {
	mu sync.Mutex

	width, height int
	padding       int
	shelves       []shelf

	allocCount int
	usedArea   int
}

func newShelfAllocator(width, height, padding int) *shelfAllocator {
	return &shelfAllocator{
		width:   width,
		height:  height,
		padding: max(padding, 0),
		shelves: make([]shelf, 0, 16),
	}
}

// allocate returns space for a width×height rectangle, or an invalid
// region when it does not fit.
func (a *shelfAllocator) allocate(width, height int) Region {
	a.mu.Lock()
	defer a.mu.Unlock()

	if width <= 0 || height <= 0 {
		return Region{}
	}
	pw := width + a.padding
	ph := height + a.padding
	if pw > a.width || ph > a.height {
		return Region{}
	}

	for i := range a.shelves {
		s := &a.shelves[i]
		if s.nextX+pw > a.width {
			continue
		}
		if ph > s.height {
			// Only the newest shelf may grow; older ones are bounded by
			// the shelf below them.
			if i != len(a.shelves)-1 || s.y+ph > a.height {
				continue
			}
		}
		r := Region{X: s.nextX, Y: s.y, Width: width, Height: height}
		s.nextX += pw
		s.height = max(s.height, ph)
		a.record(r)
		return r
	}

	y := 0
	if n := len(a.shelves); n > 0 {
		y = a.shelves[n-1].y + a.shelves[n-1].height
	}
	if y+ph > a.height {
		return Region{}
	}
	a.shelves = append(a.shelves, shelf{y: y, height: ph, nextX: pw})
	r := Region{X: 0, Y: y, Width: width, Height: height}
	a.record(r)
	return r
}

func (a *shelfAllocator) record(r Region) {
	a.allocCount++
	a.usedArea += r.Width * r.Height
}

func (a *shelfAllocator) reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.shelves = a.shelves[:0]
	a.allocCount = 0
	a.usedArea = 0
}

func (a *shelfAllocator) stats() (count, area int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.allocCount, a.usedArea
}
