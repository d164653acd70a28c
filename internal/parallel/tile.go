// Package parallel splits a framebuffer into tiles and renders them on a
// work-stealing goroutine pool.
//
// Tiles are plain pixel regions of the destination; they own no buffers.
// Two tiles never overlap, so workers can write their pixels without
// synchronization.
package parallel

// DefaultTileSize is the edge length of a tile in pixels. A 64x64 RGBA tile
// is 16KB and fits in L1 cache.
const DefaultTileSize = 64

// Tile is a rectangular pixel region of the framebuffer.
// X, Y is the top-left pixel; edge tiles may be smaller than the tile size.
type Tile struct {
	X, Y          int
	Width, Height int
}

// Overlaps reports whether the tile intersects the half-open pixel box
// [x0, x1) × [y0, y1).
func (t Tile) Overlaps(x0, y0, x1, y1 int) bool {
	return x0 < t.X+t.Width && x1 > t.X && y0 < t.Y+t.Height && y1 > t.Y
}

// Clip intersects the half-open box [x0, x1) × [y0, y1) with the tile.
// The result is empty (x0 >= x1 or y0 >= y1) when they do not overlap.
func (t Tile) Clip(x0, y0, x1, y1 int) (int, int, int, int) {
	return max(x0, t.X), max(y0, t.Y), min(x1, t.X+t.Width), min(y1, t.Y+t.Height)
}

// Tiles covers a width×height framebuffer with tiles of the given size in
// row-major order. A non-positive size selects DefaultTileSize.
func Tiles(width, height, size int) []Tile {
	if width <= 0 || height <= 0 {
		return nil
	}
	if size <= 0 {
		size = DefaultTileSize
	}
	cols := (width + size - 1) / size
	rows := (height + size - 1) / size

	tiles := make([]Tile, 0, cols*rows)
	for ty := range rows {
		for tx := range cols {
			x, y := tx*size, ty*size
			tiles = append(tiles, Tile{
				X:      x,
				Y:      y,
				Width:  min(size, width-x),
				Height: min(size, height-y),
			})
		}
	}
	return tiles
}
