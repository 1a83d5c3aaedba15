// Package tilegrid computes the partition of an image into rectangular
// tiles that both the framebuffer and the program key their per-tile state
// off of. Keeping the computation in one place means the framebuffer's tile
// handles and the program's region renderers always agree on where a given
// tile (tx, ty) starts and how large it is, including the truncated extent
// of edge tiles when the image dimensions are not multiples of the tile
// size.
package tilegrid

// Tile describes one rectangle of the grid in tile coordinates (X, Y) and
// pixel coordinates (FromX, FromY, Width, Height).
type Tile struct {
	X, Y           int
	FromX, FromY   int
	Width, Height  int
}

// Grid is the partition of a width x height image into tiles of intended
// extent regionWidth x regionHeight. Tiles in the last column or row are
// truncated to whatever remainder extent covers the image exactly.
type Grid struct {
	width, height             int
	regionWidth, regionHeight int
	countX, countY            int
}

// New builds a Grid for the given image and tile dimensions. width, height,
// regionWidth and regionHeight must all be positive; New does not validate
// this itself, callers that accept these as configuration should validate
// at their own boundary (see Config.Validate).
func New(width, height, regionWidth, regionHeight int) *Grid {
	countX := ceilDiv(width, regionWidth)
	countY := ceilDiv(height, regionHeight)
	return &Grid{
		width:        width,
		height:       height,
		regionWidth:  regionWidth,
		regionHeight: regionHeight,
		countX:       countX,
		countY:       countY,
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// CountX returns the number of tile columns.
func (g *Grid) CountX() int { return g.countX }

// CountY returns the number of tile rows.
func (g *Grid) CountY() int { return g.countY }

// RegionWidth returns the intended (non-truncated) tile width.
func (g *Grid) RegionWidth() int { return g.regionWidth }

// RegionHeight returns the intended (non-truncated) tile height.
func (g *Grid) RegionHeight() int { return g.regionHeight }

// Width returns the width of the image the grid was built for.
func (g *Grid) Width() int { return g.width }

// Height returns the height of the image the grid was built for.
func (g *Grid) Height() int { return g.height }

// At returns the tile at grid coordinates (tx, ty), truncating the extent
// of the last column/row so the grid covers the image exactly.
func (g *Grid) At(tx, ty int) Tile {
	fromX := tx * g.regionWidth
	fromY := ty * g.regionHeight

	width := g.regionWidth
	if tx == g.countX-1 {
		if rem := g.width % g.regionWidth; rem != 0 {
			width = rem
		}
	}
	height := g.regionHeight
	if ty == g.countY-1 {
		if rem := g.height % g.regionHeight; rem != 0 {
			height = rem
		}
	}

	return Tile{
		X: tx, Y: ty,
		FromX: fromX, FromY: fromY,
		Width: width, Height: height,
	}
}

// Tiles returns every tile of the grid, in row-major (Y then X) order.
func (g *Grid) Tiles() []Tile {
	result := make([]Tile, 0, g.countX*g.countY)
	for ty := 0; ty < g.countY; ty++ {
		for tx := 0; tx < g.countX; tx++ {
			result = append(result, g.At(tx, ty))
		}
	}
	return result
}

// TileRangeForPixels returns the half-open tile coordinate range
// [fromTX, toTX) x [fromTY, toTY) covering pixel-space rectangle
// [minX, maxX] x [minY, maxY] (inclusive pixel bounds, as produced by a
// bounding-box-to-pixel conversion).
func (g *Grid) TileRangeForPixels(minX, maxX, minY, maxY int) (fromTX, toTX, fromTY, toTY int) {
	fromTX = minX / g.regionWidth
	toTX = maxX/g.regionWidth + 1
	fromTY = minY / g.regionHeight
	toTY = maxY/g.regionHeight + 1

	if fromTX < 0 {
		fromTX = 0
	}
	if toTX > g.countX {
		toTX = g.countX
	}
	if fromTY < 0 {
		fromTY = 0
	}
	if toTY > g.countY {
		toTY = g.countY
	}
	return fromTX, toTX, fromTY, toTY
}
