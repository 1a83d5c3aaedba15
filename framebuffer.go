package raster

import (
	"math"

	"github.com/cpuraster/raster/geom"
	"github.com/cpuraster/raster/tilegrid"
)

// Framebuffer owns a width x height color buffer and a matching depth
// buffer. It is cleared and finalized once per frame; between those two
// calls concurrent writers go through RegionBuffer handles obtained from
// Regions, so that no two tile writers touch the same pixel. SetColor
// writes directly and is for single-threaded use only.
type Framebuffer struct {
	width, height int
	colors        []geom.Vector3
	depth         []float64
	packed        []uint32
}

// NewFramebuffer allocates a Framebuffer of the given dimensions. The depth
// buffer starts at +Inf everywhere, so the very first write to any pixel
// always passes the depth test.
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	n := width * height
	fb := &Framebuffer{
		width:  width,
		height: height,
		colors: make([]geom.Vector3, n),
		depth:  make([]float64, n),
		packed: make([]uint32, n),
	}
	fb.resetDepth()
	return fb, nil
}

func (f *Framebuffer) resetDepth() {
	for i := range f.depth {
		f.depth[i] = math.Inf(1)
	}
}

func (f *Framebuffer) index(x, y int) int {
	return y*f.width + x
}

// Clear resets every color to c and every depth to +Inf. It does not touch
// the packed buffer; call FinishRendering to repopulate it.
func (f *Framebuffer) Clear(c geom.Vector3) {
	for i := range f.colors {
		f.colors[i] = c
	}
	f.resetDepth()
}

// setColor performs the depth test and, if it passes, writes color and
// depth at (x, y). Coordinates are assumed in range; the only callers are
// RegionBuffer (which clips first) and the exported SetColor (which
// bounds-checks defensively below).
func (f *Framebuffer) setColor(x, y int, c geom.Vector3, z float64) {
	idx := f.index(x, y)
	if z < f.depth[idx] {
		f.depth[idx] = z
		f.colors[idx] = c
	}
}

// SetColor performs a depth-tested write at (x, y). Out-of-range
// coordinates are a silent no-op; this entry point is intended for direct,
// single-threaded use (e.g. tests), not for concurrent callers -- those
// must go through a RegionBuffer obtained from Regions.
func (f *Framebuffer) SetColor(x, y int, c geom.Vector3, z float64) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.setColor(x, y, c, z)
}

func clampByte(v float64) uint32 {
	if math.IsNaN(v) {
		v = 0
	}
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint32(v * 255)
}

// FinishRendering packs every color into a 0x00RRGGBB value, clamping each
// channel to [0,1] first. Call this once per frame after all tiles have
// finished rendering and before presenting the buffer.
func (f *Framebuffer) FinishRendering() {
	for i, c := range f.colors {
		f.packed[i] = clampByte(c.X)<<16 | clampByte(c.Y)<<8 | clampByte(c.Z)
	}
}

// Colors returns the packed pixel buffer produced by the most recent call
// to FinishRendering, ordered row-major (index y*width+x).
func (f *Framebuffer) Colors() []uint32 {
	return f.packed
}

// Width returns the framebuffer width in pixels.
func (f *Framebuffer) Width() int { return f.width }

// Height returns the framebuffer height in pixels.
func (f *Framebuffer) Height() int { return f.height }

// Sample performs nearest-neighbor sampling of the (unpacked) color buffer
// at normalized coordinates uv, each expected in [0,1].
func (f *Framebuffer) Sample(uv geom.Vector2) geom.Vector3 {
	x := int(uv.X * float64(f.width-1))
	y := int(uv.Y * float64(f.height-1))
	if x < 0 {
		x = 0
	}
	if x >= f.width {
		x = f.width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= f.height {
		y = f.height - 1
	}
	return f.colors[f.index(x, y)]
}

// RegionBuffer is a write capability bounded to one tile of a Framebuffer.
// Writes outside the tile's rectangle are silently dropped. Distinct
// RegionBuffers over the same Framebuffer cover disjoint rectangles, so
// concurrent use from separate goroutines -- one per tile -- requires no
// locking.
type RegionBuffer struct {
	fb            *Framebuffer
	fromX, fromY  int
	width, height int
}

// SetColor performs a depth-tested write at image coordinates (x, y) if
// they fall inside this region's rectangle; otherwise it is a no-op.
func (r *RegionBuffer) SetColor(x, y int, c geom.Vector3, z float64) {
	if x < r.fromX || x >= r.fromX+r.width || y < r.fromY || y >= r.fromY+r.height {
		return
	}
	r.fb.setColor(x, y, c, z)
}

// From returns the pixel origin of this region.
func (r *RegionBuffer) From() (x, y int) { return r.fromX, r.fromY }

// Size returns the pixel extent of this region.
func (r *RegionBuffer) Size() (width, height int) { return r.width, r.height }

// Regions partitions the framebuffer into a grid of RegionBuffer handles of
// intended extent rw x rh, truncating the last column/row so the grid
// covers the image exactly. The returned grid is indexed [ty][tx], matching
// the layout a Program built with the same (rw, rh) produces for its region
// renderers.
func (f *Framebuffer) Regions(rw, rh int) [][]*RegionBuffer {
	g := tilegrid.New(f.width, f.height, rw, rh)
	result := make([][]*RegionBuffer, g.CountY())
	for ty := 0; ty < g.CountY(); ty++ {
		row := make([]*RegionBuffer, g.CountX())
		for tx := 0; tx < g.CountX(); tx++ {
			tile := g.At(tx, ty)
			row[tx] = &RegionBuffer{
				fb:     f,
				fromX:  tile.FromX,
				fromY:  tile.FromY,
				width:  tile.Width,
				height: tile.Height,
			}
		}
		result[ty] = row
	}
	return result
}
