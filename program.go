package raster

import (
	"github.com/cpuraster/raster/tilegrid"
)

// Program orchestrates one rendering pipeline: a vertex stage, a fragment
// stage, a uniform shared by both, and the grid of RegionRenderers each
// enqueued triangle is binned into. In is the caller's per-vertex input
// type, U is the uniform type, A is the interpolated attribute type.
type Program[In any, U any, A Attribute[A]] struct {
	vertex   VertexFunc[In, U, A]
	fragment FragmentFunc[U, A]

	// Uniform is shared by every vertex and fragment invocation for the
	// next triangle enqueued. Callers may mutate it freely between calls
	// to EnqueueTriangle; each call captures a snapshot of the current
	// value, so earlier enqueues are unaffected by later mutation.
	Uniform U

	width, height             int
	regionWidth, regionHeight int

	grid    *tilegrid.Grid
	regions [][]*RegionRenderer[U, A]
}

// NewProgram constructs a Program for a width x height image tiled into
// regionWidth x regionHeight regions. vertex and fragment must be non-nil.
func NewProgram[In any, U any, A Attribute[A]](width, height, regionWidth, regionHeight int, vertex VertexFunc[In, U, A], fragment FragmentFunc[U, A], uniform U) (*Program[In, U, A], error) {
	if width <= 0 || height <= 0 || regionWidth <= 0 || regionHeight <= 0 {
		return nil, ErrInvalidDimensions
	}
	if vertex == nil || fragment == nil {
		return nil, ErrNilShader
	}

	grid := tilegrid.New(width, height, regionWidth, regionHeight)
	regions := make([][]*RegionRenderer[U, A], grid.CountY())
	for ty := 0; ty < grid.CountY(); ty++ {
		row := make([]*RegionRenderer[U, A], grid.CountX())
		for tx := 0; tx < grid.CountX(); tx++ {
			tile := grid.At(tx, ty)
			row[tx] = newRegionRenderer(fragment, tile.FromX, tile.FromY, tile.Width, tile.Height, width, height)
		}
		regions[ty] = row
	}

	return &Program[In, U, A]{
		vertex:       vertex,
		fragment:     fragment,
		Uniform:      uniform,
		width:        width,
		height:       height,
		regionWidth:  regionWidth,
		regionHeight: regionHeight,
		grid:         grid,
		regions:      regions,
	}, nil
}

// Width returns the image width the program was constructed for.
func (p *Program[In, U, A]) Width() int { return p.width }

// Height returns the image height the program was constructed for.
func (p *Program[In, U, A]) Height() int { return p.height }

// Regions exposes the grid of region renderers, indexed [ty][tx], for the
// dispatcher to pair with matching framebuffer tile handles.
func (p *Program[In, U, A]) Regions() [][]*RegionRenderer[U, A] {
	return p.regions
}

// Reset empties every tile's triangle queue. Call this at the start of
// each frame, before re-enqueueing geometry. The uniform is left
// untouched; callers set it explicitly between Reset and EnqueueTriangle
// calls.
func (p *Program[In, U, A]) Reset() {
	for _, row := range p.regions {
		for _, r := range row {
			r.reset()
		}
	}
}

// EnqueueTriangle runs the vertex stage on three inputs, culls the
// resulting triangle if its NDC bounding box lies entirely outside the
// visible viewport, and otherwise binds it into the queue of every tile
// its bounding box overlaps. The uniform used by both stages is captured
// at the moment EnqueueTriangle is called; subsequent mutation of
// p.Uniform does not affect this triangle.
func (p *Program[In, U, A]) EnqueueTriangle(i0, i1, i2 In) {
	pos0, a0 := p.vertex(i0, &p.Uniform)
	pos1, a1 := p.vertex(i1, &p.Uniform)
	pos2, a2 := p.vertex(i2, &p.Uniform)

	xMin, xMax, yMin, yMax := boundingBox2D(pos0, pos1, pos2)
	if outsideViewport(xMin, xMax, yMin, yMax) {
		Logger().Debug("raster: triangle culled", "xMin", xMin, "xMax", xMax, "yMin", yMin, "yMax", yMax)
		return
	}

	v0 := pos1.Sub(pos0)
	v1 := pos2.Sub(pos0)
	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d11 := v1.Dot(v1)

	denom := d00*d11 - d01*d01
	crossXY := v1.X*v0.Y - v1.Y*v0.X
	if denom == 0 || crossXY == 0 {
		// Degenerate (zero-area or colinear) triangle: dropped rather than
		// cached with a non-finite inverse.
		return
	}
	inv := 1 / denom
	invZ := 1 / crossXY
	zx := (v0.Y*v1.Z - v1.Y*v0.Z) * invZ
	zy := (v1.X*v0.Z - v0.X*v1.Z) * invZ

	w1 := float64(p.width - 1)
	h1 := float64(p.height - 1)
	xMinPx := int(clamp01Low(xMin) * w1)
	xMaxPx := int(clamp01High(xMax) * w1)
	yMinPx := int(clamp01Low(yMin) * h1)
	yMaxPx := int(clamp01High(yMax) * h1)

	fromTX, toTX, fromTY, toTY := p.grid.TileRangeForPixels(xMinPx, xMaxPx, yMinPx, yMaxPx)

	rec := triangleRecord{
		a: pos0, v0: v0, v1: v1,
		d00: d00, d01: d01, d11: d11, inv: inv,
		zx: zx, zy: zy,
	}
	attrs := [3]A{a0, a1, a2}
	uniform := p.Uniform

	for ty := fromTY; ty < toTY; ty++ {
		for tx := fromTX; tx < toTX; tx++ {
			p.regions[ty][tx].enqueue(rec, attrs, uniform)
		}
	}
}

func clamp01Low(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func clamp01High(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}
