package raster

import "github.com/cpuraster/raster/geom"

// VertexFunc transforms a caller-supplied input into an NDC position and an
// interpolable attribute, given the uniform in effect for the triangle
// being enqueued.
type VertexFunc[In any, U any, A any] func(in In, uniform *U) (geom.Vector3, A)

// FragmentFunc computes a color for a rasterized point given its
// interpolated attribute and the uniform snapshot captured when the
// triangle was enqueued.
type FragmentFunc[U any, A any] func(position geom.Vector3, attr A, uniform *U) geom.Vector3

// triangleRecord is the geometric precomputation cached for one triangle in
// one tile's queue: the anchor vertex, the two edge vectors from it, the
// barycentric denominator terms, and the plane-depth slopes.
type triangleRecord struct {
	a, v0, v1          geom.Vector3
	d00, d01, d11, inv float64
	zx, zy             float64
}

// RegionRenderer holds the triangles queued against one tile and rasterizes
// them into a RegionBuffer. It is constructed once per tile and reused
// across frames; Program.Reset empties its queues between frames.
type RegionRenderer[U any, A Attribute[A]] struct {
	fragment FragmentFunc[U, A]

	fromX, fromY        int
	width, height       int
	imgWidth, imgHeight int

	triangles []triangleRecord
	attrs     [][3]A
	uniforms  []U
}

func newRegionRenderer[U any, A Attribute[A]](fragment FragmentFunc[U, A], fromX, fromY, width, height, imgWidth, imgHeight int) *RegionRenderer[U, A] {
	return &RegionRenderer[U, A]{
		fragment:  fragment,
		fromX:     fromX,
		fromY:     fromY,
		width:     width,
		height:    height,
		imgWidth:  imgWidth,
		imgHeight: imgHeight,
	}
}

// enqueue appends one triangle (already clipped to this tile's bounding
// box range by the caller) to the tile's queue, along with its three
// vertex attributes and a snapshot of the uniform in effect at enqueue
// time.
func (r *RegionRenderer[U, A]) enqueue(tri triangleRecord, attrs [3]A, uniform U) {
	r.triangles = append(r.triangles, tri)
	r.attrs = append(r.attrs, attrs)
	r.uniforms = append(r.uniforms, uniform)
}

// reset empties the tile's queues, reusing the backing arrays.
func (r *RegionRenderer[U, A]) reset() {
	r.triangles = r.triangles[:0]
	r.attrs = r.attrs[:0]
	r.uniforms = r.uniforms[:0]
}

// TriangleCount returns the number of triangles currently queued against
// this tile.
func (r *RegionRenderer[U, A]) TriangleCount() int {
	return len(r.triangles)
}

// RenderRegion rasterizes every queued triangle into buf, which must cover
// exactly this renderer's tile rectangle. For each pixel and each
// candidate triangle it computes barycentric coordinates anchored at the
// triangle's first vertex; pixels outside the triangle are skipped, pixels
// inside are shaded and submitted to buf with a depth test.
func (r *RegionRenderer[U, A]) RenderRegion(buf *RegionBuffer) {
	invWidth := 1 / float64(r.imgWidth)
	invHeight := 1 / float64(r.imgHeight)

	for y := r.fromY; y < r.fromY+r.height; y++ {
		normY := float64(y) * invHeight
		for x := r.fromX; x < r.fromX+r.width; x++ {
			normX := float64(x) * invWidth

			for i := range r.triangles {
				tri := &r.triangles[i]

				z := tri.a.Z + tri.zx*(normX-tri.a.X) + tri.zy*(normY-tri.a.Y)
				p := geom.Vector3{X: normX, Y: normY, Z: z}
				vp := p.Sub(tri.a)

				d20 := vp.Dot(tri.v0)
				d21 := vp.Dot(tri.v1)

				v := (tri.d11*d20 - tri.d01*d21) * tri.inv
				w := (tri.d00*d21 - tri.d01*d20) * tri.inv
				u := 1 - v - w

				if u < 0 || v < 0 || w < 0 {
					continue
				}

				at := r.attrs[i]
				attr := at[1].Scale(v).Plus(at[2].Scale(w)).Plus(at[0].Scale(u))

				color := r.fragment(p, attr, &r.uniforms[i])
				buf.SetColor(x, y, color, p.Z)
			}
		}
	}
}
