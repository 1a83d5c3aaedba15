// Package raster is a CPU-based, tile-parallel triangle rasterizer.
//
// A Program owns a programmable vertex stage, a programmable fragment
// stage, and a uniform value shared by both. Each frame the caller enqueues
// triangles; the program bins each one into every tile of a fixed grid it
// overlaps. A Framebuffer owns the color and depth buffers and hands out
// one write-bounded RegionBuffer per tile. RenderFrame pairs each tile's
// queued triangles with its RegionBuffer and runs them across a fixed pool
// of worker goroutines, one tile per task, with no per-pixel locking: the
// tile partition is disjoint by construction, so concurrent tile writers
// never touch the same pixel.
//
// # Quick Start
//
//	fb, _ := raster.NewFramebuffer(350, 200)
//	prog, _ := raster.NewProgram(350, 200, 30, 30, vertexFn, fragmentFn, initialUniform)
//	pool, _ := raster.NewWorkerPool(48)
//	pool.Start()
//
//	fb.Clear(geom.Vector3{})
//	prog.Reset()
//	prog.Uniform = nextUniform
//	prog.EnqueueTriangle(in0, in1, in2)
//	raster.RenderFrame(pool, prog.Regions(), fb.Regions(30, 30))
//	fb.FinishRendering()
//	pixels := fb.Colors() // 0x00RRGGBB per pixel, row-major
//
// # Coordinate Conventions
//
// Vertex shaders return positions in normalized device coordinates: x and y
// in [0,1] for on-screen content (y increasing downward, matching row-major
// image indexing), z a depth where smaller is nearer. Triangles whose
// bounding box falls entirely outside [0,1]x[0,1] are culled before any
// per-pixel work.
//
// # Thread Safety
//
// A Program's EnqueueTriangle and Reset are not safe for concurrent use
// with each other or with RenderFrame; call them from a single frame-owning
// goroutine. RenderFrame itself distributes work across the worker pool
// internally and is safe to call once per frame from that same goroutine.
package raster
