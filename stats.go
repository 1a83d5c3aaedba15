package raster

import (
	"time"

	"golang.org/x/sys/cpu"
)

// TileStat records the triangle count rasterized into one tile during a
// call to RenderFrameWithStats. It is padded to a full cache line so that
// up to dozens of workers writing to adjacent slice entries never false-
// share a line with each other.
type TileStat struct {
	Triangles int
	_         cpu.CacheLinePad
}

// RenderFrameWithStats behaves like RenderFrame, additionally returning one
// TileStat per tile (in the same [ty*countX+tx] row-major order as
// Program.Regions) recording how many triangles were queued against that
// tile this frame. Collecting these statistics is optional and purely a
// diagnostic: it never influences which pixels get written.
func RenderFrameWithStats[U any, A Attribute[A]](pool *WorkerPool, regions [][]*RegionRenderer[U, A], buffers [][]*RegionBuffer) []TileStat {
	start := time.Now()
	countY := len(regions)
	countX := 0
	if countY > 0 {
		countX = len(regions[0])
	}
	stats := make([]TileStat, countX*countY)

	for ty := range regions {
		row := regions[ty]
		bufRow := buffers[ty]
		for tx := range row {
			renderer := row[tx]
			buf := bufRow[tx]
			idx := ty*countX + tx
			pool.Submit(func() {
				renderer.RenderRegion(buf)
				stats[idx].Triangles = renderer.TriangleCount()
			})
		}
	}
	pool.Wait()

	total := 0
	for i := range stats {
		total += stats[i].Triangles
	}
	Logger().Debug("raster: frame rendered", "tiles", len(stats), "triangles", total, "elapsed", time.Since(start))

	return stats
}
