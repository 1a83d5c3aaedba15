package raster

import "github.com/cpuraster/raster/geom"

// boundingBox2D returns the screen-space (x,y) bounding box of three NDC
// positions; z is ignored.
func boundingBox2D(p0, p1, p2 geom.Vector3) (xMin, xMax, yMin, yMax float64) {
	xMin = min3(p0.X, p1.X, p2.X)
	xMax = max3(p0.X, p1.X, p2.X)
	yMin = min3(p0.Y, p1.Y, p2.Y)
	yMax = max3(p0.Y, p1.Y, p2.Y)
	return
}

// outsideViewport reports whether a bounding box in NDC space lies entirely
// outside the visible [0,1]x[0,1] viewport and should be culled before any
// per-pixel work is done.
func outsideViewport(xMin, xMax, yMin, yMax float64) bool {
	return xMax < 0 || xMin > 1 || yMax < 0 || yMin > 1
}

func min3(a, b, c float64) float64 {
	return min2(min2(a, b), c)
}

func max3(a, b, c float64) float64 {
	return max2(max2(a, b), c)
}

func min2(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max2(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
