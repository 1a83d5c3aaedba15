package raster

import (
	"testing"

	"github.com/cpuraster/raster/geom"
)

func TestBoundingBox2D(t *testing.T) {
	p0 := geom.Vector3{X: 0, Y: 0.2, Z: 9}
	p1 := geom.Vector3{X: 1, Y: 0, Z: -9}
	p2 := geom.Vector3{X: 0.5, Y: 1, Z: 0}

	xMin, xMax, yMin, yMax := boundingBox2D(p0, p1, p2)
	if xMin != 0 || xMax != 1 || yMin != 0 || yMax != 1 {
		t.Errorf("bbox = (%v,%v,%v,%v), want (0,1,0,1)", xMin, xMax, yMin, yMax)
	}
}

func TestOutsideViewport(t *testing.T) {
	tests := []struct {
		name                   string
		xMin, xMax, yMin, yMax float64
		want                   bool
	}{
		{"fully inside", 0.1, 0.9, 0.1, 0.9, false},
		{"straddles left edge", -0.5, 0.1, 0, 1, false},
		{"fully left", -2, -1, 0, 1, true},
		{"fully right", 1.1, 2, 0, 1, true},
		{"fully above", 0, 1, -2, -1, true},
		{"fully below", 0, 1, 1.1, 2, true},
		{"touches corner", 1, 1, 1, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outsideViewport(tt.xMin, tt.xMax, tt.yMin, tt.yMax); got != tt.want {
				t.Errorf("outsideViewport() = %v, want %v", got, tt.want)
			}
		})
	}
}
