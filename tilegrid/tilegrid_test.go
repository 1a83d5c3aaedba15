package tilegrid

import "testing"

// =============================================================================
// Grid construction
// =============================================================================

func TestGridCounts(t *testing.T) {
	tests := []struct {
		name                   string
		width, height          int
		rw, rh                 int
		wantCountX, wantCountY int
	}{
		{"exact_fit", 16, 16, 8, 8, 2, 2},
		{"partial_fit", 20, 20, 8, 8, 3, 3},
		{"single_tile", 5, 5, 8, 8, 1, 1},
		{"wide", 100, 8, 8, 8, 13, 1},
		{"reference", 350, 200, 30, 30, 12, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(tt.width, tt.height, tt.rw, tt.rh)
			if g.CountX() != tt.wantCountX {
				t.Errorf("CountX() = %d, want %d", g.CountX(), tt.wantCountX)
			}
			if g.CountY() != tt.wantCountY {
				t.Errorf("CountY() = %d, want %d", g.CountY(), tt.wantCountY)
			}
		})
	}
}

// =============================================================================
// Tile coverage: partition property
// =============================================================================

func TestGridTilesPartitionImage(t *testing.T) {
	g := New(13, 7, 5, 3)

	covered := make([][]bool, 7)
	for y := range covered {
		covered[y] = make([]bool, 13)
	}

	for _, tile := range g.Tiles() {
		for y := tile.FromY; y < tile.FromY+tile.Height; y++ {
			for x := tile.FromX; x < tile.FromX+tile.Width; x++ {
				if covered[y][x] {
					t.Fatalf("pixel (%d,%d) covered by more than one tile", x, y)
				}
				covered[y][x] = true
			}
		}
	}

	for y := 0; y < 7; y++ {
		for x := 0; x < 13; x++ {
			if !covered[y][x] {
				t.Fatalf("pixel (%d,%d) not covered by any tile", x, y)
			}
		}
	}
}

func TestGridLastColumnRowTruncated(t *testing.T) {
	g := New(13, 7, 5, 3)

	lastCol := g.At(g.CountX()-1, 0)
	if want := 13 % 5; lastCol.Width != want {
		t.Errorf("last column width = %d, want %d", lastCol.Width, want)
	}

	lastRow := g.At(0, g.CountY()-1)
	if want := 7 % 3; lastRow.Height != want {
		t.Errorf("last row height = %d, want %d", lastRow.Height, want)
	}
}

func TestGridExactMultipleNotTruncated(t *testing.T) {
	g := New(16, 16, 8, 8)
	lastCol := g.At(g.CountX()-1, 0)
	if lastCol.Width != 8 {
		t.Errorf("last column width = %d, want 8 (exact multiple, no truncation)", lastCol.Width)
	}
}

// =============================================================================
// TileRangeForPixels
// =============================================================================

func TestTileRangeForPixels(t *testing.T) {
	g := New(350, 200, 30, 30)

	fromTX, toTX, fromTY, toTY := g.TileRangeForPixels(0, 29, 0, 29)
	if fromTX != 0 || toTX != 1 || fromTY != 0 || toTY != 1 {
		t.Errorf("range = (%d,%d,%d,%d), want (0,1,0,1)", fromTX, toTX, fromTY, toTY)
	}

	fromTX, toTX, fromTY, toTY = g.TileRangeForPixels(25, 35, 0, 0)
	if fromTX != 0 || toTX != 2 {
		t.Errorf("x range = (%d,%d), want (0,2)", fromTX, toTX)
	}
	_ = fromTY
	_ = toTY
}

func TestTileRangeForPixelsClampsToGrid(t *testing.T) {
	g := New(10, 10, 4, 4)
	fromTX, toTX, fromTY, toTY := g.TileRangeForPixels(-5, 100, -5, 100)
	if fromTX != 0 || fromTY != 0 {
		t.Errorf("expected clamped lower bound 0, got (%d,%d)", fromTX, fromTY)
	}
	if toTX != g.CountX() || toTY != g.CountY() {
		t.Errorf("expected clamped upper bound (%d,%d), got (%d,%d)", g.CountX(), g.CountY(), toTX, toTY)
	}
}
