package raster

import "errors"

// Sentinel errors returned from construction and configuration. The
// per-frame rendering path never returns an error: invalid geometry is
// culled or dropped silently (see the package doc).
var (
	// ErrInvalidDimensions is returned when a width, height, region width or
	// region height is not positive.
	ErrInvalidDimensions = errors.New("raster: width, height and region dimensions must be positive")

	// ErrNilShader is returned when a vertex or fragment stage is nil.
	ErrNilShader = errors.New("raster: vertex and fragment stages must be non-nil")

	// ErrInvalidWorkerCount is returned when a worker pool is constructed
	// with a non-positive worker count.
	ErrInvalidWorkerCount = errors.New("raster: worker count must be positive")
)
