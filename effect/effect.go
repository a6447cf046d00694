// Package effect provides the polymorphic image transformations applied by
// a mio pipeline during rendering.
//
// An Effect is a stateless transformation: it holds only its own validated
// configuration and is applied to a working buffer it does not own. The
// pipeline applies queued effects in insertion order and adopts each
// returned buffer as the new working buffer.
//
// # Backends
//
// Every effect delegates the actual pixel work to one of two backends. The
// raster backend operates on the packed *image.NRGBA buffer directly; the
// array backend converts the buffer to a BGRA matrix (see the array
// package), resamples it there, and converts back. Both preserve alpha.
// The two backends number their interpolation kernels differently — see
// the interpolation constants.
package effect

import (
	"errors"
	"image"
)

// Apply-time and construction-time failures.
var (
	// ErrInvalidTarget means a target value had an unrecognized shape
	// (wrong arity, mixed numeric kinds, or an unclassified zero value).
	ErrInvalidTarget = errors.New("effect: invalid target")

	// ErrInvalidRatio means a ratio fell outside the effect's legal range.
	ErrInvalidRatio = errors.New("effect: invalid ratio")

	// ErrInvalidTargetSize means an absolute target dimension was not
	// positive.
	ErrInvalidTargetSize = errors.New("effect: invalid target size")

	// ErrUnsupportedBackend means the configured backend name is unknown.
	ErrUnsupportedBackend = errors.New("effect: unsupported backend")

	// ErrUnsupportedInterpolation means the interpolation value does not
	// name a kernel of the configured backend.
	ErrUnsupportedInterpolation = errors.New("effect: unsupported interpolation")

	// ErrImageNotOpened means Apply was handed a nil working buffer.
	ErrImageNotOpened = errors.New("effect: image not opened")
)

// Effect is a named transformation of a working buffer.
//
// Apply never retains or mutates its argument after returning; it either
// returns the argument unchanged (a no-op) or a freshly allocated
// replacement buffer.
type Effect interface {
	// Name identifies the effect kind, e.g. "resize".
	Name() string

	// Apply transforms the working buffer and returns its replacement.
	Apply(img *image.NRGBA) (*image.NRGBA, error)
}

// Backend selects the pixel-processing library an effect delegates to.
type Backend string

const (
	// BackendArray resamples through the BGRA matrix representation.
	BackendArray Backend = "array"

	// BackendRaster resamples the packed raster buffer directly.
	BackendRaster Backend = "raster"
)
