package effect

import (
	"fmt"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
)

// Interpolation kernels for the array backend. The values follow the
// array library family's conventional numbering and are NOT interchangeable
// with the raster constants: an interpolation value is only meaningful
// together with the backend it was chosen for.
const (
	ArrayNearest = 0 // nearest neighbor
	ArrayLinear  = 1 // bilinear
	ArrayCubic   = 2 // bicubic (Catmull-Rom)
	ArrayArea    = 3 // area averaging (box)
	ArrayLanczos = 4 // Lanczos
)

// Interpolation kernels for the raster backend. Note the numbering is
// disjoint from the array constants above; in particular Lanczos is 1
// here and 4 there.
const (
	RasterNearest  = 0 // nearest neighbor
	RasterLanczos  = 1 // Lanczos
	RasterBilinear = 2 // bilinear
	RasterBicubic  = 3 // bicubic (Catmull-Rom)
	RasterBox      = 4 // box
)

func arrayFilter(interp int) (transform.ResampleFilter, error) {
	switch interp {
	case ArrayNearest:
		return transform.NearestNeighbor, nil
	case ArrayLinear:
		return transform.Linear, nil
	case ArrayCubic:
		return transform.CatmullRom, nil
	case ArrayArea:
		return transform.Box, nil
	case ArrayLanczos:
		return transform.Lanczos, nil
	default:
		return transform.ResampleFilter{}, fmt.Errorf("%w: array kernel %d", ErrUnsupportedInterpolation, interp)
	}
}

func rasterFilter(interp int) (imaging.ResampleFilter, error) {
	switch interp {
	case RasterNearest:
		return imaging.NearestNeighbor, nil
	case RasterLanczos:
		return imaging.Lanczos, nil
	case RasterBilinear:
		return imaging.Linear, nil
	case RasterBicubic:
		return imaging.CatmullRom, nil
	case RasterBox:
		return imaging.Box, nil
	default:
		return imaging.ResampleFilter{}, fmt.Errorf("%w: raster kernel %d", ErrUnsupportedInterpolation, interp)
	}
}

// DefaultInterpolation returns the bilinear kernel value for the given
// backend, the default used when no kernel is specified.
func DefaultInterpolation(b Backend) int {
	if b == BackendRaster {
		return RasterBilinear
	}
	return ArrayLinear
}
