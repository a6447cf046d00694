package effect

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"

	"github.com/mioimage/mio/array"
)

// Resize scales the working buffer, either by per-axis ratios or to exact
// pixel dimensions. Ratios above 1.0 upscale; a ratio of exactly 1.0 on
// both axes is a no-op.
type Resize struct {
	target  Target
	interp  int
	backend Backend
}

// NewResize builds a resize effect. The target must have been classified
// (ratio or absolute mode); an unclassified zero target fails with
// ErrInvalidTarget. Ratio and dimension values are range-checked at apply
// time, backend and kernel names likewise.
func NewResize(target Target, interp int, backend Backend) (*Resize, error) {
	if target.mode == modeNone {
		return nil, fmt.Errorf("%w: unclassified target", ErrInvalidTarget)
	}
	return &Resize{target: target, interp: interp, backend: backend}, nil
}

// Name implements Effect.
func (e *Resize) Name() string { return "resize" }

// Apply implements Effect.
func (e *Resize) Apply(img *image.NRGBA) (*image.NRGBA, error) {
	if img == nil {
		return nil, ErrImageNotOpened
	}

	cur := img.Bounds()
	var width, height int
	switch e.target.mode {
	case modeRatio:
		if e.target.ratioW == 1.0 && e.target.ratioH == 1.0 {
			return img, nil
		}
		if e.target.ratioW <= 0 || e.target.ratioH <= 0 {
			return nil, fmt.Errorf("%w: %g x %g", ErrInvalidRatio, e.target.ratioW, e.target.ratioH)
		}
		// Neither backend scales by factor natively, so derive the pixel
		// size from the current dimensions, truncating toward zero.
		width = int(float64(cur.Dx()) * e.target.ratioW)
		height = int(float64(cur.Dy()) * e.target.ratioH)
		// A ratio small enough to truncate an axis to zero pixels cannot
		// be honored; the backends disagree on what a zero dimension
		// means, so reject it before dispatching.
		if width < 1 || height < 1 {
			return nil, fmt.Errorf("%w: %g x %g leaves no pixels at %dx%d",
				ErrInvalidRatio, e.target.ratioW, e.target.ratioH, cur.Dx(), cur.Dy())
		}
	case modeAbsolute:
		if e.target.width <= 0 || e.target.height <= 0 {
			return nil, fmt.Errorf("%w: %d x %d", ErrInvalidTargetSize, e.target.width, e.target.height)
		}
		if e.target.width == cur.Dx() && e.target.height == cur.Dy() {
			return img, nil
		}
		width, height = e.target.width, e.target.height
	default:
		return nil, fmt.Errorf("%w: unclassified target", ErrInvalidTarget)
	}

	switch e.backend {
	case BackendArray:
		filter, err := arrayFilter(e.interp)
		if err != nil {
			return nil, err
		}
		m := array.FromNRGBA(img)
		return imaging.Clone(transform.Resize(m, width, height, filter)), nil
	case BackendRaster:
		filter, err := rasterFilter(e.interp)
		if err != nil {
			return nil, err
		}
		return imaging.Resize(img, width, height, filter), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, string(e.backend))
	}
}
