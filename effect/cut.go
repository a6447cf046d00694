package effect

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"

	"github.com/mioimage/mio/array"
)

// Cut crops the working buffer to a region anchored at the top-left
// corner. In ratio mode the factors must lie strictly inside (0, 1) —
// cropping at or beyond full size is meaningless — except for the exact
// 1.0/1.0 pair, which is the no-op. Fractional pixel boundaries truncate
// toward zero.
type Cut struct {
	target  Target
	backend Backend
}

// NewCut builds a cut effect. The target must have been classified; an
// unclassified zero target fails with ErrInvalidTarget. Value ranges and
// the backend name are checked at apply time.
func NewCut(target Target, backend Backend) (*Cut, error) {
	if target.mode == modeNone {
		return nil, fmt.Errorf("%w: unclassified target", ErrInvalidTarget)
	}
	return &Cut{target: target, backend: backend}, nil
}

// Name implements Effect.
func (e *Cut) Name() string { return "cut" }

// Apply implements Effect.
func (e *Cut) Apply(img *image.NRGBA) (*image.NRGBA, error) {
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
		if e.target.ratioW <= 0 || e.target.ratioW >= 1.0 ||
			e.target.ratioH <= 0 || e.target.ratioH >= 1.0 {
			return nil, fmt.Errorf("%w: %g x %g (cut ratios must be within (0, 1))",
				ErrInvalidRatio, e.target.ratioW, e.target.ratioH)
		}
		width = int(float64(cur.Dx()) * e.target.ratioW)
		height = int(float64(cur.Dy()) * e.target.ratioH)
		// A ratio that truncates an axis to zero pixels would crop the
		// image away entirely; reject it like any other out-of-domain
		// ratio.
		if width < 1 || height < 1 {
			return nil, fmt.Errorf("%w: %g x %g leaves no pixels at %dx%d",
				ErrInvalidRatio, e.target.ratioW, e.target.ratioH, cur.Dx(), cur.Dy())
		}
	case modeAbsolute:
		if e.target.width <= 0 || e.target.height <= 0 {
			return nil, fmt.Errorf("%w: %d x %d", ErrInvalidTargetSize, e.target.width, e.target.height)
		}
		width, height = e.target.width, e.target.height
	default:
		return nil, fmt.Errorf("%w: unclassified target", ErrInvalidTarget)
	}

	// The crop region is the intersection with the buffer, so absolute
	// targets at or beyond the current size leave that axis whole.
	if width > cur.Dx() {
		width = cur.Dx()
	}
	if height > cur.Dy() {
		height = cur.Dy()
	}
	if width == cur.Dx() && height == cur.Dy() {
		return img, nil
	}
	region := image.Rect(0, 0, width, height)

	switch e.backend {
	case BackendArray:
		m := array.FromNRGBA(img)
		return imaging.Clone(transform.Crop(m, region)), nil
	case BackendRaster:
		return imaging.Crop(img, region), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, string(e.backend))
	}
}
