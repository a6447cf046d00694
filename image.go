package mio

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/mioimage/mio/colors"
	"github.com/mioimage/mio/effect"
	"github.com/mioimage/mio/object"
)

// Image is the pipeline: it owns the opened source buffer, the ordered
// effect queue and the cached render result. See the package documentation
// for the rendering model.
type Image struct {
	object.Object

	// Background fills behind the image when it is flattened without a
	// layer. Defaults to black.
	Background colors.Color

	// Rotation is the draw rotation in degrees.
	Rotation float64

	// Alpha is the draw opacity (0 = transparent, 255 = opaque).
	Alpha uint8

	src     *image.NRGBA
	srcPath string

	effects []effect.Effect
	cached  *image.NRGBA

	renderCount int

	// err is the first queueing failure; it is surfaced by Render and the
	// exports so the chainable builders can stay fluent.
	err error
}

// New creates an empty pipeline with no source and no effects.
func New() *Image {
	m := &Image{
		Background: colors.Black,
		Alpha:      255,
	}
	m.Type = "image"
	m.Tag("image")
	return m
}

// Open loads a source into the pipeline, replacing any previously opened
// one. A nil source is a no-op. Opening records the file path when the
// source is a file, updates the pipeline dimensions from the decoded
// buffer, invalidates any cached render, and clears a remembered queueing
// error so the pipeline can start over. The effect queue is kept.
//
// Errors: ErrSourceNotFound for a missing file, ErrUnsupportedSource for
// a source wrapping nothing, or a decode failure. On error the pipeline
// keeps its previous source untouched.
func (m *Image) Open(src Source) (*Image, error) {
	if src == nil {
		return m, nil
	}
	buf, path, err := src.resolve()
	if err != nil {
		return m, err
	}
	m.src = buf
	m.srcPath = path
	m.cached = nil
	m.err = nil
	b := buf.Bounds()
	m.Width, m.Height = b.Dx(), b.Dy()
	m.FullWidth, m.FullHeight = b.Dx(), b.Dy()
	return m, nil
}

// AddEffect appends an effect to the queue and returns the pipeline for
// chaining. No pixel work happens until the next render. Appending after
// a render invalidates the cached result, since it no longer reflects the
// full queue.
func (m *Image) AddEffect(e effect.Effect) *Image {
	m.effects = append(m.effects, e)
	m.cached = nil
	return m
}

// Resize queues a resize effect. Construction failures (an unclassified
// target) are remembered and surfaced by the next Render or export.
func (m *Image) Resize(target effect.Target, interp int, backend effect.Backend) *Image {
	e, err := effect.NewResize(target, interp, backend)
	if err != nil {
		m.fail(err)
		return m
	}
	return m.AddEffect(e)
}

// Cut queues a top-left-anchored crop effect. Construction failures are
// remembered and surfaced by the next Render or export.
func (m *Image) Cut(target effect.Target, backend effect.Backend) *Image {
	e, err := effect.NewCut(target, backend)
	if err != nil {
		m.fail(err)
		return m
	}
	return m.AddEffect(e)
}

// Render applies the queued effects in insertion order to a fresh copy of
// the source and installs the outcome as the cached result.
//
// ErrNotOpened is returned when no source has been opened. If an effect
// fails, rendering stops, the failure is wrapped in *EffectError naming
// the effect, and any previously cached result stays untouched. On
// success the dimensions are updated and the render counter increments.
func (m *Image) Render() error {
	if m.err != nil {
		return m.err
	}
	if m.src == nil {
		return ErrNotOpened
	}

	working := imaging.Clone(m.src)
	for i, e := range m.effects {
		out, err := e.Apply(working)
		if err != nil {
			return &EffectError{Effect: e.Name(), Index: i, Err: err}
		}
		working = out
	}

	m.cached = working
	b := working.Bounds()
	m.Width, m.Height = b.Dx(), b.Dy()
	m.FullWidth, m.FullHeight = b.Dx(), b.Dy()
	m.renderCount++
	return nil
}

// RenderCount returns how many renders have completed.
func (m *Image) RenderCount() int { return m.renderCount }

// HasRendered reports whether at least one render has completed.
func (m *Image) HasRendered() bool { return m.renderCount > 0 }

// Effects returns a copy of the queued effects in application order.
func (m *Image) Effects() []effect.Effect {
	out := make([]effect.Effect, len(m.effects))
	copy(out, m.effects)
	return out
}

// fail records the first queueing error.
func (m *Image) fail(err error) {
	if m.err == nil {
		m.err = err
	}
}

// ensure guarantees a valid cached result exists, rendering implicitly
// exactly once when it is absent.
func (m *Image) ensure() error {
	if m.err != nil {
		return m.err
	}
	if m.src == nil {
		return ErrNoImageData
	}
	if m.cached == nil {
		return m.Render()
	}
	return nil
}
