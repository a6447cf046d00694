package mio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/mioimage/mio/array"
	"github.com/mioimage/mio/effect"
)

// newTestNRGBA builds an opaque raster with per-pixel distinct channels.
func newTestNRGBA(t *testing.T, width, height int) *image.NRGBA {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 3),
				G: uint8(y * 5),
				B: uint8(x + y),
				A: 255,
			})
		}
	}
	return img
}

// writeTestPNG writes a test raster into the test's temp dir and returns
// its path.
func writeTestPNG(t *testing.T, width, height int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "src.png")
	if err := imaging.Save(newTestNRGBA(t, width, height), path); err != nil {
		t.Fatalf("failed to write test image: %v", err)
	}
	return path
}

func TestOpen_File(t *testing.T) {
	path := writeTestPNG(t, 64, 48)

	m := New()
	if _, err := m.Open(File(path)); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if w, h := m.Size(); w != 64 || h != 48 {
		t.Errorf("Size() = %dx%d, want 64x48", w, h)
	}
	got, err := m.OriginalPath(false)
	if err != nil {
		t.Fatalf("OriginalPath failed: %v", err)
	}
	if got != path {
		t.Errorf("OriginalPath = %q, want %q", got, path)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	m := New()
	_, err := m.Open(File(filepath.Join(t.TempDir(), "nope.png")))
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("error = %v, want ErrSourceNotFound", err)
	}
	if m.src != nil {
		t.Error("source should remain unset after a failed Open")
	}
	if err := m.Render(); !errors.Is(err, ErrNotOpened) {
		t.Errorf("Render after failed Open = %v, want ErrNotOpened", err)
	}
}

func TestOpen_NilIsNoOp(t *testing.T) {
	m := New()
	if _, err := m.Open(nil); err != nil {
		t.Fatalf("Open(nil) failed: %v", err)
	}
	if m.src != nil {
		t.Error("Open(nil) should not set a source")
	}
}

func TestOpen_SourceKinds(t *testing.T) {
	src := newTestNRGBA(t, 20, 10)
	var encoded bytes.Buffer
	if err := imaging.Encode(&encoded, src, imaging.PNG); err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}

	tests := []struct {
		name string
		src  Source
	}{
		{"decoded raster", FromImage(src)},
		{"matrix", FromMatrix(array.FromNRGBA(src))},
		{"encoded bytes", FromBytes(encoded.Bytes())},
		{"reader", FromReader(bytes.NewReader(encoded.Bytes()))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			if _, err := m.Open(tt.src); err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			buf, err := m.Buffer()
			if err != nil {
				t.Fatalf("Buffer failed: %v", err)
			}
			if !bytes.Equal(buf.Pix, src.Pix) {
				t.Error("opened buffer differs from the fixture")
			}
		})
	}
}

func TestOpen_NilWrapped(t *testing.T) {
	tests := []struct {
		name string
		src  Source
	}{
		{"nil raster", FromImage(nil)},
		{"nil matrix", FromMatrix(nil)},
		{"nil reader", FromReader(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New().Open(tt.src); !errors.Is(err, ErrUnsupportedSource) {
				t.Errorf("error = %v, want ErrUnsupportedSource", err)
			}
		})
	}
}

func TestOpen_ReplacesSource(t *testing.T) {
	m := New()
	if _, err := m.Open(FromImage(newTestNRGBA(t, 10, 10))); err != nil {
		t.Fatalf("first Open failed: %v", err)
	}
	if err := m.Render(); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if _, err := m.Open(FromImage(newTestNRGBA(t, 30, 20))); err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	if m.cached != nil {
		t.Error("Open should invalidate the cached render")
	}
	if w, h := m.Size(); w != 30 || h != 20 {
		t.Errorf("Size() = %dx%d, want 30x20", w, h)
	}
}

func TestRender_NotOpened(t *testing.T) {
	if err := New().Render(); !errors.Is(err, ErrNotOpened) {
		t.Errorf("error = %v, want ErrNotOpened", err)
	}
}

func TestRender_EmptyQueueKeepsDimensions(t *testing.T) {
	m := New()
	if _, err := m.Open(FromImage(newTestNRGBA(t, 77, 33))); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := m.Render(); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if w, h := m.Size(); w != 77 || h != 33 {
		t.Errorf("Size() = %dx%d, want 77x33", w, h)
	}
	if !m.HasRendered() || m.RenderCount() != 1 {
		t.Errorf("RenderCount = %d, HasRendered = %v; want 1, true", m.RenderCount(), m.HasRendered())
	}
}

func TestRender_Idempotent(t *testing.T) {
	m := New()
	if _, err := m.Open(FromImage(newTestNRGBA(t, 60, 40))); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	m.Resize(effect.Ratio(0.5), effect.ArrayLinear, effect.BackendArray)

	if err := m.Render(); err != nil {
		t.Fatalf("first Render failed: %v", err)
	}
	first := append([]uint8(nil), m.cached.Pix...)

	if err := m.Render(); err != nil {
		t.Fatalf("second Render failed: %v", err)
	}
	if !bytes.Equal(first, m.cached.Pix) {
		t.Error("re-rendering an unchanged queue changed the result")
	}
	if m.RenderCount() != 2 {
		t.Errorf("RenderCount = %d, want 2", m.RenderCount())
	}
}

func TestRender_EffectFailure(t *testing.T) {
	m := New()
	if _, err := m.Open(FromImage(newTestNRGBA(t, 40, 40))); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	m.Resize(effect.Ratio(0.5), effect.ArrayLinear, effect.BackendArray).
		Cut(effect.Ratio(1.5), effect.BackendArray)

	err := m.Render()
	if err == nil {
		t.Fatal("Render should fail on an invalid cut ratio")
	}
	var effErr *EffectError
	if !errors.As(err, &effErr) {
		t.Fatalf("error type = %T, want *EffectError", err)
	}
	if effErr.Effect != "cut" || effErr.Index != 1 {
		t.Errorf("EffectError = %+v, want effect \"cut\" at index 1", effErr)
	}
	if !errors.Is(err, effect.ErrInvalidRatio) {
		t.Errorf("unwrapped error = %v, want ErrInvalidRatio", err)
	}
	if m.cached != nil {
		t.Error("failed render must not install a cached result")
	}
	if m.RenderCount() != 0 {
		t.Errorf("RenderCount = %d, want 0 after a failed render", m.RenderCount())
	}
}

func TestAddEffect_InvalidatesCache(t *testing.T) {
	m := New()
	if _, err := m.Open(FromImage(newTestNRGBA(t, 100, 80))); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := m.Render(); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if m.cached == nil {
		t.Fatal("expected a cached result after Render")
	}

	m.Resize(effect.Ratio(0.5), effect.ArrayLinear, effect.BackendArray)
	if m.cached != nil {
		t.Fatal("appending an effect must invalidate the cache")
	}

	// The next export re-renders and reflects the appended effect.
	buf, err := m.Buffer()
	if err != nil {
		t.Fatalf("Buffer failed: %v", err)
	}
	if w, h := buf.Bounds().Dx(), buf.Bounds().Dy(); w != 50 || h != 40 {
		t.Errorf("post-append export is %dx%d, want 50x40", w, h)
	}
}

func TestRender_FailureKeepsPriorResult(t *testing.T) {
	m := New()
	if _, err := m.Open(FromImage(newTestNRGBA(t, 40, 40))); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := m.Render(); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	good, err := m.Buffer()
	if err != nil {
		t.Fatalf("Buffer failed: %v", err)
	}

	m.Cut(effect.Ratio(1.5), effect.BackendArray)
	if err := m.Render(); err == nil {
		t.Fatal("Render should fail")
	}
	if m.RenderCount() != 1 {
		t.Errorf("RenderCount = %d, want 1", m.RenderCount())
	}
	// The result exported before the failure is untouched.
	if w, h := good.Bounds().Dx(), good.Bounds().Dy(); w != 40 || h != 40 {
		t.Errorf("prior result mutated to %dx%d", w, h)
	}
}

func TestChain_ResizeThenCut(t *testing.T) {
	m := New()
	if _, err := m.Open(FromImage(newTestNRGBA(t, 1000, 800))); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	m.Resize(effect.Ratio(0.5), effect.ArrayLinear, effect.BackendArray)
	if err := m.Render(); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if w, h := m.Size(); w != 500 || h != 400 {
		t.Fatalf("after resize: %dx%d, want 500x400", w, h)
	}

	m.Cut(effect.Ratios(0.5, 0.5), effect.BackendArray)
	if err := m.Render(); err != nil {
		t.Fatalf("second Render failed: %v", err)
	}
	if w, h := m.Size(); w != 250 || h != 200 {
		t.Fatalf("after cut: %dx%d, want 250x200", w, h)
	}
	if m.RenderCount() != 2 {
		t.Errorf("RenderCount = %d, want 2", m.RenderCount())
	}
}

func TestResize_StickyConstructionError(t *testing.T) {
	m := New()
	if _, err := m.Open(FromImage(newTestNRGBA(t, 10, 10))); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	m.Resize(effect.Target{}, effect.ArrayLinear, effect.BackendArray)
	if err := m.Render(); !errors.Is(err, effect.ErrInvalidTarget) {
		t.Errorf("Render error = %v, want ErrInvalidTarget", err)
	}
	if _, err := m.Bytes(); !errors.Is(err, effect.ErrInvalidTarget) {
		t.Errorf("Bytes error = %v, want ErrInvalidTarget", err)
	}
}

func TestOpen_ClearsStickyError(t *testing.T) {
	m := New()
	if _, err := m.Open(FromImage(newTestNRGBA(t, 10, 10))); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	m.Resize(effect.Target{}, effect.ArrayLinear, effect.BackendArray)
	if err := m.Render(); !errors.Is(err, effect.ErrInvalidTarget) {
		t.Fatalf("Render error = %v, want ErrInvalidTarget", err)
	}

	// A fresh Open starts the pipeline over; the remembered queueing
	// failure must not outlive it.
	if _, err := m.Open(FromImage(newTestNRGBA(t, 20, 20))); err != nil {
		t.Fatalf("second Open failed: %v", err)
	}
	if err := m.Render(); err != nil {
		t.Errorf("Render after recovery Open failed: %v", err)
	}
	if w, h := m.Size(); w != 20 || h != 20 {
		t.Errorf("Size() = %dx%d, want 20x20", w, h)
	}
}

func TestEffects_ReturnsCopy(t *testing.T) {
	m := New()
	m.Resize(effect.Ratio(0.5), effect.ArrayLinear, effect.BackendArray)

	got := m.Effects()
	if len(got) != 1 {
		t.Fatalf("Effects() len = %d, want 1", len(got))
	}
	got[0] = nil
	if m.effects[0] == nil {
		t.Error("mutating the returned slice affected the queue")
	}
}

func TestNew_Defaults(t *testing.T) {
	m := New()
	if m.Type != "image" || !m.HasTag("image") {
		t.Errorf("Type = %q, Tags = %v; want type and tag \"image\"", m.Type, m.Tags)
	}
	if m.Alpha != 255 {
		t.Errorf("Alpha = %d, want 255", m.Alpha)
	}
	if m.Background.A != 255 || m.Background.R != 0 || m.Background.G != 0 || m.Background.B != 0 {
		t.Errorf("Background = %+v, want opaque black", m.Background)
	}
	if m.HasRendered() {
		t.Error("new pipeline reports HasRendered")
	}
}

func TestRoundTrip_SaveAndReopen(t *testing.T) {
	srcPath := writeTestPNG(t, 33, 21)
	dstPath := filepath.Join(t.TempDir(), "copy.png")

	m := New()
	if _, err := m.Open(File(srcPath)); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := m.Save(dstPath); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reopened := New()
	if _, err := reopened.Open(File(dstPath)); err != nil {
		t.Fatalf("reopen failed: %v", err)
	}

	a, err := m.Buffer()
	if err != nil {
		t.Fatalf("Buffer failed: %v", err)
	}
	b, err := reopened.Buffer()
	if err != nil {
		t.Fatalf("Buffer failed: %v", err)
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("saved and reopened image differs from the original")
	}

	if _, err := os.Stat(dstPath); err != nil {
		t.Errorf("saved file missing: %v", err)
	}
}
