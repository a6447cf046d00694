// Package array provides the multi-dimensional pixel buffer used by the
// fast-array backend and the adapter between it and the packed raster
// representation.
//
// A Matrix stores pixels as rows of 4-byte BGRA samples, the channel order
// the array backend operates in. Conversion to and from *image.NRGBA
// reorders channels in both directions so the alpha channel survives a
// round trip. Matrix also satisfies image.Image, which lets resampling
// primitives consume it directly without an intermediate copy.
package array

import (
	"image"
	"image/color"
)

// Channels is the number of samples per pixel in a Matrix.
const Channels = 4

// Matrix is a height × width × 4 buffer of 8-bit samples in BGRA order.
type Matrix struct {
	// Pix holds the samples row-major: Pix[y*Stride+x*4] is the blue
	// sample of the pixel at (x, y).
	Pix []uint8

	// Stride is the distance in bytes between vertically adjacent pixels.
	Stride int

	// W, H are the buffer dimensions in pixels.
	W, H int
}

// New allocates a zeroed (transparent black) matrix of the given size.
func New(width, height int) *Matrix {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Matrix{
		Pix:    make([]uint8, width*height*Channels),
		Stride: width * Channels,
		W:      width,
		H:      height,
	}
}

// FromNRGBA converts a packed RGBA raster to a BGRA matrix.
//
// The source is read through its own bounds, so sub-images and rasters
// with a non-zero origin convert correctly. Alpha is carried over
// unchanged.
func FromNRGBA(img *image.NRGBA) *Matrix {
	b := img.Bounds()
	m := New(b.Dx(), b.Dy())
	for y := 0; y < m.H; y++ {
		si := img.PixOffset(b.Min.X, b.Min.Y+y)
		di := y * m.Stride
		for x := 0; x < m.W; x++ {
			m.Pix[di+0] = img.Pix[si+2] // B
			m.Pix[di+1] = img.Pix[si+1] // G
			m.Pix[di+2] = img.Pix[si+0] // R
			m.Pix[di+3] = img.Pix[si+3] // A
			si += 4
			di += Channels
		}
	}
	return m
}

// ToNRGBA converts the matrix back to a packed RGBA raster, reordering
// channels and preserving alpha.
func (m *Matrix) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, m.W, m.H))
	for y := 0; y < m.H; y++ {
		si := y * m.Stride
		di := img.PixOffset(0, y)
		for x := 0; x < m.W; x++ {
			img.Pix[di+0] = m.Pix[si+2] // R
			img.Pix[di+1] = m.Pix[si+1] // G
			img.Pix[di+2] = m.Pix[si+0] // B
			img.Pix[di+3] = m.Pix[si+3] // A
			si += Channels
			di += 4
		}
	}
	return img
}

// Width returns the buffer width in pixels.
func (m *Matrix) Width() int { return m.W }

// Height returns the buffer height in pixels.
func (m *Matrix) Height() int { return m.H }

// BGRAAt returns the raw samples of the pixel at (x, y).
func (m *Matrix) BGRAAt(x, y int) (b, g, r, a uint8) {
	i := y*m.Stride + x*Channels
	return m.Pix[i+0], m.Pix[i+1], m.Pix[i+2], m.Pix[i+3]
}

// SetBGRA writes the raw samples of the pixel at (x, y).
func (m *Matrix) SetBGRA(x, y int, b, g, r, a uint8) {
	i := y*m.Stride + x*Channels
	m.Pix[i+0] = b
	m.Pix[i+1] = g
	m.Pix[i+2] = r
	m.Pix[i+3] = a
}

// ColorModel implements image.Image.
func (m *Matrix) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (m *Matrix) Bounds() image.Rectangle { return image.Rect(0, 0, m.W, m.H) }

// At implements image.Image, reordering BGRA samples into an NRGBA color.
func (m *Matrix) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(m.Bounds())) {
		return color.NRGBA{}
	}
	b, g, r, a := m.BGRAAt(x, y)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
