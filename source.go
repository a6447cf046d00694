package mio

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"

	// WebP sources decode through the extended image repository; the other
	// common formats are registered by the imaging library itself.
	_ "golang.org/x/image/webp"

	"github.com/mioimage/mio/array"
)

// Source is a closed union of the input kinds Open accepts: a file path,
// a decoded raster, a BGRA matrix, encoded bytes, or a byte stream.
// Construct values with File, FromImage, FromMatrix, FromBytes or
// FromReader.
type Source interface {
	// resolve decodes the source into a working raster and reports the
	// originating file path, if any.
	resolve() (*image.NRGBA, string, error)
}

type fileSource struct{ path string }

type imageSource struct{ img image.Image }

type matrixSource struct{ m *array.Matrix }

type bytesSource struct{ data []byte }

type readerSource struct{ r io.Reader }

// File refers to an image file on disk. The path is remembered by the
// pipeline and reported by OriginalPath.
func File(path string) Source { return fileSource{path: path} }

// FromImage wraps an already-decoded raster. The raster is cloned on
// open, so later mutations of the argument do not leak into the pipeline.
func FromImage(img image.Image) Source { return imageSource{img: img} }

// FromMatrix wraps a BGRA matrix buffer.
func FromMatrix(m *array.Matrix) Source { return matrixSource{m: m} }

// FromBytes wraps encoded image bytes (PNG, JPEG, GIF, TIFF, BMP, WebP).
func FromBytes(data []byte) Source { return bytesSource{data: data} }

// FromReader wraps a stream of encoded image bytes.
func FromReader(r io.Reader) Source { return readerSource{r: r} }

func (s fileSource) resolve() (*image.NRGBA, string, error) {
	if _, err := os.Stat(s.path); err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrSourceNotFound, s.path)
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open source: %w", err)
	}
	defer f.Close()

	img, err := imaging.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode %s: %w", s.path, err)
	}
	return imaging.Clone(img), s.path, nil
}

func (s imageSource) resolve() (*image.NRGBA, string, error) {
	if s.img == nil {
		return nil, "", fmt.Errorf("%w: nil raster", ErrUnsupportedSource)
	}
	return imaging.Clone(s.img), "", nil
}

func (s matrixSource) resolve() (*image.NRGBA, string, error) {
	if s.m == nil {
		return nil, "", fmt.Errorf("%w: nil matrix", ErrUnsupportedSource)
	}
	return s.m.ToNRGBA(), "", nil
}

func (s bytesSource) resolve() (*image.NRGBA, string, error) {
	img, err := imaging.Decode(bytes.NewReader(s.data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode bytes: %w", err)
	}
	return imaging.Clone(img), "", nil
}

func (s readerSource) resolve() (*image.NRGBA, string, error) {
	if s.r == nil {
		return nil, "", fmt.Errorf("%w: nil reader", ErrUnsupportedSource)
	}
	img, err := imaging.Decode(s.r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode stream: %w", err)
	}
	return imaging.Clone(img), "", nil
}
