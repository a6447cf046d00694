package mio

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"os"
	"os/exec"
	"runtime"

	"github.com/disintegration/imaging"

	"github.com/mioimage/mio/array"
)

// Exports read the cached render without mutating it, rendering implicitly
// when no valid cache exists. Each fails with ErrNoImageData when no
// source was ever opened.

// Save renders if needed and writes the result to path. The encoding is
// chosen from the file extension.
func (m *Image) Save(path string) error {
	if err := m.ensure(); err != nil {
		return err
	}
	if err := imaging.Save(m.cached, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// Bytes renders if needed and returns the result encoded as PNG.
func (m *Image) Bytes() ([]byte, error) {
	if err := m.ensure(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, m.cached, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// Base64 renders if needed and returns the PNG encoding of the result as
// a standard base64 string.
func (m *Image) Base64() (string, error) {
	data, err := m.Bytes()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Buffer renders if needed and returns a copy of the result raster.
// Mutating the returned buffer does not affect the cached result.
func (m *Image) Buffer() (*image.NRGBA, error) {
	if err := m.ensure(); err != nil {
		return nil, err
	}
	return imaging.Clone(m.cached), nil
}

// Array renders if needed and returns the result as a BGRA matrix.
func (m *Image) Array() (*array.Matrix, error) {
	if err := m.ensure(); err != nil {
		return nil, err
	}
	return array.FromNRGBA(m.cached), nil
}

// Show renders if needed, writes the result to a temporary PNG and opens
// it with the platform image viewer. The viewer is started without
// waiting for it to exit.
func (m *Image) Show() error {
	path, err := m.renderToTemp()
	if err != nil {
		return err
	}
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch viewer: %w", err)
	}
	return nil
}

// OriginalPath returns the file path the source was opened from. When the
// source did not come from a file and allowTemp is true, the current
// render is materialized to a fresh temporary PNG and that path is
// returned; with allowTemp false the result is empty without error.
func (m *Image) OriginalPath(allowTemp bool) (string, error) {
	if m.srcPath != "" {
		return m.srcPath, nil
	}
	if !allowTemp {
		return "", nil
	}
	return m.renderToTemp()
}

// renderToTemp writes the current render to a unique temporary PNG file.
func (m *Image) renderToTemp() (string, error) {
	if err := m.ensure(); err != nil {
		return "", err
	}
	f, err := os.CreateTemp("", "mio-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer f.Close()

	if err := imaging.Encode(f, m.cached, imaging.PNG); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to encode temp image: %w", err)
	}
	return f.Name(), nil
}
