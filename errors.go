package mio

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceNotFound means Open was given a path that does not resolve
	// to an existing file.
	ErrSourceNotFound = errors.New("mio: source file not found")

	// ErrUnsupportedSource means Open was given a source of an
	// unrecognized kind.
	ErrUnsupportedSource = errors.New("mio: unsupported source type")

	// ErrNotOpened means Render was called before any source was opened.
	ErrNotOpened = errors.New("mio: image not opened")

	// ErrNoImageData means an export needed a rendered result but no
	// source was ever opened, so an implicit render is impossible.
	ErrNoImageData = errors.New("mio: no image data")
)

// EffectError reports which queued effect failed during a render and why.
type EffectError struct {
	// Effect is the name of the failing effect.
	Effect string

	// Index is the effect's position in the queue.
	Index int

	// Err is the underlying failure.
	Err error
}

func (e *EffectError) Error() string {
	return fmt.Sprintf("mio: effect %q at index %d: %v", e.Effect, e.Index, e.Err)
}

// Unwrap exposes the underlying failure for errors.Is / errors.As.
func (e *EffectError) Unwrap() error { return e.Err }
