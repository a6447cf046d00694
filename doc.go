// Package mio is a chainable image-composition pipeline.
//
// An Image is opened from one of several source kinds, accumulates a queue
// of effects (resize, cut), and renders them lazily: queueing an effect
// records intent only, and no pixel work happens until Render is called or
// an export needs a result.
//
// # Pipeline Model
//
// Rendering clones the original source into a working buffer, applies
// every queued effect in insertion order, and installs the outcome as the
// cached result. The source itself is never mutated, so re-rendering an
// unchanged queue is deterministic and bit-identical. Appending an effect
// after a render invalidates the cached result; the next export re-renders
// so it always reflects the full queue. A failed render never replaces a
// previously good cached result.
//
// # Example
//
//	img := mio.New()
//	if _, err := img.Open(mio.File("in.png")); err != nil {
//		return err
//	}
//	img.Resize(effect.Ratio(0.5), effect.ArrayLinear, effect.BackendArray).
//		Cut(effect.Size(300, 300), effect.BackendArray)
//	if err := img.Save("out.png"); err != nil {
//		return err
//	}
//
// # Concurrency
//
// An Image is owned by a single logical caller; none of its methods are
// safe for concurrent use. Callers sharing one pipeline across goroutines
// must serialize access themselves so a half-completed render is never
// observed.
package mio
