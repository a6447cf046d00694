// Package layer provides an ordered container of positioned nodes.
//
// A Layer groups drawable entities the way a layer in an image editor
// does: it has a size, a background color, an opacity, and an ordered
// list of nodes. Nodes are composited back-to-front by contract — later
// additions sit above earlier ones unless an explicit z-order says
// otherwise. The flattening itself is left to the consumer; this package
// only maintains ordering and bounds.
package layer

import (
	"sort"

	"github.com/mioimage/mio/colors"
)

// Node is a positioned entity a layer can hold. mio.Image satisfies it
// through its embedded object base.
type Node interface {
	Position() (x, y int)
	Size() (width, height int)
}

type entry struct {
	node Node
	z    int
	seq  int
}

// Layer is an ordered group of nodes with a shared background.
type Layer struct {
	// Name identifies the layer.
	Name string

	// Dynamic lets the layer derive its size from its nodes instead of
	// the fixed Width/Height. Dynamic layers cannot be grouped.
	Dynamic bool

	// Width, Height is the fixed layer size, ignored when Dynamic.
	Width  int
	Height int

	// Background fills the layer behind its nodes.
	Background colors.Color

	// Alpha is the layer opacity (0 = transparent, 255 = opaque).
	Alpha uint8

	entries []entry
	nextSeq int
}

// New creates an empty layer of the given fixed size with a black
// background and full opacity.
func New(name string, width, height int) *Layer {
	return &Layer{
		Name:       name,
		Width:      width,
		Height:     height,
		Background: colors.Black,
		Alpha:      255,
	}
}

// Add appends a node at z-order 0 and returns the layer for chaining.
func (l *Layer) Add(n Node) *Layer {
	return l.AddZ(n, 0)
}

// AddZ appends a node with an explicit z-order. Higher z draws above
// lower z; equal z preserves insertion order.
func (l *Layer) AddZ(n Node, z int) *Layer {
	l.entries = append(l.entries, entry{node: n, z: z, seq: l.nextSeq})
	l.nextSeq++
	return l
}

// Len returns the number of nodes in the layer.
func (l *Layer) Len() int { return len(l.entries) }

// Nodes returns the layer's nodes in back-to-front draw order.
func (l *Layer) Nodes() []Node {
	sorted := make([]entry, len(l.entries))
	copy(sorted, l.entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].z != sorted[j].z {
			return sorted[i].z < sorted[j].z
		}
		return sorted[i].seq < sorted[j].seq
	})
	nodes := make([]Node, len(sorted))
	for i, e := range sorted {
		nodes[i] = e.node
	}
	return nodes
}

// Resize sets the fixed layer size and returns the layer for chaining.
func (l *Layer) Resize(width, height int) *Layer {
	l.Width = width
	l.Height = height
	return l
}

// Size returns the effective layer size. For dynamic layers it is the
// smallest box containing every node anchored at the origin; for fixed
// layers it is the configured size.
func (l *Layer) Size() (width, height int) {
	if !l.Dynamic {
		return l.Width, l.Height
	}
	for _, e := range l.entries {
		x, y := e.node.Position()
		w, h := e.node.Size()
		if x+w > width {
			width = x + w
		}
		if y+h > height {
			height = y + h
		}
	}
	return width, height
}
