// Package object provides the positioned-box base type embedded by mio's
// drawable entities.
//
// The coordinate system has its origin at the top-left corner: X increases
// rightward, Y increases downward, all units are pixels. An Object tracks
// its basepoint position, an independent draw offset (for effects such as
// shadows that shift the drawn pixels without moving the logical box), its
// box size, and its full size including any overdraw.
package object

// Object is a generic positioned box. It carries no pixel data of its own;
// concrete types embed it and supply their own contents.
type Object struct {
	// X, Y is the top-left basepoint of the box.
	X int
	Y int

	// XOffset, YOffset shift the drawn position without moving the box.
	XOffset int
	YOffset int

	// Width, Height is the logical box size.
	Width  int
	Height int

	// FullWidth, FullHeight is the size including overdraw outside the box.
	FullWidth  int
	FullHeight int

	// Name identifies the object for name-based filtering.
	Name string

	// Tags hold labels for tag-based filtering.
	Tags []string

	// Type names the concrete kind, set by embedding types.
	Type string
}

// Size returns the logical box size.
func (o *Object) Size() (width, height int) {
	return o.Width, o.Height
}

// FullSize returns the size including overdraw.
func (o *Object) FullSize() (width, height int) {
	return o.FullWidth, o.FullHeight
}

// Position returns the basepoint.
func (o *Object) Position() (x, y int) {
	return o.X, o.Y
}

// OffsetPosition returns the basepoint shifted by the draw offset.
func (o *Object) OffsetPosition() (x, y int) {
	return o.X + o.XOffset, o.Y + o.YOffset
}

// Box returns the bounding box as top-left and bottom-right corners.
func (o *Object) Box() (x1, y1, x2, y2 int) {
	return o.X, o.Y, o.X + o.Width, o.Y + o.Height
}

// OffsetBox returns the bounding box shifted by the draw offset.
func (o *Object) OffsetBox() (x1, y1, x2, y2 int) {
	x1, y1 = o.OffsetPosition()
	return x1, y1, x1 + o.Width, y1 + o.Height
}

// LeftTop returns the top-left corner of the box.
func (o *Object) LeftTop() (x, y int) {
	return o.X, o.Y
}

// LeftBottom returns the bottom-left corner of the box.
func (o *Object) LeftBottom() (x, y int) {
	return o.X, o.Y + o.Height
}

// RightTop returns the top-right corner of the box.
func (o *Object) RightTop() (x, y int) {
	return o.X + o.Width, o.Y
}

// RightBottom returns the bottom-right corner of the box.
func (o *Object) RightBottom() (x, y int) {
	return o.X + o.Width, o.Y + o.Height
}

// OffsetLeftTop returns the top-left corner shifted by the draw offset.
func (o *Object) OffsetLeftTop() (x, y int) {
	return o.X + o.XOffset, o.Y + o.YOffset
}

// OffsetLeftBottom returns the bottom-left corner shifted by the draw offset.
func (o *Object) OffsetLeftBottom() (x, y int) {
	return o.X + o.XOffset, o.Y + o.Height + o.YOffset
}

// OffsetRightTop returns the top-right corner shifted by the draw offset.
func (o *Object) OffsetRightTop() (x, y int) {
	return o.X + o.Width + o.XOffset, o.Y + o.YOffset
}

// OffsetRightBottom returns the bottom-right corner shifted by the draw
// offset.
func (o *Object) OffsetRightBottom() (x, y int) {
	return o.X + o.Width + o.XOffset, o.Y + o.Height + o.YOffset
}

// Move places the basepoint at (x, y) and returns the object for chaining.
func (o *Object) Move(x, y int) *Object {
	o.X = x
	o.Y = y
	return o
}

// MoveUp shifts the object up by step pixels.
func (o *Object) MoveUp(step int) *Object {
	o.Y -= step
	return o
}

// MoveDown shifts the object down by step pixels.
func (o *Object) MoveDown(step int) *Object {
	o.Y += step
	return o
}

// MoveLeft shifts the object left by step pixels.
func (o *Object) MoveLeft(step int) *Object {
	o.X -= step
	return o
}

// MoveRight shifts the object right by step pixels.
func (o *Object) MoveRight(step int) *Object {
	o.X += step
	return o
}

// Tag appends a label and returns the object for chaining.
func (o *Object) Tag(tag string) *Object {
	o.Tags = append(o.Tags, tag)
	return o
}

// HasTag reports whether the object carries the given label.
func (o *Object) HasTag(tag string) bool {
	for _, t := range o.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
