package object

import "testing"

func TestMove_Chaining(t *testing.T) {
	o := &Object{}
	o.Move(10, 20).MoveRight(5).MoveDown(3).MoveLeft(1).MoveUp(2)

	if x, y := o.Position(); x != 14 || y != 21 {
		t.Errorf("Position() = (%d, %d), want (14, 21)", x, y)
	}
}

func TestBox(t *testing.T) {
	o := &Object{X: 10, Y: 20, Width: 30, Height: 40}

	x1, y1, x2, y2 := o.Box()
	if x1 != 10 || y1 != 20 || x2 != 40 || y2 != 60 {
		t.Errorf("Box() = (%d,%d,%d,%d), want (10,20,40,60)", x1, y1, x2, y2)
	}

	if w, h := o.Size(); w != 30 || h != 40 {
		t.Errorf("Size() = (%d, %d), want (30, 40)", w, h)
	}
}

func TestOffsetBox(t *testing.T) {
	o := &Object{X: 10, Y: 20, Width: 30, Height: 40, XOffset: -2, YOffset: 3}

	if x, y := o.OffsetPosition(); x != 8 || y != 23 {
		t.Errorf("OffsetPosition() = (%d, %d), want (8, 23)", x, y)
	}

	x1, y1, x2, y2 := o.OffsetBox()
	if x1 != 8 || y1 != 23 || x2 != 38 || y2 != 63 {
		t.Errorf("OffsetBox() = (%d,%d,%d,%d), want (8,23,38,63)", x1, y1, x2, y2)
	}
}

func TestCorners(t *testing.T) {
	o := &Object{X: 10, Y: 20, Width: 30, Height: 40, XOffset: -2, YOffset: 3}

	tests := []struct {
		name   string
		corner func() (int, int)
		x, y   int
	}{
		{"left top", o.LeftTop, 10, 20},
		{"left bottom", o.LeftBottom, 10, 60},
		{"right top", o.RightTop, 40, 20},
		{"right bottom", o.RightBottom, 40, 60},
		{"offset left top", o.OffsetLeftTop, 8, 23},
		{"offset left bottom", o.OffsetLeftBottom, 8, 63},
		{"offset right top", o.OffsetRightTop, 38, 23},
		{"offset right bottom", o.OffsetRightBottom, 38, 63},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if x, y := tt.corner(); x != tt.x || y != tt.y {
				t.Errorf("got (%d, %d), want (%d, %d)", x, y, tt.x, tt.y)
			}
		})
	}
}

func TestFullSize(t *testing.T) {
	o := &Object{Width: 30, Height: 40, FullWidth: 34, FullHeight: 44}
	if w, h := o.FullSize(); w != 34 || h != 44 {
		t.Errorf("FullSize() = (%d, %d), want (34, 44)", w, h)
	}
}

func TestTags(t *testing.T) {
	o := &Object{}
	o.Tag("image").Tag("avatar")

	if !o.HasTag("image") || !o.HasTag("avatar") {
		t.Errorf("Tags = %v, want image and avatar present", o.Tags)
	}
	if o.HasTag("layer") {
		t.Error("HasTag(\"layer\") = true, want false")
	}
}
