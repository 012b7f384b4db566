package geometry

// Bounds is an axis-aligned rectangle in pixel space with Min inclusive and
// Max exclusive.
type Bounds struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// Width returns MaxX - MinX.
func (b Bounds) Width() float32 { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b Bounds) Height() float32 { return b.MaxY - b.MinY }

// Empty reports whether b covers no area.
func (b Bounds) Empty() bool {
	return b.MinX >= b.MaxX || b.MinY >= b.MaxY
}

// Contains reports whether (x, y) lies inside b.
func (b Bounds) Contains(x, y float32) bool {
	return x >= b.MinX && x < b.MaxX && y >= b.MinY && y < b.MaxY
}

// Union returns the smallest bounds containing both b and o.
// An empty operand is ignored.
func (b Bounds) Union(o Bounds) Bounds {
	if b.Empty() {
		return o
	}
	if o.Empty() {
		return b
	}
	return Bounds{
		MinX: min(b.MinX, o.MinX),
		MinY: min(b.MinY, o.MinY),
		MaxX: max(b.MaxX, o.MaxX),
		MaxY: max(b.MaxY, o.MaxY),
	}
}
