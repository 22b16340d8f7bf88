package bramble

// Vec2 is a 2D vector used for positions, offsets and sizes.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Box is a rectangle given by its minimum and maximum corners. Layout stores
// each element's available box in this form.
type Box struct {
	Min, Max Vec2
}

// NewBox returns the box spanning min to max.
func NewBox(min, max Vec2) Box {
	return Box{Min: min, Max: max}
}

// Width returns Max.X - Min.X.
func (b Box) Width() float64 { return b.Max.X - b.Min.X }

// Height returns Max.Y - Min.Y.
func (b Box) Height() float64 { return b.Max.Y - b.Min.Y }

// Size returns the box dimensions.
func (b Box) Size() Vec2 { return Vec2{b.Width(), b.Height()} }

// Rect converts the box to origin + size form.
func (b Box) Rect() Rect {
	return Rect{X: b.Min.X, Y: b.Min.Y, Width: b.Width(), Height: b.Height()}
}

// Contains reports whether p lies inside the box, edges included.
func (b Box) Contains(p Vec2) bool {
	return b.Rect().Contains(p.X, p.Y)
}
