package obj

// Rect is an axis-aligned rectangle in world pixels.
type Rect struct {
	X, Y float64
	W, H float64
}

func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// Inset shrinks the rect by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Expand grows the rect by d on every side.
func (r Rect) Expand(d float64) Rect {
	return r.Inset(-d)
}

func (r *Rect) SetLeft(x float64)   { r.X = x }
func (r *Rect) SetRight(x float64)  { r.X = x - r.W }
func (r *Rect) SetTop(y float64)    { r.Y = y }
func (r *Rect) SetBottom(y float64) { r.Y = y - r.H }

func (r *Rect) SetCenter(x, y float64) {
	r.X = x - r.W/2
	r.Y = y - r.H/2
}
