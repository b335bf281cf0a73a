package style

// Vec2 is a 2D value used for offsets, sizes, anchors and scale factors.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// V2 is a convenience constructor for a Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Lerp returns the component-wise linear interpolation between v and w.
// t is not clamped. Endpoints reproduce exactly at t == 0 and t == 1.
func (v Vec2) Lerp(w Vec2, t float64) Vec2 {
	return Vec2{
		X: mix(v.X, w.X, t),
		Y: mix(v.Y, w.Y, t),
	}
}
