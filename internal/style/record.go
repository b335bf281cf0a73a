package style

// Record is a fully-populated set of interpolatable visual and layout
// properties for one element. Every field always holds a defined value; only
// patches carry the notion of "unset". Records are treated as immutable
// values: merging or interpolating produces a new Record.
type Record struct {
	Fill      Fill
	Border    Border
	Shadow    Shadow
	Text      Text
	Transform Transform
	Rect      Rect
	Layout    Layout
}

// Fill holds the element's background appearance.
type Fill struct {
	Color   RGBA
	Radius  float64
	Opacity float64
}

// Border holds the element's outline appearance.
type Border struct {
	Width float64
	Color RGBA
}

// Shadow holds the element's drop shadow parameters.
type Shadow struct {
	Color    RGBA
	Offset   Vec2
	Softness float64
}

// Text holds the element's typographic properties.
type Text struct {
	Color   RGBA
	Size    float64
	Spacing float64
}

// Transform holds scale and rotation applied around the element's pivot.
type Transform struct {
	Scale    Vec2
	Rotation float64
}

// Rect holds the element's anchored placement within its parent.
type Rect struct {
	Position  Vec2
	Size      Vec2
	AnchorMin Vec2
	AnchorMax Vec2
	Pivot     Vec2
}

// Layout holds the element's weights for host-side layout arbitration.
type Layout struct {
	PreferredWidth  float64
	PreferredHeight float64
	FlexibleWidth   float64
	FlexibleHeight  float64
}

// Default returns the canonical baseline Record: opaque white fill, black
// text, identity transform, centered anchors, no border or shadow.
func Default() Record {
	return Record{
		Fill: Fill{
			Color:   RGBA{R: 1, G: 1, B: 1, A: 1},
			Opacity: 1,
		},
		Border: Border{
			Color: RGBA{A: 1},
		},
		Shadow: Shadow{
			Color:  RGBA{A: 0.5},
			Offset: V2(1, -1),
		},
		Text: Text{
			Color: RGBA{A: 1},
			Size:  14,
		},
		Transform: Transform{
			Scale: V2(1, 1),
		},
		Rect: Rect{
			Size:      V2(100, 100),
			AnchorMin: V2(0.5, 0.5),
			AnchorMax: V2(0.5, 0.5),
			Pivot:     V2(0.5, 0.5),
		},
		Layout: Layout{
			PreferredWidth:  -1,
			PreferredHeight: -1,
		},
	}
}

// Lerp returns the field-wise linear interpolation between a and b. Scalars
// interpolate linearly, vectors and colors component-wise. t is deliberately
// not clamped so overshooting ease functions extrapolate; clamping is the
// caller's responsibility. t == 0 yields exactly a and t == 1 exactly b.
func Lerp(a, b Record, t float64) Record {
	return Record{
		Fill: Fill{
			Color:   a.Fill.Color.Lerp(b.Fill.Color, t),
			Radius:  mix(a.Fill.Radius, b.Fill.Radius, t),
			Opacity: mix(a.Fill.Opacity, b.Fill.Opacity, t),
		},
		Border: Border{
			Width: mix(a.Border.Width, b.Border.Width, t),
			Color: a.Border.Color.Lerp(b.Border.Color, t),
		},
		Shadow: Shadow{
			Color:    a.Shadow.Color.Lerp(b.Shadow.Color, t),
			Offset:   a.Shadow.Offset.Lerp(b.Shadow.Offset, t),
			Softness: mix(a.Shadow.Softness, b.Shadow.Softness, t),
		},
		Text: Text{
			Color:   a.Text.Color.Lerp(b.Text.Color, t),
			Size:    mix(a.Text.Size, b.Text.Size, t),
			Spacing: mix(a.Text.Spacing, b.Text.Spacing, t),
		},
		Transform: Transform{
			Scale:    a.Transform.Scale.Lerp(b.Transform.Scale, t),
			Rotation: mix(a.Transform.Rotation, b.Transform.Rotation, t),
		},
		Rect: Rect{
			Position:  a.Rect.Position.Lerp(b.Rect.Position, t),
			Size:      a.Rect.Size.Lerp(b.Rect.Size, t),
			AnchorMin: a.Rect.AnchorMin.Lerp(b.Rect.AnchorMin, t),
			AnchorMax: a.Rect.AnchorMax.Lerp(b.Rect.AnchorMax, t),
			Pivot:     a.Rect.Pivot.Lerp(b.Rect.Pivot, t),
		},
		Layout: Layout{
			PreferredWidth:  mix(a.Layout.PreferredWidth, b.Layout.PreferredWidth, t),
			PreferredHeight: mix(a.Layout.PreferredHeight, b.Layout.PreferredHeight, t),
			FlexibleWidth:   mix(a.Layout.FlexibleWidth, b.Layout.FlexibleWidth, t),
			FlexibleHeight:  mix(a.Layout.FlexibleHeight, b.Layout.FlexibleHeight, t),
		},
	}
}

