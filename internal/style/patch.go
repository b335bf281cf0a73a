package style

// Patch is a sparse override over a Record. Every field is optional: nil
// means "leave the base value alone". Patches come out of configuration
// ingestion and are immutable once decoded. Color fields are hex strings
// (see ParseHex); a string that fails to parse is ignored at merge time
// rather than reported, so merging is total.
type Patch struct {
	Fill      *FillPatch      `yaml:"fill,omitempty"`
	Border    *BorderPatch    `yaml:"border,omitempty"`
	Shadow    *ShadowPatch    `yaml:"shadow,omitempty"`
	Text      *TextPatch      `yaml:"text,omitempty"`
	Transform *TransformPatch `yaml:"transform,omitempty"`
	Rect      *RectPatch      `yaml:"rect,omitempty"`
	Layout    *LayoutPatch    `yaml:"layout,omitempty"`
}

// FillPatch overrides background appearance fields.
type FillPatch struct {
	Color   *string  `yaml:"color,omitempty" validate:"omitempty,color"`
	Radius  *float64 `yaml:"radius,omitempty" validate:"omitempty,gte=0"`
	Opacity *float64 `yaml:"opacity,omitempty" validate:"omitempty,gte=0,lte=1"`
}

// BorderPatch overrides outline fields.
type BorderPatch struct {
	Width *float64 `yaml:"width,omitempty" validate:"omitempty,gte=0"`
	Color *string  `yaml:"color,omitempty" validate:"omitempty,color"`
}

// ShadowPatch overrides drop shadow fields.
type ShadowPatch struct {
	Color    *string  `yaml:"color,omitempty" validate:"omitempty,color"`
	Offset   *Vec2    `yaml:"offset,omitempty"`
	Softness *float64 `yaml:"softness,omitempty" validate:"omitempty,gte=0"`
}

// TextPatch overrides typographic fields.
type TextPatch struct {
	Color   *string  `yaml:"color,omitempty" validate:"omitempty,color"`
	Size    *float64 `yaml:"size,omitempty" validate:"omitempty,gt=0"`
	Spacing *float64 `yaml:"spacing,omitempty"`
}

// TransformPatch overrides scale and rotation.
type TransformPatch struct {
	Scale    *Vec2    `yaml:"scale,omitempty"`
	Rotation *float64 `yaml:"rotation,omitempty"`
}

// RectPatch overrides anchored placement fields.
type RectPatch struct {
	Position  *Vec2 `yaml:"position,omitempty"`
	Size      *Vec2 `yaml:"size,omitempty"`
	AnchorMin *Vec2 `yaml:"anchor_min,omitempty"`
	AnchorMax *Vec2 `yaml:"anchor_max,omitempty"`
	Pivot     *Vec2 `yaml:"pivot,omitempty"`
}

// LayoutPatch overrides layout weights.
type LayoutPatch struct {
	PreferredWidth  *float64 `yaml:"preferred_width,omitempty"`
	PreferredHeight *float64 `yaml:"preferred_height,omitempty"`
	FlexibleWidth   *float64 `yaml:"flexible_width,omitempty"`
	FlexibleHeight  *float64 `yaml:"flexible_height,omitempty"`
}

// IsZero reports whether the patch overrides nothing.
func (p Patch) IsZero() bool {
	return p.Fill == nil && p.Border == nil && p.Shadow == nil && p.Text == nil &&
		p.Transform == nil && p.Rect == nil && p.Layout == nil
}

// Merge applies every present field of patch onto a copy of base and returns
// the result. Absent fields keep the base value; present color strings that
// do not parse are skipped. Merge never fails.
func Merge(base Record, patch Patch) Record {
	out := base

	if p := patch.Fill; p != nil {
		mergeColor(&out.Fill.Color, p.Color)
		mergeFloat(&out.Fill.Radius, p.Radius)
		mergeFloat(&out.Fill.Opacity, p.Opacity)
	}
	if p := patch.Border; p != nil {
		mergeFloat(&out.Border.Width, p.Width)
		mergeColor(&out.Border.Color, p.Color)
	}
	if p := patch.Shadow; p != nil {
		mergeColor(&out.Shadow.Color, p.Color)
		mergeVec(&out.Shadow.Offset, p.Offset)
		mergeFloat(&out.Shadow.Softness, p.Softness)
	}
	if p := patch.Text; p != nil {
		mergeColor(&out.Text.Color, p.Color)
		mergeFloat(&out.Text.Size, p.Size)
		mergeFloat(&out.Text.Spacing, p.Spacing)
	}
	if p := patch.Transform; p != nil {
		mergeVec(&out.Transform.Scale, p.Scale)
		mergeFloat(&out.Transform.Rotation, p.Rotation)
	}
	if p := patch.Rect; p != nil {
		mergeVec(&out.Rect.Position, p.Position)
		mergeVec(&out.Rect.Size, p.Size)
		mergeVec(&out.Rect.AnchorMin, p.AnchorMin)
		mergeVec(&out.Rect.AnchorMax, p.AnchorMax)
		mergeVec(&out.Rect.Pivot, p.Pivot)
	}
	if p := patch.Layout; p != nil {
		mergeFloat(&out.Layout.PreferredWidth, p.PreferredWidth)
		mergeFloat(&out.Layout.PreferredHeight, p.PreferredHeight)
		mergeFloat(&out.Layout.FlexibleWidth, p.FlexibleWidth)
		mergeFloat(&out.Layout.FlexibleHeight, p.FlexibleHeight)
	}

	return out
}

func mergeFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func mergeVec(dst *Vec2, src *Vec2) {
	if src != nil {
		*dst = *src
	}
}

func mergeColor(dst *RGBA, src *string) {
	if src == nil {
		return
	}
	if c, ok := ParseHex(*src); ok {
		*dst = c
	}
}
