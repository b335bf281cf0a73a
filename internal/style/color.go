package style

import "fmt"

// RGBA is a color with red, green, blue and alpha components, each in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Lerp returns the component-wise linear interpolation between c and other.
// t is not clamped; values outside [0, 1] extrapolate. The weighted form is
// used so t == 0 and t == 1 reproduce the endpoints exactly.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: mix(c.R, other.R, t),
		G: mix(c.G, other.G, t),
		B: mix(c.B, other.B, t),
		A: mix(c.A, other.A, t),
	}
}

func mix(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// Hex renders the color as a #RRGGBBAA string for display and rendering.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x",
		uint8(clamp01(c.R)*255+0.5),
		uint8(clamp01(c.G)*255+0.5),
		uint8(clamp01(c.B)*255+0.5),
		uint8(clamp01(c.A)*255+0.5))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ParseHex parses a hex color with optional alpha. A leading '#' is accepted.
// Supported forms: RGB, RGBA, RRGGBB, RRGGBBAA. Missing alpha defaults to
// opaque. The second return value is false for empty or malformed input, in
// which case callers leave the destination field untouched.
func ParseHex(s string) (RGBA, bool) {
	if s != "" && s[0] == '#' {
		s = s[1:]
	}
	if s == "" {
		return RGBA{}, false
	}

	var r, g, b uint32
	a := uint32(255)
	switch len(s) {
	case 3:
		if !hexNibbles(s, &r, &g, &b) {
			return RGBA{}, false
		}
		r, g, b = r*17, g*17, b*17
	case 4:
		if !hexNibbles(s[:3], &r, &g, &b) || !hexByte(s[3:4], &a) {
			return RGBA{}, false
		}
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6:
		if !hexByte(s[0:2], &r) || !hexByte(s[2:4], &g) || !hexByte(s[4:6], &b) {
			return RGBA{}, false
		}
	case 8:
		if !hexByte(s[0:2], &r) || !hexByte(s[2:4], &g) || !hexByte(s[4:6], &b) || !hexByte(s[6:8], &a) {
			return RGBA{}, false
		}
	default:
		return RGBA{}, false
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, true
}

func hexNibbles(s string, r, g, b *uint32) bool {
	return hexByte(s[0:1], r) && hexByte(s[1:2], g) && hexByte(s[2:3], b)
}

func hexByte(s string, out *uint32) bool {
	var v uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		v *= 16
		switch {
		case '0' <= c && c <= '9':
			v += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			v += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			v += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	*out = v
	return true
}
