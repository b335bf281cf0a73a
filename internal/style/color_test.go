package style

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  RGBA
		ok    bool
	}{
		{
			name:  "six digit with hash",
			input: "#ff8000",
			want:  RGBA{R: 1, G: float64(0x80) / 255, B: 0, A: 1},
			ok:    true,
		},
		{
			name:  "six digit without hash",
			input: "00ff00",
			want:  RGBA{R: 0, G: 1, B: 0, A: 1},
			ok:    true,
		},
		{
			name:  "eight digit carries alpha",
			input: "#00000080",
			want:  RGBA{R: 0, G: 0, B: 0, A: float64(0x80) / 255},
			ok:    true,
		},
		{
			name:  "three digit shorthand",
			input: "#f0a",
			want:  RGBA{R: 1, G: 0, B: float64(0xaa) / 255, A: 1},
			ok:    true,
		},
		{
			name:  "four digit shorthand with alpha",
			input: "#f0a8",
			want:  RGBA{R: 1, G: 0, B: float64(0xaa) / 255, A: float64(0x88) / 255},
			ok:    true,
		},
		{
			name:  "empty string rejected",
			input: "",
		},
		{
			name:  "bare hash rejected",
			input: "#",
		},
		{
			name:  "bad length rejected",
			input: "#ff801",
		},
		{
			name:  "non hex digits rejected",
			input: "#zzzzzz",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseHex(tc.input)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				require.InDelta(t, tc.want.R, got.R, 1e-9)
				require.InDelta(t, tc.want.G, got.G, 1e-9)
				require.InDelta(t, tc.want.B, got.B, 1e-9)
				require.InDelta(t, tc.want.A, got.A, 1e-9)
			}
		})
	}
}

func TestRGBALerpEndpoints(t *testing.T) {
	t.Parallel()

	a := RGBA{R: 0.2, G: 0.4, B: 0.6, A: 1}
	b := RGBA{R: 1, G: 0, B: 0, A: 0.5}

	require.Equal(t, a, a.Lerp(b, 0))
	require.Equal(t, b, a.Lerp(b, 1))
}

func TestRGBAHexRoundsAndClamps(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#ff0000ff", RGBA{R: 1.2, G: -0.1, B: 0, A: 1}.Hex())
	require.Equal(t, "#00000080", RGBA{A: float64(0x80) / 255}.Hex())
}
