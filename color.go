package sill

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGBA color. The zero value is transparent black; most
// callers construct colors with RGB, RGBA, or ParseColor.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b, 255}
}

// RGBA returns a color with an explicit alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{r, g, b, a}
}

// ParseColor parses a CSS color name ("rebecca purple", "RebeccaPurple")
// or a hex string (#rgb, #rgba, #rrggbb, #rrggbbaa).
func ParseColor(s string) (Color, error) {
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	name := strings.ToLower(s)
	name = strings.ReplaceAll(name, " ", "")
	name = strings.ReplaceAll(name, "-", "")
	name = strings.ReplaceAll(name, "_", "")
	rgb, ok := cssColors[name]
	if !ok {
		return Color{}, fmt.Errorf("sill: unknown color name %q", s)
	}
	return RGB(rgb[0], rgb[1], rgb[2]), nil
}

// MustColor is ParseColor that panics on invalid input, for use with
// literals in examples and tests.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	a := uint8(255)
	switch len(h) {
	case 4:
		v, err := hexNibble(h[3])
		if err != nil {
			return Color{}, fmt.Errorf("sill: invalid hex color %q", s)
		}
		a = v
		h = h[:3]
	case 8:
		v, err := hexByte(h[6:8])
		if err != nil {
			return Color{}, fmt.Errorf("sill: invalid hex color %q", s)
		}
		a = v
		h = h[:6]
	}
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return Color{}, fmt.Errorf("sill: invalid hex color %q", s)
	}
	cf, err := colorful.Hex("#" + strings.ToLower(h))
	if err != nil {
		return Color{}, fmt.Errorf("sill: invalid hex color %q", s)
	}
	r, g, b := cf.RGB255()
	return Color{r, g, b, a}, nil
}

func hexNibble(c byte) (uint8, error) {
	v, err := hexByte(string([]byte{c, c}))
	return v, err
}

func hexByte(s string) (uint8, error) {
	var v uint8
	for i := 0; i < len(s); i++ {
		c := s[i]
		var d uint8
		switch {
		case c >= '0' && c <= '9':
			d = c - '0'
		case c >= 'a' && c <= 'f':
			d = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			d = c - 'A' + 10
		default:
			return 0, fmt.Errorf("bad hex digit %q", c)
		}
		v = v<<4 | d
	}
	return v, nil
}

// Lerp linearly interpolates each channel from c toward other by t,
// truncating the fractional result. Tween relies on this truncation: the
// midpoint of 0..255 is 127, not 128.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		uint8(float64(c.R) + (float64(other.R)-float64(c.R))*t),
		uint8(float64(c.G) + (float64(other.G)-float64(c.G))*t),
		uint8(float64(c.B) + (float64(other.B)-float64(c.B))*t),
		uint8(float64(c.A) + (float64(other.A)-float64(c.A))*t),
	}
}

// MixHCL blends toward other by t in HCL space, which avoids the gray
// dead zone of straight RGB blending between saturated hues. Alpha is
// interpolated linearly.
func (c Color) MixHCL(other Color, t float64) Color {
	a := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	b := colorful.Color{R: float64(other.R) / 255, G: float64(other.G) / 255, B: float64(other.B) / 255}
	m := a.BlendHcl(b, t).Clamped()
	r, g, bb := m.RGB255()
	return Color{r, g, bb, uint8(float64(c.A) + (float64(other.A)-float64(c.A))*t)}
}

// WithAlpha returns a copy of c with alpha a.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Hex formats the color as #rrggbb, or #rrggbbaa when the color is not
// fully opaque.
func (c Color) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ColorWhite and ColorBlack are the common default window colors.
var (
	ColorWhite = RGB(255, 255, 255)
	ColorBlack = RGB(0, 0, 0)
)
