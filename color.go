package bramble

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication happens when a painter submits it.
type Color struct {
	R, G, B, A float64
}

var (
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorRed         = Color{1, 0, 0, 1}
	ColorGreen       = Color{0, 1, 0, 1}
	ColorBlue        = Color{0, 0, 1, 1}
	ColorYellow      = Color{1, 1, 0, 1}
	ColorTransparent = Color{}
)

// ColorFromUint32 unpacks 0xRRGGBBAA.
func ColorFromUint32(n uint32) Color {
	return ColorFromBytes(uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n))
}

// ColorFromBytes converts 8-bit channels.
func ColorFromBytes(r, g, b, a uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, float64(a) / 255}
}

// ParseColor accepts "#rrggbbaa", "#rrggbb" (opaque), and four decimal
// channels in brackets or parentheses: "(255, 0, 0, 255)", "[0,0,255,128]".
func ParseColor(s string) (Color, error) {
	t := strings.TrimSpace(s)
	if strings.HasPrefix(t, "#") {
		hex := t[1:]
		if len(hex) != 6 && len(hex) != 8 {
			return Color{}, fmt.Errorf("%w: %q", ErrColorFormat, s)
		}
		if len(hex) == 6 {
			hex += "ff"
		}
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrColorFormat, s)
		}
		return ColorFromUint32(uint32(n)), nil
	}
	if len(t) >= 2 && (t[0] == '(' && t[len(t)-1] == ')' || t[0] == '[' && t[len(t)-1] == ']') {
		parts := strings.Split(t[1:len(t)-1], ",")
		if len(parts) != 4 {
			return Color{}, fmt.Errorf("%w: %q", ErrColorFormat, s)
		}
		var ch [4]uint8
		for i, p := range parts {
			n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
			if err != nil {
				return Color{}, fmt.Errorf("%w: %q", ErrColorFormat, s)
			}
			ch[i] = uint8(n)
		}
		return ColorFromBytes(ch[0], ch[1], ch[2], ch[3]), nil
	}
	return Color{}, fmt.Errorf("%w: %q", ErrColorFormat, s)
}

// ColorOf is the lenient form of ParseColor: malformed input yields white.
func ColorOf(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		return ColorWhite
	}
	return c
}

// ToRGBA returns the premultiplied 8-bit form used by image and ebiten APIs.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// String formats the color as #rrggbbaa.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x",
		uint8(clamp01(c.R)*255+0.5), uint8(clamp01(c.G)*255+0.5),
		uint8(clamp01(c.B)*255+0.5), uint8(clamp01(c.A)*255+0.5))
}

// toColor converts builder arguments: Color, style strings and 0xRRGGBBAA.
func toColor(v any) Color {
	switch x := v.(type) {
	case Color:
		return x
	case string:
		return ColorOf(x)
	case uint32:
		return ColorFromUint32(x)
	case int:
		return ColorFromUint32(uint32(x))
	}
	return ColorWhite
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
