package bramble

import (
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseColor(t *testing.T) {
	type tc struct {
		in   string
		want Color
	}
	tests := map[string]tc{
		"hex rgba":     {in: "#ff000080", want: Color{1, 0, 0, 128.0 / 255}},
		"hex rgb":      {in: "#00ff00", want: Color{0, 1, 0, 1}},
		"upper hex":    {in: "#0000FFFF", want: Color{0, 0, 1, 1}},
		"parentheses":  {in: "(255, 255, 0, 255)", want: Color{1, 1, 0, 1}},
		"brackets":     {in: "[0,0,0,0]", want: Color{}},
		"padded":       {in: "  #ffffffff  ", want: ColorWhite},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseColor(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "red", "#fff", "#gggggggg", "(1,2,3)", "(1,2,3,256)", "(1,2,3,4"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrColorFormat) {
			t.Errorf("ParseColor(%q) err = %v, want ErrColorFormat", in, err)
		}
	}
}

func TestColorOfFallsBackToWhite(t *testing.T) {
	if got := ColorOf("nope"); got != ColorWhite {
		t.Errorf("ColorOf = %v, want white", got)
	}
}

func TestColorFromUint32(t *testing.T) {
	got := ColorFromUint32(0xff8000ff)
	want := Color{1, 128.0 / 255, 0, 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestColorString(t *testing.T) {
	if got := ColorFromUint32(0x11223344).String(); got != "#11223344" {
		t.Errorf("String = %q, want #11223344", got)
	}
}

func TestColorToRGBAPremultiplies(t *testing.T) {
	got := Color{1, 0.5, 0, 0.5}.ToRGBA()
	want := color.RGBA{R: 127, G: 63, B: 0, A: 127}
	if got != want {
		t.Errorf("ToRGBA = %v, want %v", got, want)
	}
	if got := ColorWhite.ToRGBA(); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("white ToRGBA = %v", got)
	}
}

func TestToColor(t *testing.T) {
	type tc struct {
		in   any
		want Color
	}
	tests := map[string]tc{
		"color":   {in: ColorRed, want: ColorRed},
		"string":  {in: "#0000ffff", want: ColorBlue},
		"uint32":  {in: uint32(0x00ff00ff), want: ColorGreen},
		"int":     {in: 0xffff00ff, want: ColorYellow},
		"invalid": {in: 1.5, want: ColorWhite},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := toColor(tt.in); got != tt.want {
				t.Errorf("toColor(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// --- Geometry ---

func TestBoxAccessors(t *testing.T) {
	b := NewBox(Vec2{10, 20}, Vec2{110, 70})
	if b.Width() != 100 || b.Height() != 50 {
		t.Errorf("size = %vx%v, want 100x50", b.Width(), b.Height())
	}
	if diff := cmp.Diff(Rect{X: 10, Y: 20, Width: 100, Height: 50}, b.Rect()); diff != "" {
		t.Errorf("Rect mismatch (-want +got):\n%s", diff)
	}
	if !b.Contains(Vec2{10, 20}) || !b.Contains(Vec2{110, 70}) {
		t.Error("corners should be inside")
	}
	if b.Contains(Vec2{9, 20}) || b.Contains(Vec2{50, 71}) {
		t.Error("outside points reported inside")
	}
}

func TestVec2Add(t *testing.T) {
	if got := (Vec2{1, 2}).Add(Vec2{3, 4}); got != (Vec2{4, 6}) {
		t.Errorf("Add = %v, want (4, 6)", got)
	}
}
