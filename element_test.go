package bramble

import (
	"errors"
	"testing"
)

func TestNewDomElementDefaults(t *testing.T) {
	d := NewDomElement("div", 7)
	if d.Tag() != "div" {
		t.Errorf("Tag = %q, want div", d.Tag())
	}
	if d.NodeID() != 7 {
		t.Errorf("NodeID = %v, want 7", d.NodeID())
	}
	if d.Layout() != LayoutBlock {
		t.Errorf("Layout = %v, want block", d.Layout())
	}
	if !d.IsDirty() {
		t.Error("new element should be dirty")
	}
	if d.BackgroundColor() != ColorWhite {
		t.Errorf("BackgroundColor = %v, want white", d.BackgroundColor())
	}
}

func TestDomElementSettersMarkDirty(t *testing.T) {
	setters := map[string]func(d *DomElement){
		"layout":           func(d *DomElement) { d.SetLayout(LayoutInline) },
		"style":            func(d *DomElement) { d.SetStyle(DefaultStyle()) },
		"width":            func(d *DomElement) { d.SetWidth(Abs(1)) },
		"height":           func(d *DomElement) { d.SetHeight(Abs(1)) },
		"margin":           func(d *DomElement) { d.SetMargin(EdgesOf("1")) },
		"padding":          func(d *DomElement) { d.SetPadding(EdgesOf("1")) },
		"border":           func(d *DomElement) { d.SetBorder(EdgesOf("1")) },
		"border radius":    func(d *DomElement) { d.SetBorderRadius(EdgesOf("1")) },
		"border color":     func(d *DomElement) { d.SetBorderColor(ColorRed) },
		"background color": func(d *DomElement) { d.SetBackgroundColor(ColorRed) },
		"available box":    func(d *DomElement) { d.SetAvailableBox(NewBox(Vec2{}, Vec2{1, 1})) },
		"parent size":      func(d *DomElement) { d.SetParentSize(Vec2{1, 1}) },
	}
	for name, set := range setters {
		t.Run(name, func(t *testing.T) {
			d := NewDomElement("div", 1)
			d.SetDirty(false)
			set(d)
			if !d.IsDirty() {
				t.Errorf("%s setter did not mark dirty", name)
			}
		})
	}
}

func TestDomElementGettersReadOnly(t *testing.T) {
	d := NewDomElement("div", 1)
	d.SetDirty(false)
	_ = d.Style()
	_ = d.Margin()
	_ = d.AvailableBox()
	_ = d.EdgeWidth()
	if d.IsDirty() {
		t.Error("getters must not mark dirty")
	}
}

func TestDomElementBoxModel(t *testing.T) {
	d := NewDomElement("div", 1)
	ref := Vec2{100, 100}
	d.SetMargin(EdgesOf("1 2 3 4").Resolve(ref))
	d.SetBorder(EdgesOf("5").Resolve(ref))
	d.SetPadding(EdgesOf("10 20").Resolve(ref))
	d.SetWidth(Abs(50))
	d.SetHeight(Abs(30))

	if got := d.EdgeWidth(); got != 2+4+5+5+20+20 {
		t.Errorf("EdgeWidth = %v, want 56", got)
	}
	if got := d.EdgeHeight(); got != 1+3+5+5+10+10 {
		t.Errorf("EdgeHeight = %v, want 34", got)
	}
	if got := d.LeftTop(); got != (Vec2{4 + 5 + 20, 1 + 5 + 10}) {
		t.Errorf("LeftTop = %v, want (29, 16)", got)
	}
	if got := d.BoxWidth(); got != 50+56 {
		t.Errorf("BoxWidth = %v, want 106", got)
	}
	if got := d.BoxHeight(); got != 30+34 {
		t.Errorf("BoxHeight = %v, want 64", got)
	}
}

func TestSetResolvedWidthKeepsDeclaration(t *testing.T) {
	d := NewDomElement("div", 1)
	d.SetWidth(Pct(0.5))
	d.setResolvedWidth(80)
	if got := d.Width().Value(); got != 80 {
		t.Errorf("Width value = %v, want 80", got)
	}
	if !d.Width().IsPercent() || d.Width().Amount != 0.5 {
		t.Errorf("declared width changed to %v", d.Width())
	}
}

func TestParseLayoutKind(t *testing.T) {
	type tc struct {
		in   string
		want LayoutKind
	}
	tests := map[string]tc{
		"block":        {in: "block", want: LayoutBlock},
		"inline":       {in: "Inline", want: LayoutInline},
		"inline-block": {in: "inline_block", want: LayoutInlineBlock},
		"joined":       {in: "inlineblock", want: LayoutInlineBlock},
		"row":          {in: "row", want: LayoutRowFlex},
		"column":       {in: "col-flex", want: LayoutColFlex},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseLayoutKind(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseLayoutKind(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
	if _, err := ParseLayoutKind("grid"); !errors.Is(err, ErrLayoutKind) {
		t.Errorf("err = %v, want ErrLayoutKind", err)
	}
}

func TestLayoutKindString(t *testing.T) {
	if got := LayoutRowFlex.String(); got != "row-flex" {
		t.Errorf("String = %q", got)
	}
	if got := LayoutKind(99).String(); got != "LayoutKind(99)" {
		t.Errorf("String = %q", got)
	}
}
