package bramble

import (
	"errors"
	"testing"
)

// --- Size ---

func TestParseSize(t *testing.T) {
	type tc struct {
		in      string
		unit    Unit
		amount  float64
		wantErr bool
	}
	tests := map[string]tc{
		"integer":        {in: "40", unit: UnitAbsolute, amount: 40},
		"decimal":        {in: "12.5", unit: UnitAbsolute, amount: 12.5},
		"padded":         {in: "  7 ", unit: UnitAbsolute, amount: 7},
		"percent":        {in: "50%", unit: UnitPercent, amount: 0.5},
		"hundred":        {in: "100%", unit: UnitPercent, amount: 1},
		"empty":          {in: "", wantErr: true},
		"garbage":        {in: "abc", wantErr: true},
		"bad percent":    {in: "x%", wantErr: true},
		"trailing unit":  {in: "10px", wantErr: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := ParseSize(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrSizeFormat) {
					t.Errorf("err = %v, want ErrSizeFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.Unit != tt.unit || s.Amount != tt.amount {
				t.Errorf("ParseSize(%q) = %v/%v, want %v/%v", tt.in, s.Unit, s.Amount, tt.unit, tt.amount)
			}
		})
	}
}

func TestSizeOfMalformedIsZero(t *testing.T) {
	for _, in := range []string{"", "abc", "1.2.3", "%"} {
		s := SizeOf(in)
		if s.Value() != 0 || s.IsPercent() {
			t.Errorf("SizeOf(%q) = %v (value %v), want absolute 0", in, s, s.Value())
		}
		if got := s.Resolve(100).Value(); got != 0 {
			t.Errorf("SizeOf(%q).Resolve(100) = %v, want 0", in, got)
		}
	}
}

func TestSizeResolvePercent(t *testing.T) {
	for _, pct := range []float64{0, 10, 25, 50, 99.5, 100, 150} {
		for _, ref := range []float64{1, 37, 100, 640} {
			s := SizeOf(formatFloat(pct) + "%")
			want := min(ref, pct/100*ref)
			if got := s.Resolve(ref).Value(); !approxEqual(got, want) {
				t.Errorf("%v%% of %v = %v, want %v", pct, ref, got, want)
			}
		}
	}
}

func TestSizeResolveAbsolute(t *testing.T) {
	type tc struct {
		in   string
		ref  float64
		want float64
	}
	tests := map[string]tc{
		"zero reference passes through": {in: "250", ref: 0, want: 250},
		"within reference":              {in: "30", ref: 100, want: 30},
		"clamped to reference":          {in: "300", ref: 100, want: 100},
		"percent of zero":               {in: "50%", ref: 0, want: 0},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := SizeOf(tt.in).Resolve(tt.ref).Value(); got != tt.want {
				t.Errorf("SizeOf(%q).Resolve(%v) = %v, want %v", tt.in, tt.ref, got, tt.want)
			}
		})
	}
}

func TestSizeResolveKeepsDeclaration(t *testing.T) {
	s := Pct(0.5)
	r := s.Resolve(200)
	if r.Value() != 100 {
		t.Fatalf("Value = %v, want 100", r.Value())
	}
	// Resolving again against another reference re-derives from the
	// declared fraction, not from the previous value.
	if got := r.Resolve(50).Value(); got != 25 {
		t.Errorf("second Resolve = %v, want 25", got)
	}
	if s.Value() != 0 {
		t.Errorf("Resolve mutated the receiver: %v", s.Value())
	}
}

func TestSizeUnresolvedValue(t *testing.T) {
	if got := Abs(12).Value(); got != 12 {
		t.Errorf("Abs(12).Value() = %v, want 12", got)
	}
	if got := Pct(0.3).Value(); got != 0 {
		t.Errorf("Pct(0.3).Value() = %v, want 0", got)
	}
}

func TestSizeString(t *testing.T) {
	if got := Abs(40).String(); got != "40" {
		t.Errorf("String = %q, want 40", got)
	}
	if got := Pct(0.5).String(); got != "50%" {
		t.Errorf("String = %q, want 50%%", got)
	}
}

func TestToSize(t *testing.T) {
	type tc struct {
		in   any
		want float64
		pct  bool
	}
	tests := map[string]tc{
		"size":    {in: Abs(3), want: 3},
		"string":  {in: "25%", want: 0.25, pct: true},
		"float64": {in: 2.5, want: 2.5},
		"float32": {in: float32(4), want: 4},
		"int":     {in: 7, want: 7},
		"int64":   {in: int64(8), want: 8},
		"uint":    {in: uint(9), want: 9},
		"bool":    {in: true, want: 0},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := toSize(tt.in)
			if s.Amount != tt.want || s.IsPercent() != tt.pct {
				t.Errorf("toSize(%v) = %v, want amount %v percent %v", tt.in, s, tt.want, tt.pct)
			}
		})
	}
}

// --- Edges ---

func TestEdgesShorthand(t *testing.T) {
	type tc struct {
		in   string
		ref  Vec2
		want [4]float64
	}
	tests := map[string]tc{
		"one value":         {in: "10", ref: Vec2{100, 100}, want: [4]float64{10, 10, 10, 10}},
		"one value no ref":  {in: "10", ref: Vec2{}, want: [4]float64{10, 10, 10, 10}},
		"one value big ref": {in: "10", ref: Vec2{1000, 1000}, want: [4]float64{10, 10, 10, 10}},
		"one value clamped": {in: "10", ref: Vec2{5, 5}, want: [4]float64{5, 5, 5, 5}},
		"clamped per axis":  {in: "10", ref: Vec2{4, 8}, want: [4]float64{8, 4, 8, 4}},
		"two values":        {in: "5 10", ref: Vec2{100, 100}, want: [4]float64{5, 10, 5, 10}},
		"three values":      {in: "1 2 3", ref: Vec2{100, 100}, want: [4]float64{1, 2, 3, 2}},
		"four values":       {in: "1 2 3 4", ref: Vec2{100, 100}, want: [4]float64{1, 2, 3, 4}},
		"percent by axis":   {in: "10% 20%", ref: Vec2{200, 50}, want: [4]float64{5, 40, 5, 40}},
		"extra ignored":     {in: "1 2 3 4 5", ref: Vec2{100, 100}, want: [4]float64{1, 2, 3, 4}},
		"empty":             {in: "", ref: Vec2{100, 100}, want: [4]float64{}},
		"bad token is zero": {in: "x 10", ref: Vec2{100, 100}, want: [4]float64{0, 10, 0, 10}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := EdgesOf(tt.in).Resolve(tt.ref).Values()
			if got != tt.want {
				t.Errorf("EdgesOf(%q).Resolve(%v) = %v, want %v", tt.in, tt.ref, got, tt.want)
			}
		})
	}
}

func TestParseEdgesErrors(t *testing.T) {
	for _, in := range []string{"", "1 2 3 4 5", "a", "1 b"} {
		if _, err := ParseEdges(in); !errors.Is(err, ErrSizeFormat) {
			t.Errorf("ParseEdges(%q) err = %v, want ErrSizeFormat", in, err)
		}
	}
	e, err := ParseEdges("5 10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := e.Values(); got != [4]float64{5, 10, 5, 10} {
		t.Errorf("Values = %v", got)
	}
}

func TestEdgesSums(t *testing.T) {
	e := EdgesOf("1 2 3 4").Resolve(Vec2{100, 100})
	if got := e.Horizontal(); got != 6 {
		t.Errorf("Horizontal = %v, want 6", got)
	}
	if got := e.Vertical(); got != 4 {
		t.Errorf("Vertical = %v, want 4", got)
	}
	if got := e.String(); got != "1 2 3 4" {
		t.Errorf("String = %q", got)
	}
}

func TestToEdges(t *testing.T) {
	if got := toEdges(3).Values(); got != [4]float64{3, 3, 3, 3} {
		t.Errorf("toEdges(3) = %v", got)
	}
	if got := toEdges("1 2").Values(); got != [4]float64{1, 2, 1, 2} {
		t.Errorf(`toEdges("1 2") = %v`, got)
	}
	if got := toEdges(EdgeAll(Abs(5))).Values(); got != [4]float64{5, 5, 5, 5} {
		t.Errorf("toEdges(Edges) = %v", got)
	}
}

func formatFloat(f float64) string {
	return Abs(f).String()
}

func approxEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
