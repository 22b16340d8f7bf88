package bramble

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit selects how a Size's declared amount is interpreted.
type Unit uint8

const (
	UnitAbsolute Unit = iota // Amount is a length in pixels
	UnitPercent              // Amount is a fraction of the reference (0.5 = 50%)
)

// Size is a declared length plus the value it last resolved to.
//
// The declared part (Unit, Amount) never changes during layout; Resolve
// re-derives the value from it every time, so repeated resolution against
// the same reference always yields the same number.
type Size struct {
	Unit   Unit
	Amount float64

	value float64
}

// Abs returns an absolute size of n pixels.
func Abs(n float64) Size {
	return Size{Unit: UnitAbsolute, Amount: n, value: n}
}

// Pct returns a percentage size. fraction is in [0, 1] for 0%..100%.
func Pct(fraction float64) Size {
	return Size{Unit: UnitPercent, Amount: fraction}
}

// ParseSize parses "<number>" as an absolute size and "<number>%" as a
// percentage. Surrounding whitespace is ignored.
func ParseSize(s string) (Size, error) {
	t := strings.TrimSpace(s)
	if p, ok := strings.CutSuffix(t, "%"); ok {
		n, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Size{}, fmt.Errorf("%w: %q", ErrSizeFormat, s)
		}
		return Pct(n / 100), nil
	}
	n, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return Size{}, fmt.Errorf("%w: %q", ErrSizeFormat, s)
	}
	return Abs(n), nil
}

// SizeOf is the lenient form of ParseSize: malformed input yields a zero
// size instead of an error.
func SizeOf(s string) Size {
	sz, err := ParseSize(s)
	if err != nil {
		return Abs(0)
	}
	return sz
}

// Resolve returns a copy of s with its value derived against reference.
//
// Absolute sizes are clamped to the reference, except that a zero
// reference means "no constraint yet" and the amount passes through.
// Percentages resolve to reference*Amount, clamped to the reference; against
// a zero reference they resolve to 0.
func (s Size) Resolve(reference float64) Size {
	switch s.Unit {
	case UnitPercent:
		s.value = min(reference, reference*s.Amount)
	default:
		if reference != 0 {
			s.value = min(s.Amount, reference)
		} else {
			s.value = s.Amount
		}
	}
	return s
}

// withValue keeps the declared parameter and overrides the resolved value.
func (s Size) withValue(v float64) Size {
	s.value = v
	return s
}

// Value returns the most recently resolved value. Absolute sizes that were
// never resolved report their amount; percentages report 0.
func (s Size) Value() float64 {
	return s.value
}

// IsPercent reports whether the size is relative to its reference.
func (s Size) IsPercent() bool {
	return s.Unit == UnitPercent
}

// String formats the declared parameter in style-string grammar.
func (s Size) String() string {
	if s.Unit == UnitPercent {
		return strconv.FormatFloat(s.Amount*100, 'g', -1, 64) + "%"
	}
	return strconv.FormatFloat(s.Amount, 'g', -1, 64)
}

// toSize converts builder arguments: Size, numbers and style strings.
// Unsupported types yield a zero size.
func toSize(v any) Size {
	switch x := v.(type) {
	case Size:
		return x
	case string:
		return SizeOf(x)
	case float64:
		return Abs(x)
	case float32:
		return Abs(float64(x))
	case int:
		return Abs(float64(x))
	case int64:
		return Abs(float64(x))
	case uint:
		return Abs(float64(x))
	}
	return Size{}
}
