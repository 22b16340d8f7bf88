package bramble

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 style values of a DomElement simultaneously.
// Create one via the convenience constructors (TweenHeight, TweenBackground,
// TweenBorderColor) and call Update(dt) each frame, or hand it to
// Document.AddTween. Values are written through the element's setters, so
// every step marks the element dirty.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	apply  func(vals [4]float64)
	target *DomElement
	Done   bool
}

func newTweenGroup(el *DomElement, from, to []float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	if el == nil {
		panic("bramble: tween target is nil")
	}
	if duration < 0 {
		panic("bramble: tween duration must not be negative")
	}
	g := &TweenGroup{count: len(from), target: el}
	for i := range from {
		g.tweens[i] = gween.New(float32(from[i]), float32(to[i]), duration, fn)
	}
	return g
}

// Target returns the animated element.
func (g *TweenGroup) Target() *DomElement {
	return g.target
}

// Update advances all tweens by dt seconds and writes the values to the
// target element.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	var vals [4]float64
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		vals[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	g.apply(vals)
}

// TweenHeight animates the element's height to an absolute value. The
// start is the height resolved by the last layout pass.
func TweenHeight(el *DomElement, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(el, []float64{el.Height().Value()}, []float64{to}, duration, fn)
	g.apply = func(v [4]float64) { el.SetHeight(Abs(v[0])) }
	return g
}

// TweenBackground animates all four components of the background color.
func TweenBackground(el *DomElement, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(el, colorComponents(el.BackgroundColor()), colorComponents(to), duration, fn)
	g.apply = func(v [4]float64) { el.SetBackgroundColor(Color{v[0], v[1], v[2], v[3]}) }
	return g
}

// TweenBorderColor animates all four components of the border color.
func TweenBorderColor(el *DomElement, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(el, colorComponents(el.BorderColor()), colorComponents(to), duration, fn)
	g.apply = func(v [4]float64) { el.SetBorderColor(Color{v[0], v[1], v[2], v[3]}) }
	return g
}

func colorComponents(c Color) []float64 {
	return []float64{c.R, c.G, c.B, c.A}
}
