package bramble

// Style is the declarative box-model description of an element.
//
// Total box width = margin.left + border.left + padding.left + width +
// padding.right + border.right + margin.right, and likewise for height.
type Style struct {
	Width  Size
	Height Size

	Margin       Edges
	Padding      Edges
	Border       Edges
	BorderRadius Edges

	BorderColor     Color
	BackgroundColor Color
}

// DefaultStyle returns zero sizes and edges with a white background and
// white border color.
func DefaultStyle() Style {
	return Style{
		BorderColor:     ColorWhite,
		BackgroundColor: ColorWhite,
	}
}
