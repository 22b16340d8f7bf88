// Package bramble is a retained-mode UI tree with a CSS box model block
// layout engine, rendered with [Ebitengine].
//
// A UI is declared once as a tree of [Element] values and built into three
// correlated trees: the render tree (one [RenderObject] per element), the
// event tree (elements that declared listeners) and the data tree
// (elements that carry a payload). A [Document] owns the trees and runs one
// layout and paint pass per frame through a [Painter].
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	root := bramble.Div().Children(
//		bramble.Div().Height("40").BackgroundColor("#1e1e28ff"),
//		bramble.Div().Height("100%").Padding("10 20"),
//	)
//	doc := bramble.NewDocument(root)
//	bramble.Run(doc, bramble.RunConfig{Title: "My UI", Width: 640, Height: 480})
//
// For full control, call [Document.Update] and [Document.Frame] from your
// own [ebiten.Game] with an [EbitenPainter], or drive the document headless
// with a [RecordingPainter].
//
// # Sizes and edges
//
// Style strings follow a small CSS-like grammar: "40" is 40 pixels and
// "50%" is half of the parent. Edges take 1 to 4 values in CSS order, so
// "5 10" is 5 on top and bottom and 10 on left and right. The lenient
// forms ([SizeOf], [EdgesOf], [ColorOf]) and the builder setters turn
// malformed input into zero; [ParseSize], [ParseEdges] and [ParseColor]
// report it.
//
// # Layout
//
// The root always fills the viewport. A block element stacks its children
// top to bottom; each child spans the parent's width minus its own margin,
// border and padding, and resolves its height against the parent's height.
// The other layout kinds are accepted but not yet laid out.
//
// # Key features
//
// bramble also includes a per-node [Memory] store, style tweens
// (via [gween]), YAML run configuration, and ECS integration (via a
// [Donburi] adapter in bramble/ecs).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package bramble
