// Package willowui derives render geometry for a retained-mode document tree
// drawn with [Ebitengine].
//
// Layout assigns raw geometry to every [Element]: boxes, offsets, scroll
// extents and clipping flags. willowui turns that into what a render backend
// consumes: scissor rectangles, positioned boxes and transforms, and it only
// talks to the backend when something actually changed.
//
// # Documents and contexts
//
// A [Context] owns documents (root elements), the [RenderTarget] and the
// active clip region:
//
//	ctx := willowui.NewContext(willowui.ContextConfig{
//		Name:         "main",
//		RenderTarget: willowui.NewEbitenTarget(screen),
//	})
//	doc := ctx.CreateDocument("body")
//	panel := willowui.NewElement("div")
//	panel.SetClipping(true)
//	doc.AppendChild(panel)
//
// # Queries
//
// [FindByID], [FindAllByTag] and [FindAllByClass] search breadth first over a
// read-only [TreeView]. The shallowest match wins.
//
// # Clipping
//
// [ComputeClipRegion] intersects the content areas of the clipping ancestors
// that overflow. Elements can skip ancestors with a clip-ignore depth: N
// skips the next N clipping ancestors, -1 skips all of them.
// [ApplyClipIfChanged] pushes the result to the backend only when it differs
// from the context's active clip.
//
// # Positioning
//
// [BuildAndSizeBox] sizes an element against its parent's content area and
// [PositionByAnchor] places it at an offset from a chosen corner.
//
// # Transforms
//
// [UpdateTransforms] resolves accumulated transforms with dirty tracking;
// every resolution stamps a new version. [SyncTransform] submits an element's
// transform only when its version differs from the one last submitted to
// the same render target. [TweenGroup] animates transforms with [gween].
//
// # Rendering and debugging
//
// [Context.Render] walks visible elements and syncs transform and scissor
// state before each draw. [RenderOutlines] strokes every element's border
// boxes for inspection.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package willowui
