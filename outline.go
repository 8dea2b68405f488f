package willowui

import "strings"

// DebugDocumentPrefix marks documents that belong to debugging tools. Their
// elements are never outlined.
const DebugDocumentPrefix = "willowui-debug-"

// OutlineColor is the stroke color of element outlines.
var OutlineColor = Color{R: 255, G: 0, B: 0, A: 128}

// OutlineDrawer strokes rectangles for the outline overlay. EbitenTarget
// implements it.
type OutlineDrawer interface {
	StrokeRect(r Rect, c Color, width float64)
}

// RenderOutlines strokes the border box of every box of every visible
// element in ctx's documents. Documents whose id starts with
// DebugDocumentPrefix are skipped, and an invisible element hides its
// subtree. It returns the number of rectangles drawn.
func RenderOutlines(ctx *Context, dst OutlineDrawer) int {
	drawn := 0
	for _, doc := range ctx.Documents() {
		if strings.HasPrefix(doc.ID(), DebugDocumentPrefix) {
			continue
		}

		stack := []*Element{doc}
		for len(stack) > 0 {
			e := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !e.Visible {
				continue
			}

			SyncTransform(e)
			origin := e.AbsoluteOffset(AreaBorder)
			for i := 0; i < e.NumBoxes(); i++ {
				box := e.BoxAt(i)
				pos := origin.Add(box.Offset).Add(box.Position(AreaBorder))
				size := box.Size(AreaBorder)
				dst.StrokeRect(Rect{X: pos.X, Y: pos.Y, Width: size.X, Height: size.Y}, OutlineColor, 1)
				drawn++
			}

			stack = append(stack, e.children...)
		}
	}
	return drawn
}
