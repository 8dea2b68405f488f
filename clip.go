package willowui

import "image"

// ClipRegion is a scissor rectangle in integer pixel space. A region is
// valid when both dimensions are non-negative; NoClip is the invalid region
// meaning "unbounded".
type ClipRegion struct {
	X, Y, Width, Height int
}

// NoClip is the invalid region used when nothing clips an element.
var NoClip = ClipRegion{-1, -1, -1, -1}

// Valid reports whether r bounds rendering. A zero-area region is valid.
func (r ClipRegion) Valid() bool {
	return r.Width >= 0 && r.Height >= 0
}

// Rectangle returns r as an image.Rectangle.
func (r ClipRegion) Rectangle() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// intersect returns the overlap of r and o. Disjoint regions produce a
// valid zero-area region at the max of the two origins.
func (r ClipRegion) intersect(o ClipRegion) ClipRegion {
	x := max(r.X, o.X)
	y := max(r.Y, o.Y)
	right := min(r.X+r.Width, o.X+o.Width)
	bottom := min(r.Y+r.Height, o.Y+o.Height)
	return ClipRegion{
		X:      x,
		Y:      y,
		Width:  max(0, right-x),
		Height: max(0, bottom-y),
	}
}

// sameClip reports whether two regions produce the same scissor state.
// Invalid regions all mean "no scissor" and compare equal.
func sameClip(a, b ClipRegion) bool {
	if a.Valid() != b.Valid() {
		return false
	}
	return !a.Valid() || a == b
}

// contentClipRegion returns the absolute content rectangle of e truncated to
// whole pixels.
func contentClipRegion(e *Element) ClipRegion {
	origin := e.AbsoluteOffset(AreaContent)
	size := e.Box().Size(AreaContent)
	return ClipRegion{
		X:      int(origin.X),
		Y:      int(origin.Y),
		Width:  int(size.X),
		Height: int(size.Y),
	}
}

// ComputeClipRegion returns the effective clip region of e: the intersection
// of the content areas of every ancestor that clips and actually overflows,
// minus the ancestors skipped by clip-ignore depths.
//
// e's own ignore depth opens a window of clipping ancestors to skip. Each
// clipping ancestor climbed while the window is open closes one unit of it,
// whether or not it overflows. An ancestor's own depth widens the window for
// everything below it but never narrows it; a negative depth anywhere on the
// chain stops the climb. The result is NoClip when nothing contributes.
func ComputeClipRegion(e *Element) ClipRegion {
	ignore := e.ClipIgnoreDepth()
	if ignore < 0 {
		return NoClip
	}

	region := NoClip
	contributed := false
	for a := e.Parent(); a != nil; a = a.Parent() {
		if ignore == 0 && a.IsClippingEnabled() && a.Overflows() {
			r := contentClipRegion(a)
			if contributed {
				region = region.intersect(r)
			} else {
				region = r
				contributed = true
			}
		}

		if ignore > 0 && a.IsClippingEnabled() {
			ignore--
		}

		depth := a.ClipIgnoreDepth()
		if depth < 0 {
			break
		}
		ignore = max(ignore, depth)
	}

	if !region.Valid() {
		return NoClip
	}
	return region
}

// ApplyClipIfChanged computes the clip region for e and, only when it
// differs from the context's active clip, records it and pushes the new
// scissor state to the render target.
//
// A nil e means "no clip" and resolves the render target from ctx. A nil ctx
// is taken from e. It returns false, changing nothing, when no render target
// or no context can be resolved.
func ApplyClipIfChanged(e *Element, ctx *Context) bool {
	var rt RenderTarget
	switch {
	case e != nil:
		rt = e.RenderTarget()
		if ctx == nil {
			ctx = e.Context()
		}
	case ctx != nil:
		rt = ctx.RenderTarget()
	}
	if rt == nil || ctx == nil {
		return false
	}

	region := NoClip
	if e != nil {
		region = ComputeClipRegion(e)
	}

	current, _ := ctx.ActiveClipRegion()
	if !sameClip(current, region) {
		ctx.SetActiveClipRegion(region)
		PushScissorState(ctx, rt)
	}
	return true
}

// PushScissorState sends the context's active clip to rt: it enables or
// disables the scissor and, when enabled, sets the scissor rectangle. It is
// the only place clipping talks to the render backend. A nil rt is a no-op.
func PushScissorState(ctx *Context, rt RenderTarget) {
	if rt == nil {
		return
	}
	region, enabled := ctx.ActiveClipRegion()
	rt.EnableScissorRegion(enabled)
	if enabled {
		rt.SetScissorRegion(region.X, region.Y, region.Width, region.Height)
	}
	ctx.stats.scissorPushes++
}
