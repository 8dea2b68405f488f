package willowui

// RenderTarget is the render backend the geometry layer drives. Calls arrive
// on the UI thread during the render pass.
type RenderTarget interface {
	// EnableScissorRegion turns scissoring on or off.
	EnableScissorRegion(enable bool)
	// SetScissorRegion sets the scissor rectangle in pixels.
	SetScissorRegion(x, y, width, height int)
	// SetTransform sets the transform applied to subsequent geometry.
	// nil means identity.
	SetTransform(m *Matrix)
}

// TransformSubmitter remembers the last transform version handed to each
// render target and resubmits only when it changes. Entries are never
// removed; an entry for a discarded target is never looked up again.
type TransformSubmitter struct {
	last map[RenderTarget]uint64
}

// NewTransformSubmitter returns a submitter with an empty cache.
func NewTransformSubmitter() *TransformSubmitter {
	return &TransformSubmitter{last: make(map[RenderTarget]uint64)}
}

// defaultSubmitter backs SyncTransform and is shared by every context.
var defaultSubmitter = NewTransformSubmitter()

// SyncTransform submits e's resolved transform to its render target when it
// differs from the transform last submitted there. It returns false when e
// has no render target.
func SyncTransform(e *Element) bool {
	return defaultSubmitter.Sync(e)
}

// Sync is SyncTransform against this submitter's cache.
func (s *TransformSubmitter) Sync(e *Element) bool {
	rt := e.RenderTarget()
	if rt == nil {
		return false
	}

	state := e.TransformState()
	version := state.Version()
	if s.last[rt] == version {
		return true
	}

	if state == nil {
		rt.SetTransform(nil)
	} else {
		m := state.Matrix()
		rt.SetTransform(&m)
	}
	s.last[rt] = version
	if ctx := e.Context(); ctx != nil {
		ctx.stats.transformSubmits++
	}
	return true
}

// DrawFunc draws one element. The render pass has already applied the
// element's transform and scissor state to rt.
type DrawFunc func(e *Element, rt RenderTarget)

// RenderStats summarizes one render pass.
type RenderStats struct {
	Elements         int // elements drawn
	ScissorPushes    int // scissor state changes sent to the backend
	TransformSubmits int // transform changes sent to the backend
}

// frameStats is the mutable counterpart of RenderStats filled during a pass.
type frameStats struct {
	elements         int
	scissorPushes    int
	transformSubmits int
}

// Render draws every visible element of every document, parents before
// children. Before each draw it syncs the element's transform and clip with
// the render target. Invisible elements hide their subtree. The scissor is
// reset when the pass ends.
func (c *Context) Render(draw DrawFunc) RenderStats {
	c.stats = frameStats{}
	rt := c.RenderTarget()
	if rt == nil {
		return RenderStats{}
	}

	for _, doc := range c.documents {
		UpdateTransforms(doc)
		c.renderElement(doc, rt, draw)
	}
	ApplyClipIfChanged(nil, c)

	stats := RenderStats{
		Elements:         c.stats.elements,
		ScissorPushes:    c.stats.scissorPushes,
		TransformSubmits: c.stats.transformSubmits,
	}
	if c.debug {
		c.debugLog(stats)
	}
	return stats
}

func (c *Context) renderElement(e *Element, rt RenderTarget, draw DrawFunc) {
	if !e.Visible {
		return
	}
	SyncTransform(e)
	ApplyClipIfChanged(e, c)
	if draw != nil {
		draw(e, rt)
	}
	c.stats.elements++

	for _, child := range e.children {
		c.renderElement(child, rt, draw)
	}
}
