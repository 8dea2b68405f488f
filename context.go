package willowui

import "github.com/sirupsen/logrus"

// ContextConfig configures a Context. The zero value is usable: a context
// without a render target still supports queries and positioning.
type ContextConfig struct {
	// Name identifies the context in log output.
	Name string
	// RenderTarget receives scissor and transform state. May be set later.
	RenderTarget RenderTarget
	// DensityIndependentPixelRatio scales dp units. 0 means 1.
	DensityIndependentPixelRatio float64
	// BoxBuilder builds element boxes. nil means StyleBoxBuilder.
	BoxBuilder BoxBuilder
	// Logger receives debug output. nil means the logrus standard logger.
	Logger *logrus.Logger
	// Debug enables tree checks and per-pass render stats logging.
	Debug bool
}

// Context is the top-level object that owns documents, the render target and
// the active clip region shared by every element rendered through it.
type Context struct {
	name         string
	renderTarget RenderTarget
	dpRatio      float64
	boxBuilder   BoxBuilder
	log          *logrus.Entry
	debug        bool

	documents []*Element

	// activeClip is the scissor state last pushed to the render target.
	activeClip ClipRegion

	stats frameStats
}

// NewContext creates a context from cfg.
func NewContext(cfg ContextConfig) *Context {
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	ratio := cfg.DensityIndependentPixelRatio
	if ratio <= 0 {
		ratio = 1
	}
	return &Context{
		name:         cfg.Name,
		renderTarget: cfg.RenderTarget,
		dpRatio:      ratio,
		boxBuilder:   cfg.BoxBuilder,
		log:          logger.WithField("context", cfg.Name),
		debug:        cfg.Debug,
		activeClip:   NoClip,
	}
}

// Name returns the context's name.
func (c *Context) Name() string {
	return c.name
}

// RenderTarget returns the context's render target, or nil.
func (c *Context) RenderTarget() RenderTarget {
	return c.renderTarget
}

// SetRenderTarget replaces the render target. The active clip is reset so
// the next ApplyClipIfChanged pushes full scissor state to the new target.
func (c *Context) SetRenderTarget(rt RenderTarget) {
	c.renderTarget = rt
	c.activeClip = NoClip
}

// DensityIndependentPixelRatio returns the number of pixels per dp unit.
func (c *Context) DensityIndependentPixelRatio() float64 {
	return c.dpRatio
}

// SetDensityIndependentPixelRatio sets the number of pixels per dp unit.
// Non-positive ratios are ignored.
func (c *Context) SetDensityIndependentPixelRatio(ratio float64) {
	if ratio > 0 {
		c.dpRatio = ratio
	}
}

// ActiveClipRegion returns the clip region last pushed to the render target
// and whether it enables scissoring.
func (c *Context) ActiveClipRegion() (ClipRegion, bool) {
	return c.activeClip, c.activeClip.Valid()
}

// SetActiveClipRegion records r as the active clip region. It does not talk
// to the render target; see PushScissorState.
func (c *Context) SetActiveClipRegion(r ClipRegion) {
	c.activeClip = r
}

// SetDebugMode enables or disables debug mode. When enabled, tree depth and
// child count warnings and per-pass render stats are logged.
func (c *Context) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// Logger returns the context's log entry.
func (c *Context) Logger() *logrus.Entry {
	return c.log
}

// --- Documents ---

// CreateDocument creates an empty document root with the given tag and adds
// it to the context.
func (c *Context) CreateDocument(tag string) *Element {
	doc := NewElement(tag)
	c.AddDocument(doc)
	return doc
}

// AddDocument attaches a detached root element to the context as a document.
// Panics if doc has a parent or already belongs to a context.
func (c *Context) AddDocument(doc *Element) {
	if doc.parent != nil {
		panic("willowui: document root cannot have a parent")
	}
	if doc.context != nil {
		panic("willowui: document already belongs to a context")
	}
	doc.context = c
	c.documents = append(c.documents, doc)
}

// RemoveDocument detaches doc from the context. No-op if doc is not one of
// its documents.
func (c *Context) RemoveDocument(doc *Element) {
	for i, d := range c.documents {
		if d == doc {
			copy(c.documents[i:], c.documents[i+1:])
			c.documents[len(c.documents)-1] = nil
			c.documents = c.documents[:len(c.documents)-1]
			doc.context = nil
			return
		}
	}
}

// NumDocuments returns the number of documents.
func (c *Context) NumDocuments() int {
	return len(c.documents)
}

// DocumentAt returns the document at index i.
func (c *Context) DocumentAt(i int) *Element {
	return c.documents[i]
}

// Documents returns the document list. The returned slice MUST NOT be mutated.
func (c *Context) Documents() []*Element {
	return c.documents
}

// DensityIndependentPixelRatio returns the dp ratio of e's context, or 1
// when e is not attached to one.
func DensityIndependentPixelRatio(e *Element) float64 {
	if ctx := e.Context(); ctx != nil {
		return ctx.DensityIndependentPixelRatio()
	}
	return 1
}
