package willowui

// Attribute is a single name/value pair from an element's markup.
type Attribute struct {
	Name, Value string
}

// Element is a node of the document tree. A single flat struct carries the
// identity, hierarchy and geometry that the layout and render passes assign;
// this package reads it to derive clip regions, positions and transforms.
type Element struct {
	// Identity
	tag        string
	id         string
	classes    []string
	attributes []Attribute

	// Hierarchy
	parent   *Element
	children []*Element
	context  *Context // set on document roots only

	// Geometry, assigned by layout
	boxes        []Box
	offset       Vec2
	offsetParent *Element
	clientSize   Vec2
	scrollSize   Vec2
	scrollbars   [2]float64
	style        Style

	// Clipping
	clipping        bool
	clipIgnoreDepth int

	// Transform (see transform.go)
	localTransform *Matrix
	transform      *TransformState
	transformDirty bool

	// Visible elements take part in rendering and outlines.
	Visible bool

	font      Font
	listeners map[string][]*listenerEntry
}

// NewElement creates a detached, visible element with the given tag name and
// a single empty box.
func NewElement(tag string) *Element {
	return &Element{
		tag:            tag,
		style:          DefaultStyle(),
		boxes:          []Box{{}},
		Visible:        true,
		transformDirty: true,
	}
}

// --- Identity ---

// TagName returns the element's tag name.
func (e *Element) TagName() string {
	return e.tag
}

// ID returns the element's identifier, or "" if none is set.
func (e *Element) ID() string {
	return e.id
}

// SetID sets the element's identifier.
func (e *Element) SetID(id string) {
	e.id = id
}

// SetClass adds or removes a class name.
func (e *Element) SetClass(name string, on bool) {
	for i, c := range e.classes {
		if c == name {
			if !on {
				e.classes = append(e.classes[:i], e.classes[i+1:]...)
			}
			return
		}
	}
	if on {
		e.classes = append(e.classes, name)
	}
}

// IsClassSet reports whether the element carries the class name.
func (e *Element) IsClassSet(name string) bool {
	for _, c := range e.classes {
		if c == name {
			return true
		}
	}
	return false
}

// ClassNames returns the element's classes in the order they were set.
// The returned slice MUST NOT be mutated by the caller.
func (e *Element) ClassNames() []string {
	return e.classes
}

// SetAttribute sets an attribute, replacing the value of an existing one
// with the same name and keeping its position.
func (e *Element) SetAttribute(name, value string) {
	for i := range e.attributes {
		if e.attributes[i].Name == name {
			e.attributes[i].Value = value
			return
		}
	}
	e.attributes = append(e.attributes, Attribute{Name: name, Value: value})
}

// Attribute returns the value of the named attribute.
func (e *Element) Attribute(name string) (string, bool) {
	for _, a := range e.attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// RemoveAttribute deletes the named attribute. No-op if it is not set.
func (e *Element) RemoveAttribute(name string) {
	for i, a := range e.attributes {
		if a.Name == name {
			e.attributes = append(e.attributes[:i], e.attributes[i+1:]...)
			return
		}
	}
}

// Attributes returns the attributes in insertion order.
// The returned slice MUST NOT be mutated by the caller.
func (e *Element) Attributes() []Attribute {
	return e.attributes
}

// --- Tree manipulation ---

// Parent returns the element's parent, or nil for a detached element or a
// document root.
func (e *Element) Parent() *Element {
	return e.parent
}

// AppendChild appends child to this element's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this element (cycle).
func (e *Element) AppendChild(child *Element) {
	e.InsertChildAt(child, len(e.children))
}

// InsertChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AppendChild.
func (e *Element) InsertChildAt(child *Element, index int) {
	if child == nil {
		panic("willowui: cannot add nil child")
	}
	if isAncestor(child, e) {
		panic("willowui: adding child would create a cycle")
	}
	size := len(e.children)
	if child.parent == e {
		size--
		if e.indexOf(child) < index {
			index--
		}
	}
	if index < 0 || index > size {
		panic("willowui: child index out of range")
	}
	if child.parent != nil {
		child.parent.removeChildByPtr(child)
	}
	child.parent = e
	e.children = append(e.children, nil)
	copy(e.children[index+1:], e.children[index:])
	e.children[index] = child
	markSubtreeDirty(child)
	if ctx := e.Context(); ctx != nil && ctx.debug {
		debugCheckTreeDepth(ctx, child)
		debugCheckChildCount(ctx, e)
	}
}

// RemoveChild detaches child from this element.
// Panics if child.Parent() != e.
func (e *Element) RemoveChild(child *Element) {
	if child.parent != e {
		panic("willowui: child's parent is not this element")
	}
	e.removeChildByPtr(child)
	child.parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this element from its parent.
// No-op if this element has no parent.
func (e *Element) RemoveFromParent() {
	if e.parent == nil {
		return
	}
	e.parent.RemoveChild(e)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (e *Element) Children() []*Element {
	return e.children
}

// NumChildren returns the number of children.
func (e *Element) NumChildren() int {
	return len(e.children)
}

// ChildAt returns the child at the given index.
func (e *Element) ChildAt(index int) *Element {
	return e.children[index]
}

// Context returns the context owning the element's document, or nil if the
// element is not attached to a document.
func (e *Element) Context() *Context {
	root := e
	for root.parent != nil {
		root = root.parent
	}
	return root.context
}

// RenderTarget returns the render target of the element's context, or nil.
func (e *Element) RenderTarget() RenderTarget {
	if ctx := e.Context(); ctx != nil {
		return ctx.RenderTarget()
	}
	return nil
}

// --- Geometry ---

// Box returns the element's primary box.
func (e *Element) Box() Box {
	return e.boxes[0]
}

// BoxAt returns the box at index i. Index 0 is the primary box.
func (e *Element) BoxAt(i int) Box {
	return e.boxes[i]
}

// NumBoxes returns the number of boxes; always at least one.
func (e *Element) NumBoxes() int {
	return len(e.boxes)
}

// SetBox replaces the primary box and drops any secondary boxes.
func (e *Element) SetBox(b Box) {
	e.boxes = append(e.boxes[:0], b)
}

// AddBox appends a secondary box, as produced for inline fragments.
func (e *Element) AddBox(b Box) {
	e.boxes = append(e.boxes, b)
}

// Offset returns the top-left of the element's border box relative to its
// offset parent.
func (e *Element) Offset() Vec2 {
	return e.offset
}

// OffsetParent returns the element the offset is relative to. It defaults
// to the element's parent.
func (e *Element) OffsetParent() *Element {
	if e.offsetParent != nil {
		return e.offsetParent
	}
	return e.parent
}

// SetOffset positions the element's border box at offset relative to
// offsetParent. A nil offsetParent means the element's parent.
func (e *Element) SetOffset(offset Vec2, offsetParent *Element) {
	e.offset = offset
	e.offsetParent = offsetParent
}

// AbsoluteOffset returns the absolute position of the given area of the
// element's primary box.
func (e *Element) AbsoluteOffset(area BoxArea) Vec2 {
	pos := e.offset
	for p := e.OffsetParent(); p != nil; p = p.OffsetParent() {
		pos = pos.Add(p.offset)
	}
	return pos.Add(e.Box().Position(area))
}

// Style returns the element's computed style.
func (e *Element) Style() Style {
	return e.style
}

// SetStyle replaces the element's computed style.
func (e *Element) SetStyle(st Style) {
	e.style = st
}

// ScrollbarSize returns the thickness reserved for a scrollbar on axis.
func (e *Element) ScrollbarSize(axis ScrollbarAxis) float64 {
	return e.scrollbars[axis]
}

// SetScrollbarSize sets the thickness reserved for a scrollbar on axis.
func (e *Element) SetScrollbarSize(axis ScrollbarAxis, size float64) {
	e.scrollbars[axis] = size
}

// ClientWidth returns the width of the visible content region.
func (e *Element) ClientWidth() float64 { return e.clientSize.X }

// ClientHeight returns the height of the visible content region.
func (e *Element) ClientHeight() float64 { return e.clientSize.Y }

// ScrollWidth returns the width of the element's scrollable content.
func (e *Element) ScrollWidth() float64 { return e.scrollSize.X }

// ScrollHeight returns the height of the element's scrollable content.
func (e *Element) ScrollHeight() float64 { return e.scrollSize.Y }

// SetClientSize sets the visible content extents.
func (e *Element) SetClientSize(w, h float64) {
	e.clientSize = Vec2{w, h}
}

// SetScrollSize sets the scrollable content extents.
func (e *Element) SetScrollSize(w, h float64) {
	e.scrollSize = Vec2{w, h}
}

// Overflows reports whether the element has content outside its client area.
func (e *Element) Overflows() bool {
	return e.clientSize.X < e.scrollSize.X || e.clientSize.Y < e.scrollSize.Y
}

// IsClippingEnabled reports whether the element clips its overflow.
func (e *Element) IsClippingEnabled() bool {
	return e.clipping
}

// SetClipping enables or disables clipping of the element's overflow.
func (e *Element) SetClipping(enabled bool) {
	e.clipping = enabled
}

// ClipIgnoreDepth returns how many clipping ancestors the element skips.
// -1 means all of them.
func (e *Element) ClipIgnoreDepth() int {
	return e.clipIgnoreDepth
}

// SetClipIgnoreDepth sets how many clipping ancestors the element skips.
// Any negative value is stored as -1.
func (e *Element) SetClipIgnoreDepth(depth int) {
	if depth < 0 {
		depth = -1
	}
	e.clipIgnoreDepth = depth
}

// Font returns the element's font face, or nil.
func (e *Element) Font() Font {
	return e.font
}

// SetFont sets the font face used to measure the element's text.
func (e *Element) SetFont(f Font) {
	e.font = f
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of (or equal to) el.
func isAncestor(candidate, el *Element) bool {
	for p := el; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// indexOf returns the index of child among e's children, or -1.
func (e *Element) indexOf(child *Element) int {
	for i, c := range e.children {
		if c == child {
			return i
		}
	}
	return -1
}

// removeChildByPtr removes child from e.children without clearing child.parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (e *Element) removeChildByPtr(child *Element) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on el and all its descendants.
func markSubtreeDirty(el *Element) {
	el.transformDirty = true
	for _, child := range el.children {
		markSubtreeDirty(child)
	}
}
