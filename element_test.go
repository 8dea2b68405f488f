package willowui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Tree manipulation ---

func TestAppendChild(t *testing.T) {
	parent := NewElement("div")
	a := NewElement("a")
	b := NewElement("b")
	parent.AppendChild(a)
	parent.AppendChild(b)

	assert.Equal(t, []*Element{a, b}, parent.Children())
	assert.Same(t, parent, a.Parent())
	assert.Equal(t, 2, parent.NumChildren())
	assert.Same(t, b, parent.ChildAt(1))
}

func TestAppendChildReparents(t *testing.T) {
	oldParent := NewElement("div")
	newParent := NewElement("div")
	child := NewElement("span")
	oldParent.AppendChild(child)

	newParent.AppendChild(child)
	assert.Zero(t, oldParent.NumChildren())
	assert.Same(t, newParent, child.Parent())
}

func TestAppendChildPanics(t *testing.T) {
	root := NewElement("div")
	mid := NewElement("div")
	leaf := NewElement("div")
	root.AppendChild(mid)
	mid.AppendChild(leaf)

	assert.PanicsWithValue(t, "willowui: cannot add nil child", func() { root.AppendChild(nil) })
	assert.PanicsWithValue(t, "willowui: adding child would create a cycle", func() { leaf.AppendChild(root) })
	assert.PanicsWithValue(t, "willowui: adding child would create a cycle", func() { mid.AppendChild(mid) })
	assert.PanicsWithValue(t, "willowui: child index out of range", func() { root.InsertChildAt(NewElement("x"), 5) })
}

func TestInsertChildAt(t *testing.T) {
	parent := NewElement("div")
	a, b, c := NewElement("a"), NewElement("b"), NewElement("c")
	parent.AppendChild(a)
	parent.AppendChild(c)
	parent.InsertChildAt(b, 1)
	assert.Equal(t, []*Element{a, b, c}, parent.Children())

	// Moving within the same parent.
	parent.InsertChildAt(a, 3)
	assert.Equal(t, []*Element{b, c, a}, parent.Children())
	parent.InsertChildAt(a, 0)
	assert.Equal(t, []*Element{a, b, c}, parent.Children())
}

func TestRemoveChild(t *testing.T) {
	parent := NewElement("div")
	a, b := NewElement("a"), NewElement("b")
	parent.AppendChild(a)
	parent.AppendChild(b)

	parent.RemoveChild(a)
	assert.Equal(t, []*Element{b}, parent.Children())
	assert.Nil(t, a.Parent())

	assert.Panics(t, func() { parent.RemoveChild(a) })

	b.RemoveFromParent()
	assert.Zero(t, parent.NumChildren())
	assert.NotPanics(t, b.RemoveFromParent)
}

func TestContextResolvesThroughRoot(t *testing.T) {
	ctx, rt, _ := newTestContext()
	doc := ctx.CreateDocument("body")
	mid := NewElement("div")
	leaf := NewElement("span")
	mid.AppendChild(leaf)

	assert.Nil(t, leaf.Context())
	assert.Nil(t, leaf.RenderTarget())

	doc.AppendChild(mid)
	assert.Same(t, ctx, leaf.Context())
	assert.Equal(t, RenderTarget(rt), leaf.RenderTarget())
}

// --- Identity ---

func TestClasses(t *testing.T) {
	e := NewElement("div")
	e.SetClass("a", true)
	e.SetClass("b", true)
	e.SetClass("a", true)
	assert.Equal(t, []string{"a", "b"}, e.ClassNames())
	assert.True(t, e.IsClassSet("b"))

	e.SetClass("a", false)
	e.SetClass("missing", false)
	assert.Equal(t, []string{"b"}, e.ClassNames())
	assert.False(t, e.IsClassSet("a"))
}

func TestAttributes(t *testing.T) {
	e := NewElement("button")
	e.SetAttribute("onclick", "submit")
	e.SetAttribute("title", "Go")
	e.SetAttribute("onclick", "cancel")

	assert.Equal(t, []Attribute{{"onclick", "cancel"}, {"title", "Go"}}, e.Attributes())
	v, ok := e.Attribute("title")
	assert.True(t, ok)
	assert.Equal(t, "Go", v)

	e.RemoveAttribute("onclick")
	_, ok = e.Attribute("onclick")
	assert.False(t, ok)
	assert.Len(t, e.Attributes(), 1)
}

// --- Geometry ---

func TestNewElementDefaults(t *testing.T) {
	e := NewElement("div")
	assert.Equal(t, "div", e.TagName())
	assert.True(t, e.Visible)
	assert.Equal(t, 1, e.NumBoxes())
	assert.Equal(t, DefaultStyle(), e.Style())
	assert.Zero(t, e.ClipIgnoreDepth())
	assert.False(t, e.IsClippingEnabled())
}

func TestAbsoluteOffset(t *testing.T) {
	root := NewElement("body")
	root.SetOffset(Vec2{5, 5}, nil)
	mid := NewElement("div")
	mid.SetOffset(Vec2{10, 20}, nil)
	leaf := NewElement("span")
	box := NewBox(Vec2{10, 10})
	box.SetEdge(AreaBorder, EdgeLeft, 1)
	box.SetEdge(AreaPadding, EdgeTop, 2)
	leaf.SetBox(box)
	leaf.SetOffset(Vec2{1, 1}, nil)
	root.AppendChild(mid)
	mid.AppendChild(leaf)

	assert.Equal(t, Vec2{16, 26}, leaf.AbsoluteOffset(AreaBorder))
	assert.Equal(t, Vec2{17, 28}, leaf.AbsoluteOffset(AreaContent))

	// An explicit offset parent skips the elements in between.
	leaf.SetOffset(Vec2{1, 1}, root)
	assert.Equal(t, Vec2{6, 6}, leaf.AbsoluteOffset(AreaBorder))
	assert.Same(t, root, leaf.OffsetParent())
}

func TestOverflows(t *testing.T) {
	e := NewElement("div")
	assert.False(t, e.Overflows())

	e.SetClientSize(100, 100)
	e.SetScrollSize(100, 100)
	assert.False(t, e.Overflows())

	e.SetScrollSize(101, 100)
	assert.True(t, e.Overflows())

	e.SetScrollSize(100, 150)
	assert.True(t, e.Overflows())
	assert.Equal(t, 150.0, e.ScrollHeight())
	assert.Equal(t, 100.0, e.ClientWidth())
}

func TestSetBox(t *testing.T) {
	e := NewElement("span")
	e.AddBox(NewBox(Vec2{1, 1}))
	e.AddBox(NewBox(Vec2{2, 2}))
	require.Equal(t, 3, e.NumBoxes())
	assert.Equal(t, Vec2{2, 2}, e.BoxAt(2).Size(AreaContent))

	e.SetBox(NewBox(Vec2{9, 9}))
	assert.Equal(t, 1, e.NumBoxes())
	assert.Equal(t, Vec2{9, 9}, e.Box().Size(AreaContent))
}

func TestInsertChildAtOutOfRangeLeavesTreeIntact(t *testing.T) {
	oldParent := NewElement("div")
	child := NewElement("span")
	oldParent.AppendChild(child)
	target := NewElement("div")

	assert.Panics(t, func() { target.InsertChildAt(child, 5) })
	assert.Same(t, oldParent, child.Parent())
	assert.Equal(t, []*Element{child}, oldParent.Children())
	assert.Zero(t, target.NumChildren())

	// Same parent: the index is checked against the list without the child.
	a, b := NewElement("a"), NewElement("b")
	target.AppendChild(a)
	target.AppendChild(b)
	assert.Panics(t, func() { target.InsertChildAt(a, 4) })
	assert.Equal(t, []*Element{a, b}, target.Children())
	assert.Same(t, target, a.Parent())
}
