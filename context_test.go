package willowui

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewContextDefaults(t *testing.T) {
	ctx := NewContext(ContextConfig{Name: "main"})
	assert.Equal(t, "main", ctx.Name())
	assert.Nil(t, ctx.RenderTarget())
	assert.Equal(t, 1.0, ctx.DensityIndependentPixelRatio())
	assert.Same(t, logrus.StandardLogger(), ctx.Logger().Logger)

	region, enabled := ctx.ActiveClipRegion()
	assert.Equal(t, NoClip, region)
	assert.False(t, enabled)
}

func TestDensityIndependentPixelRatio(t *testing.T) {
	ctx := NewContext(ContextConfig{DensityIndependentPixelRatio: 2})
	doc := ctx.CreateDocument("body")
	e := NewElement("div")
	doc.AppendChild(e)

	assert.Equal(t, 2.0, DensityIndependentPixelRatio(e))
	ctx.SetDensityIndependentPixelRatio(-1)
	assert.Equal(t, 2.0, DensityIndependentPixelRatio(e))
	ctx.SetDensityIndependentPixelRatio(1.5)
	assert.Equal(t, 1.5, DensityIndependentPixelRatio(e))

	assert.Equal(t, 1.0, DensityIndependentPixelRatio(NewElement("div")))
}

func TestDocuments(t *testing.T) {
	ctx, _, _ := newTestContext()
	a := ctx.CreateDocument("a")
	b := NewElement("b")
	ctx.AddDocument(b)

	assert.Equal(t, 2, ctx.NumDocuments())
	assert.Same(t, b, ctx.DocumentAt(1))
	assert.Same(t, ctx, b.Context())

	ctx.RemoveDocument(a)
	assert.Equal(t, []*Element{b}, ctx.Documents())
	assert.Nil(t, a.Context())
	ctx.RemoveDocument(a)
	assert.Equal(t, 1, ctx.NumDocuments())
}

func TestAddDocumentPanics(t *testing.T) {
	ctx, _, _ := newTestContext()
	doc := ctx.CreateDocument("body")
	child := NewElement("div")
	doc.AppendChild(child)

	assert.PanicsWithValue(t, "willowui: document root cannot have a parent", func() { ctx.AddDocument(child) })
	assert.PanicsWithValue(t, "willowui: document already belongs to a context", func() { ctx.AddDocument(doc) })

	other := NewContext(ContextConfig{})
	assert.Panics(t, func() { other.AddDocument(doc) })
}
