package willowui

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// recordingTarget is a RenderTarget that records every backend call.
type recordingTarget struct {
	calls []string

	scissorEnabled bool
	scissor        ClipRegion
	transform      *Matrix

	scissorToggles int
	scissorSets    int
	transforms     int
}

func (r *recordingTarget) EnableScissorRegion(enable bool) {
	r.calls = append(r.calls, fmt.Sprintf("enable(%t)", enable))
	r.scissorEnabled = enable
	r.scissorToggles++
}

func (r *recordingTarget) SetScissorRegion(x, y, width, height int) {
	r.calls = append(r.calls, fmt.Sprintf("scissor(%d,%d,%d,%d)", x, y, width, height))
	r.scissor = ClipRegion{x, y, width, height}
	r.scissorSets++
}

func (r *recordingTarget) SetTransform(m *Matrix) {
	if m == nil {
		r.calls = append(r.calls, "transform(nil)")
	} else {
		r.calls = append(r.calls, "transform")
	}
	r.transform = m
	r.transforms++
}

func (r *recordingTarget) reset() {
	r.calls = nil
	r.scissorToggles = 0
	r.scissorSets = 0
	r.transforms = 0
}

// newTestContext returns a context rendering to a fresh recordingTarget and
// logging to a null logger whose hook captures entries.
func newTestContext() (*Context, *recordingTarget, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	rt := &recordingTarget{}
	ctx := NewContext(ContextConfig{
		Name:         "test",
		RenderTarget: rt,
		Logger:       logger,
	})
	return ctx, rt, hook
}

// newClipper returns a clipping element whose content overflows, sized
// w x h and placed at (x, y) relative to its parent.
func newClipper(tag string, x, y, w, h float64) *Element {
	e := NewElement(tag)
	e.SetBox(NewBox(Vec2{w, h}))
	e.SetOffset(Vec2{x, y}, nil)
	e.SetClipping(true)
	e.SetClientSize(w, h)
	e.SetScrollSize(w, h*2)
	return e
}

// sizedElement returns an element with a primary box of the given content size.
func sizedElement(tag string, w, h float64) *Element {
	e := NewElement(tag)
	e.SetBox(NewBox(Vec2{w, h}))
	return e
}
