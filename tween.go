package willowui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 fields of an element's TransformProps
// simultaneously. Create one via the convenience constructors
// (TweenTranslate, TweenScale, TweenRotation) and call Update(dt) each frame.
// Every update rebuilds the element's local transform from the animated
// props, so the next UpdateTransforms gives it a new TransformState.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	props  TransformProps
	target *Element
	Done   bool
}

// Update advances all tweens by dt seconds, writes values to the animated
// props and applies them to the target as its local transform.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	g.target.SetTransform(MatrixFromProps(g.props))
}

// Props returns the props as of the last update.
func (g *TweenGroup) Props() TransformProps {
	return g.props
}

// TweenTranslate animates the element's translation from from.X/Y to
// (toX, toY). Other components of from are held constant.
func TweenTranslate(e *Element, from TransformProps, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: e, props: from}
	g.tweens[0] = gween.New(float32(from.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(from.Y), float32(toY), duration, fn)
	g.fields[0] = &g.props.X
	g.fields[1] = &g.props.Y
	return g
}

// TweenScale animates the element's scale to (toSX, toSY).
func TweenScale(e *Element, from TransformProps, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: e, props: from}
	g.tweens[0] = gween.New(float32(from.ScaleX), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(from.ScaleY), float32(toSY), duration, fn)
	g.fields[0] = &g.props.ScaleX
	g.fields[1] = &g.props.ScaleY
	return g
}

// TweenRotation animates the element's rotation (radians) to the target value.
func TweenRotation(e *Element, from TransformProps, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: e, props: from}
	g.tweens[0] = gween.New(float32(from.Rotation), float32(to), duration, fn)
	g.fields[0] = &g.props.Rotation
	return g
}
