package willowui

import "math"

// Matrix is a 2D affine matrix [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Matrix [6]float64

// IdentityMatrix is the identity affine matrix.
var IdentityMatrix = Matrix{1, 0, 0, 1, 0, 0}

// Multiply returns m * o: o is applied first, then m.
func (m Matrix) Multiply(o Matrix) Matrix {
	return Matrix{
		m[0]*o[0] + m[2]*o[1],
		m[1]*o[0] + m[3]*o[1],
		m[0]*o[2] + m[2]*o[3],
		m[1]*o[2] + m[3]*o[3],
		m[0]*o[4] + m[2]*o[5] + m[4],
		m[1]*o[4] + m[3]*o[5] + m[5],
	}
}

// Invert returns the inverse of m.
// Returns the identity matrix if m is singular (determinant ≈ 0).
func (m Matrix) Invert() Matrix {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return IdentityMatrix
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Matrix{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// Apply transforms the point (x, y) by m.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// TransformProps describes a local transform by its components. Rotation
// and skew are in radians.
type TransformProps struct {
	X, Y         float64
	ScaleX       float64
	ScaleY       float64
	Rotation     float64
	SkewX, SkewY float64
	PivotX       float64
	PivotY       float64
}

// DefaultTransformProps returns props describing the identity transform.
func DefaultTransformProps() TransformProps {
	return TransformProps{ScaleX: 1, ScaleY: 1}
}

// MatrixFromProps composes a local matrix from p.
//
// Composition order:
//
//	Translate(-PivotX, -PivotY) -> Scale -> Skew -> Rotate -> Translate(X, Y)
func MatrixFromProps(p TransformProps) Matrix {
	sx := p.ScaleX
	sy := p.ScaleY

	sin, cos := math.Sincos(p.Rotation)

	var tanSkewX, tanSkewY float64
	if p.SkewX != 0 {
		tanSkewX = math.Tan(p.SkewX)
	}
	if p.SkewY != 0 {
		tanSkewY = math.Tan(p.SkewY)
	}

	// After Scale * Translate(-pivot) and Skew:
	a := sx
	b := tanSkewY * sx
	c := tanSkewX * sy
	d := sy

	preTx := -p.PivotX*sx - tanSkewX*p.PivotY*sy
	preTy := -tanSkewY*p.PivotX*sx - p.PivotY*sy

	// After Rotate:
	ra := cos*a - sin*b
	rb := sin*a + cos*b
	rc := cos*c - sin*d
	rd := sin*c + cos*d
	rtx := cos*preTx - sin*preTy
	rty := sin*preTx + cos*preTy

	return Matrix{ra, rb, rc, rd, rtx + p.X, rty + p.Y}
}

// transformVersion stamps every TransformState. 0 is reserved for "no
// transform". A plain counter: resolution runs on the single UI thread.
var transformVersion uint64

// TransformState is an element's resolved transform: its own local matrix
// composed with every transformed ancestor. States are immutable; each one
// carries a unique version, so comparing versions tells whether an element's
// transform was re-resolved since it was last seen.
type TransformState struct {
	matrix  Matrix
	version uint64
}

func newTransformState(m Matrix) *TransformState {
	transformVersion++
	return &TransformState{matrix: m, version: transformVersion}
}

// Matrix returns the resolved matrix.
func (s *TransformState) Matrix() Matrix {
	return s.matrix
}

// Version returns the state's version stamp. A nil state has version 0.
func (s *TransformState) Version() uint64 {
	if s == nil {
		return 0
	}
	return s.version
}

// SetTransform sets the element's local transform and marks its subtree for
// re-resolution by UpdateTransforms.
func (e *Element) SetTransform(m Matrix) {
	e.localTransform = &m
	markSubtreeDirty(e)
}

// ClearTransform removes the element's local transform.
func (e *Element) ClearTransform() {
	if e.localTransform == nil {
		return
	}
	e.localTransform = nil
	markSubtreeDirty(e)
}

// LocalTransform returns the element's own matrix and whether one is set.
func (e *Element) LocalTransform() (Matrix, bool) {
	if e.localTransform == nil {
		return IdentityMatrix, false
	}
	return *e.localTransform, true
}

// TransformState returns the element's resolved transform, or nil when
// neither the element nor any ancestor is transformed.
func (e *Element) TransformState() *TransformState {
	return e.transform
}

// UpdateTransforms resolves the transform state of root and its
// descendants. Only elements marked dirty (or below a recomputed parent) get
// a new state; unchanged subtrees keep their state and version.
func UpdateTransforms(root *Element) {
	var parent *TransformState
	if p := root.Parent(); p != nil {
		parent = p.transform
	}
	updateTransform(root, parent, false)
}

func updateTransform(e *Element, parent *TransformState, parentRecomputed bool) {
	recompute := e.transformDirty || parentRecomputed
	if recompute {
		switch {
		case e.localTransform == nil:
			e.transform = parent
		case parent == nil:
			e.transform = newTransformState(*e.localTransform)
		default:
			e.transform = newTransformState(parent.matrix.Multiply(*e.localTransform))
		}
		e.transformDirty = false
	}

	for _, child := range e.children {
		updateTransform(child, e.transform, recompute)
	}
}
