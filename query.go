package willowui

// TreeView is the read-only view of a tree that queries walk. Queries only
// see these accessors, so a traversal cannot mutate the tree it searches.
// *Element implements TreeView[*Element].
type TreeView[N any] interface {
	ID() string
	TagName() string
	IsClassSet(name string) bool
	NumChildren() int
	ChildAt(index int) N
}

// FindByID searches root and its descendants breadth first, visiting
// children in order, and returns the first element whose id equals id.
// The shallowest match wins; ties go to the earlier sibling.
func FindByID[N TreeView[N]](root N, id string) (N, bool) {
	queue := []N{root}
	for head := 0; head < len(queue); head++ {
		n := queue[head]
		if n.ID() == id {
			return n, true
		}
		for i := 0; i < n.NumChildren(); i++ {
			queue = append(queue, n.ChildAt(i))
		}
	}
	var zero N
	return zero, false
}

// FindAllByTag returns every descendant of root with the given tag name, in
// breadth-first order. root itself is not tested.
func FindAllByTag[N TreeView[N]](root N, tag string) []N {
	return collectDescendants(root, func(n N) bool { return n.TagName() == tag })
}

// FindAllByClass returns every descendant of root carrying className, in
// breadth-first order. root itself is not tested.
func FindAllByClass[N TreeView[N]](root N, className string) []N {
	return collectDescendants(root, func(n N) bool { return n.IsClassSet(className) })
}

// collectDescendants walks root's descendants breadth first and collects
// those matching match.
func collectDescendants[N TreeView[N]](root N, match func(N) bool) []N {
	queue := make([]N, 0, root.NumChildren())
	for i := 0; i < root.NumChildren(); i++ {
		queue = append(queue, root.ChildAt(i))
	}

	var found []N
	for head := 0; head < len(queue); head++ {
		n := queue[head]
		if match(n) {
			found = append(found, n)
		}
		for i := 0; i < n.NumChildren(); i++ {
			queue = append(queue, n.ChildAt(i))
		}
	}
	return found
}

// ElementByID returns the first element in e's subtree, e included, whose id
// equals id, or nil.
func (e *Element) ElementByID(id string) *Element {
	found, _ := FindByID(e, id)
	return found
}

// ElementsByTagName returns e's descendants with the given tag name.
func (e *Element) ElementsByTagName(tag string) []*Element {
	return FindAllByTag(e, tag)
}

// ElementsByClassName returns e's descendants carrying className.
func (e *Element) ElementsByClassName(className string) []*Element {
	return FindAllByClass(e, className)
}
