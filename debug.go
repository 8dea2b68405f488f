package willowui

import "github.com/sirupsen/logrus"

// debugLog writes one render pass's stats to the context logger.
func (c *Context) debugLog(stats RenderStats) {
	c.log.WithFields(logrus.Fields{
		"elements":          stats.Elements,
		"scissor_pushes":    stats.ScissorPushes,
		"transform_submits": stats.TransformSubmits,
		"documents":         len(c.documents),
	}).Debug("render pass")
}

// debugCheckTreeDepth warns if the tree depth at e exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(c *Context, e *Element) {
	depth := 0
	for p := e; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		c.log.WithFields(logrus.Fields{
			"depth":     depth,
			"threshold": debugMaxTreeDepth,
			"element":   e.TagName(),
			"id":        e.ID(),
		}).Warn("tree depth exceeds threshold")
	}
}

// debugCheckChildCount warns if an element has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(c *Context, e *Element) {
	if len(e.children) > debugMaxChildCount {
		c.log.WithFields(logrus.Fields{
			"children":  len(e.children),
			"threshold": debugMaxChildCount,
			"element":   e.TagName(),
			"id":        e.ID(),
		}).Warn("element child count exceeds threshold")
	}
}
