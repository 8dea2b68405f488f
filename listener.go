package willowui

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// EventPhase identifies where in its propagation an event currently is.
type EventPhase uint8

const (
	PhaseCapture EventPhase = iota + 1 // travelling from the root down to the target's parent
	PhaseTarget                        // at the target element
	PhaseBubble                        // travelling from the target's parent up to the root
)

// Event carries a dispatched event to listeners.
type Event struct {
	Type          string
	Target        *Element
	CurrentTarget *Element
	Phase         EventPhase
	Params        map[string]string

	stopped bool
}

// StopPropagation prevents the event from reaching further elements.
// Remaining listeners on the current element still run.
func (ev *Event) StopPropagation() {
	ev.stopped = true
}

// EventListener receives events from the elements it is attached to.
type EventListener interface {
	ProcessEvent(ev *Event)
}

// ListenerFunc adapts a plain function to EventListener.
type ListenerFunc func(ev *Event)

// ProcessEvent calls f(ev).
func (f ListenerFunc) ProcessEvent(ev *Event) {
	f(ev)
}

type listenerEntry struct {
	listener EventListener
	capture  bool
	removed  bool
}

// AddEventListener attaches l to events of the given type. Capturing
// listeners run on the way down to the target; others at the target and on
// the way back up. A listener added during a dispatch first runs on the
// next dispatch.
func (e *Element) AddEventListener(eventType string, l EventListener, capture bool) {
	if e.listeners == nil {
		e.listeners = make(map[string][]*listenerEntry)
	}
	e.listeners[eventType] = append(e.listeners[eventType], &listenerEntry{listener: l, capture: capture})
}

// RemoveEventListener detaches a listener added with the same arguments.
// Listeners are compared by identity. Only listeners of comparable dynamic
// types (pointers, structs of comparable fields) can be removed; func-backed
// listeners such as ListenerFunc never match. A listener removed during a
// dispatch does not run for the rest of it.
func (e *Element) RemoveEventListener(eventType string, l EventListener, capture bool) {
	entries := e.listeners[eventType]
	for i, le := range entries {
		if le.capture == capture && sameListener(le.listener, l) {
			le.removed = true
			kept := make([]*listenerEntry, 0, len(entries)-1)
			kept = append(kept, entries[:i]...)
			e.listeners[eventType] = append(kept, entries[i+1:]...)
			return
		}
	}
}

// sameListener reports whether a and b are the same listener. Listeners of
// uncomparable dynamic types never match.
func sameListener(a, b EventListener) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta == nil || ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// isNilListener reports whether l is nil or an interface holding a nil
// pointer, func or map.
func isNilListener(l EventListener) bool {
	if l == nil {
		return true
	}
	v := reflect.ValueOf(l)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// NumEventListeners returns how many listeners are attached for eventType.
func (e *Element) NumEventListeners(eventType string) int {
	return len(e.listeners[eventType])
}

// DispatchEvent sends an event of the given type to e. Capturing listeners on
// e's ancestors run first, root first; then e's own listeners; then
// non-capturing listeners on the ancestors, nearest first.
func (e *Element) DispatchEvent(eventType string, params map[string]string) {
	ev := &Event{Type: eventType, Target: e, Params: params}

	var path []*Element
	for p := e.parent; p != nil; p = p.parent {
		path = append(path, p)
	}

	ev.Phase = PhaseCapture
	for i := len(path) - 1; i >= 0 && !ev.stopped; i-- {
		path[i].notify(ev, true)
	}

	if !ev.stopped {
		ev.Phase = PhaseTarget
		e.notify(ev, true)
		e.notify(ev, false)
	}

	ev.Phase = PhaseBubble
	for i := 0; i < len(path) && !ev.stopped; i++ {
		path[i].notify(ev, false)
	}
}

// notify runs e's listeners for ev registered with the given capture flag.
func (e *Element) notify(ev *Event, capture bool) {
	ev.CurrentTarget = e
	// Removal replaces the slice, so this range sees the listeners present
	// when notify began.
	for _, le := range e.listeners[ev.Type] {
		if le.capture == capture && !le.removed {
			le.listener.ProcessEvent(ev)
		}
	}
}

// ListenerInstancer creates an event listener from the value of an "on*"
// attribute.
type ListenerInstancer interface {
	InstanceEventListener(value string, e *Element) (EventListener, error)
}

// HandlerFunc handles an event bound through an attribute. args holds the
// words that followed the handler name in the attribute value.
type HandlerFunc func(ev *Event, args []string)

// HandlerRegistry is a ListenerInstancer that resolves attribute values of
// the form "name arg1 arg2" to handlers registered by name.
type HandlerRegistry struct {
	handlers map[string]HandlerFunc
}

// NewHandlerRegistry returns an empty registry.
func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{handlers: make(map[string]HandlerFunc)}
}

// Register binds name to fn, replacing any previous handler.
func (r *HandlerRegistry) Register(name string, fn HandlerFunc) {
	r.handlers[name] = fn
}

// InstanceEventListener implements ListenerInstancer.
func (r *HandlerRegistry) InstanceEventListener(value string, e *Element) (EventListener, error) {
	words := strings.Fields(value)
	if len(words) == 0 {
		return nil, errors.New("willowui: empty event handler")
	}
	fn, ok := r.handlers[words[0]]
	if !ok {
		return nil, errors.Errorf("willowui: no handler registered for %q", words[0])
	}
	args := words[1:]
	return ListenerFunc(func(ev *Event) { fn(ev, args) }), nil
}

// BindEventAttributes attaches a listener for every attribute of e named
// "on<event>": the value is instanced through inst and registered for
// <event> as a non-capturing listener. Values that fail to instance are
// skipped.
func BindEventAttributes(e *Element, inst ListenerInstancer) {
	for _, attr := range e.Attributes() {
		if len(attr.Name) <= 2 || !strings.HasPrefix(attr.Name, "on") {
			continue
		}
		eventType := attr.Name[2:]
		l, err := inst.InstanceEventListener(attr.Value, e)
		if err != nil || isNilListener(l) {
			if ctx := e.Context(); ctx != nil {
				ctx.log.WithFields(logrus.Fields{
					"attribute": attr.Name,
					"element":   e.TagName(),
				}).WithError(err).Debug("skipping event attribute")
			}
			continue
		}
		e.AddEventListener(eventType, l, false)
	}
}
