package modules

import (
	"github.com/morph-ui/morph/pkg/dom"
	"github.com/morph-ui/morph/pkg/vdom"
)

// EventRegistry routes dispatched events to the handlers declared
// under VNodeData.On. Handlers are rebound on every patch, so a
// dispatch always reaches the handler from the latest rendered tree
// and closures from stale renders never fire.
//
// The registry keys handlers by host node, so the backend's node type
// must be comparable.
type EventRegistry struct {
	handlers map[dom.Node]map[string]vdom.Handler
}

// NewEvents creates an empty event registry.
func NewEvents() *EventRegistry {
	return &EventRegistry{
		handlers: make(map[dom.Node]map[string]vdom.Handler),
	}
}

// Module returns the hook bundle that keeps the registry in sync with
// the rendered tree.
func (r *EventRegistry) Module() vdom.Module {
	update := func(oldVnode, vnode *vdom.VNode) {
		r.rebind(vnode)
	}
	return vdom.Module{
		Create:  update,
		Update:  update,
		Destroy: r.unbind,
	}
}

// Dispatch invokes the handler registered for (elm, event) with the
// given payload. It reports whether a handler was found.
func (r *EventRegistry) Dispatch(elm dom.Node, event string, payload any) bool {
	m := r.handlers[elm]
	if m == nil {
		return false
	}
	h := m[event]
	if h == nil {
		return false
	}
	h(payload)
	return true
}

// Handler returns the handler registered for (elm, event), if any.
func (r *EventRegistry) Handler(elm dom.Node, event string) (vdom.Handler, bool) {
	if m := r.handlers[elm]; m != nil {
		h, ok := m[event]
		return h, ok
	}
	return nil, false
}

func (r *EventRegistry) rebind(vnode *vdom.VNode) {
	var on map[string]vdom.Handler
	if vnode.Data != nil {
		on = vnode.Data.On
	}
	if len(on) == 0 {
		delete(r.handlers, vnode.Elm)
		return
	}
	bound := make(map[string]vdom.Handler, len(on))
	for event, h := range on {
		bound[event] = h
	}
	r.handlers[vnode.Elm] = bound
}

func (r *EventRegistry) unbind(vnode *vdom.VNode) {
	delete(r.handlers, vnode.Elm)
}
