package vdom

// Module is a partial bundle of global hooks contributed by a
// collaborator (attributes, classes, event listeners, metrics, ...).
// Any field may be nil. For a given hook, modules fire in registration
// order.
type Module struct {
	// Pre runs at the start of every patch cycle.
	Pre func()
	// Create runs for every materialized element, with the shared
	// empty sentinel as the old vnode.
	Create func(emptyVnode, vnode *VNode)
	// Update runs for every reconciled element that carries data.
	Update func(oldVnode, vnode *VNode)
	// Remove runs when an element is detached. The element stays in
	// the host tree until every remove hook has called rm.
	Remove func(vnode *VNode, rm func())
	// Destroy runs for every element in a discarded subtree.
	Destroy func(vnode *VNode)
	// Post runs at the end of every patch cycle.
	Post func()
}

// moduleHooks groups registered module hooks into parallel ordered
// lists, one per hook name. Built once at engine construction and
// read-only afterwards.
type moduleHooks struct {
	pre     []func()
	create  []func(emptyVnode, vnode *VNode)
	update  []func(oldVnode, vnode *VNode)
	remove  []func(vnode *VNode, rm func())
	destroy []func(vnode *VNode)
	post    []func()
}

func collectHooks(modules []Module) moduleHooks {
	var cbs moduleHooks
	for _, m := range modules {
		if m.Pre != nil {
			cbs.pre = append(cbs.pre, m.Pre)
		}
		if m.Create != nil {
			cbs.create = append(cbs.create, m.Create)
		}
		if m.Update != nil {
			cbs.update = append(cbs.update, m.Update)
		}
		if m.Remove != nil {
			cbs.remove = append(cbs.remove, m.Remove)
		}
		if m.Destroy != nil {
			cbs.destroy = append(cbs.destroy, m.Destroy)
		}
		if m.Post != nil {
			cbs.post = append(cbs.post, m.Post)
		}
	}
	return cbs
}
