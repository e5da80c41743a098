package vdom

import (
	"strings"

	"github.com/morph-ui/morph/pkg/dom"
)

// Engine applies virtual-tree updates to a host tree. Construct one
// with New, render with Patch or PatchElement.
//
// An Engine is single-threaded: one patch cycle runs to completion on
// the calling goroutine, and concurrent cycles over overlapping
// subtrees are undefined behavior.
type Engine struct {
	api dom.API
	cbs moduleHooks
}

// New constructs an engine over the given host backend with the given
// modules. A nil api defaults to the in-memory HTML backend. Module
// hooks fire in registration order.
func New(api dom.API, modules ...Module) *Engine {
	if api == nil {
		api = dom.NewHTML()
	}
	return &Engine{
		api: api,
		cbs: collectHooks(modules),
	}
}

// API returns the host backend the engine mutates.
func (e *Engine) API() dom.API {
	return e.api
}

// Patch reconciles the host tree rendered from oldVnode into the shape
// described by vnode and returns vnode with Elm populated.
//
// If the two root vnodes describe the same element they are patched in
// place. Otherwise the new subtree is materialized next to the old one
// and the old subtree is removed.
func (e *Engine) Patch(oldVnode, vnode *VNode) *VNode {
	var insertedQueue []*VNode

	for _, hook := range e.cbs.pre {
		hook()
	}

	if SameVNode(oldVnode, vnode) {
		e.patchVnode(oldVnode, vnode, &insertedQueue)
	} else {
		elm := oldVnode.Elm
		parent := e.api.ParentNode(elm)
		e.createElm(vnode, &insertedQueue)
		if parent != nil {
			e.api.InsertBefore(parent, vnode.Elm, e.api.NextSibling(elm))
			e.removeVnodes(parent, []*VNode{oldVnode}, 0, 0)
		}
	}

	// The queue was appended to in post-order during subtree creation,
	// so children fire before their parents.
	for _, inserted := range insertedQueue {
		inserted.Data.Hook.Insert(inserted)
	}

	for _, hook := range e.cbs.post {
		hook()
	}
	return vnode
}

// PatchElement mounts vnode over an existing host element, wrapping the
// element in a pseudo-vnode whose selector reproduces its tag, id, and
// classes.
func (e *Engine) PatchElement(elm dom.Node, vnode *VNode) *VNode {
	return e.Patch(e.emptyNodeAt(elm), vnode)
}

// emptyNodeAt wraps a live host element in a vnode so the regular
// patch path can take over ownership of it.
func (e *Engine) emptyNodeAt(elm dom.Node) *VNode {
	var sel strings.Builder
	sel.WriteString(strings.ToLower(e.api.TagName(elm)))
	if id, ok := e.api.Attribute(elm, "id"); ok && id != "" {
		sel.WriteByte('#')
		sel.WriteString(id)
	}
	if classes, ok := e.api.Attribute(elm, "class"); ok && classes != "" {
		sel.WriteByte('.')
		sel.WriteString(strings.Join(strings.Fields(classes), "."))
	}
	return NewVNode(sel.String(), &VNodeData{}, []*VNode{}, "", elm)
}

// patchVnode reconciles two vnodes that satisfy SameVNode. The host
// node is transplanted from old to new, never recreated.
func (e *Engine) patchVnode(oldVnode, vnode *VNode, insertedQueue *[]*VNode) {
	var hook *Hooks
	if vnode.Data != nil {
		hook = vnode.Data.Hook
	}
	if hook != nil && hook.Prepatch != nil {
		hook.Prepatch(oldVnode, vnode)
	}

	elm := oldVnode.Elm
	vnode.Elm = elm
	if oldVnode == vnode {
		return
	}

	if vnode.Data != nil {
		for _, cb := range e.cbs.update {
			cb(oldVnode, vnode)
		}
		if hook != nil && hook.Update != nil {
			hook.Update(oldVnode, vnode)
		}
	}

	oldCh := oldVnode.Children
	ch := vnode.Children
	if vnode.Text == "" {
		switch {
		case oldCh != nil && ch != nil:
			if !sameSlice(oldCh, ch) {
				e.updateChildren(elm, oldCh, ch, insertedQueue)
			}
		case ch != nil:
			if oldVnode.Text != "" {
				e.api.SetTextContent(elm, "")
			}
			e.addVnodes(elm, nil, ch, 0, len(ch)-1, insertedQueue)
		case oldCh != nil:
			e.removeVnodes(elm, oldCh, 0, len(oldCh)-1)
		case oldVnode.Text != "":
			e.api.SetTextContent(elm, "")
		}
	} else if oldVnode.Text != vnode.Text {
		if oldCh != nil {
			e.removeVnodes(elm, oldCh, 0, len(oldCh)-1)
		}
		e.api.SetTextContent(elm, vnode.Text)
	}

	if hook != nil && hook.Postpatch != nil {
		hook.Postpatch(oldVnode, vnode)
	}
}

// sameSlice reports whether two child slices share the same backing
// array and length, in which case reconciling them would be a no-op.
func sameSlice(a, b []*VNode) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
