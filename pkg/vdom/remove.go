package vdom

import "github.com/morph-ui/morph/pkg/dom"

// invokeDestroyHook fires destroy hooks for a discarded subtree: the
// vnode's own destroy hook, then each module destroy hook, then the
// children. Text vnodes carry no data and are skipped.
func (e *Engine) invokeDestroyHook(vnode *VNode) {
	data := vnode.Data
	if data == nil {
		return
	}
	if data.Hook != nil && data.Hook.Destroy != nil {
		data.Hook.Destroy(vnode)
	}
	for _, cb := range e.cbs.destroy {
		cb(vnode)
	}
	for _, child := range vnode.Children {
		if child == nil {
			continue
		}
		e.invokeDestroyHook(child)
	}
}

// createRmCb returns the shared completion callback for a delayed
// removal. The host node is detached on the listeners-th call, so
// every module remove hook plus the engine itself must complete before
// the node leaves the tree.
func (e *Engine) createRmCb(childElm dom.Node, listeners *int) func() {
	return func() {
		*listeners--
		if *listeners == 0 {
			parent := e.api.ParentNode(childElm)
			e.api.RemoveChild(parent, childElm)
		}
	}
}

// removeVnodes detaches vnodes[startIdx..endIdx] from parentElm,
// firing destroy hooks depth-first and honoring delayed removal via
// remove hooks. Bare text leaves are removed immediately.
func (e *Engine) removeVnodes(parentElm dom.Node, vnodes []*VNode, startIdx, endIdx int) {
	for ; startIdx <= endIdx; startIdx++ {
		ch := vnodes[startIdx]
		if ch == nil {
			continue
		}
		if ch.Sel != "" {
			e.invokeDestroyHook(ch)
			// The +1 is the engine's own completion obligation; with
			// zero module remove hooks the node is still removed
			// exactly once.
			listeners := len(e.cbs.remove) + 1
			rm := e.createRmCb(ch.Elm, &listeners)
			for _, cb := range e.cbs.remove {
				cb(ch, rm)
			}
			if ch.Data != nil && ch.Data.Hook != nil && ch.Data.Hook.Remove != nil {
				ch.Data.Hook.Remove(ch, rm)
			} else {
				rm()
			}
		} else {
			e.api.RemoveChild(parentElm, ch.Elm)
		}
	}
}
