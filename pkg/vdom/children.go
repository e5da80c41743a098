package vdom

import "github.com/morph-ui/morph/pkg/dom"

// updateChildren reconciles two child sequences under parentElm with
// minimal host-node movement.
//
// Four cursors walk the two sequences from both ends. Matching
// endpoints are patched in place; crossed matches are patched and
// moved; everything else falls through to a lazily-built key map over
// the remaining old window. Old slots consumed by a key match are set
// to nil so later cursor steps skip them.
func (e *Engine) updateChildren(parentElm dom.Node, oldCh, newCh []*VNode, insertedQueue *[]*VNode) {
	oldStartIdx, newStartIdx := 0, 0
	oldEndIdx := len(oldCh) - 1
	newEndIdx := len(newCh) - 1
	oldStartVnode := at(oldCh, oldStartIdx)
	oldEndVnode := at(oldCh, oldEndIdx)
	newStartVnode := at(newCh, newStartIdx)
	newEndVnode := at(newCh, newEndIdx)
	var oldKeyToIdx map[string]int

	for oldStartIdx <= oldEndIdx && newStartIdx <= newEndIdx {
		switch {
		case oldStartVnode == nil:
			oldStartIdx++
			oldStartVnode = at(oldCh, oldStartIdx)
		case oldEndVnode == nil:
			oldEndIdx--
			oldEndVnode = at(oldCh, oldEndIdx)
		case newStartVnode == nil:
			newStartIdx++
			newStartVnode = at(newCh, newStartIdx)
		case newEndVnode == nil:
			newEndIdx--
			newEndVnode = at(newCh, newEndIdx)

		case SameVNode(oldStartVnode, newStartVnode):
			e.patchVnode(oldStartVnode, newStartVnode, insertedQueue)
			oldStartIdx++
			oldStartVnode = at(oldCh, oldStartIdx)
			newStartIdx++
			newStartVnode = at(newCh, newStartIdx)

		case SameVNode(oldEndVnode, newEndVnode):
			e.patchVnode(oldEndVnode, newEndVnode, insertedQueue)
			oldEndIdx--
			oldEndVnode = at(oldCh, oldEndIdx)
			newEndIdx--
			newEndVnode = at(newCh, newEndIdx)

		case SameVNode(oldStartVnode, newEndVnode):
			// Vnode moved right.
			e.patchVnode(oldStartVnode, newEndVnode, insertedQueue)
			e.api.InsertBefore(parentElm, oldStartVnode.Elm, e.api.NextSibling(oldEndVnode.Elm))
			oldStartIdx++
			oldStartVnode = at(oldCh, oldStartIdx)
			newEndIdx--
			newEndVnode = at(newCh, newEndIdx)

		case SameVNode(oldEndVnode, newStartVnode):
			// Vnode moved left.
			e.patchVnode(oldEndVnode, newStartVnode, insertedQueue)
			e.api.InsertBefore(parentElm, oldEndVnode.Elm, oldStartVnode.Elm)
			oldEndIdx--
			oldEndVnode = at(oldCh, oldEndIdx)
			newStartIdx++
			newStartVnode = at(newCh, newStartIdx)

		default:
			if oldKeyToIdx == nil {
				oldKeyToIdx = createKeyToOldIdx(oldCh, oldStartIdx, oldEndIdx)
			}
			idxInOld, found := oldKeyToIdx[newStartVnode.Key]
			if !found {
				// New element.
				e.api.InsertBefore(parentElm, e.createElm(newStartVnode, insertedQueue), oldStartVnode.Elm)
			} else {
				elmToMove := oldCh[idxInOld]
				if elmToMove.Sel != newStartVnode.Sel {
					// Same key, different element type: reuse is unsafe.
					e.api.InsertBefore(parentElm, e.createElm(newStartVnode, insertedQueue), oldStartVnode.Elm)
				} else {
					e.patchVnode(elmToMove, newStartVnode, insertedQueue)
					oldCh[idxInOld] = nil
					e.api.InsertBefore(parentElm, elmToMove.Elm, oldStartVnode.Elm)
				}
			}
			newStartIdx++
			newStartVnode = at(newCh, newStartIdx)
		}
	}

	if oldStartIdx <= oldEndIdx || newStartIdx <= newEndIdx {
		if oldStartIdx > oldEndIdx {
			// Old window exhausted: mount the remaining new vnodes
			// before the successor of the new window, or at the end
			// when there is none (or it was vacated by a key match).
			var before dom.Node
			if next := at(newCh, newEndIdx+1); next != nil {
				before = next.Elm
			}
			e.addVnodes(parentElm, before, newCh, newStartIdx, newEndIdx, insertedQueue)
		} else {
			e.removeVnodes(parentElm, oldCh, oldStartIdx, oldEndIdx)
		}
	}
}

// at returns children[i], or nil when i is out of range or the slot
// was vacated by a key match.
func at(children []*VNode, i int) *VNode {
	if i < 0 || i >= len(children) {
		return nil
	}
	return children[i]
}

// createKeyToOldIdx maps the keys of children[beginIdx..endIdx] to
// their indices. Unkeyed children are not mapped, so an unkeyed lookup
// always misses. Under duplicate keys the last occurrence wins.
func createKeyToOldIdx(children []*VNode, beginIdx, endIdx int) map[string]int {
	keyToIdx := make(map[string]int, endIdx-beginIdx+1)
	for i := beginIdx; i <= endIdx; i++ {
		if ch := children[i]; ch != nil && ch.Key != "" {
			keyToIdx[ch.Key] = i
		}
	}
	return keyToIdx
}
