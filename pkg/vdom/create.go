package vdom

import (
	"strings"

	"github.com/morph-ui/morph/pkg/dom"
)

// createElm materializes a vnode into a live host node, recursively,
// and records it in vnode.Elm. Vnodes whose insert hook is defined are
// appended to insertedQueue for the top-level patch entry to flush.
func (e *Engine) createElm(vnode *VNode, insertedQueue *[]*VNode) dom.Node {
	data := vnode.Data
	if data != nil && data.Hook != nil && data.Hook.Init != nil {
		data.Hook.Init(vnode)
		// The init hook may have replaced the data.
		data = vnode.Data
	}

	switch sel := vnode.Sel; {
	case sel == "!":
		vnode.Elm = e.api.CreateComment(vnode.Text)

	case sel == "":
		vnode.Elm = e.api.CreateTextNode(vnode.Text)

	default:
		tag, id, classes := parseSel(sel)
		var elm dom.Node
		if data != nil && data.NS != "" {
			elm = e.api.CreateElementNS(data.NS, tag)
		} else {
			elm = e.api.CreateElement(tag)
		}
		vnode.Elm = elm
		if id != "" {
			e.api.SetAttribute(elm, "id", id)
		}
		if classes != "" {
			e.api.SetAttribute(elm, "class", classes)
		}

		for _, cb := range e.cbs.create {
			cb(emptyNode, vnode)
		}

		if vnode.Children != nil {
			for _, child := range vnode.Children {
				if child == nil {
					continue
				}
				e.api.AppendChild(elm, e.createElm(child, insertedQueue))
			}
		} else if vnode.Text != "" {
			e.api.AppendChild(elm, e.api.CreateTextNode(vnode.Text))
		}

		if data != nil && data.Hook != nil {
			if data.Hook.Create != nil {
				data.Hook.Create(emptyNode, vnode)
			}
			if data.Hook.Insert != nil {
				*insertedQueue = append(*insertedQueue, vnode)
			}
		}
	}
	return vnode.Elm
}

// addVnodes materializes vnodes[startIdx..endIdx] and inserts them
// under parentElm before the given reference node (nil appends).
func (e *Engine) addVnodes(parentElm, before dom.Node, vnodes []*VNode, startIdx, endIdx int, insertedQueue *[]*VNode) {
	for ; startIdx <= endIdx; startIdx++ {
		ch := vnodes[startIdx]
		if ch == nil {
			continue
		}
		e.api.InsertBefore(parentElm, e.createElm(ch, insertedQueue), before)
	}
}

// parseSel splits a selector of the form tag(#id)?(.class)* into its
// parts. Classes are returned space-separated, ready for the class
// attribute. The id is only recognized when '#' precedes the first '.'.
func parseSel(sel string) (tag, id, classes string) {
	hashIdx := strings.IndexByte(sel, '#')
	dotStart := hashIdx
	if dotStart < 0 {
		dotStart = 0
	}
	dotIdx := -1
	if d := strings.IndexByte(sel[dotStart:], '.'); d >= 0 {
		dotIdx = dotStart + d
	}

	hash := len(sel)
	if hashIdx > 0 {
		hash = hashIdx
	}
	dot := len(sel)
	if dotIdx > 0 {
		dot = dotIdx
	}

	if hashIdx != -1 || dotIdx != -1 {
		end := hash
		if dot < end {
			end = dot
		}
		tag = sel[:end]
	} else {
		tag = sel
	}
	if hash < dot {
		id = sel[hash+1 : dot]
	}
	if dotIdx > 0 {
		classes = strings.ReplaceAll(sel[dot+1:], ".", " ")
	}
	return tag, id, classes
}
