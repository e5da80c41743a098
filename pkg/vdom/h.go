package vdom

import "strconv"

// SVGNamespace is the namespace applied to svg subtrees built with H.
const SVGNamespace = "http://www.w3.org/2000/svg"

// H builds a VNode from a selector and optional data and children.
// Arguments are discriminated at runtime, mirroring the call forms
// (sel), (sel, data), (sel, children...) and (sel, data, children...):
//
//   - *VNodeData → the node's data
//   - *VNode → a child
//   - []*VNode → children (nil entries are kept and skipped at patch time)
//   - []any → children; strings and numbers are promoted to text vnodes
//   - string, int, float64 → text content
//
// A selector beginning with "svg" (terminated by end of string, '.' or
// '#') propagates the SVG namespace through the subtree, stopping at
// foreignObject boundaries.
func H(sel string, args ...any) *VNode {
	data := &VNodeData{}
	var children []*VNode
	text := ""
	hasText := false

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case *VNodeData:
			if v != nil {
				data = v
			}
		case *VNode:
			children = append(children, v)
		case []*VNode:
			children = append(children, v...)
		case []any:
			for _, c := range v {
				children = append(children, toChild(c))
			}
		case string:
			text = v
			hasText = true
		case int:
			text = strconv.Itoa(v)
			hasText = true
		case float64:
			text = strconv.FormatFloat(v, 'f', -1, 64)
			hasText = true
		}
	}

	vnode := NewVNode(sel, data, nil, "", nil)
	if children != nil {
		vnode.Children = children
	} else if hasText {
		vnode.Text = text
	}

	if len(sel) >= 3 && sel[0] == 's' && sel[1] == 'v' && sel[2] == 'g' &&
		(len(sel) == 3 || sel[3] == '.' || sel[3] == '#') {
		addNS(vnode.Data, vnode.Children, vnode.Sel)
	}
	return vnode
}

// Text builds a plain text vnode.
func Text(content string) *VNode {
	return &VNode{Text: content}
}

// Comment builds a comment vnode with the given body.
func Comment(body string) *VNode {
	return &VNode{Sel: "!", Data: &VNodeData{}, Text: body}
}

// toChild promotes a loosely-typed child to a VNode. Strings and
// numbers become text vnodes; nil stays nil and is skipped by the
// engine.
func toChild(c any) *VNode {
	switch v := c.(type) {
	case nil:
		return nil
	case *VNode:
		return v
	case string:
		return Text(v)
	case int:
		return Text(strconv.Itoa(v))
	case float64:
		return Text(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		return nil
	}
}

// addNS walks the subtree assigning the SVG namespace. Children of a
// foreignObject keep the default namespace so nested HTML renders as
// HTML.
func addNS(data *VNodeData, children []*VNode, sel string) {
	data.NS = SVGNamespace
	if sel == "foreignObject" {
		return
	}
	for _, child := range children {
		if child == nil || child.Data == nil {
			continue
		}
		addNS(child.Data, child.Children, child.Sel)
	}
}
