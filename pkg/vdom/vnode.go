package vdom

import "github.com/morph-ui/morph/pkg/dom"

// VNode describes one node in a virtual tree.
//
// Sel is the selector: a tag with optional #id and .class segments
// ("div#main.card"). The special selector "!" denotes a comment node,
// and the empty selector denotes a plain text node. Text nodes carry
// their content in Text and have nil Data and Children.
//
// Elm is the backreference to the live host node. It is populated by
// the engine during materialization and transplanted across patches;
// builders leave it nil and module code must not reassign it.
type VNode struct {
	Sel      string
	Data     *VNodeData
	Children []*VNode
	Text     string
	Elm      dom.Node
	Key      string
}

// VNodeData is the per-node metadata bucket. The engine reads only NS,
// Key, and Hook; the remaining fields belong to the standard modules,
// and Other is an extension area for custom modules.
type VNodeData struct {
	NS   string
	Key  string
	Hook *Hooks

	Attrs   map[string]any
	Class   map[string]bool
	Props   map[string]any
	Style   map[string]string
	Dataset map[string]string
	On      map[string]Handler

	Other map[string]any
}

// Handler receives a dispatched event payload. Handlers are rebound on
// every patch, so the registered handler always belongs to the latest
// rendered tree.
type Handler func(payload any)

// Hooks are the per-node lifecycle callbacks, attached under Data.Hook.
type Hooks struct {
	// Init runs before materialization; it may replace Data.
	Init func(vnode *VNode)
	// Create runs after the host node exists but before insertion.
	Create func(emptyVnode, vnode *VNode)
	// Insert runs once the node and all its ancestors are attached.
	Insert func(vnode *VNode)
	// Prepatch runs before two matching vnodes are reconciled.
	Prepatch func(oldVnode, vnode *VNode)
	// Update runs when the node is being reconciled, after module
	// update hooks.
	Update func(oldVnode, vnode *VNode)
	// Postpatch runs after the node and its children were reconciled.
	Postpatch func(oldVnode, vnode *VNode)
	// Destroy runs when the node's subtree is being discarded.
	Destroy func(vnode *VNode)
	// Remove runs when the node is detached from its parent. The node
	// stays in the host tree until rm is called.
	Remove func(vnode *VNode, rm func())
}

// NewVNode is the canonical VNode factory.
func NewVNode(sel string, data *VNodeData, children []*VNode, text string, elm dom.Node) *VNode {
	key := ""
	if data != nil {
		key = data.Key
	}
	return &VNode{
		Sel:      sel,
		Data:     data,
		Children: children,
		Text:     text,
		Elm:      elm,
		Key:      key,
	}
}

// SameVNode reports whether two vnodes describe the same element: equal
// key and equal selector. Two unkeyed vnodes with the same selector
// compare equal, so unkeyed siblings match positionally.
func SameVNode(a, b *VNode) bool {
	return a.Key == b.Key && a.Sel == b.Sel
}

// emptyNode is the sentinel passed as the first argument to create
// hooks.
var emptyNode = &VNode{Sel: "", Data: &VNodeData{}}
