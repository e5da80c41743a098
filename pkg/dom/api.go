package dom

// Node is an opaque handle to a host-tree node. Each backend defines
// its own concrete node type; callers never inspect a Node beyond
// passing it back to the API that produced it.
type Node = any

// API is the capability set the engine requires from a host tree.
//
// A nil ref in InsertBefore means "append at the end". Mutating calls
// do not return errors: backends are trusted to accept the engine's
// call sequence, and a backend that cannot is expected to panic.
type API interface {
	CreateElement(tag string) Node
	CreateElementNS(ns, tag string) Node
	CreateTextNode(text string) Node
	CreateComment(text string) Node

	InsertBefore(parent, node, ref Node)
	RemoveChild(parent, child Node)
	AppendChild(parent, child Node)

	ParentNode(n Node) Node
	NextSibling(n Node) Node
	TagName(elm Node) string

	SetTextContent(n Node, text string)
	SetElementText(elm Node, text string)

	SetAttribute(elm Node, name, value string)
	RemoveAttribute(elm Node, name string)
	Attribute(elm Node, name string) (string, bool)

	SetProperty(elm Node, name string, value any)
	Property(elm Node, name string) (any, bool)

	IsElement(n Node) bool
	IsText(n Node) bool
}
