package dom

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// HTMLAPI is the default backend: an in-memory HTML document built on
// golang.org/x/net/html nodes.
//
// Element properties (as opposed to attributes) have no home on
// html.Node, so they live in a side table keyed by node. The engine's
// concurrency contract is single-threaded, so the table is unguarded.
type HTMLAPI struct {
	props map[*html.Node]map[string]any
}

// NewHTML creates a new HTML backend.
func NewHTML() *HTMLAPI {
	return &HTMLAPI{
		props: make(map[*html.Node]map[string]any),
	}
}

// NewDocument returns a fresh document node to mount into.
func (a *HTMLAPI) NewDocument() Node {
	return &html.Node{Type: html.DocumentNode}
}

func (a *HTMLAPI) CreateElement(tag string) Node {
	return &html.Node{Type: html.ElementNode, Data: tag}
}

func (a *HTMLAPI) CreateElementNS(ns, tag string) Node {
	return &html.Node{Type: html.ElementNode, Data: tag, Namespace: ns}
}

func (a *HTMLAPI) CreateTextNode(text string) Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

func (a *HTMLAPI) CreateComment(text string) Node {
	return &html.Node{Type: html.CommentNode, Data: text}
}

// detach unlinks a node from its current parent. DOM insertion moves
// attached nodes implicitly; html.Node requires the detach to be
// explicit.
func detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

func (a *HTMLAPI) InsertBefore(parent, node, ref Node) {
	p := parent.(*html.Node)
	n := node.(*html.Node)
	detach(n)
	if ref == nil {
		p.AppendChild(n)
		return
	}
	p.InsertBefore(n, ref.(*html.Node))
}

func (a *HTMLAPI) RemoveChild(parent, child Node) {
	parent.(*html.Node).RemoveChild(child.(*html.Node))
}

func (a *HTMLAPI) AppendChild(parent, child Node) {
	c := child.(*html.Node)
	detach(c)
	parent.(*html.Node).AppendChild(c)
}

func (a *HTMLAPI) ParentNode(n Node) Node {
	p := n.(*html.Node).Parent
	if p == nil {
		return nil
	}
	return p
}

func (a *HTMLAPI) NextSibling(n Node) Node {
	s := n.(*html.Node).NextSibling
	if s == nil {
		return nil
	}
	return s
}

func (a *HTMLAPI) TagName(elm Node) string {
	return elm.(*html.Node).Data
}

// SetTextContent mirrors the DOM textContent setter: on a text or
// comment node it replaces the data, on an element it drops all
// children and appends a single text node unless text is empty.
func (a *HTMLAPI) SetTextContent(n Node, text string) {
	node := n.(*html.Node)
	if node.Type == html.TextNode || node.Type == html.CommentNode {
		node.Data = text
		return
	}
	for node.FirstChild != nil {
		node.RemoveChild(node.FirstChild)
	}
	if text != "" {
		node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

func (a *HTMLAPI) SetElementText(elm Node, text string) {
	a.SetTextContent(elm, text)
}

func (a *HTMLAPI) SetAttribute(elm Node, name, value string) {
	node := elm.(*html.Node)
	for i := range node.Attr {
		if node.Attr[i].Key == name {
			node.Attr[i].Val = value
			return
		}
	}
	node.Attr = append(node.Attr, html.Attribute{Key: name, Val: value})
}

func (a *HTMLAPI) RemoveAttribute(elm Node, name string) {
	node := elm.(*html.Node)
	for i := range node.Attr {
		if node.Attr[i].Key == name {
			node.Attr = append(node.Attr[:i], node.Attr[i+1:]...)
			return
		}
	}
}

func (a *HTMLAPI) Attribute(elm Node, name string) (string, bool) {
	node := elm.(*html.Node)
	for i := range node.Attr {
		if node.Attr[i].Key == name {
			return node.Attr[i].Val, true
		}
	}
	return "", false
}

func (a *HTMLAPI) SetProperty(elm Node, name string, value any) {
	node := elm.(*html.Node)
	m := a.props[node]
	if m == nil {
		m = make(map[string]any)
		a.props[node] = m
	}
	m[name] = value
}

func (a *HTMLAPI) Property(elm Node, name string) (any, bool) {
	node := elm.(*html.Node)
	if m := a.props[node]; m != nil {
		v, ok := m[name]
		return v, ok
	}
	return nil, false
}

func (a *HTMLAPI) IsElement(n Node) bool {
	return n.(*html.Node).Type == html.ElementNode
}

func (a *HTMLAPI) IsText(n Node) bool {
	return n.(*html.Node).Type == html.TextNode
}

// RenderString serializes a node and its subtree to HTML.
func (a *HTMLAPI) RenderString(n Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n.(*html.Node)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderChildren serializes only the children of a node. Useful for
// asserting on the contents of a mount point without its wrapper tag.
func (a *HTMLAPI) RenderChildren(n Node) (string, error) {
	var buf bytes.Buffer
	for c := n.(*html.Node).FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// Classes returns the class attribute of an element split into tokens.
func (a *HTMLAPI) Classes(elm Node) []string {
	val, ok := a.Attribute(elm, "class")
	if !ok || val == "" {
		return nil
	}
	return strings.Fields(val)
}

// Namespace returns the namespace an element was created in, or the
// empty string for the default namespace.
func (a *HTMLAPI) Namespace(elm Node) string {
	return elm.(*html.Node).Namespace
}
