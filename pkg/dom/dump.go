package dom

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Dump renders a node and its subtree as an ASCII tree. Intended for
// debugging and test failure output.
func (a *HTMLAPI) Dump(root Node) string {
	tree := treeprint.New()
	tree.SetValue(a.nodeLabel(root.(*html.Node)))
	a.dumpChildren(root.(*html.Node), tree)
	return tree.String()
}

func (a *HTMLAPI) dumpChildren(n *html.Node, tree treeprint.Tree) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.FirstChild == nil {
			tree.AddNode(a.nodeLabel(c))
			continue
		}
		a.dumpChildren(c, tree.AddBranch(a.nodeLabel(c)))
	}
}

func (a *HTMLAPI) nodeLabel(n *html.Node) string {
	switch n.Type {
	case html.TextNode:
		return fmt.Sprintf("%q", n.Data)
	case html.CommentNode:
		return fmt.Sprintf("<!--%s-->", n.Data)
	case html.DocumentNode:
		return "#document"
	case html.ElementNode:
		var b strings.Builder
		b.WriteString(n.Data)
		if id, ok := a.Attribute(n, "id"); ok {
			b.WriteByte('#')
			b.WriteString(id)
		}
		for _, cls := range a.Classes(n) {
			b.WriteByte('.')
			b.WriteString(cls)
		}
		return b.String()
	default:
		return n.Data
	}
}
