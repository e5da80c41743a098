package dom

import (
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Query returns the first node under root matching the CSS selector,
// or nil if nothing matches.
func (a *HTMLAPI) Query(root Node, selector string) (Node, error) {
	sel, err := cascadia.Parse(selector)
	if err != nil {
		return nil, err
	}
	n := cascadia.Query(root.(*html.Node), sel)
	if n == nil {
		return nil, nil
	}
	return n, nil
}

// QueryAll returns all nodes under root matching the CSS selector.
func (a *HTMLAPI) QueryAll(root Node, selector string) ([]Node, error) {
	sel, err := cascadia.Parse(selector)
	if err != nil {
		return nil, err
	}
	matches := cascadia.QueryAll(root.(*html.Node), sel)
	nodes := make([]Node, 0, len(matches))
	for _, m := range matches {
		nodes = append(nodes, m)
	}
	return nodes, nil
}
