package dom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func buildQueryTree(api *HTMLAPI) Node {
	root := api.CreateElement("div")
	api.SetAttribute(root, "id", "app")

	ul := api.CreateElement("ul")
	api.AppendChild(root, ul)
	for _, cls := range []string{"odd", "even", "odd"} {
		li := api.CreateElement("li")
		api.SetAttribute(li, "class", cls)
		api.AppendChild(li, api.CreateTextNode(cls))
		api.AppendChild(ul, li)
	}
	return root
}

func TestQueryFirstMatch(t *testing.T) {
	api := NewHTML()
	root := buildQueryTree(api)

	n, err := api.Query(root, "li.even")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if n == nil {
		t.Fatalf("Query returned nil, want a match")
	}
	if got := api.TagName(n); got != "li" {
		t.Errorf("TagName = %q, want li", got)
	}
}

func TestQueryNoMatch(t *testing.T) {
	api := NewHTML()
	root := buildQueryTree(api)

	n, err := api.Query(root, "table")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if n != nil {
		t.Errorf("Query = %v, want nil for no match", n)
	}
}

func TestQueryAll(t *testing.T) {
	api := NewHTML()
	root := buildQueryTree(api)

	nodes, err := api.QueryAll(root, "li.odd")
	if err != nil {
		t.Fatalf("QueryAll failed: %v", err)
	}
	var texts []string
	for _, n := range nodes {
		s, err := api.RenderChildren(n)
		if err != nil {
			t.Fatalf("RenderChildren failed: %v", err)
		}
		texts = append(texts, s)
	}
	want := []string{"odd", "odd"}
	if diff := cmp.Diff(want, texts); diff != "" {
		t.Errorf("QueryAll texts mismatch (-want +got):\n%s", diff)
	}
}

func TestQueryInvalidSelector(t *testing.T) {
	api := NewHTML()
	root := buildQueryTree(api)

	if _, err := api.Query(root, "li["); err == nil {
		t.Errorf("Expected error for invalid selector")
	}
}
