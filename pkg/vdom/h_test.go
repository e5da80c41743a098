package vdom

import "testing"

func TestHTextArgument(t *testing.T) {
	v := H("p", "hello")

	if v.Sel != "p" {
		t.Errorf("Sel = %q, want p", v.Sel)
	}
	if v.Text != "hello" {
		t.Errorf("Text = %q, want hello", v.Text)
	}
	if v.Children != nil {
		t.Errorf("Children = %v, want nil", v.Children)
	}
}

func TestHNumericText(t *testing.T) {
	v := H("span", 42)
	if v.Text != "42" {
		t.Errorf("Text = %q, want 42", v.Text)
	}
	v = H("span", 1.5)
	if v.Text != "1.5" {
		t.Errorf("Text = %q, want 1.5", v.Text)
	}
}

func TestHSingleChild(t *testing.T) {
	child := H("span")
	v := H("div", child)

	if len(v.Children) != 1 {
		t.Fatalf("Expected 1 child, got %d", len(v.Children))
	}
	if v.Children[0] != child {
		t.Errorf("Children[0] is not the given child")
	}
	if v.Text != "" {
		t.Errorf("Text = %q, want empty", v.Text)
	}
}

func TestHChildrenSlice(t *testing.T) {
	v := H("ul", []*VNode{H("li"), nil, H("li")})

	if len(v.Children) != 3 {
		t.Fatalf("Expected 3 children (nil slots kept), got %d", len(v.Children))
	}
	if v.Children[1] != nil {
		t.Errorf("Children[1] = %v, want nil", v.Children[1])
	}
}

func TestHLooseChildrenPromotion(t *testing.T) {
	v := H("div", []any{"plain", H("b", "bold"), 7})

	if len(v.Children) != 3 {
		t.Fatalf("Expected 3 children, got %d", len(v.Children))
	}
	if v.Children[0].Sel != "" || v.Children[0].Text != "plain" {
		t.Errorf("Children[0] = %+v, want text vnode 'plain'", v.Children[0])
	}
	if v.Children[1].Sel != "b" {
		t.Errorf("Children[1].Sel = %q, want b", v.Children[1].Sel)
	}
	if v.Children[2].Text != "7" {
		t.Errorf("Children[2].Text = %q, want 7", v.Children[2].Text)
	}
}

func TestHDataAndChildren(t *testing.T) {
	data := &VNodeData{Key: "k", Attrs: map[string]any{"title": "x"}}
	v := H("div", data, H("span"))

	if v.Data != data {
		t.Errorf("Data was not taken from the argument")
	}
	if v.Key != "k" {
		t.Errorf("Key = %q, want k", v.Key)
	}
	if len(v.Children) != 1 {
		t.Fatalf("Expected 1 child, got %d", len(v.Children))
	}
}

func TestHChildrenWinOverText(t *testing.T) {
	v := H("div", "ignored", H("span"))

	if v.Text != "" {
		t.Errorf("Text = %q, want empty when children are present", v.Text)
	}
	if len(v.Children) != 1 {
		t.Fatalf("Expected 1 child, got %d", len(v.Children))
	}
}

func TestHSVGNamespace(t *testing.T) {
	v := H("svg", H("circle"), H("g", H("rect")))

	if v.Data.NS != SVGNamespace {
		t.Errorf("svg NS = %q, want %q", v.Data.NS, SVGNamespace)
	}
	if v.Children[0].Data.NS != SVGNamespace {
		t.Errorf("circle NS = %q, want %q", v.Children[0].Data.NS, SVGNamespace)
	}
	if v.Children[1].Children[0].Data.NS != SVGNamespace {
		t.Errorf("nested rect did not inherit the namespace")
	}
}

func TestHSVGSelectorBoundary(t *testing.T) {
	if v := H("svg#icon"); v.Data.NS != SVGNamespace {
		t.Errorf("svg#icon did not get the namespace")
	}
	if v := H("svg.big"); v.Data.NS != SVGNamespace {
		t.Errorf("svg.big did not get the namespace")
	}
	if v := H("svga"); v.Data.NS != "" {
		t.Errorf("svga NS = %q, want empty", v.Data.NS)
	}
}

func TestHForeignObjectStopsPropagation(t *testing.T) {
	v := H("svg", H("foreignObject", H("div", "html here")))

	fo := v.Children[0]
	if fo.Data.NS != SVGNamespace {
		t.Errorf("foreignObject NS = %q, want %q", fo.Data.NS, SVGNamespace)
	}
	inner := fo.Children[0]
	if inner.Data.NS != "" {
		t.Errorf("div inside foreignObject NS = %q, want empty", inner.Data.NS)
	}
}

func TestComment(t *testing.T) {
	v := Comment("note")
	if v.Sel != "!" {
		t.Errorf("Sel = %q, want !", v.Sel)
	}
	if v.Text != "note" {
		t.Errorf("Text = %q, want note", v.Text)
	}
}
