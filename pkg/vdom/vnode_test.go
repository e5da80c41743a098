package vdom

import "testing"

func TestSameVNode(t *testing.T) {
	tests := []struct {
		name string
		a, b *VNode
		want bool
	}{
		{"same sel no keys", H("div"), H("div"), true},
		{"different sel", H("div"), H("span"), false},
		{"same sel same key", H("li", &VNodeData{Key: "a"}), H("li", &VNodeData{Key: "a"}), true},
		{"same sel different key", H("li", &VNodeData{Key: "a"}), H("li", &VNodeData{Key: "b"}), false},
		{"keyed vs unkeyed", H("li", &VNodeData{Key: "a"}), H("li"), false},
		{"both text nodes", Text("a"), Text("b"), true},
		{"selector with class", H("div.a"), H("div.b"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameVNode(tt.a, tt.b); got != tt.want {
				t.Errorf("SameVNode = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewVNodeKeyFromData(t *testing.T) {
	v := NewVNode("div", &VNodeData{Key: "k"}, nil, "", nil)
	if v.Key != "k" {
		t.Errorf("Key = %q, want k", v.Key)
	}

	v = NewVNode("div", nil, nil, "", nil)
	if v.Key != "" {
		t.Errorf("Key = %q, want empty for nil data", v.Key)
	}
}

func TestParseSel(t *testing.T) {
	tests := []struct {
		sel     string
		tag     string
		id      string
		classes string
	}{
		{"div", "div", "", ""},
		{"div#main", "div", "main", ""},
		{"div.card", "div", "", "card"},
		{"div#main.card.wide", "div", "main", "card wide"},
		{"span.a.b.c", "span", "", "a b c"},
	}

	for _, tt := range tests {
		t.Run(tt.sel, func(t *testing.T) {
			tag, id, classes := parseSel(tt.sel)
			if tag != tt.tag {
				t.Errorf("tag = %q, want %q", tag, tt.tag)
			}
			if id != tt.id {
				t.Errorf("id = %q, want %q", id, tt.id)
			}
			if classes != tt.classes {
				t.Errorf("classes = %q, want %q", classes, tt.classes)
			}
		})
	}
}
