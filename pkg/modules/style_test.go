package modules

import (
	"testing"

	"github.com/morph-ui/morph/pkg/dom"
	"github.com/morph-ui/morph/pkg/vdom"
)

func styleModules(api *dom.HTMLAPI) []vdom.Module {
	return []vdom.Module{Style(api)}
}

func TestStyleComposedSorted(t *testing.T) {
	api, eng, root := newMount(t, styleModules)

	vnode := eng.PatchElement(root, vdom.H("div", &vdom.VNodeData{
		Style: map[string]string{"margin": "0", "color": "red"},
	}))

	want := "color: red; margin: 0"
	if got := attrOf(t, api, vnode.Elm, "style"); got != want {
		t.Errorf("style = %q, want %q", got, want)
	}
}

func TestStyleUpdated(t *testing.T) {
	api, eng, root := newMount(t, styleModules)

	old := eng.PatchElement(root, vdom.H("div", &vdom.VNodeData{
		Style: map[string]string{"color": "red"},
	}))
	vnode := eng.Patch(old, vdom.H("div", &vdom.VNodeData{
		Style: map[string]string{"color": "blue"},
	}))

	if got := attrOf(t, api, vnode.Elm, "style"); got != "color: blue" {
		t.Errorf("style = %q, want color: blue", got)
	}
}

func TestStyleRemovedWhenEmpty(t *testing.T) {
	api, eng, root := newMount(t, styleModules)

	old := eng.PatchElement(root, vdom.H("div", &vdom.VNodeData{
		Style: map[string]string{"color": "red"},
	}))
	vnode := eng.Patch(old, vdom.H("div", &vdom.VNodeData{}))

	if _, ok := api.Attribute(vnode.Elm, "style"); ok {
		t.Errorf("style attribute still present after map removal")
	}
}

func TestStyleUnchangedNotRewritten(t *testing.T) {
	api := dom.NewHTML()
	rec := dom.NewRecorder(api)
	eng := vdom.New(rec, Style(rec))

	doc := api.NewDocument()
	root := api.CreateElement("div")
	api.AppendChild(doc, root)

	old := eng.PatchElement(root, vdom.H("div", &vdom.VNodeData{
		Style: map[string]string{"color": "red"},
	}))
	before := rec.Count(dom.OpSetAttribute)

	eng.Patch(old, vdom.H("div", &vdom.VNodeData{
		Style: map[string]string{"color": "red"},
	}))

	if got := rec.Count(dom.OpSetAttribute); got != before {
		t.Errorf("setAttribute calls = %d, want %d for unchanged style", got, before)
	}
}
