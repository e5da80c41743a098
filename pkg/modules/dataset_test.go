package modules

import (
	"testing"

	"github.com/morph-ui/morph/pkg/dom"
	"github.com/morph-ui/morph/pkg/vdom"
)

func datasetModules(api *dom.HTMLAPI) []vdom.Module {
	return []vdom.Module{Dataset(api)}
}

func TestDatasetOnCreate(t *testing.T) {
	api, eng, root := newMount(t, datasetModules)

	vnode := eng.PatchElement(root, vdom.H("div", &vdom.VNodeData{
		Dataset: map[string]string{"id": "42", "kind": "row"},
	}))

	if got := attrOf(t, api, vnode.Elm, "data-id"); got != "42" {
		t.Errorf("data-id = %q, want 42", got)
	}
	if got := attrOf(t, api, vnode.Elm, "data-kind"); got != "row" {
		t.Errorf("data-kind = %q, want row", got)
	}
}

func TestDatasetUpdateAndRemove(t *testing.T) {
	api, eng, root := newMount(t, datasetModules)

	old := eng.PatchElement(root, vdom.H("div", &vdom.VNodeData{
		Dataset: map[string]string{"id": "1", "gone": "x"},
	}))
	vnode := eng.Patch(old, vdom.H("div", &vdom.VNodeData{
		Dataset: map[string]string{"id": "2"},
	}))

	if got := attrOf(t, api, vnode.Elm, "data-id"); got != "2" {
		t.Errorf("data-id = %q, want 2", got)
	}
	if _, ok := api.Attribute(vnode.Elm, "data-gone"); ok {
		t.Errorf("data-gone still present after removal")
	}
}
