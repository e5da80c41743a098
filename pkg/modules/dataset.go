package modules

import (
	"github.com/morph-ui/morph/pkg/dom"
	"github.com/morph-ui/morph/pkg/vdom"
)

// Dataset returns the module that reconciles VNodeData.Dataset as
// data-* attributes.
func Dataset(api dom.API) vdom.Module {
	update := func(oldVnode, vnode *vdom.VNode) {
		updateDataset(api, oldVnode, vnode)
	}
	return vdom.Module{Create: update, Update: update}
}

func updateDataset(api dom.API, oldVnode, vnode *vdom.VNode) {
	elm := vnode.Elm
	var oldDataset, dataset map[string]string
	if oldVnode.Data != nil {
		oldDataset = oldVnode.Data.Dataset
	}
	if vnode.Data != nil {
		dataset = vnode.Data.Dataset
	}
	if oldDataset == nil && dataset == nil {
		return
	}
	for key := range oldDataset {
		if _, ok := dataset[key]; !ok {
			api.RemoveAttribute(elm, "data-"+key)
		}
	}
	for key, cur := range dataset {
		if old, ok := oldDataset[key]; !ok || old != cur {
			api.SetAttribute(elm, "data-"+key, cur)
		}
	}
}
