package modules

import (
	"github.com/morph-ui/morph/pkg/dom"
	"github.com/morph-ui/morph/pkg/vdom"
)

// Props returns the module that reconciles VNodeData.Props through the
// backend's property table. Properties are only ever set, never
// removed: a property that disappears from the vnode keeps its last
// value, matching host-object property semantics.
func Props(api dom.API) vdom.Module {
	update := func(oldVnode, vnode *vdom.VNode) {
		updateProps(api, oldVnode, vnode)
	}
	return vdom.Module{Create: update, Update: update}
}

func updateProps(api dom.API, oldVnode, vnode *vdom.VNode) {
	elm := vnode.Elm
	var oldProps, props map[string]any
	if oldVnode.Data != nil {
		oldProps = oldVnode.Data.Props
	}
	if vnode.Data != nil {
		props = vnode.Data.Props
	}
	if oldProps == nil && props == nil {
		return
	}
	for key, cur := range props {
		if old, ok := oldProps[key]; ok && valuesEqual(old, cur) {
			continue
		}
		api.SetProperty(elm, key, cur)
	}
}
