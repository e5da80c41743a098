package modules

import (
	"github.com/morph-ui/morph/pkg/dom"
	"github.com/morph-ui/morph/pkg/vdom"
)

// Attributes returns the module that reconciles VNodeData.Attrs
// against host-element attributes.
//
// A true value sets the attribute with an empty value (boolean
// attribute form), false removes it; everything else is converted to
// its string form. Attributes present on the old vnode but absent on
// the new one are removed.
func Attributes(api dom.API) vdom.Module {
	update := func(oldVnode, vnode *vdom.VNode) {
		updateAttrs(api, oldVnode, vnode)
	}
	return vdom.Module{Create: update, Update: update}
}

func updateAttrs(api dom.API, oldVnode, vnode *vdom.VNode) {
	elm := vnode.Elm
	var oldAttrs, attrs map[string]any
	if oldVnode.Data != nil {
		oldAttrs = oldVnode.Data.Attrs
	}
	if vnode.Data != nil {
		attrs = vnode.Data.Attrs
	}
	if oldAttrs == nil && attrs == nil {
		return
	}

	for key, cur := range attrs {
		if old, ok := oldAttrs[key]; ok && valuesEqual(old, cur) {
			continue
		}
		if b, ok := cur.(bool); ok {
			if b {
				api.SetAttribute(elm, key, "")
			} else {
				api.RemoveAttribute(elm, key)
			}
			continue
		}
		api.SetAttribute(elm, key, valueString(cur))
	}

	for key := range oldAttrs {
		if _, ok := attrs[key]; !ok {
			api.RemoveAttribute(elm, key)
		}
	}
}
