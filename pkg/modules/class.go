package modules

import (
	"strings"

	"github.com/morph-ui/morph/pkg/dom"
	"github.com/morph-ui/morph/pkg/vdom"
)

// Class returns the module that reconciles VNodeData.Class against the
// class attribute's token set. Tokens set statically by the selector
// are left alone unless the map explicitly turns them off.
func Class(api dom.API) vdom.Module {
	update := func(oldVnode, vnode *vdom.VNode) {
		updateClass(api, oldVnode, vnode)
	}
	return vdom.Module{Create: update, Update: update}
}

func updateClass(api dom.API, oldVnode, vnode *vdom.VNode) {
	elm := vnode.Elm
	var oldClass, class map[string]bool
	if oldVnode.Data != nil {
		oldClass = oldVnode.Data.Class
	}
	if vnode.Data != nil {
		class = vnode.Data.Class
	}
	if oldClass == nil && class == nil {
		return
	}

	for name, on := range oldClass {
		if on && !class[name] {
			removeClassToken(api, elm, name)
		}
	}
	for name, on := range class {
		if old, ok := oldClass[name]; !ok || on != old {
			if on {
				addClassToken(api, elm, name)
			} else {
				removeClassToken(api, elm, name)
			}
		}
	}
}

func addClassToken(api dom.API, elm dom.Node, name string) {
	cur, _ := api.Attribute(elm, "class")
	for _, tok := range strings.Fields(cur) {
		if tok == name {
			return
		}
	}
	if cur == "" {
		api.SetAttribute(elm, "class", name)
		return
	}
	api.SetAttribute(elm, "class", cur+" "+name)
}

func removeClassToken(api dom.API, elm dom.Node, name string) {
	cur, ok := api.Attribute(elm, "class")
	if !ok {
		return
	}
	toks := strings.Fields(cur)
	kept := toks[:0]
	for _, tok := range toks {
		if tok != name {
			kept = append(kept, tok)
		}
	}
	if len(kept) == 0 {
		api.RemoveAttribute(elm, "class")
		return
	}
	api.SetAttribute(elm, "class", strings.Join(kept, " "))
}
