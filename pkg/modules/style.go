package modules

import (
	"sort"
	"strings"

	"github.com/morph-ui/morph/pkg/dom"
	"github.com/morph-ui/morph/pkg/vdom"
)

// Style returns the module that reconciles VNodeData.Style into the
// style attribute. Declarations are emitted in sorted property order
// so output is deterministic.
func Style(api dom.API) vdom.Module {
	update := func(oldVnode, vnode *vdom.VNode) {
		updateStyle(api, oldVnode, vnode)
	}
	return vdom.Module{Create: update, Update: update}
}

func updateStyle(api dom.API, oldVnode, vnode *vdom.VNode) {
	elm := vnode.Elm
	var oldStyle, style map[string]string
	if oldVnode.Data != nil {
		oldStyle = oldVnode.Data.Style
	}
	if vnode.Data != nil {
		style = vnode.Data.Style
	}
	if oldStyle == nil && style == nil {
		return
	}
	if styleEqual(oldStyle, style) {
		return
	}
	if len(style) == 0 {
		api.RemoveAttribute(elm, "style")
		return
	}
	api.SetAttribute(elm, "style", composeStyle(style))
}

func styleEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}

func composeStyle(style map[string]string) string {
	props := make([]string, 0, len(style))
	for k := range style {
		props = append(props, k)
	}
	sort.Strings(props)
	var b strings.Builder
	for i, k := range props {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(style[k])
	}
	return b.String()
}
