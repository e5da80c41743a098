package modules

import (
	"testing"

	"github.com/morph-ui/morph/pkg/dom"
	"github.com/morph-ui/morph/pkg/vdom"
)

// newMount builds an engine over a fresh HTML backend with the given
// modules and returns the mount point.
func newMount(t *testing.T, build func(api *dom.HTMLAPI) []vdom.Module) (*dom.HTMLAPI, *vdom.Engine, dom.Node) {
	t.Helper()
	api := dom.NewHTML()
	eng := vdom.New(api, build(api)...)

	doc := api.NewDocument()
	root := api.CreateElement("div")
	api.AppendChild(doc, root)
	return api, eng, root
}

func attrOf(t *testing.T, api *dom.HTMLAPI, elm dom.Node, name string) string {
	t.Helper()
	v, _ := api.Attribute(elm, name)
	return v
}
