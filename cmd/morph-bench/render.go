package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/morph-ui/morph/pkg/dom"
	"github.com/morph-ui/morph/pkg/modules"
	"github.com/morph-ui/morph/pkg/vdom"
)

func renderCmd() *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Materialize a demo tree and print the resulting HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(pretty)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "print an ASCII tree instead of HTML")
	return cmd
}

func runRender(pretty bool) error {
	api := dom.NewHTML()
	eng := vdom.New(api,
		modules.Attributes(api),
		modules.Class(api),
		modules.Style(api),
		modules.Dataset(api),
	)

	doc := api.NewDocument()
	root := api.CreateElement("div")
	api.AppendChild(doc, root)

	vnode := vdom.H("div#app.demo",
		vdom.H("h1", "morph"),
		vdom.H("p.lead", &vdom.VNodeData{
			Style: map[string]string{"color": "teal"},
		}, "a virtual-DOM reconciliation engine"),
		vdom.H("ul", []*vdom.VNode{
			vdom.H("li", &vdom.VNodeData{Key: "keyed"}, "keyed children diff"),
			vdom.H("li", &vdom.VNodeData{Key: "hooks"}, "lifecycle hooks"),
			vdom.H("li", &vdom.VNodeData{Key: "modules"}, "pluggable modules"),
		}),
		vdom.Comment("rendered by morph-bench"),
	)
	vnode = eng.PatchElement(root, vnode)

	if pretty {
		fmt.Print(api.Dump(vnode.Elm))
		return nil
	}
	out, err := api.RenderString(vnode.Elm)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
