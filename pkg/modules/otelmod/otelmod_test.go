package otelmod

import (
	"testing"

	"go.opentelemetry.io/otel/attribute"

	"github.com/morph-ui/morph/pkg/dom"
	"github.com/morph-ui/morph/pkg/vdom"
)

// The default tracer provider is a no-op; these tests pin down that
// the module's hook wiring survives full patch cycles.

func TestModuleRunsThroughPatchCycles(t *testing.T) {
	api := dom.NewHTML()
	eng := vdom.New(api, New(
		WithTracerName("morph-test"),
		WithAttributes(attribute.String("env", "test")),
	))

	doc := api.NewDocument()
	root := api.CreateElement("div")
	api.AppendChild(doc, root)

	old := eng.PatchElement(root, vdom.H("div", vdom.H("span", "a")))
	vnode := eng.Patch(old, vdom.H("div", vdom.H("span", "b")))
	eng.Patch(vnode, vdom.H("div"))
}

func TestModuleDefaults(t *testing.T) {
	mod := New()
	if mod.Pre == nil || mod.Post == nil {
		t.Fatalf("pre/post hooks missing")
	}
	if mod.Create == nil || mod.Update == nil || mod.Destroy == nil {
		t.Fatalf("counting hooks missing")
	}
}
