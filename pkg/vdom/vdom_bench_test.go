package vdom

import (
	"strconv"
	"testing"

	"github.com/morph-ui/morph/pkg/dom"
)

func benchRows(order []int) *VNode {
	rows := make([]*VNode, len(order))
	for i, n := range order {
		key := strconv.Itoa(n)
		rows[i] = H("li", &VNodeData{Key: key}, "row "+key)
	}
	return H("ul", rows)
}

func BenchmarkMount100(b *testing.B) {
	api := dom.NewHTML()
	eng := New(api)

	order := make([]int, 100)
	for i := range order {
		order[i] = i
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		doc := api.NewDocument()
		root := api.CreateElement("div")
		api.AppendChild(doc, root)
		eng.PatchElement(root, benchRows(order))
	}
}

func BenchmarkKeyedRotate1000(b *testing.B) {
	api := dom.NewHTML()
	eng := New(api)

	order := make([]int, 1000)
	for i := range order {
		order[i] = i
	}
	doc := api.NewDocument()
	root := api.CreateElement("div")
	api.AppendChild(doc, root)
	vnode := eng.PatchElement(root, benchRows(order))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		order = append(order[1:], order[0])
		vnode = eng.Patch(vnode, benchRows(order))
	}
}

func BenchmarkTextUpdate(b *testing.B) {
	api := dom.NewHTML()
	eng := New(api)

	doc := api.NewDocument()
	root := api.CreateElement("div")
	api.AppendChild(doc, root)
	vnode := eng.PatchElement(root, H("p", "tick 0"))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		vnode = eng.Patch(vnode, H("p", "tick "+strconv.Itoa(i)))
	}
}

func BenchmarkUnchangedTree(b *testing.B) {
	api := dom.NewHTML()
	eng := New(api)

	render := func() *VNode {
		return H("div", H("ul", benchRows([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}).Children))
	}
	doc := api.NewDocument()
	root := api.CreateElement("div")
	api.AppendChild(doc, root)
	vnode := eng.PatchElement(root, render())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		vnode = eng.Patch(vnode, render())
	}
}
