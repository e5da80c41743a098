// Package vdom implements the virtual-DOM reconciliation engine.
//
// A VNode is an immutable description of one node in the desired tree;
// the engine computes and applies the minimal sequence of host-tree
// mutations needed to transform the previously-rendered tree into the
// newly-requested one.
//
// # Building trees
//
// Trees are built with the hyperscript helper H:
//
//	vnode := H("div#app.container",
//	    H("span", "hello"),
//	    H("ul", []*VNode{
//	        H("li", &VNodeData{Key: "a"}, "first"),
//	        H("li", &VNodeData{Key: "b"}, "second"),
//	    }),
//	)
//
// # Patching
//
// An Engine is constructed over a host backend with an ordered list of
// modules, then driven with Patch:
//
//	eng := New(api, modules.Attributes(api), modules.Class(api))
//	vnode = eng.PatchElement(mountPoint, render())   // first mount
//	vnode = eng.Patch(vnode, render())               // every update
//
// One patch cycle runs to completion synchronously: global pre hooks,
// then tree mutations with per-node and module hooks in tree order,
// then insert hooks in post-order of subtree creation, then global
// post hooks.
//
// # Keyed reconciliation
//
// Children that carry keys are matched by key across renders, so a
// permutation of keyed siblings moves host nodes instead of recreating
// them. Keys must be unique within a sibling list; under duplicates
// the last occurrence wins and earlier ones behave as unkeyed.
//
// The engine operates under a trusted-input contract. It does not
// validate selectors, children/text exclusivity, or key uniqueness,
// and a panicking hook or backend aborts the cycle with the host tree
// partially patched.
package vdom
