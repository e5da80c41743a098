// Package modules provides the standard reconciliation modules:
// attributes, classes, properties, styles, dataset, and event
// listeners.
//
// Each constructor takes the host backend the engine was built over
// and returns a vdom.Module hook bundle:
//
//	api := dom.NewHTML()
//	events := modules.NewEvents()
//	eng := vdom.New(api,
//	    modules.Attributes(api),
//	    modules.Class(api),
//	    modules.Style(api),
//	    events.Module(),
//	)
//
// Modules read their input from the corresponding VNodeData field and
// only touch host state they own.
package modules
