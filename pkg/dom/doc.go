// Package dom abstracts the host document tree that the reconciliation
// engine mutates.
//
// The engine talks to the host exclusively through the API interface:
// node creation, insertion, removal, text content, attributes, and
// properties. The default backend (HTMLAPI) maintains an in-memory
// HTML tree built on golang.org/x/net/html nodes, which makes rendered
// output serializable with the standard HTML serializer and queryable
// with CSS selectors.
//
// Recorder wraps any backend and records every mutating call, which is
// how tests and the morph-bench tool count the host operations a patch
// cycle performs.
package dom
