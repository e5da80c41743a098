// Package patchstream turns live reconciliation into a binary patch
// feed.
//
// Stream wraps a host backend: every mutating call the engine makes is
// applied to the wrapped backend and simultaneously encoded as a
// binary operation, with host nodes identified by stream-assigned
// numeric IDs. A thin remote applier that mirrors the ID table can
// replay the feed against its own tree.
//
// The wire format is one opcode byte followed by varint-encoded
// operands; strings are length-prefixed.
package patchstream
