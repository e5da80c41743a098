package patchstream

import (
	"fmt"

	"github.com/morph-ui/morph/pkg/dom"
)

// Stream is a dom.API that applies every call to a wrapped backend
// while encoding it into a binary operation buffer. IDs are assigned
// to host nodes in creation order starting at 1.
//
// Nodes that predate the stream (the mount point, server-rendered
// content) can be registered with RegisterNode so the remote applier
// can address them.
type Stream struct {
	inner dom.API
	enc   *Encoder
	ids   map[dom.Node]uint64
	next  uint64
}

// NewStream wraps a backend with patch-stream recording.
func NewStream(inner dom.API) *Stream {
	return &Stream{
		inner: inner,
		enc:   NewEncoder(),
		ids:   make(map[dom.Node]uint64),
	}
}

// RegisterNode assigns an ID to a pre-existing host node and returns
// it. Registering the same node twice returns the same ID.
func (s *Stream) RegisterNode(n dom.Node) uint64 {
	if id, ok := s.ids[n]; ok {
		return id
	}
	s.next++
	s.ids[n] = s.next
	return s.next
}

// Take returns the operations encoded since the last Take and resets
// the buffer. The returned slice is a copy and stays valid.
func (s *Stream) Take() []byte {
	out := make([]byte, s.enc.Len())
	copy(out, s.enc.Bytes())
	s.enc.Reset()
	return out
}

// Len returns the number of pending encoded bytes.
func (s *Stream) Len() int {
	return s.enc.Len()
}

func (s *Stream) assign(n dom.Node) uint64 {
	s.next++
	s.ids[n] = s.next
	return s.next
}

func (s *Stream) id(n dom.Node) uint64 {
	if n == nil {
		return 0
	}
	return s.ids[n]
}

func (s *Stream) CreateElement(tag string) dom.Node {
	n := s.inner.CreateElement(tag)
	s.enc.WriteByte(byte(OpCreateElement))
	s.enc.WriteUvarint(s.assign(n))
	s.enc.WriteString(tag)
	return n
}

func (s *Stream) CreateElementNS(ns, tag string) dom.Node {
	n := s.inner.CreateElementNS(ns, tag)
	s.enc.WriteByte(byte(OpCreateElementNS))
	s.enc.WriteUvarint(s.assign(n))
	s.enc.WriteString(ns)
	s.enc.WriteString(tag)
	return n
}

func (s *Stream) CreateTextNode(text string) dom.Node {
	n := s.inner.CreateTextNode(text)
	s.enc.WriteByte(byte(OpCreateTextNode))
	s.enc.WriteUvarint(s.assign(n))
	s.enc.WriteString(text)
	return n
}

func (s *Stream) CreateComment(text string) dom.Node {
	n := s.inner.CreateComment(text)
	s.enc.WriteByte(byte(OpCreateComment))
	s.enc.WriteUvarint(s.assign(n))
	s.enc.WriteString(text)
	return n
}

func (s *Stream) InsertBefore(parent, node, ref dom.Node) {
	s.inner.InsertBefore(parent, node, ref)
	s.enc.WriteByte(byte(OpInsertBefore))
	s.enc.WriteUvarint(s.id(parent))
	s.enc.WriteUvarint(s.id(node))
	s.enc.WriteUvarint(s.id(ref))
}

func (s *Stream) RemoveChild(parent, child dom.Node) {
	s.inner.RemoveChild(parent, child)
	s.enc.WriteByte(byte(OpRemoveChild))
	s.enc.WriteUvarint(s.id(parent))
	s.enc.WriteUvarint(s.id(child))
}

func (s *Stream) AppendChild(parent, child dom.Node) {
	s.inner.AppendChild(parent, child)
	s.enc.WriteByte(byte(OpAppendChild))
	s.enc.WriteUvarint(s.id(parent))
	s.enc.WriteUvarint(s.id(child))
}

func (s *Stream) ParentNode(n dom.Node) dom.Node  { return s.inner.ParentNode(n) }
func (s *Stream) NextSibling(n dom.Node) dom.Node { return s.inner.NextSibling(n) }
func (s *Stream) TagName(e dom.Node) string       { return s.inner.TagName(e) }

func (s *Stream) SetTextContent(n dom.Node, text string) {
	s.inner.SetTextContent(n, text)
	s.enc.WriteByte(byte(OpSetTextContent))
	s.enc.WriteUvarint(s.id(n))
	s.enc.WriteString(text)
}

func (s *Stream) SetElementText(elm dom.Node, text string) {
	s.inner.SetElementText(elm, text)
	s.enc.WriteByte(byte(OpSetElementText))
	s.enc.WriteUvarint(s.id(elm))
	s.enc.WriteString(text)
}

func (s *Stream) SetAttribute(elm dom.Node, name, value string) {
	s.inner.SetAttribute(elm, name, value)
	s.enc.WriteByte(byte(OpSetAttribute))
	s.enc.WriteUvarint(s.id(elm))
	s.enc.WriteString(name)
	s.enc.WriteString(value)
}

func (s *Stream) RemoveAttribute(elm dom.Node, name string) {
	s.inner.RemoveAttribute(elm, name)
	s.enc.WriteByte(byte(OpRemoveAttribute))
	s.enc.WriteUvarint(s.id(elm))
	s.enc.WriteString(name)
}

func (s *Stream) Attribute(elm dom.Node, name string) (string, bool) {
	return s.inner.Attribute(elm, name)
}

func (s *Stream) SetProperty(elm dom.Node, name string, value any) {
	s.inner.SetProperty(elm, name, value)
	s.enc.WriteByte(byte(OpSetProperty))
	s.enc.WriteUvarint(s.id(elm))
	s.enc.WriteString(name)
	s.enc.WriteString(fmt.Sprintf("%v", value))
}

func (s *Stream) Property(elm dom.Node, name string) (any, bool) {
	return s.inner.Property(elm, name)
}

func (s *Stream) IsElement(n dom.Node) bool { return s.inner.IsElement(n) }
func (s *Stream) IsText(n dom.Node) bool    { return s.inner.IsText(n) }

// Decode parses an encoded operation buffer back into structured ops.
func Decode(data []byte) ([]Op, error) {
	d := NewDecoder(data)
	var ops []Op
	for !d.EOF() {
		code, err := d.ReadByte()
		if err != nil {
			return nil, err
		}
		op := Op{Code: OpCode(code)}
		switch op.Code {
		case OpCreateElement:
			if op.Node, err = d.ReadUvarint(); err == nil {
				op.Tag, err = d.ReadString()
			}
		case OpCreateElementNS:
			if op.Node, err = d.ReadUvarint(); err == nil {
				if op.NS, err = d.ReadString(); err == nil {
					op.Tag, err = d.ReadString()
				}
			}
		case OpCreateTextNode, OpCreateComment, OpSetTextContent, OpSetElementText:
			if op.Node, err = d.ReadUvarint(); err == nil {
				op.Value, err = d.ReadString()
			}
		case OpInsertBefore:
			if op.Parent, err = d.ReadUvarint(); err == nil {
				if op.Node, err = d.ReadUvarint(); err == nil {
					op.Ref, err = d.ReadUvarint()
				}
			}
		case OpRemoveChild, OpAppendChild:
			if op.Parent, err = d.ReadUvarint(); err == nil {
				op.Node, err = d.ReadUvarint()
			}
		case OpSetAttribute, OpSetProperty:
			if op.Node, err = d.ReadUvarint(); err == nil {
				if op.Name, err = d.ReadString(); err == nil {
					op.Value, err = d.ReadString()
				}
			}
		case OpRemoveAttribute:
			if op.Node, err = d.ReadUvarint(); err == nil {
				op.Name, err = d.ReadString()
			}
		default:
			return nil, fmt.Errorf("%w: 0x%02x", ErrUnknownOpCode, code)
		}
		if err != nil {
			return nil, fmt.Errorf("patchstream: decoding %s: %w", op.Code, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}
