package dom

// OpKind identifies a recorded host-tree operation.
type OpKind uint8

const (
	OpCreateElement OpKind = iota + 1
	OpCreateElementNS
	OpCreateTextNode
	OpCreateComment
	OpInsertBefore
	OpRemoveChild
	OpAppendChild
	OpSetTextContent
	OpSetElementText
	OpSetAttribute
	OpRemoveAttribute
	OpSetProperty
)

// String returns the string representation of the OpKind.
func (k OpKind) String() string {
	switch k {
	case OpCreateElement:
		return "CreateElement"
	case OpCreateElementNS:
		return "CreateElementNS"
	case OpCreateTextNode:
		return "CreateTextNode"
	case OpCreateComment:
		return "CreateComment"
	case OpInsertBefore:
		return "InsertBefore"
	case OpRemoveChild:
		return "RemoveChild"
	case OpAppendChild:
		return "AppendChild"
	case OpSetTextContent:
		return "SetTextContent"
	case OpSetElementText:
		return "SetElementText"
	case OpSetAttribute:
		return "SetAttribute"
	case OpRemoveAttribute:
		return "RemoveAttribute"
	case OpSetProperty:
		return "SetProperty"
	default:
		return "Unknown"
	}
}

// Op is one recorded mutating call.
type Op struct {
	Kind   OpKind
	Parent Node
	Node   Node
	Ref    Node   // InsertBefore reference, nil for append
	Tag    string // CreateElement/CreateElementNS
	NS     string // CreateElementNS
	Name   string // attribute or property name
	Value  string // attribute value or text content
	Prop   any    // SetProperty value
}

// Recorder wraps an API and records every mutating call while
// delegating all work to the wrapped backend. Read-only calls pass
// through unrecorded.
type Recorder struct {
	inner  API
	ops    []Op
	counts map[OpKind]int
}

// NewRecorder wraps api with a Recorder.
func NewRecorder(api API) *Recorder {
	return &Recorder{
		inner:  api,
		counts: make(map[OpKind]int),
	}
}

// Ops returns the recorded operations in call order.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Count returns how many operations of the given kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	return r.counts[kind]
}

// Reset discards all recorded operations.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
	r.counts = make(map[OpKind]int)
}

func (r *Recorder) record(op Op) {
	r.ops = append(r.ops, op)
	r.counts[op.Kind]++
}

func (r *Recorder) CreateElement(tag string) Node {
	n := r.inner.CreateElement(tag)
	r.record(Op{Kind: OpCreateElement, Node: n, Tag: tag})
	return n
}

func (r *Recorder) CreateElementNS(ns, tag string) Node {
	n := r.inner.CreateElementNS(ns, tag)
	r.record(Op{Kind: OpCreateElementNS, Node: n, Tag: tag, NS: ns})
	return n
}

func (r *Recorder) CreateTextNode(text string) Node {
	n := r.inner.CreateTextNode(text)
	r.record(Op{Kind: OpCreateTextNode, Node: n, Value: text})
	return n
}

func (r *Recorder) CreateComment(text string) Node {
	n := r.inner.CreateComment(text)
	r.record(Op{Kind: OpCreateComment, Node: n, Value: text})
	return n
}

func (r *Recorder) InsertBefore(parent, node, ref Node) {
	r.inner.InsertBefore(parent, node, ref)
	r.record(Op{Kind: OpInsertBefore, Parent: parent, Node: node, Ref: ref})
}

func (r *Recorder) RemoveChild(parent, child Node) {
	r.inner.RemoveChild(parent, child)
	r.record(Op{Kind: OpRemoveChild, Parent: parent, Node: child})
}

func (r *Recorder) AppendChild(parent, child Node) {
	r.inner.AppendChild(parent, child)
	r.record(Op{Kind: OpAppendChild, Parent: parent, Node: child})
}

func (r *Recorder) ParentNode(n Node) Node  { return r.inner.ParentNode(n) }
func (r *Recorder) NextSibling(n Node) Node { return r.inner.NextSibling(n) }
func (r *Recorder) TagName(e Node) string   { return r.inner.TagName(e) }

func (r *Recorder) SetTextContent(n Node, text string) {
	r.inner.SetTextContent(n, text)
	r.record(Op{Kind: OpSetTextContent, Node: n, Value: text})
}

func (r *Recorder) SetElementText(elm Node, text string) {
	r.inner.SetElementText(elm, text)
	r.record(Op{Kind: OpSetElementText, Node: elm, Value: text})
}

func (r *Recorder) SetAttribute(elm Node, name, value string) {
	r.inner.SetAttribute(elm, name, value)
	r.record(Op{Kind: OpSetAttribute, Node: elm, Name: name, Value: value})
}

func (r *Recorder) RemoveAttribute(elm Node, name string) {
	r.inner.RemoveAttribute(elm, name)
	r.record(Op{Kind: OpRemoveAttribute, Node: elm, Name: name})
}

func (r *Recorder) Attribute(elm Node, name string) (string, bool) {
	return r.inner.Attribute(elm, name)
}

func (r *Recorder) SetProperty(elm Node, name string, value any) {
	r.inner.SetProperty(elm, name, value)
	r.record(Op{Kind: OpSetProperty, Node: elm, Name: name, Prop: value})
}

func (r *Recorder) Property(elm Node, name string) (any, bool) {
	return r.inner.Property(elm, name)
}

func (r *Recorder) IsElement(n Node) bool { return r.inner.IsElement(n) }
func (r *Recorder) IsText(n Node) bool    { return r.inner.IsText(n) }
