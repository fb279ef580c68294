package node

// NodeType represents the type of a node in the tree
type NodeType int

const (
	ElementNodeType NodeType = iota + 1
	TextNodeType
	CommentNodeType
)

func (t NodeType) String() string {
	switch t {
	case ElementNodeType:
		return "Element"
	case TextNodeType:
		return "Text"
	case CommentNodeType:
		return "Comment"
	default:
		return "Unknown"
	}
}

// Node is the common interface of Element, Text and Comment.
// Nodes are immutable once constructed.
type Node interface {
	Type() NodeType

	// LocalName returns the tag name for elements, and a
	// pseudo name ("#text", "#comment") for everything else.
	LocalName() string

	// Children returns the child nodes. Only non-void elements
	// ever return a non-empty slice. The returned slice must not
	// be modified.
	Children() []Node
}
