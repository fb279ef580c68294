package node

// Comment marks the position of a comment or a <! ... > declaration.
// It carries no content.
type Comment struct{}

func NewComment() *Comment {
	return &Comment{}
}

func (*Comment) Type() NodeType {
	return CommentNodeType
}

func (*Comment) LocalName() string {
	return "#comment"
}

func (*Comment) Children() []Node {
	return nil
}
