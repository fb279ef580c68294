package node

// Text represents a run of character data. The payload is kept
// verbatim: no entity decoding is performed.
type Text struct {
	data string
}

func NewText(data string) *Text {
	return &Text{
		data: data,
	}
}

func (Text) Type() NodeType {
	return TextNodeType
}

func (n *Text) LocalName() string {
	return "#text"
}

func (n *Text) Children() []Node {
	return nil
}

func (n *Text) Data() string {
	return n.data
}
