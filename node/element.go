package node

// Element is a named node carrying attributes and children.
type Element struct {
	name     string
	attrs    *Attributes
	children []Node
	void     bool
}

var _ Node = (*Element)(nil)

// NewElement creates a new Element. A void element never holds
// children, so children is ignored when void is true. A nil attrs
// is treated as an empty attribute set.
func NewElement(name string, attrs *Attributes, children []Node, void bool) *Element {
	if attrs == nil {
		attrs = NewAttributes()
	}
	if void {
		children = nil
	}
	return &Element{
		name:     name,
		attrs:    attrs,
		children: children,
		void:     void,
	}
}

func (Element) Type() NodeType {
	return ElementNodeType
}

func (e *Element) LocalName() string {
	return e.name
}

func (e *Element) Name() string {
	return e.name
}

func (e *Element) Children() []Node {
	return e.children
}

// IsVoid reports if the element was written as <name ... />
func (e *Element) IsVoid() bool {
	return e.void
}

func (e *Element) Attributes() *Attributes {
	return e.attrs
}

// GetAttribute returns the value of the named attribute. The second
// return value is false if the element has no such attribute.
func (e *Element) GetAttribute(name string) (string, bool) {
	return e.attrs.Get(name)
}
