package node

import (
	"errors"

	"github.com/lestrrat-go/minihtml/internal/stack"
)

var ErrNilNode = errors.New("nil node")

type WalkFunc func(Node) error

// Walk visits n and then its descendants in document order. Walking
// stops at the first error returned by f.
func Walk(n Node, f WalkFunc) error {
	if n == nil {
		return ErrNilNode
	}

	var s stack.Stack[Node]
	s.Push(n)
	for s.Len() > 0 {
		cur, _ := s.Pop()
		if err := f(cur); err != nil {
			return err
		}
		children := cur.Children()
		for i := len(children) - 1; i >= 0; i-- {
			s.Push(children[i])
		}
	}
	return nil
}

// Equal reports whether a and b have the same shape: node kinds,
// element names, void flags, attribute sets, text payloads and
// child sequences. Attribute order is not compared.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}

	switch a := a.(type) {
	case *Text:
		return a.data == b.(*Text).data
	case *Comment:
		return true
	case *Element:
		e := b.(*Element)
		if a.name != e.name || a.void != e.void {
			return false
		}
		if !equalAttributes(a.attrs, e.attrs) {
			return false
		}
		if len(a.children) != len(e.children) {
			return false
		}
		for i := range a.children {
			if !Equal(a.children[i], e.children[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func equalAttributes(a, b *Attributes) bool {
	if a.Len() != b.Len() {
		return false
	}
	for k, v := range a.All() {
		if bv, ok := b.Get(k); !ok || bv != v {
			return false
		}
	}
	return true
}
