package node

import (
	"iter"

	"github.com/lestrrat-go/minihtml/internal/orderedmap"
)

// Attributes maps attribute names to values. Setting a name that
// already exists overwrites the previous value. Iteration follows the
// order in which names were first set, but callers should not depend
// on it.
type Attributes struct {
	m *orderedmap.Map[string, string]
}

func NewAttributes() *Attributes {
	return &Attributes{
		m: orderedmap.New[string, string](),
	}
}

func (a *Attributes) Set(name, value string) {
	a.m.Set(name, value)
}

func (a *Attributes) Get(name string) (string, bool) {
	if a == nil {
		return "", false
	}
	return a.m.Get(name)
}

func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return a.m.Len()
}

func (a *Attributes) All() iter.Seq2[string, string] {
	if a == nil {
		return func(func(string, string) bool) {}
	}
	return a.m.Range()
}

// Map returns a copy of the attributes as a plain map.
func (a *Attributes) Map() map[string]string {
	m := make(map[string]string, a.Len())
	for k, v := range a.All() {
		m[k] = v
	}
	return m
}
