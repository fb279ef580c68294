package stack_test

import (
	"testing"

	"github.com/lestrrat-go/minihtml/internal/stack"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	var s stack.Stack[string]

	_, ok := s.Pop()
	require.False(t, ok, "Pop on empty stack")

	s.Push("html", "body")
	s.Push("p")
	require.Equal(t, 3, s.Len())
	require.Equal(t, []string{"body", "p"}, s.Peek(2))
	require.Equal(t, []string{"html", "body", "p"}, s.Peek(10))

	v, ok := s.Pop()
	require.True(t, ok)
	require.Equal(t, "p", v)

	s.Discard(5)
	require.Equal(t, 0, s.Len())
}

func TestStackShrink(t *testing.T) {
	var s stack.Stack[int]
	for i := range 100 {
		s.Push(i)
	}
	s.Discard(90)
	require.Equal(t, 10, s.Len())
	require.LessOrEqual(t, s.Cap(), 20, "capacity should be released")

	v, ok := s.Pop()
	require.True(t, ok)
	require.Equal(t, 9, v)
}
