package node_test

import (
	"errors"
	"testing"

	"github.com/lestrrat-go/minihtml/node"
	"github.com/stretchr/testify/require"
)

func TestElement(t *testing.T) {
	t.Run("NewElement", func(t *testing.T) {
		attrs := node.NewAttributes()
		attrs.Set("id", "head")
		e := node.NewElement("head", attrs, nil, false)
		require.NotNil(t, e)
		require.Equal(t, node.ElementNodeType, e.Type())
		require.Equal(t, "head", e.Name())
		require.Equal(t, "head", e.LocalName())
		require.False(t, e.IsVoid())
		require.Empty(t, e.Children())
	})

	t.Run("NilAttributes", func(t *testing.T) {
		e := node.NewElement("p", nil, nil, false)
		require.NotNil(t, e.Attributes())
		require.Equal(t, 0, e.Attributes().Len())
		_, ok := e.GetAttribute("id")
		require.False(t, ok)
	})

	t.Run("Children", func(t *testing.T) {
		head := node.NewElement("head", nil, nil, false)
		body := node.NewElement("body", nil, []node.Node{node.NewText("hi")}, false)
		root := node.NewElement("html", nil, []node.Node{head, body}, false)

		children := root.Children()
		require.Len(t, children, 2)
		require.Same(t, head, children[0])
		require.Same(t, body, children[1])
		require.Len(t, body.Children(), 1)
	})

	t.Run("VoidDropsChildren", func(t *testing.T) {
		e := node.NewElement("img", nil, []node.Node{node.NewText("x")}, true)
		require.True(t, e.IsVoid())
		require.Empty(t, e.Children(), "void elements never hold children")
	})
}

func TestGetAttribute(t *testing.T) {
	attrs := node.NewAttributes()
	attrs.Set("src", "img.png")
	attrs.Set("ft-expand", "")
	e := node.NewElement("img", attrs, nil, true)

	v, ok := e.GetAttribute("src")
	require.True(t, ok)
	require.Equal(t, "img.png", v)

	v, ok = e.GetAttribute("ft-expand")
	require.True(t, ok, "empty values are still present")
	require.Equal(t, "", v)

	_, ok = e.GetAttribute("alt")
	require.False(t, ok, "missing attribute is absent")
}

func TestAttributes(t *testing.T) {
	attrs := node.NewAttributes()
	attrs.Set("x", "1")
	attrs.Set("y", "two")
	attrs.Set("x", "3")

	require.Equal(t, 2, attrs.Len())
	require.Equal(t, map[string]string{"x": "3", "y": "two"}, attrs.Map(), "last write wins")

	var nilAttrs *node.Attributes
	require.Equal(t, 0, nilAttrs.Len())
	require.Empty(t, nilAttrs.Map())
}

func TestWalk(t *testing.T) {
	root := node.NewElement("html", nil, []node.Node{
		node.NewElement("head", nil, nil, false),
		node.NewElement("body", nil, []node.Node{
			node.NewElement("img", nil, nil, true),
			node.NewText("hi"),
		}, false),
	}, false)

	var names []string
	require.NoError(t, node.Walk(root, func(n node.Node) error {
		names = append(names, n.LocalName())
		return nil
	}))
	require.Equal(t, []string{"html", "head", "body", "img", "#text"}, names, "pre-order traversal")

	stop := errors.New("stop")
	var visited int
	err := node.Walk(root, func(n node.Node) error {
		visited++
		if n.LocalName() == "head" {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	require.Equal(t, 2, visited, "walk stops at the first error")

	require.ErrorIs(t, node.Walk(nil, func(node.Node) error { return nil }), node.ErrNilNode)
}

func TestEqual(t *testing.T) {
	build := func(class string, void bool) node.Node {
		attrs := node.NewAttributes()
		attrs.Set("id", "head")
		attrs.Set("class", class)
		return node.NewElement("html", nil, []node.Node{
			node.NewElement("head", attrs, nil, false),
			node.NewElement("img", nil, nil, void),
			node.NewText("hi"),
		}, false)
	}

	require.True(t, node.Equal(build("testing", true), build("testing", true)))
	require.False(t, node.Equal(build("testing", true), build("other", true)), "attribute values differ")
	require.False(t, node.Equal(build("testing", true), build("testing", false)), "void flags differ")
	require.False(t, node.Equal(node.NewText("a"), node.NewText("b")))
	require.False(t, node.Equal(node.NewText("a"), node.NewComment()))
	require.True(t, node.Equal(node.NewComment(), node.NewComment()))
	require.True(t, node.Equal(nil, nil))
	require.False(t, node.Equal(nil, node.NewComment()))

	// attribute order is irrelevant
	a1 := node.NewAttributes()
	a1.Set("x", "1")
	a1.Set("y", "2")
	a2 := node.NewAttributes()
	a2.Set("y", "2")
	a2.Set("x", "1")
	require.True(t, node.Equal(node.NewElement("a", a1, nil, false), node.NewElement("a", a2, nil, false)))
}
