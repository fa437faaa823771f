package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAttrKeepsOrderAndReplaces(t *testing.T) {
	el := NewElement("v")
	el.SetAttr("x", "1")
	el.SetAttr("y", "2")
	el.SetAttr("z", "3")
	el.SetAttr("y", "20")

	assert.Equal(t, []string{"x", "y", "z"}, el.AttrNames())
	v, ok := el.Attr("y")
	require.True(t, ok)
	assert.Equal(t, "20", v)
}

func TestAttrMissingAndNil(t *testing.T) {
	el := NewElement("v")
	_, ok := el.Attr("x")
	assert.False(t, ok)
	assert.False(t, el.HasAttr("x"))

	var nilEl *Element
	_, ok = nilEl.Attr("x")
	assert.False(t, ok)
	assert.Nil(t, nilEl.Child("x"))
}

func TestRemoveAttr(t *testing.T) {
	el := NewElement("v")
	el.SetAttr("a", "1")
	el.SetAttr("b", "2")
	el.RemoveAttr("a")
	el.RemoveAttr("missing")

	assert.Equal(t, []string{"b"}, el.AttrNames())
}

func TestChildren(t *testing.T) {
	root := NewElement("camera")
	pos := root.AddChild(NewElement("position"))
	root.AddChild(NewElement("keyFrame"))
	root.AddChild(NewElement("keyFrame"))

	assert.Same(t, pos, root.Child("position"))
	assert.Nil(t, root.Child("orientation"))
	assert.Len(t, root.ChildrenNamed("keyFrame"), 2)
}

func TestWalkDepthAndSkip(t *testing.T) {
	root := NewElement("a")
	b := root.AddChild(NewElement("b"))
	b.AddChild(NewElement("c"))
	root.AddChild(NewElement("d"))

	var visited []string
	var depths []int
	root.Walk(func(el *Element, depth int) bool {
		visited = append(visited, el.Name)
		depths = append(depths, depth)
		return true
	})
	assert.Equal(t, []string{"a", "b", "c", "d"}, visited)
	assert.Equal(t, []int{0, 1, 2, 1}, depths)

	visited = nil
	root.Walk(func(el *Element, _ int) bool {
		visited = append(visited, el.Name)
		return el.Name != "b"
	})
	assert.Equal(t, []string{"a", "b", "d"}, visited)
}

func TestCloneIsDeep(t *testing.T) {
	root := NewElement("a")
	root.SetAttr("k", "v")
	root.AddChild(NewElement("b")).SetAttr("x", "1")

	c := root.Clone()
	require.Equal(t, root, c)

	c.SetAttr("k", "changed")
	c.Children[0].SetAttr("x", "2")

	v, _ := root.Attr("k")
	assert.Equal(t, "v", v)
	x, _ := root.Children[0].Attr("x")
	assert.Equal(t, "1", x)

	var nilEl *Element
	assert.Nil(t, nilEl.Clone())
}
