package record

// Attr is a single named attribute. Values are always text.
type Attr struct {
	Name  string
	Value string
}

// Element is a named record node with ordered attributes and children.
// Attribute names are unique within an element.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
}

// NewElement creates an empty element with the given tag name.
func NewElement(name string) *Element {
	return &Element{Name: name}
}

// SetAttr sets an attribute. An existing attribute keeps its position and
// has its value replaced; a new one is appended.
func (e *Element) SetAttr(name, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// Attr returns the value of the named attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil {
		return "", false
	}
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttr reports whether the named attribute is present.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

// RemoveAttr deletes the named attribute if present.
func (e *Element) RemoveAttr(name string) {
	for i, a := range e.Attrs {
		if a.Name == name {
			e.Attrs = append(e.Attrs[:i], e.Attrs[i+1:]...)
			return
		}
	}
}

// AttrNames returns attribute names in document order.
func (e *Element) AttrNames() []string {
	names := make([]string, len(e.Attrs))
	for i, a := range e.Attrs {
		names[i] = a.Name
	}
	return names
}

// AddChild appends child and returns it.
func (e *Element) AddChild(child *Element) *Element {
	e.Children = append(e.Children, child)
	return child
}

// Child returns the first child with the given tag name, or nil.
func (e *Element) Child(name string) *Element {
	if e == nil {
		return nil
	}
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns all children with the given tag name.
func (e *Element) ChildrenNamed(name string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Walk calls fn for e and every descendant in depth-first document order,
// passing the nesting depth (0 for e). Returning false from fn skips the
// element's children.
func (e *Element) Walk(fn func(el *Element, depth int) bool) {
	e.walk(fn, 0)
}

func (e *Element) walk(fn func(*Element, int) bool, depth int) {
	if !fn(e, depth) {
		return
	}
	for _, c := range e.Children {
		c.walk(fn, depth+1)
	}
}

// Clone returns a deep copy of e.
func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}
	out := &Element{Name: e.Name}
	if e.Attrs != nil {
		out.Attrs = make([]Attr, len(e.Attrs))
		copy(out.Attrs, e.Attrs)
	}
	for _, c := range e.Children {
		out.Children = append(out.Children, c.Clone())
	}
	return out
}
