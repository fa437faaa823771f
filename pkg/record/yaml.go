package record

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAML layout:
//
//	name: camera
//	attrs:
//	  fieldOfView: "0.785398"
//	children:
//	  - name: position
//	    attrs: {x: "1", y: "2", z: "3"}
//
// The attrs mapping keeps document order. Attribute values are written as
// strings; on input any scalar is accepted.

func marshalYAML(el *Element) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{toYAMLNode(el)}}
	return yaml.Marshal(doc)
}

func unmarshalYAML(data []byte) (*Element, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrEmptyDocument
	}
	return fromYAMLNode(doc.Content[0])
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func toYAMLNode(el *Element) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	n.Content = append(n.Content, scalar("name"), scalar(el.Name))

	if len(el.Attrs) > 0 {
		attrs := &yaml.Node{Kind: yaml.MappingNode}
		for _, a := range el.Attrs {
			attrs.Content = append(attrs.Content, scalar(a.Name), scalar(a.Value))
		}
		n.Content = append(n.Content, scalar("attrs"), attrs)
	}

	if len(el.Children) > 0 {
		children := &yaml.Node{Kind: yaml.SequenceNode}
		for _, c := range el.Children {
			children.Content = append(children.Content, toYAMLNode(c))
		}
		n.Content = append(n.Content, scalar("children"), children)
	}
	return n
}

func fromYAMLNode(n *yaml.Node) (*Element, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: element must be a mapping", n.Line)
	}

	el := &Element{}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		switch key.Value {
		case "name":
			if val.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: name must be a scalar", val.Line)
			}
			el.Name = val.Value
		case "attrs":
			if val.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("line %d: attrs must be a mapping", val.Line)
			}
			for j := 0; j+1 < len(val.Content); j += 2 {
				k, v := val.Content[j], val.Content[j+1]
				if v.Kind != yaml.ScalarNode {
					return nil, fmt.Errorf("line %d: attribute %q must be a scalar", v.Line, k.Value)
				}
				el.SetAttr(k.Value, v.Value)
			}
		case "children":
			if val.Kind != yaml.SequenceNode {
				return nil, fmt.Errorf("line %d: children must be a sequence", val.Line)
			}
			for _, c := range val.Content {
				child, err := fromYAMLNode(c)
				if err != nil {
					return nil, err
				}
				el.Children = append(el.Children, child)
			}
		}
	}
	return el, nil
}
