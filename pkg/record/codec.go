package record

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Codec errors.
var (
	ErrUnknownFormat  = errors.New("unknown record format")
	ErrEmptyDocument  = errors.New("empty record document")
	ErrInvalidElement = errors.New("invalid record element")
)

// Format selects a serialization of an Element tree.
type Format uint8

const (
	FormatXML Format = iota + 1
	FormatYAML
	FormatCBOR
	FormatJSON
)

// String returns the lowercase format name.
func (f Format) String() string {
	switch f {
	case FormatXML:
		return "xml"
	case FormatYAML:
		return "yaml"
	case FormatCBOR:
		return "cbor"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name ("xml", "yaml"/"yml", "cbor", "json").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "xml":
		return FormatXML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "cbor":
		return FormatCBOR, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath picks a format from the file extension, defaulting to XML.
func FormatFromPath(path string) Format {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return FormatXML
	}
	return f
}

// Marshal serializes el in the given format.
func Marshal(f Format, el *Element) ([]byte, error) {
	if err := validate(el); err != nil {
		return nil, err
	}
	switch f {
	case FormatXML:
		return marshalXML(el)
	case FormatYAML:
		return marshalYAML(el)
	case FormatCBOR:
		return marshalCBOR(el)
	case FormatJSON:
		return marshalJSON(el)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, f)
	}
}

// Unmarshal parses a document in the given format and returns its root.
func Unmarshal(f Format, data []byte) (*Element, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}

	var (
		el  *Element
		err error
	)
	switch f {
	case FormatXML:
		el, err = unmarshalXML(data)
	case FormatYAML:
		el, err = unmarshalYAML(data)
	case FormatCBOR:
		el, err = unmarshalCBOR(data)
	case FormatJSON:
		el, err = unmarshalJSON(data)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s record: %w", f, err)
	}
	if err := validate(el); err != nil {
		return nil, err
	}
	return el, nil
}

// Encode writes el to w in the given format.
func Encode(w io.Writer, f Format, el *Element) error {
	data, err := Marshal(f, el)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Decode reads a whole document from r.
func Decode(r io.Reader, f Format) (*Element, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Unmarshal(f, data)
}

func validate(el *Element) error {
	if el == nil {
		return fmt.Errorf("%w: nil element", ErrInvalidElement)
	}
	var err error
	el.Walk(func(e *Element, _ int) bool {
		if err != nil {
			return false
		}
		if e == nil || e.Name == "" {
			err = fmt.Errorf("%w: element without name", ErrInvalidElement)
			return false
		}
		seen := make(map[string]bool, len(e.Attrs))
		for _, a := range e.Attrs {
			if a.Name == "" {
				err = fmt.Errorf("%w: %s has an unnamed attribute", ErrInvalidElement, e.Name)
				return false
			}
			if seen[a.Name] {
				err = fmt.Errorf("%w: %s has duplicate attribute %q", ErrInvalidElement, e.Name, a.Name)
				return false
			}
			seen[a.Name] = true
		}
		return true
	})
	return err
}

// wireElement is the shape shared by the CBOR and JSON codecs. Attributes are
// name/value pairs so their order survives.
type wireElement struct {
	Name     string         `cbor:"1,keyasint" json:"name"`
	Attrs    [][2]string    `cbor:"2,keyasint,omitempty" json:"attrs,omitempty"`
	Children []*wireElement `cbor:"3,keyasint,omitempty" json:"children,omitempty"`
}

func toWire(el *Element) *wireElement {
	w := &wireElement{Name: el.Name}
	for _, a := range el.Attrs {
		w.Attrs = append(w.Attrs, [2]string{a.Name, a.Value})
	}
	for _, c := range el.Children {
		w.Children = append(w.Children, toWire(c))
	}
	return w
}

func fromWire(w *wireElement) *Element {
	if w == nil {
		return nil
	}
	el := &Element{Name: w.Name}
	for _, a := range w.Attrs {
		el.Attrs = append(el.Attrs, Attr{Name: a[0], Value: a[1]})
	}
	for _, c := range w.Children {
		el.Children = append(el.Children, fromWire(c))
	}
	return el
}
