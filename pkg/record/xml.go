package record

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// MarshalXML writes e as an XML element named after e.Name. Names are
// written verbatim, so a prefixed name such as "q:x" keeps its prefix.
func (e *Element) MarshalXML(enc *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: e.Name}}
	for _, a := range e.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, c := range e.Children {
		if err := c.MarshalXML(enc, xml.StartElement{}); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// UnmarshalXML reads an element and its descendants. Character data and
// namespace declarations are ignored; prefixes are kept as part of the name
// and not resolved to namespaces. Children are read with RawToken, so when
// start comes from xml.Decoder.Token the root name alone is namespace-resolved.
func (e *Element) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	e.Name = rawName(start.Name)
	e.Attrs = nil
	e.Children = nil
	for _, a := range start.Attr {
		if isNamespaceDecl(a.Name) {
			continue
		}
		name := rawName(a.Name)
		if e.HasAttr(name) {
			return fmt.Errorf("%w: %s has duplicate attribute %q", ErrInvalidElement, e.Name, name)
		}
		e.SetAttr(name, a.Value)
	}

	for {
		tok, err := dec.RawToken()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("unexpected end of document inside <%s>", e.Name)
			}
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child := &Element{}
			if err := child.UnmarshalXML(dec, t); err != nil {
				return err
			}
			e.Children = append(e.Children, child)
		case xml.EndElement:
			if got := rawName(t.Name); got != e.Name {
				return fmt.Errorf("element <%s> closed by </%s>", e.Name, got)
			}
			return nil
		}
	}
}

// rawName joins a prefix and a local name the way they appear in the document.
func rawName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func isNamespaceDecl(n xml.Name) bool {
	return n.Space == "xmlns" || (n.Space == "" && n.Local == "xmlns")
}

// isXMLName reports whether s can be written as an element or attribute name
// and read back unchanged: an XML Name with at most one inner colon.
func isXMLName(s string) bool {
	if s == "" || strings.Count(s, ":") > 1 || s[0] == ':' || s[len(s)-1] == ':' {
		return false
	}
	for i, r := range s {
		switch {
		case unicode.IsLetter(r) || r == '_' || r == ':':
		case i > 0 && (unicode.IsDigit(r) || r == '-' || r == '.' || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r)):
		default:
			return false
		}
	}
	return true
}

// checkXMLNames rejects trees the XML codec could not read back as written.
func checkXMLNames(el *Element) error {
	var err error
	el.Walk(func(e *Element, _ int) bool {
		if !isXMLName(e.Name) || strings.HasPrefix(e.Name, "xmlns:") {
			err = fmt.Errorf("%w: %q is not an XML element name", ErrInvalidElement, e.Name)
			return false
		}
		for _, a := range e.Attrs {
			if !isXMLName(a.Name) || a.Name == "xmlns" || strings.HasPrefix(a.Name, "xmlns:") {
				err = fmt.Errorf("%w: %s has attribute %q which is not a plain XML attribute name", ErrInvalidElement, e.Name, a.Name)
				return false
			}
		}
		return true
	})
	return err
}

func marshalXML(el *Element) ([]byte, error) {
	if err := checkXMLNames(el); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(el); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// unmarshalXML reads exactly one root element. Only the prolog, comments,
// processing instructions and whitespace may surround it.
func unmarshalXML(data []byte) (*Element, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var root *Element
	for {
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if root != nil {
				return nil, fmt.Errorf("second root element <%s> after <%s>", rawName(t.Name), root.Name)
			}
			root = &Element{}
			if err := root.UnmarshalXML(dec, t); err != nil {
				return nil, err
			}
		case xml.EndElement:
			return nil, fmt.Errorf("unexpected </%s>", rawName(t.Name))
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return nil, fmt.Errorf("text outside the root element: %q", bytes.TrimSpace(t))
			}
		}
	}
	if root == nil {
		return nil, ErrEmptyDocument
	}
	return root, nil
}
