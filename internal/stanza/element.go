package stanza

import (
	"bytes"
	"encoding/xml"
)

// Attr is a single XML attribute. Order of attributes is preserved as added.
type Attr struct {
	Name  string
	Value string
}

// Element is one node of a stanza payload: a name, an optional namespace,
// attributes, character data and ordered children.
type Element struct {
	Name      string
	Namespace string
	Text      string
	Attrs     []Attr
	Children  []*Element
}

func NewElement(name string) *Element {
	return &Element{Name: name}
}

// NewElementNS builds an element that declares its own xmlns.
// Children without a namespace of their own inherit it on the wire.
func NewElementNS(name, ns string) *Element {
	return &Element{Name: name, Namespace: ns}
}

func (e *Element) SetAttr(name, value string) *Element {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

// Attr returns the value of the named attribute, or "" if unset.
func (e *Element) Attr(name string) string {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

func (e *Element) AddChild(c *Element) *Element {
	e.Children = append(e.Children, c)
	return e
}

// Child returns the first direct child with the given name, or nil.
func (e *Element) Child(name string) *Element {
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// MarshalXML implements xml.Marshaler, rendering the namespace as a plain
// xmlns attribute so the output matches the wire contract byte for byte.
func (e *Element) MarshalXML(enc *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: e.Name}}
	if e.Namespace != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "xmlns"}, Value: e.Namespace})
	}
	for _, a := range e.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if e.Text != "" {
		if err := enc.EncodeToken(xml.CharData(e.Text)); err != nil {
			return err
		}
	}
	for _, c := range e.Children {
		if err := enc.Encode(c); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

func (e *Element) render() ([]byte, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	if err := enc.Encode(e); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
