// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "encoding/xml"

// node is a generic XML element tree. The vendor schema is only partially
// consumed, so the tree is walked by tag and attribute instead of
// maintaining struct definitions for the full schema.
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []*node    `xml:",any"`
}

// attr returns the value of the named attribute, or "".
func (n *node) attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// child returns the first direct child with the given local name, or nil.
func (n *node) child(localName string) *node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.XMLName.Local == localName {
			return c
		}
	}
	return nil
}

// children returns all direct children with the given local name.
func (n *node) children(localName string) []*node {
	if n == nil {
		return nil
	}
	var out []*node
	for _, c := range n.Children {
		if c.XMLName.Local == localName {
			out = append(out, c)
		}
	}
	return out
}

// text returns the element's character data, including CDATA content.
func (n *node) text() string {
	if n == nil {
		return ""
	}
	return n.Text
}

// firstElement returns the first child element, or nil.
func (n *node) firstElement() *node {
	if n == nil || len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}
