package blocksite

import "strings"

const defaultTag = "div"

// StyleAttr serializes style into an inline style attribute with a leading
// space, or returns "" when style is empty.
func StyleAttr(style Props) string {
	if len(style) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(` style="`)
	for _, p := range style {
		b.WriteString(EscapeString(p.Name))
		b.WriteByte(':')
		b.WriteString(EscapeString(p.Value))
		b.WriteByte(';')
	}
	b.WriteByte('"')
	return b.String()
}

// RenderNode renders a text leaf or an element tree.
func RenderNode(n Node) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

// RenderElement renders e and its children. A nil element renders as an
// empty div.
func RenderElement(e *Element) string {
	var b strings.Builder
	writeElement(&b, e)
	return b.String()
}

func writeNode(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case Text:
		b.WriteString(EscapeString(string(n)))
	case *Element:
		writeElement(b, n)
	}
}

func writeElement(b *strings.Builder, e *Element) {
	if e == nil {
		e = &Element{}
	}
	tag := e.Tag
	if tag == "" {
		tag = defaultTag
	}
	tag = EscapeString(tag)

	b.WriteByte('<')
	b.WriteString(tag)
	for _, a := range e.Attrs {
		b.WriteByte(' ')
		b.WriteString(EscapeString(a.Name))
		b.WriteString(`="`)
		b.WriteString(EscapeString(a.Value))
		b.WriteByte('"')
	}
	b.WriteString(StyleAttr(e.Style))
	b.WriteByte('>')
	for _, c := range e.Children {
		writeNode(b, c)
	}
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}
