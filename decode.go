package blocksite

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Dialect selects which block types a driver recognizes. The request-served
// driver understands markdown blocks; the batch builder does not.
type Dialect int

const (
	DialectBuild Dialect = iota
	DialectServe
)

func (d Dialect) knows(typ string) bool {
	switch typ {
	case TypeText, TypeHero, TypeButton, TypeElement:
		return true
	case TypeMarkdown:
		return d == DialectServe
	}
	return false
}

// ErrNotMapping is returned when a descriptor's top level is not a mapping.
var ErrNotMapping = errors.New("expected a mapping")

// DecodeSite decodes a site descriptor.
func DecodeSite(data []byte) (Site, error) {
	m, err := parseMapping(data)
	if err != nil {
		return Site{}, err
	}
	var s Site
	if s.Name, err = m.str("name", ""); err != nil {
		return Site{}, err
	}
	if s.Footer, err = m.str("footer", ""); err != nil {
		return Site{}, err
	}
	if s.Theme, err = m.str("theme", "default"); err != nil {
		return Site{}, err
	}
	return s, nil
}

// DecodeTheme decodes a theme descriptor.
func DecodeTheme(data []byte) (Theme, error) {
	m, err := parseMapping(data)
	if err != nil {
		return Theme{}, err
	}
	style, err := m.str("style", "")
	if err != nil {
		return Theme{}, err
	}
	return Theme{Style: style}, nil
}

// DecodePage decodes a page descriptor. Block defaults are applied here so
// rendering never has to.
func DecodePage(data []byte, dialect Dialect) (Page, error) {
	m, err := parseMapping(data)
	if err != nil {
		return Page{}, err
	}
	var p Page
	if m.lookup("title") != nil {
		title, err := m.str("title", "")
		if err != nil {
			return Page{}, err
		}
		p.Title = &title
	}
	seq, err := m.seq("blocks")
	if err != nil {
		return Page{}, err
	}
	for i, n := range seq {
		b, err := decodeBlock(n, dialect)
		if err != nil {
			return Page{}, fmt.Errorf("block %d: %w", i, err)
		}
		p.Blocks = append(p.Blocks, b)
	}
	return p, nil
}

func decodeBlock(n *yaml.Node, dialect Dialect) (Block, error) {
	n = resolve(n)
	if n.Kind != yaml.MappingNode {
		return UnknownBlock{}, nil
	}
	m := mapping{n}
	if t := m.lookup("type"); t != nil && t.Kind != yaml.ScalarNode {
		return UnknownBlock{}, nil
	}
	typ, err := m.str("type", TypeText)
	if err != nil {
		return nil, err
	}
	if !dialect.knows(typ) {
		return UnknownBlock{Type: typ}, nil
	}

	switch typ {
	case TypeText:
		content, err := m.str("content", "")
		return TextBlock{Content: content}, err
	case TypeMarkdown:
		content, err := m.str("content", "")
		return MarkdownBlock{Content: content}, err
	case TypeHero:
		var b HeroBlock
		if b.Title, err = m.str("title", ""); err != nil {
			return nil, err
		}
		b.Subtitle, err = m.str("subtitle", "")
		return b, err
	case TypeButton:
		var b ButtonBlock
		if b.Href, err = m.str("href", "#"); err != nil {
			return nil, err
		}
		b.Label, err = m.str("label", "Button")
		return b, err
	default:
		e, err := decodeElement(m)
		if err != nil {
			return nil, err
		}
		return ElementBlock{Element: e}, nil
	}
}

func decodeElement(m mapping) (*Element, error) {
	var (
		e   Element
		err error
	)
	if e.Tag, err = m.str("tag", defaultTag); err != nil {
		return nil, err
	}
	if e.Attrs, err = m.props("attrs"); err != nil {
		return nil, err
	}
	if e.Style, err = m.props("style"); err != nil {
		return nil, err
	}
	children, err := m.seq("children")
	if err != nil {
		return nil, err
	}
	for i, c := range children {
		c = resolve(c)
		switch c.Kind {
		case yaml.ScalarNode:
			e.Children = append(e.Children, Text(scalar(c)))
		case yaml.MappingNode:
			child, err := decodeElement(mapping{c})
			if err != nil {
				return nil, fmt.Errorf("child %d: %w", i, err)
			}
			e.Children = append(e.Children, child)
		default:
			return nil, fmt.Errorf("child %d: expected a scalar or a mapping", i)
		}
	}
	return &e, nil
}

func parseMapping(data []byte) (mapping, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return mapping{}, err
	}
	if len(doc.Content) == 0 {
		return mapping{}, nil
	}
	root := resolve(doc.Content[0])
	switch {
	case root.Kind == yaml.MappingNode:
		return mapping{root}, nil
	case isNull(root):
		return mapping{}, nil
	}
	return mapping{}, ErrNotMapping
}

// mapping is a YAML mapping node; keys keep their document order.
type mapping struct {
	node *yaml.Node
}

// lookup returns the value node for key, or nil when absent or null.
func (m mapping) lookup(key string) *yaml.Node {
	if m.node == nil {
		return nil
	}
	for i := 0; i+1 < len(m.node.Content); i += 2 {
		if m.node.Content[i].Value == key {
			v := resolve(m.node.Content[i+1])
			if isNull(v) {
				return nil
			}
			return v
		}
	}
	return nil
}

func (m mapping) str(key, def string) (string, error) {
	v := m.lookup(key)
	if v == nil {
		return def, nil
	}
	if v.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("field %q: expected a scalar", key)
	}
	return v.Value, nil
}

func (m mapping) seq(key string) ([]*yaml.Node, error) {
	v := m.lookup(key)
	if v == nil {
		return nil, nil
	}
	if v.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("field %q: expected a sequence", key)
	}
	return v.Content, nil
}

func (m mapping) props(key string) (Props, error) {
	v := m.lookup(key)
	if v == nil {
		return nil, nil
	}
	if v.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("field %q: expected a mapping", key)
	}
	var out Props
	for i := 0; i+1 < len(v.Content); i += 2 {
		val := resolve(v.Content[i+1])
		if val.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("field %q: value of %q: expected a scalar", key, v.Content[i].Value)
		}
		out = append(out, Prop{Name: v.Content[i].Value, Value: scalar(val)})
	}
	return out, nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

func scalar(n *yaml.Node) string {
	if isNull(n) {
		return ""
	}
	return n.Value
}
