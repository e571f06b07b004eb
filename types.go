package blocksite

// Site holds the site-wide settings read from the site descriptor.
type Site struct {
	Name   string
	Footer string
	Theme  string // theme identifier (default "default")
}

// Theme is a named bundle resolved from <ThemesDir>/<Site.Theme>/theme.yml.
type Theme struct {
	Style string // stylesheet URL
}

// Page is one output document: a title and its ordered blocks. Title is nil
// when the descriptor has no title key.
type Page struct {
	Title  *string
	Blocks []Block
}

// Block is one content unit of a page. The set of implementations is closed;
// anything the decoder does not recognize becomes an UnknownBlock.
type Block interface {
	isBlock()
}

// TextBlock renders as a paragraph.
type TextBlock struct {
	Content string
}

// HeroBlock renders as a hero section with a heading and subtitle.
type HeroBlock struct {
	Title    string
	Subtitle string
}

// ButtonBlock renders as a link styled as a button.
type ButtonBlock struct {
	Href  string // default "#"
	Label string // default "Button"
}

// ElementBlock inlines an arbitrary element tree.
type ElementBlock struct {
	Element *Element
}

// MarkdownBlock carries markdown source. The content is rendered as escaped
// text, not interpreted.
type MarkdownBlock struct {
	Content string
}

// UnknownBlock is any block whose type is not recognized.
type UnknownBlock struct {
	Type string
}

func (TextBlock) isBlock()     {}
func (HeroBlock) isBlock()     {}
func (ButtonBlock) isBlock()   {}
func (ElementBlock) isBlock()  {}
func (MarkdownBlock) isBlock() {}
func (UnknownBlock) isBlock()  {}

// Block type discriminators as written in page files.
const (
	TypeText     = "text"
	TypeHero     = "hero"
	TypeButton   = "button"
	TypeElement  = "element"
	TypeMarkdown = "markdown"
)

// Prop is a single name/value pair of an attribute or style list.
type Prop struct {
	Name  string
	Value string
}

// Props is an insertion-ordered list of name/value pairs.
type Props []Prop

// Node is a child of an Element: either *Element or Text.
type Node interface {
	isNode()
}

// Text is a raw text leaf. It is escaped on output, never parsed as markup.
type Text string

// Element is a generic markup tree node.
type Element struct {
	Tag      string // default "div"
	Attrs    Props
	Style    Props
	Children []Node
}

func (*Element) isNode() {}
func (Text) isNode()     {}
