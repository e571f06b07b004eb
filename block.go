package blocksite

import "strings"

// UnknownBlockHTML is the placeholder emitted for unrecognized block types.
const UnknownBlockHTML = "<!-- unknown block -->"

// RenderBlock renders a single block as an HTML fragment. It never fails;
// unrecognized blocks degrade to UnknownBlockHTML.
func RenderBlock(b Block) string {
	switch b := b.(type) {
	case TextBlock:
		return "<p>" + EscapeString(b.Content) + "</p>"
	case HeroBlock:
		return "<section class='hero'><h1>" + EscapeString(b.Title) + "</h1><p>" + EscapeString(b.Subtitle) + "</p></section>"
	case ButtonBlock:
		return "<a class='btn' href='" + EscapeString(b.Href) + "'>" + EscapeString(b.Label) + "</a>"
	case ElementBlock:
		return RenderElement(b.Element)
	case MarkdownBlock:
		return "<div>" + EscapeString(b.Content) + "</div>"
	default:
		return UnknownBlockHTML
	}
}

// RenderBlocks concatenates the output of RenderBlock for each block in order.
func RenderBlocks(blocks []Block) string {
	var b strings.Builder
	for _, blk := range blocks {
		b.WriteString(RenderBlock(blk))
	}
	return b.String()
}
