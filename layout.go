package blocksite

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// RenderPage assembles the complete HTML document for page. The title falls
// back to the site name when the page has none; an empty title stays empty.
func RenderPage(site Site, page Page, theme Theme) string {
	title := site.Name
	if page.Title != nil {
		title = *page.Title
	}

	var b strings.Builder
	b.WriteString("<!doctype html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>" + EscapeString(title) + "</title>\n")
	b.WriteString("<link rel=\"stylesheet\" href=\"" + EscapeString(theme.Style) + "\">\n")
	b.WriteString("<style>\n")
	b.WriteString(BaseStylesheet)
	if !strings.HasSuffix(BaseStylesheet, "\n") {
		b.WriteByte('\n')
	}
	b.WriteString("</style>\n</head>\n<body>\n")
	b.WriteString("<header>\n<h2>" + EscapeString(site.Name) + "</h2>\n<hr>\n</header>\n")
	b.WriteString("<main>\n")
	b.WriteString(RenderBlocks(page.Blocks))
	b.WriteString("</main>\n")
	b.WriteString("<footer>\n<hr>\n<small>" + EscapeString(site.Footer) + "</small>\n</footer>\n")
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// PageComponent returns the document produced by RenderPage as a templ
// component.
func PageComponent(site Site, page Page, theme Theme) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, RenderPage(site, page, theme))
		return err
	})
}
