package blocksite

import (
	"bytes"
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

// Sitemap renders a sitemaps.org document listing the named pages under base.
// The index page maps to the site root.
func Sitemap(base string, pages []string) ([]byte, error) {
	urls := make([]sitemapURL, 0, len(pages))
	for _, name := range pages {
		if name == indexPage {
			urls = append(urls, sitemapURL{Loc: BuildURL(base)})
			continue
		}
		urls = append(urls, sitemapURL{Loc: BuildURL(base, name)})
	}
	set := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := xml.NewEncoder(&buf).Encode(set); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (a *App) renderSitemap(c echo.Context, pages []string) error {
	data, err := Sitemap(a.siteURL(c), pages)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/xml; charset=utf-8", data)
}
