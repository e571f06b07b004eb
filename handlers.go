package blocksite

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// NotFoundBody is the plain-text body of 404 responses.
const NotFoundBody = "404 – Page not found"

func (a *App) handlePage(c echo.Context) error {
	file, err := a.Loader.PageFileForPath(c.Request().URL.Path)
	if err != nil {
		if errors.Is(err, ErrPageNotFound) {
			return c.String(http.StatusNotFound, NotFoundBody)
		}
		return err
	}
	site, theme, err := a.Loader.SiteAndTheme()
	if err != nil {
		return err
	}
	page, err := a.Loader.Page(file)
	if err != nil {
		return err
	}
	if err := Render(c, PageComponent(site, page, theme)); err != nil {
		return err
	}
	a.track(c)
	return nil
}

func (a *App) track(c echo.Context) {
	if a.tracker == nil {
		return
	}
	if _, err := a.tracker.Track(c.Request().Context(), c.RealIP(), c.Request().URL.Path); err != nil {
		c.Logger().Warnf("analytics: %v", err)
	}
}

func (a *App) handleSitemap(c echo.Context) error {
	names, err := a.Loader.PageNames()
	if err != nil {
		return err
	}
	return a.renderSitemap(c, names)
}

func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", strings.TrimRight(a.siteURL(c), "/"))
	return c.String(http.StatusOK, body)
}

// siteURL returns the configured canonical URL, or one derived from the
// request when none is configured.
func (a *App) siteURL(c echo.Context) string {
	if a.Config.URL != "" {
		return a.Config.URL
	}
	return c.Scheme() + "://" + c.Request().Host
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = c.String(http.StatusNotFound, NotFoundBody)
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = c.String(code, http.StatusText(code))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
