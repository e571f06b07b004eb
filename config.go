package blocksite

// Config holds directory conventions and server settings. It is passed
// explicitly to every driver.
type Config struct {
	SiteFile  string `mapstructure:"site"`   // site descriptor (default "site.yml")
	PagesDir  string `mapstructure:"pages"`  // one descriptor per page (default "pages")
	ThemesDir string `mapstructure:"themes"` // one subdirectory per theme (default "themes")
	OutputDir string `mapstructure:"out"`    // batch output (default "dist")

	URL  string `mapstructure:"url"`  // canonical URL for sitemap.xml; empty disables it in builds
	Addr string `mapstructure:"addr"` // listen address (default ":3000")

	AnalyticsDatabasePath string `mapstructure:"analytics-db"` // SQLite path; empty disables analytics
}

func (c *Config) setDefaults() {
	if c.SiteFile == "" {
		c.SiteFile = "site.yml"
	}
	if c.PagesDir == "" {
		c.PagesDir = "pages"
	}
	if c.ThemesDir == "" {
		c.ThemesDir = "themes"
	}
	if c.OutputDir == "" {
		c.OutputDir = "dist"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the catch-all page route is added.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}
