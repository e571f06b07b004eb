// Package blocksite renders declarative page descriptions (a site
// descriptor, a theme and per-page block lists written in YAML) into static
// HTML documents.
//
// The same rendering code backs two drivers: Build writes one .html file per
// page ahead of time, and App renders pages on request over Echo.
package blocksite

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/eringen/blocksite/analytics"
)

// App is the request-served driver. Every request loads the site, theme and
// page descriptors afresh; nothing rendered is kept between requests.
type App struct {
	Config Config
	Echo   *echo.Echo
	Loader *Loader

	tracker      *analytics.Tracker
	customRoutes []func(*App)
	initialized  bool
}

// New creates an App with the given configuration.
func New(cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)

	a := &App{
		Config: cfg,
		Echo:   e,
		Loader: NewLoader(cfg, DialectServe),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Init opens the analytics store when configured and installs middleware and
// routes. Start calls it; tests may call it directly and drive a.Echo.
func (a *App) Init() error {
	if a.initialized {
		return nil
	}
	if a.Config.AnalyticsDatabasePath != "" {
		store, err := analytics.NewStore(a.Config.AnalyticsDatabasePath)
		if err != nil {
			return fmt.Errorf("blocksite: init analytics: %w", err)
		}
		a.tracker = analytics.NewTracker(store, analytics.NewLimiter(1, 30*time.Second))
	}

	a.setupMiddleware()
	a.setupRoutes()
	a.initialized = true
	return nil
}

// Start initializes the app and serves HTTP on Config.Addr until the server
// is shut down.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	a.Echo.Logger.Infof("serving %s on %s", a.Config.PagesDir, a.Config.Addr)
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/robots.txt", a.handleRobots)

	if a.tracker != nil {
		analytics.NewHandler(a.tracker).RegisterRoutes(e)
	}

	for _, fn := range a.customRoutes {
		fn(a)
	}

	e.GET("/*", a.handlePage)
}

// Close releases the analytics store, if any.
func (a *App) Close() error {
	if a.tracker != nil {
		return a.tracker.Close()
	}
	return nil
}
