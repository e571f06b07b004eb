package blocksite

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoaderSiteAndTheme(t *testing.T) {
	cfg := writeProject(t, acmeProject())
	site, theme, err := NewLoader(cfg, DialectBuild).SiteAndTheme()
	if err != nil {
		t.Fatalf("SiteAndTheme failed: %v", err)
	}
	if site.Name != "Acme" || site.Footer != "© Acme" || site.Theme != "plain" {
		t.Errorf("site = %+v", site)
	}
	if theme.Style != "/plain.css" {
		t.Errorf("theme = %+v", theme)
	}
}

func TestLoaderMissingTheme(t *testing.T) {
	files := acmeProject()
	files["site.yml"] = "name: Acme\ntheme: gone\n"
	cfg := writeProject(t, files)
	if _, _, err := NewLoader(cfg, DialectBuild).SiteAndTheme(); err == nil {
		t.Error("expected an error for a missing theme")
	}
}

func TestLoaderPageFilesSorted(t *testing.T) {
	cfg := writeProject(t, acmeProject())
	names, err := NewLoader(cfg, DialectBuild).PageNames()
	if err != nil {
		t.Fatalf("PageNames failed: %v", err)
	}
	want := []string{"about", "index", "notes"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("PageNames = %v, want %v", names, want)
	}
}

func TestPageFileForPath(t *testing.T) {
	cfg := writeProject(t, acmeProject())
	l := NewLoader(cfg, DialectServe)

	tests := []struct {
		path string
		file string
	}{
		{"/", "index.yml"},
		{"", "index.yml"},
		{"/about", "about.yml"},
		{"/about/", "about.yml"},
		{"/docs/intro", filepath.Join("docs", "intro.yml")},
	}
	for _, tt := range tests {
		got, err := l.PageFileForPath(tt.path)
		if err != nil {
			t.Errorf("PageFileForPath(%q) error: %v", tt.path, err)
			continue
		}
		if want := filepath.Join(cfg.PagesDir, tt.file); got != want {
			t.Errorf("PageFileForPath(%q) = %q, want %q", tt.path, got, want)
		}
	}
}

func TestPageFileForPathNotFound(t *testing.T) {
	cfg := writeProject(t, acmeProject())
	l := NewLoader(cfg, DialectServe)

	for _, p := range []string{"/missing", "/../site", "/docs", "/docs/../about", "/readme.txt", "//about", `/a\b`, "/index.yml/x"} {
		if _, err := l.PageFileForPath(p); !errors.Is(err, ErrPageNotFound) {
			t.Errorf("PageFileForPath(%q) err = %v, want ErrPageNotFound", p, err)
		}
	}
}
