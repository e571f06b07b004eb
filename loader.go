package blocksite

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

const (
	pageExt   = ".yml"
	themeFile = "theme.yml"
	indexPage = "index"
)

// ErrPageNotFound is returned when no page descriptor matches a request path.
var ErrPageNotFound = errors.New("page not found")

// Loader reads site, theme and page descriptors using the directory
// conventions in Config. It keeps no state between calls.
type Loader struct {
	cfg     Config
	dialect Dialect
}

// NewLoader returns a Loader for cfg.
func NewLoader(cfg Config, dialect Dialect) *Loader {
	cfg.setDefaults()
	return &Loader{cfg: cfg, dialect: dialect}
}

// Site loads the site descriptor.
func (l *Loader) Site() (Site, error) {
	data, err := os.ReadFile(l.cfg.SiteFile)
	if err != nil {
		return Site{}, fmt.Errorf("load site: %w", err)
	}
	s, err := DecodeSite(data)
	if err != nil {
		return Site{}, fmt.Errorf("decode site %s: %w", l.cfg.SiteFile, err)
	}
	return s, nil
}

// Theme loads the descriptor of the named theme.
func (l *Loader) Theme(name string) (Theme, error) {
	p := filepath.Join(l.cfg.ThemesDir, name, themeFile)
	data, err := os.ReadFile(p)
	if err != nil {
		return Theme{}, fmt.Errorf("load theme %q: %w", name, err)
	}
	t, err := DecodeTheme(data)
	if err != nil {
		return Theme{}, fmt.Errorf("decode theme %s: %w", p, err)
	}
	return t, nil
}

// SiteAndTheme loads the site descriptor and the theme it selects.
func (l *Loader) SiteAndTheme() (Site, Theme, error) {
	site, err := l.Site()
	if err != nil {
		return Site{}, Theme{}, err
	}
	theme, err := l.Theme(site.Theme)
	if err != nil {
		return Site{}, Theme{}, err
	}
	return site, theme, nil
}

// Page loads and decodes the page descriptor at file.
func (l *Loader) Page(file string) (Page, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return Page{}, fmt.Errorf("load page: %w", err)
	}
	p, err := DecodePage(data, l.dialect)
	if err != nil {
		return Page{}, fmt.Errorf("decode page %s: %w", file, err)
	}
	return p, nil
}

// PageFiles returns the page descriptors in PagesDir sorted by name.
func (l *Loader) PageFiles() ([]string, error) {
	entries, err := os.ReadDir(l.cfg.PagesDir)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != pageExt {
			continue
		}
		files = append(files, filepath.Join(l.cfg.PagesDir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// PageNames returns the base names (without extension) of all pages.
func (l *Loader) PageNames() ([]string, error) {
	files, err := l.PageFiles()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, PageName(f))
	}
	return names, nil
}

// PageFileForPath maps a request path to a page descriptor. The root path
// maps to the index page; any other path maps to a file named after its
// segments. It returns ErrPageNotFound when the path escapes PagesDir or
// cannot be stat'ed as a regular file.
func (l *Loader) PageFileForPath(urlPath string) (string, error) {
	name, ok := pageNameForPath(urlPath)
	if !ok {
		return "", ErrPageNotFound
	}
	file := filepath.Join(l.cfg.PagesDir, filepath.FromSlash(name)+pageExt)
	info, err := os.Stat(file)
	if err != nil || info.IsDir() {
		return "", ErrPageNotFound
	}
	return file, nil
}

func pageNameForPath(urlPath string) (string, bool) {
	p := strings.TrimRight(urlPath, "/")
	if p == "" {
		return indexPage, true
	}
	for _, seg := range strings.Split(strings.TrimPrefix(p, "/"), "/") {
		if seg == "" || seg == "." || seg == ".." || strings.ContainsRune(seg, '\\') {
			return "", false
		}
	}
	return path.Clean(strings.TrimPrefix(p, "/")), true
}

// PageName returns the base name of a page descriptor without its extension.
func PageName(file string) string {
	return strings.TrimSuffix(filepath.Base(file), pageExt)
}
