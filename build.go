package blocksite

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// BuildReport summarizes a finished batch build.
type BuildReport struct {
	Pages   []string // output file names in build order
	Sitemap bool
	Elapsed time.Duration
}

// Build renders every page descriptor in cfg.PagesDir to a same-named .html
// file in cfg.OutputDir, creating the directory if needed. Pages are built
// one after another in name order; the first failure stops the build.
// Progress lines are written to out.
func Build(cfg Config, out io.Writer) (BuildReport, error) {
	cfg.setDefaults()
	loader := NewLoader(cfg, DialectBuild)

	site, theme, err := loader.SiteAndTheme()
	if err != nil {
		return BuildReport{}, fmt.Errorf("blocksite: %w", err)
	}
	files, err := loader.PageFiles()
	if err != nil {
		return BuildReport{}, fmt.Errorf("blocksite: %w", err)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return BuildReport{}, fmt.Errorf("blocksite: create output dir: %w", err)
	}

	var report BuildReport
	start := time.Now()
	for _, file := range files {
		page, err := loader.Page(file)
		if err != nil {
			return report, fmt.Errorf("blocksite: %w", err)
		}
		name := PageName(file) + ".html"
		dst := filepath.Join(cfg.OutputDir, name)
		if err := os.WriteFile(dst, []byte(RenderPage(site, page, theme)), 0o644); err != nil {
			return report, fmt.Errorf("blocksite: write %s: %w", dst, err)
		}
		report.Pages = append(report.Pages, name)
		fmt.Fprintf(out, "Built: %s\n", name)
	}

	if cfg.URL != "" {
		names := make([]string, 0, len(files))
		for _, f := range files {
			names = append(names, PageName(f))
		}
		data, err := Sitemap(cfg.URL, names)
		if err != nil {
			return report, fmt.Errorf("blocksite: sitemap: %w", err)
		}
		if err := os.WriteFile(filepath.Join(cfg.OutputDir, "sitemap.xml"), data, 0o644); err != nil {
			return report, fmt.Errorf("blocksite: write sitemap: %w", err)
		}
		report.Sitemap = true
		fmt.Fprintln(out, "Built: sitemap.xml")
	}

	report.Elapsed = time.Since(start)
	fmt.Fprintf(out, "Build complete in %.3f seconds.\n", report.Elapsed.Seconds())
	return report, nil
}
