package blocksite

import (
	"os"
	"path/filepath"
	"testing"
)

// writeProject lays out files under a temporary directory and returns a
// Config pointing at it.
func writeProject(t *testing.T, files map[string]string) Config {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return Config{
		SiteFile:  filepath.Join(dir, "site.yml"),
		PagesDir:  filepath.Join(dir, "pages"),
		ThemesDir: filepath.Join(dir, "themes"),
		OutputDir: filepath.Join(dir, "dist"),
	}
}

func acmeProject() map[string]string {
	return map[string]string{
		"site.yml":               "name: Acme\nfooter: \"© Acme\"\ntheme: plain\n",
		"themes/plain/theme.yml": "style: /plain.css\n",
		"pages/index.yml":        "title: Home\nblocks:\n  - type: text\n    content: Hi <there>\n",
		"pages/about.yml":        "title: About\nblocks:\n  - type: hero\n    title: Welcome\n    subtitle: Sub\n",
		"pages/notes.yml":        "blocks:\n  - type: markdown\n    content: \"**bold**\"\n",
		"pages/docs/intro.yml":   "title: Intro\n",
		"pages/readme.txt":       "not a page",
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
