package scaffold

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// funcs are available to every scaffold template. quote emits a
// double-quoted scalar, so names with YAML syntax in them stay plain strings.
var funcs = template.FuncMap{"quote": strconv.Quote}

// Data holds the template variables passed to every scaffold template.
type Data struct {
	SiteName string
}

// New writes a starter project into dir, which must not exist yet. Created
// files are listed on out.
func New(dir string, out io.Writer) error {
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("directory %q already exists", dir)
	}
	data := Data{SiteName: SiteName(filepath.Base(dir))}

	return fs.WalkDir(Templates, Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(Root, path)
		if err != nil {
			return err
		}
		outPath := strings.TrimSuffix(filepath.Join(dir, relPath), ".tmpl")

		if d.IsDir() {
			return os.MkdirAll(outPath, 0o755)
		}

		content, err := Templates.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		tmpl, err := template.New(filepath.Base(path)).Funcs(funcs).Parse(string(content))
		if err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer f.Close()

		if err := tmpl.Execute(f, data); err != nil {
			return fmt.Errorf("execute template %s: %w", path, err)
		}
		fmt.Fprintf(out, "  created %s\n", outPath)
		return nil
	})
}

// SiteName turns a directory name like "my-site" into "My Site".
func SiteName(dir string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(dir)
	return cases.Title(language.English).String(s)
}
