// Package scaffold provides embedded template files for the blocksite CLI
// project scaffolding tool.
package scaffold

import "embed"

// Templates contains all scaffold template files.
// Files use Go text/template syntax and have a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS

// Root is the directory inside Templates that mirrors a new project.
const Root = "templates"
