package blocksite

import _ "embed"

// BaseStylesheet holds the presentational rules embedded into every page's
// <style> element: hero, button, card and grid classes used by blocks.
//
//go:embed embedded/base.css
var BaseStylesheet string
