package blocksite

import (
	"errors"
	"reflect"
	"testing"
)

func TestDecodeSiteDefaults(t *testing.T) {
	s, err := DecodeSite([]byte("name: Acme\n"))
	if err != nil {
		t.Fatalf("DecodeSite failed: %v", err)
	}
	want := Site{Name: "Acme", Footer: "", Theme: "default"}
	if s != want {
		t.Errorf("DecodeSite = %+v, want %+v", s, want)
	}
}

func TestDecodeSiteEmptyDocument(t *testing.T) {
	s, err := DecodeSite(nil)
	if err != nil {
		t.Fatalf("DecodeSite(nil) failed: %v", err)
	}
	if s.Theme != "default" {
		t.Errorf("Theme = %q, want %q", s.Theme, "default")
	}
}

func TestDecodeRejectsNonMapping(t *testing.T) {
	if _, err := DecodeSite([]byte("- a\n- b\n")); !errors.Is(err, ErrNotMapping) {
		t.Errorf("DecodeSite(sequence) err = %v, want ErrNotMapping", err)
	}
	if _, err := DecodePage([]byte("just text"), DialectBuild); !errors.Is(err, ErrNotMapping) {
		t.Errorf("DecodePage(scalar) err = %v, want ErrNotMapping", err)
	}
}

func TestDecodeRejectsMalformedYAML(t *testing.T) {
	if _, err := DecodePage([]byte("title: [unclosed"), DialectBuild); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestDecodeTheme(t *testing.T) {
	th, err := DecodeTheme([]byte("style: /css/main.css\n"))
	if err != nil {
		t.Fatalf("DecodeTheme failed: %v", err)
	}
	if th.Style != "/css/main.css" {
		t.Errorf("Style = %q", th.Style)
	}
}

func TestDecodePageBlocks(t *testing.T) {
	src := `
title: Home
blocks:
  - type: text
    content: Hi
  - content: no type
  - type: hero
    title: Welcome
  - type: button
  - type: button
    href: ""
    label: ~
  - type: markdown
    content: "# md"
  - type: gallery
  - plain scalar
  - type: [a, b]
    content: x
  - type: {x: y}
`
	p, err := DecodePage([]byte(src), DialectBuild)
	if err != nil {
		t.Fatalf("DecodePage failed: %v", err)
	}
	want := []Block{
		TextBlock{Content: "Hi"},
		TextBlock{Content: "no type"},
		HeroBlock{Title: "Welcome"},
		ButtonBlock{Href: "#", Label: "Button"},
		ButtonBlock{Href: "", Label: "Button"},
		UnknownBlock{Type: "markdown"},
		UnknownBlock{Type: "gallery"},
		UnknownBlock{},
		UnknownBlock{},
		UnknownBlock{},
	}
	if p.Title == nil || *p.Title != "Home" {
		t.Errorf("Title = %v", p.Title)
	}
	if !reflect.DeepEqual(p.Blocks, want) {
		t.Errorf("Blocks =\n%#v\nwant\n%#v", p.Blocks, want)
	}
}

func TestDecodePageServeDialectKnowsMarkdown(t *testing.T) {
	p, err := DecodePage([]byte("blocks:\n  - type: markdown\n    content: '*x*'\n"), DialectServe)
	if err != nil {
		t.Fatalf("DecodePage failed: %v", err)
	}
	if len(p.Blocks) != 1 || p.Blocks[0] != (MarkdownBlock{Content: "*x*"}) {
		t.Errorf("Blocks = %#v", p.Blocks)
	}
}

func TestDecodeElementBlock(t *testing.T) {
	src := `
blocks:
  - type: element
    tag: a
    attrs:
      href: /x
      class: link
      data-n: 3
    style:
      z-index: 2
      color: red
    children:
      - "text"
      - tag: span
        children: [inner, 7]
      - children: []
`
	p, err := DecodePage([]byte(src), DialectBuild)
	if err != nil {
		t.Fatalf("DecodePage failed: %v", err)
	}
	want := ElementBlock{Element: &Element{
		Tag:   "a",
		Attrs: Props{{"href", "/x"}, {"class", "link"}, {"data-n", "3"}},
		Style: Props{{"z-index", "2"}, {"color", "red"}},
		Children: []Node{
			Text("text"),
			&Element{Tag: "span", Children: []Node{Text("inner"), Text("7")}},
			&Element{Tag: "div"},
		},
	}}
	if !reflect.DeepEqual(p.Blocks[0], want) {
		t.Errorf("element =\n%#v\nwant\n%#v", p.Blocks[0], want)
	}
	if got := RenderBlock(p.Blocks[0]); got != `<a href="/x" class="link" data-n="3" style="z-index:2;color:red;">text<span>inner7</span><div></div></a>` {
		t.Errorf("rendered = %q", got)
	}
}

func TestDecodeElementTypeErrors(t *testing.T) {
	tests := []string{
		"blocks: nope\n",
		"blocks:\n  - type: element\n    attrs: [a]\n",
		"blocks:\n  - type: element\n    attrs:\n      a: [1]\n",
		"blocks:\n  - type: element\n    children:\n      - [nested]\n",
		"blocks:\n  - type: text\n    content: {a: b}\n",
		"title: {a: b}\n",
	}
	for _, src := range tests {
		if _, err := DecodePage([]byte(src), DialectBuild); err == nil {
			t.Errorf("DecodePage(%q) expected an error", src)
		}
	}
}

func TestDecodeResolvesAliases(t *testing.T) {
	src := `
common: &c
  type: hero
  title: Shared
blocks:
  - *c
  - *c
`
	p, err := DecodePage([]byte(src), DialectBuild)
	if err != nil {
		t.Fatalf("DecodePage failed: %v", err)
	}
	if len(p.Blocks) != 2 || p.Blocks[1] != (HeroBlock{Title: "Shared"}) {
		t.Errorf("Blocks = %#v", p.Blocks)
	}
}

func TestDecodePageTitlePresence(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want *string
	}{
		{"absent", "blocks: []\n", nil},
		{"null", "title: ~\n", nil},
		{"empty", "title: \"\"\n", new(string)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := DecodePage([]byte(tt.src), DialectBuild)
			if err != nil {
				t.Fatalf("DecodePage failed: %v", err)
			}
			if !reflect.DeepEqual(p.Title, tt.want) {
				t.Errorf("Title = %v, want %v", p.Title, tt.want)
			}
		})
	}
}
