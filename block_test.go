package blocksite

import "testing"

func TestRenderBlock(t *testing.T) {
	tests := []struct {
		name     string
		block    Block
		expected string
	}{
		{"text", TextBlock{Content: "Hi <there>"}, "<p>Hi &lt;there&gt;</p>"},
		{"empty text", TextBlock{}, "<p></p>"},
		{"hero", HeroBlock{Title: "Welcome", Subtitle: "Sub"}, "<section class='hero'><h1>Welcome</h1><p>Sub</p></section>"},
		{"button", ButtonBlock{Href: "#", Label: "Go"}, "<a class='btn' href='#'>Go</a>"},
		{"button escapes quotes", ButtonBlock{Href: "/a'b", Label: "x"}, "<a class='btn' href='/a&#39;b'>x</a>"},
		{"markdown stays text", MarkdownBlock{Content: "# Title *em*"}, "<div># Title *em*</div>"},
		{"markdown escapes", MarkdownBlock{Content: "<b>"}, "<div>&lt;b&gt;</div>"},
		{"element", ElementBlock{Element: &Element{Tag: "hr"}}, "<hr></hr>"},
		{"unknown", UnknownBlock{Type: "carousel"}, UnknownBlockHTML},
		{"nil", nil, UnknownBlockHTML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderBlock(tt.block); got != tt.expected {
				t.Errorf("RenderBlock(%#v) = %q, want %q", tt.block, got, tt.expected)
			}
		})
	}
}

func TestRenderBlockFromDecodedDefaults(t *testing.T) {
	page, err := DecodePage([]byte("blocks:\n  - type: button\n    label: Go\n  - type: whatever\n"), DialectBuild)
	if err != nil {
		t.Fatalf("DecodePage failed: %v", err)
	}
	if got := RenderBlock(page.Blocks[0]); got != "<a class='btn' href='#'>Go</a>" {
		t.Errorf("button = %q", got)
	}
	if got := RenderBlock(page.Blocks[1]); got != "<!-- unknown block -->" {
		t.Errorf("unknown = %q", got)
	}
}

func TestRenderBlocksConcatenatesInOrder(t *testing.T) {
	got := RenderBlocks([]Block{TextBlock{Content: "a"}, TextBlock{Content: "b"}})
	if got != "<p>a</p><p>b</p>" {
		t.Errorf("RenderBlocks = %q", got)
	}
}
