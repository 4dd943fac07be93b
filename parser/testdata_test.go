package parser

import (
	"strings"
	"testing"

	"github.com/pkg/diff"

	"github.com/markuplang/parse/ast"
)

// uniDiff renders a unified diff between want and got for use in assertion
// failure messages, complementing ansiDiff's structural cmp.Diff output with
// a line-oriented view better suited to multi-line raw-text fixtures.
func uniDiff(t *testing.T, want, got string) string {
	t.Helper()
	if want == got {
		return ""
	}
	var sb strings.Builder
	if err := diff.Text("want", "got", want, got, &sb); err != nil {
		t.Fatalf("uniDiff: %v", err)
	}
	return sb.String()
}

func TestParseAstroFrontMatterRawMatchesFixtureExactly(t *testing.T) {
	src := "---\nconst greeting = 'hi';\nexport const x = 1;\n---\n<p>{greeting}</p>"
	root, err := Parse(src, ast.Astro)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	fm := root.Children[0].(ast.AstroFrontMatter)
	want := "\nconst greeting = 'hi';\nexport const x = 1;\n"
	if d := uniDiff(t, want, fm.Raw); d != "" {
		t.Fatalf("front matter raw text mismatch:\n%s", d)
	}
}
