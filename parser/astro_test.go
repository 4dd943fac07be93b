package parser

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/markuplang/parse/ast"
)

func TestParseAstroFrontMatterBasic(t *testing.T) {
	src := "---\nconst x = 1;\n---\n<p>{x}</p>"
	root, err := Parse(src, ast.Astro)
	assert.Assert(t, err == nil, "%v", err)
	assert.Equal(t, len(root.Children), 3)

	fm := root.Children[0].(ast.AstroFrontMatter)
	assert.Equal(t, fm.Raw, "\nconst x = 1;\n")
}

func TestParseAstroFrontMatterWithStringContainingFence(t *testing.T) {
	src := "---\nconst s = '---not a fence---';\n---\n<p/>"
	root, err := Parse(src, ast.Astro)
	assert.Assert(t, err == nil, "%v", err)
	fm := root.Children[0].(ast.AstroFrontMatter)
	assert.Equal(t, fm.Raw, "\nconst s = '---not a fence---';\n")
}

func TestParseAstroFrontMatterWithTemplateLiteralInterpolation(t *testing.T) {
	src := "---\nconst s = `a${'}'}b`;\n---\n<p/>"
	root, err := Parse(src, ast.Astro)
	assert.Assert(t, err == nil, "%v", err)
	fm := root.Children[0].(ast.AstroFrontMatter)
	assert.Equal(t, fm.Raw, "\nconst s = `a${'}'}b`;\n")
}

func TestParseAstroExprScriptAndTemplateAlternation(t *testing.T) {
	root, err := Parse(`{items.map(i => <li>{i}</li>)}`, ast.Astro)
	assert.Assert(t, err == nil, "%v", err)
	expr := root.Children[0].(ast.AstroExpr)
	assert.Assert(t, len(expr.Children) >= 2)
	assert.Equal(t, expr.Children[0].Kind, ast.AstroExprScript)
	assert.Equal(t, expr.Children[1].Kind, ast.AstroExprTemplate)

	li := expr.Children[1].Template[0].(ast.Element)
	assert.Equal(t, li.TagName, "li")
}

func TestParseAstroExprFragmentTag(t *testing.T) {
	root, err := Parse(`{<>{x}</>}`, ast.Astro)
	assert.Assert(t, err == nil, "%v", err)
	expr := root.Children[0].(ast.AstroExpr)
	assert.Equal(t, expr.Children[0].Kind, ast.AstroExprTemplate)
	fragment := expr.Children[0].Template[0].(ast.Element)
	assert.Equal(t, fragment.TagName, "")
}

func TestParseAstroAttributeShorthandAndNamed(t *testing.T) {
	root, err := Parse(`<Component {title} class={klass} />`, ast.Astro)
	assert.Assert(t, err == nil, "%v", err)
	el := root.Children[0].(ast.Element)
	shorthand := el.Attrs[0].(ast.AstroAttribute)
	assert.Assert(t, shorthand.Name == nil)
	assert.Equal(t, shorthand.Expr, "title")
	named := el.Attrs[1].(ast.AstroAttribute)
	assert.Equal(t, *named.Name, "class")
	assert.Equal(t, named.Expr, "klass")
}
