package parser

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/markuplang/parse/ast"
)

func TestParseVueDirectivesAndInterpolation(t *testing.T) {
	src := fixture(`<p :class="c" v-if="ok">{{ name }}</p>`)
	root, err := Parse(src, ast.Vue)
	assert.Assert(t, err == nil, "%v", err)

	p := root.Children[0].(ast.Element)
	assert.Equal(t, p.TagName, "p")

	wantAttrs := []ast.Attribute{
		ast.VueDirective{Name: ":", ArgAndModifiers: strPtr("class"), Value: strPtr("c")},
		ast.VueDirective{Name: "v-if", ArgAndModifiers: nil, Value: strPtr("ok")},
	}
	for i, want := range wantAttrs {
		got := p.Attrs[i].(ast.VueDirective)
		got.Range = ast.VueDirective{}.Range
		if diff := ansiDiff(t, want, got); diff != "" {
			t.Fatalf("attr %d mismatch:\n%s", i, diff)
		}
	}

	assert.Equal(t, len(p.Children), 1)
	interp := p.Children[0].(ast.VueInterpolation)
	assert.Equal(t, interp.Expr, " name ")
}

func TestParseVueShorthandDirectivesAtHash(t *testing.T) {
	root, err := Parse(`<my-input @click="onClick" #default="slotProps"></my-input>`, ast.Vue)
	assert.Assert(t, err == nil, "%v", err)
	el := root.Children[0].(ast.Element)
	at := el.Attrs[0].(ast.VueDirective)
	assert.Equal(t, at.Name, "@")
	assert.Equal(t, *at.ArgAndModifiers, "click")
	hash := el.Attrs[1].(ast.VueDirective)
	assert.Equal(t, hash.Name, "#")
	assert.Equal(t, *hash.ArgAndModifiers, "default")
}

func TestParseVueDirectiveWithoutValue(t *testing.T) {
	root, err := Parse(`<input v-model />`, ast.Vue)
	assert.Assert(t, err == nil, "%v", err)
	el := root.Children[0].(ast.Element)
	dir := el.Attrs[0].(ast.VueDirective)
	assert.Equal(t, dir.Name, "v-model")
	assert.Assert(t, dir.Value == nil)
}

func TestParseVueTextNotInterpolation(t *testing.T) {
	root, err := Parse(`<p>{ not an interpolation }</p>`, ast.Vue)
	assert.Assert(t, err == nil, "%v", err)
	el := root.Children[0].(ast.Element)
	text, ok := el.Children[0].(ast.TextNode)
	assert.Assert(t, ok)
	assert.Equal(t, text.Raw, "{ not an interpolation }")
}
