package parser

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/markuplang/parse/ast"
)

func TestParseJinjaInterpolationAndComment(t *testing.T) {
	root, err := Parse(`{{ name }}{# a note #}`, ast.Jinja)
	assert.Assert(t, err == nil, "%v", err)
	assert.Equal(t, len(root.Children), 2)

	interp := root.Children[0].(ast.JinjaInterpolation)
	assert.Equal(t, interp.Expr, " name ")

	comment := root.Children[1].(ast.JinjaComment)
	assert.Equal(t, comment.Raw, " a note ")
}

func TestParseJinjaStandaloneTag(t *testing.T) {
	root, err := Parse(`{% include "x.html" %}`, ast.Jinja)
	assert.Assert(t, err == nil, "%v", err)
	tag := root.Children[0].(ast.JinjaTag)
	assert.Equal(t, tag.Content, ` include "x.html" `)
}

func TestParseJinjaIfElifElse(t *testing.T) {
	root, err := Parse(`{% if a %}A{% elif b %}B{% else %}C{% endif %}`, ast.Jinja)
	assert.Assert(t, err == nil, "%v", err)
	block := root.Children[0].(ast.JinjaBlock)
	assert.Equal(t, len(block.Body), 7)

	opener := block.Body[0].Tag
	assert.Equal(t, jinjaTagName(opener.Content), "if")

	elifTag := block.Body[2].Tag
	assert.Equal(t, jinjaTagName(elifTag.Content), "elif")

	elseTag := block.Body[4].Tag
	assert.Equal(t, jinjaTagName(elseTag.Content), "else")

	closer := block.Body[6].Tag
	assert.Equal(t, jinjaTagName(closer.Content), "endif")
}

func TestParseJinjaForLoopWithNestedIf(t *testing.T) {
	root, err := Parse(`{% for x in items %}{% if x %}{{ x }}{% endif %}{% endfor %}`, ast.Jinja)
	assert.Assert(t, err == nil, "%v", err)
	forBlock := root.Children[0].(ast.JinjaBlock)

	var nested ast.JinjaBlock
	for _, part := range forBlock.Body {
		if part.Kind == ast.JinjaBodyChildren {
			nested = part.Children[0].(ast.JinjaBlock)
		}
	}
	assert.Equal(t, jinjaTagName(nested.Body[0].Tag.Content), "if")
}

func TestParseJinjaUnclosedBlockIsError(t *testing.T) {
	_, err := Parse(`{% if a %}unterminated`, ast.Jinja)
	assert.Assert(t, err != nil)
	assert.Equal(t, err.Kind, ExpectJinjaBlockEnd)
}
