package parser

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/markuplang/parse/ast"
)

func TestParseVentoInterpolationCommentEval(t *testing.T) {
	root, err := Parse(`{{ name }}{{# a note #}}{{> raw.expr }}`, ast.Vento)
	assert.Assert(t, err == nil, "%v", err)
	assert.Equal(t, len(root.Children), 3)

	interp := root.Children[0].(ast.VentoInterpolation)
	assert.Equal(t, interp.Expr, " name ")

	comment := root.Children[1].(ast.VentoComment)
	assert.Equal(t, comment.Raw, " a note ")

	eval := root.Children[2].(ast.VentoEval)
	assert.Equal(t, eval.Raw, "raw.expr")
}

func TestParseVentoIfElse(t *testing.T) {
	root, err := Parse(`{{ if a }}A{{ else }}B{{ /if }}`, ast.Vento)
	assert.Assert(t, err == nil, "%v", err)
	block := root.Children[0].(ast.VentoBlock)
	assert.Equal(t, len(block.Body), 5)
	assert.Equal(t, block.Body[0].Tag.Tag, " if a ")
	assert.Equal(t, block.Body[1].Children[0].(ast.TextNode).Raw, "A")
	assert.Equal(t, block.Body[2].Tag.Tag, " else ")
	assert.Equal(t, block.Body[3].Children[0].(ast.TextNode).Raw, "B")
	assert.Equal(t, block.Body[4].Tag.Tag, " /if ")
}

func TestParseVentoForLoop(t *testing.T) {
	root, err := Parse(`{{ for item of items }}{{ item }}{{ /for }}`, ast.Vento)
	assert.Assert(t, err == nil, "%v", err)
	block := root.Children[0].(ast.VentoBlock)
	assert.Equal(t, block.Body[0].Tag.Tag, " for item of items ")
	inner := block.Body[1].Children[0].(ast.VentoInterpolation)
	assert.Equal(t, inner.Expr, " item ")
}

func TestParseVentoSetAssignmentIsTagNotBlock(t *testing.T) {
	root, err := Parse(`{{ set x = 1 }}`, ast.Vento)
	assert.Assert(t, err == nil, "%v", err)
	_, isBlock := root.Children[0].(ast.VentoBlock)
	assert.Assert(t, !isBlock)
	tag := root.Children[0].(ast.VentoTag)
	assert.Equal(t, tag.Tag, " set x = 1 ")
}

func TestParseVentoSetWithoutAssignmentIsBlock(t *testing.T) {
	root, err := Parse(`{{ set x }}y{{ /set }}`, ast.Vento)
	assert.Assert(t, err == nil, "%v", err)
	block := root.Children[0].(ast.VentoBlock)
	assert.Equal(t, len(block.Body), 3)
}

func TestParseVentoUnclosedBlockIsError(t *testing.T) {
	_, err := Parse(`{{ if a }}unterminated`, ast.Vento)
	assert.Assert(t, err != nil)
	assert.Equal(t, err.Kind, ExpectVentoBlockEnd)
}
