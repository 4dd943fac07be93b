package parser

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/markuplang/parse/ast"
)

func TestParseHTMLBasicElement(t *testing.T) {
	root, err := Parse(`<div id="x">hi<br/></div>`, ast.Html)
	assert.Assert(t, err == nil, "%v", err)
	assert.Equal(t, len(root.Children), 1)

	div, ok := root.Children[0].(ast.Element)
	assert.Assert(t, ok)
	assert.Equal(t, div.TagName, "div")
	assert.Equal(t, len(div.Attrs), 1)

	attr, ok := div.Attrs[0].(ast.NativeAttribute)
	assert.Assert(t, ok)
	assert.Equal(t, attr.Name, "id")
	assert.Assert(t, attr.Value != nil && *attr.Value == "x")

	assert.Equal(t, len(div.Children), 2)
	text, ok := div.Children[0].(ast.TextNode)
	assert.Assert(t, ok)
	assert.Equal(t, text.Raw, "hi")
	assert.Equal(t, text.LineBreaks, 0)

	br, ok := div.Children[1].(ast.Element)
	assert.Assert(t, ok)
	assert.Equal(t, br.TagName, "br")
	assert.Assert(t, br.SelfClosing)
	assert.Equal(t, len(br.Children), 0)
}

func TestParseHTMLVoidElementNoCloseTag(t *testing.T) {
	root, err := Parse(`<img src="a.png">after`, ast.Html)
	assert.Assert(t, err == nil, "%v", err)
	assert.Equal(t, len(root.Children), 2)

	img, ok := root.Children[0].(ast.Element)
	assert.Assert(t, ok)
	assert.Assert(t, img.VoidElement)
	assert.Assert(t, !img.SelfClosing)
	assert.Equal(t, len(img.Children), 0)
}

func TestParseHTMLCommentAndDoctype(t *testing.T) {
	root, err := Parse(`<!DOCTYPE html><!-- note --><p>x</p>`, ast.Html)
	assert.Assert(t, err == nil, "%v", err)
	assert.Equal(t, len(root.Children), 3)

	_, ok := root.Children[0].(ast.Doctype)
	assert.Assert(t, ok)

	cm, ok := root.Children[1].(ast.Comment)
	assert.Assert(t, ok)
	assert.Equal(t, cm.Raw, " note ")
}

func TestParseHTMLRawTextScript(t *testing.T) {
	root, err := Parse("<script>if (a < b) { x(); }</script>", ast.Html)
	assert.Assert(t, err == nil, "%v", err)
	assert.Equal(t, len(root.Children), 1)

	script := root.Children[0].(ast.Element)
	assert.Equal(t, script.TagName, "script")
	assert.Equal(t, len(script.Children), 1)
	raw := script.Children[0].(ast.TextNode)
	assert.Equal(t, raw.Raw, "if (a < b) { x(); }")
}

func TestParseHTMLUnclosedElementIsError(t *testing.T) {
	_, err := Parse(`<div><span></div>`, ast.Html)
	assert.Assert(t, err != nil)
	assert.Equal(t, err.Kind, ExpectCloseTag)
}

func TestParseHTMLFirstAttrSameLine(t *testing.T) {
	root, err := Parse("<div\n  id=\"x\">y</div>", ast.Html)
	assert.Assert(t, err == nil, "%v", err)
	div := root.Children[0].(ast.Element)
	assert.Assert(t, !div.FirstAttrSameLine)
}
