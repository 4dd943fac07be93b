package parser

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/markuplang/parse/ast"
)

func TestParseSvelteIfElse(t *testing.T) {
	root, err := Parse(`{#if a > 0}<b>{a}</b>{:else}none{/if}`, ast.Svelte)
	assert.Assert(t, err == nil, "%v", err)
	assert.Equal(t, len(root.Children), 1)

	block := root.Children[0].(ast.SvelteIfBlock)
	assert.Equal(t, block.Expr, "a > 0")
	assert.Equal(t, len(block.Children), 1)
	assert.Equal(t, len(block.ElseIfBlocks), 0)

	b := block.Children[0].(ast.Element)
	assert.Equal(t, b.TagName, "b")
	interp := b.Children[0].(ast.SvelteInterpolation)
	assert.Equal(t, interp.Expr, "a")

	assert.Equal(t, len(block.ElseChildren), 1)
	text := block.ElseChildren[0].(ast.TextNode)
	assert.Equal(t, text.Raw, "none")
}

func TestParseSvelteElseIfChain(t *testing.T) {
	root, err := Parse(`{#if a}A{:else if b}B{:else if c}C{:else}D{/if}`, ast.Svelte)
	assert.Assert(t, err == nil, "%v", err)
	block := root.Children[0].(ast.SvelteIfBlock)
	assert.Equal(t, len(block.ElseIfBlocks), 2)
	assert.Equal(t, block.ElseIfBlocks[0].Expr, "b")
	assert.Equal(t, block.ElseIfBlocks[1].Expr, "c")
	assert.Equal(t, block.ElseChildren[0].(ast.TextNode).Raw, "D")
}

func TestParseSvelteEachWithIndexAndKey(t *testing.T) {
	root, err := Parse(`{#each items as item, i (item.id)}{item.name}{/each}`, ast.Svelte)
	assert.Assert(t, err == nil, "%v", err)
	each := root.Children[0].(ast.SvelteEachBlock)
	assert.Equal(t, each.Expr, "items")
	assert.Equal(t, each.Binding, "item")
	assert.Assert(t, each.Index != nil && *each.Index == "i")
	assert.Assert(t, each.Key != nil && *each.Key == "item.id")
	assert.Equal(t, len(each.Children), 1)
}

func TestParseSvelteEachDestructuredBinding(t *testing.T) {
	root, err := Parse(`{#each entries as [key, value]}{key}{/each}`, ast.Svelte)
	assert.Assert(t, err == nil, "%v", err)
	each := root.Children[0].(ast.SvelteEachBlock)
	assert.Equal(t, each.Binding, "[key, value]")
	assert.Assert(t, each.Index == nil)
	assert.Assert(t, each.Key == nil)
}

func TestParseSvelteAwaitThenCatch(t *testing.T) {
	root, err := Parse(`{#await promise then value}{value}{:catch error}{error}{/await}`, ast.Svelte)
	assert.Assert(t, err == nil, "%v", err)
	await := root.Children[0].(*ast.SvelteAwaitBlock)
	assert.Equal(t, await.Expr, "promise")
	assert.Assert(t, await.ThenBinding != nil && *await.ThenBinding == "value")
	assert.Assert(t, await.CatchBlock != nil)
	assert.Equal(t, *await.CatchBlock.Binding, "error")
}

func TestParseSvelteKeyBlockAndAtTag(t *testing.T) {
	root, err := Parse(`{#key id}{@html raw}{/key}`, ast.Svelte)
	assert.Assert(t, err == nil, "%v", err)
	key := root.Children[0].(ast.SvelteKeyBlock)
	assert.Equal(t, key.Expr, "id")
	at := key.Children[0].(ast.SvelteAtTag)
	assert.Equal(t, at.Name, "html")
	assert.Equal(t, at.Expr, "raw")
}

func TestParseSvelteAttributeShorthandAndNamed(t *testing.T) {
	root, err := Parse(`<input {disabled} value={val} />`, ast.Svelte)
	assert.Assert(t, err == nil, "%v", err)
	el := root.Children[0].(ast.Element)
	shorthand := el.Attrs[0].(ast.SvelteAttribute)
	assert.Assert(t, shorthand.Name == nil)
	assert.Equal(t, shorthand.Expr, "disabled")
	named := el.Attrs[1].(ast.SvelteAttribute)
	assert.Assert(t, named.Name != nil && *named.Name == "value")
	assert.Equal(t, named.Expr, "val")
}

func TestParseSvelteUnknownBlockIsError(t *testing.T) {
	_, err := Parse(`{#bogus x}{/bogus}`, ast.Svelte)
	assert.Assert(t, err != nil)
	assert.Equal(t, err.Kind, UnknownSvelteBlock)
}
