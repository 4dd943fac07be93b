package parser

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/markuplang/parse/ast"
)

// dumpTree renders a Root's children as a deterministic %#v-style string for
// golden comparison.
func dumpTree(root *ast.Root) string {
	return fmt.Sprintf("%#v", root.Children)
}

var snapshotFixtures = []struct {
	name    string
	dialect ast.Dialect
	src     string
}{
	{"html_document", ast.Html, fixture(`
		<!DOCTYPE html>
		<div id="app" class="main">
		  <p>Hello, <b>world</b>!</p>
		</div>
	`)},
	{"vue_component", ast.Vue, fixture(`
		<template>
		  <ul>
		    <li v-for="item in items" :key="item.id">{{ item.name }}</li>
		  </ul>
		</template>
	`)},
	{"svelte_component", ast.Svelte, fixture(`
		{#if visible}
		  <p>{message}</p>
		{:else}
		  <p>hidden</p>
		{/if}
	`)},
}

func TestParseSnapshotFixtures(t *testing.T) {
	for _, f := range snapshotFixtures {
		f := f
		t.Run(f.name, func(t *testing.T) {
			root, err := Parse(f.src, f.dialect)
			if err != nil {
				t.Fatalf("unexpected parse error: %v", err)
			}
			snaps.WithConfig(snaps.Dir("__snapshots__")).MatchSnapshot(t, dumpTree(root))
		})
	}
}
