// Package handler collects non-fatal diagnostics a parse run wants to
// surface to a host application without failing the parse itself.
//
// The parser never depends on a Handler to make a parsing decision — every
// branch it affects already has a silent, spec-mandated fallback (see
// package parser's end-of-input policy). A Handler is purely an optional
// sink a caller can pass to parser.Parse via parser.WithHandler to learn
// that a fallback fired, e.g. an Astro front-matter fence or an HTML
// comment that never closed before end-of-input.
package handler

import (
	"fmt"

	"github.com/markuplang/parse/internal/loc"
)

// Message is one recorded diagnostic.
type Message struct {
	Code  loc.DiagnosticCode
	Text  string
	Range loc.Range
}

func (m Message) String() string {
	return fmt.Sprintf("%s at byte %d", m.Text, m.Range.Loc.Start)
}

// Handler accumulates warnings emitted while parsing. The zero value is
// ready to use; nil is also safe to call Warn on (Warn nops).
type Handler struct {
	warnings []Message
}

// New returns an empty Handler.
func New() *Handler {
	return &Handler{}
}

// Warn records a diagnostic at the given range. A nil Handler silently
// discards the warning, so callers never need to nil-check before passing
// a *Handler through optional plumbing.
func (h *Handler) Warn(code loc.DiagnosticCode, text string, r loc.Range) {
	if h == nil {
		return
	}
	h.warnings = append(h.warnings, Message{Code: code, Text: text, Range: r})
}

// Warnings returns every diagnostic recorded so far, in emission order.
func (h *Handler) Warnings() []Message {
	if h == nil {
		return nil
	}
	return h.warnings
}

// HasWarnings reports whether any diagnostic was recorded.
func (h *Handler) HasWarnings() bool {
	return h != nil && len(h.warnings) > 0
}
