package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lithammer/dedent"
)

// ansiDiff renders a cmp.Diff between x and y with colored +/- lines, in
// the same style the wider corpus uses for test-failure output.
func ansiDiff(t *testing.T, x, y interface{}, opts ...cmp.Option) string {
	t.Helper()
	escape := func(code int) string { return fmt.Sprintf("\x1b[%dm", code) }
	diff := cmp.Diff(x, y, opts...)
	if diff == "" {
		return ""
	}
	lines := strings.Split(diff, "\n")
	for i, l := range lines {
		switch {
		case strings.HasPrefix(l, "-"):
			lines[i] = escape(31) + l + escape(0)
		case strings.HasPrefix(l, "+"):
			lines[i] = escape(32) + l + escape(0)
		}
	}
	return strings.Join(lines, "\n")
}

func fixture(s string) string {
	return strings.TrimSpace(dedent.Dedent(s))
}

func strPtr(s string) *string { return &s }
