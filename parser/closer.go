package parser

import "github.com/dlclark/regexp2"

// jinjaCloserPattern and ventoCloserPattern recognize the `end<name>` and
// `/<name>` closer-tag spellings respectively.
var (
	jinjaCloserPattern = regexp2.MustCompile(`^end(\w+)$`, regexp2.None)
	ventoCloserPattern = regexp2.MustCompile(`^/(\w+)$`, regexp2.None)
)

// matchCloserName runs pattern against s and reports the captured closer
// name, if any.
func matchCloserName(pattern *regexp2.Regexp, s string) (string, bool) {
	m, err := pattern.FindStringMatch(s)
	if err != nil || m == nil {
		return "", false
	}
	groups := m.Groups()
	if len(groups) < 2 {
		return "", false
	}
	return groups[1].String(), true
}
