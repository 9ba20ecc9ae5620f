package session

import (
	"strings"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// maxDiffLines bounds the changed region handed to the Myers diff. Larger
// changes are counted as a whole-block replacement.
const maxDiffLines = 4000

// lineDelta counts the lines added and deleted between two versions. Common
// leading and trailing lines are trimmed first, so the diff only sees the
// changed region.
func lineDelta(name, before, after string) (added, deleted int) {
	if before == after {
		return 0, 0
	}
	a := strings.SplitAfter(before, "\n")
	b := strings.SplitAfter(after, "\n")

	for len(a) > 0 && len(b) > 0 && a[0] == b[0] {
		a, b = a[1:], b[1:]
	}
	for len(a) > 0 && len(b) > 0 && a[len(a)-1] == b[len(b)-1] {
		a, b = a[:len(a)-1], b[:len(b)-1]
	}
	a, b = dropEmpty(a), dropEmpty(b)

	switch {
	case len(a) == 0 || len(b) == 0:
		return len(b), len(a)
	case len(a)+len(b) > maxDiffLines:
		return len(b), len(a)
	}

	oldText, newText := strings.Join(a, ""), strings.Join(b, "")
	edits := myers.ComputeEdits(span.URIFromPath(name), oldText, newText)
	unified := gotextdiff.ToUnified(name, name, oldText, edits)
	for _, h := range unified.Hunks {
		for _, l := range h.Lines {
			switch l.Kind {
			case gotextdiff.Insert:
				added++
			case gotextdiff.Delete:
				deleted++
			}
		}
	}
	return added, deleted
}

// dropEmpty removes the empty segment SplitAfter leaves after a final newline.
func dropEmpty(lines []string) []string {
	if n := len(lines); n > 0 && lines[n-1] == "" {
		return lines[:n-1]
	}
	return lines
}
