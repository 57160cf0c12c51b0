package genfix

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// RenderDiff produces a unified-style listing of the pending rewrite for one
// file, for dry runs. Line-granular via the chars-to-lines round trip.
func RenderDiff(path, before, after string) string {
	dmp := diffmatchpatch.New()
	c1, c2, lineArr := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(c1, c2, false), lineArr)

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n+++ b/%s\n", path, path)
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffEqual:
		}
		for _, line := range splitDiffLines(d.Text) {
			b.WriteString(prefix + line + "\n")
		}
	}
	return b.String()
}

func splitDiffLines(text string) []string {
	trimmed := strings.TrimSuffix(text, "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}
