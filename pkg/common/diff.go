package common

import (
	"bytes"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffTrees renders both trees in PATHS format and returns a line diff,
// prefixing removed lines with "- ", added lines with "+ " and unchanged
// lines with two spaces. It returns the empty string for identical trees.
func DiffTrees(before, after *Node, options *PrintOptions) (string, error) {
	var from, to bytes.Buffer
	if err := PrintTreePaths(before, &from, options); err != nil {
		return "", err
	}
	if err := PrintTreePaths(after, &to, options); err != nil {
		return "", err
	}
	if from.String() == to.String() {
		return "", nil
	}

	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from.String(), to.String())
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, diff := range diffs {
		prefix := "  "
		switch diff.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
		}
	}
	return sb.String(), nil
}
