package ingestors

import "strings"

// paramRewrites are applied in order. Together they fold parameter descriptions that differ only
// in the element-count field name or in a constant float32 dtype tag into one grouping key.
var paramRewrites = []struct {
	old string
	new string
}{
	{old: "nelems=", new: "n="},
	{old: "dtype=1,", new: ""},
}

// NormalizeParam rewrites a raw parameter payload into its grouping key.
//
// Example: "in0=[dtype=1,dims=1,nelems=8]" -> "in0=[dims=1,n=8]"
//
// The rewrites repeat until the payload stops changing, so NormalizeParam(NormalizeParam(p)) == NormalizeParam(p)
// even when removing one fragment joins the text around it into a new match.
// Every rewrite shortens the string, which bounds the loop.
func NormalizeParam(raw string) string {
	for {
		next := raw
		for _, rw := range paramRewrites {
			next = strings.ReplaceAll(next, rw.old, rw.new)
		}
		if next == raw {
			return next
		}
		raw = next
	}
}
