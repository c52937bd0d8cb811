package ingestors

import (
	"errors"
	"regexp"
	"strconv"
)

// LineMatcher classifies benchmark log lines for one subsystem prefix.
//
// Start line:      <prefix>::<op>: in<anything>
// Completion line: <prefix>::<op>: <float> msec
//
// Both patterns are anchored at the start of the line only, so trailing text after "msec" is tolerated.
type LineMatcher struct {
	prefix      string
	start       *regexp.Regexp
	completions map[string]*regexp.Regexp
}

func NewLineMatcher(prefix string) *LineMatcher {
	return &LineMatcher{
		prefix:      prefix,
		start:       regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `::(\w+): (in.*)`),
		completions: make(map[string]*regexp.Regexp),
	}
}

// MatchStart reports whether line opens an event and returns its op name and raw parameter payload.
func (m *LineMatcher) MatchStart(line string) (op string, rawParam string, ok bool) {
	groups := m.start.FindStringSubmatch(line)
	if groups == nil {
		return "", "", false
	}
	return groups[1], groups[2], true
}

// MatchCompletion reports whether line closes an event of op and returns the elapsed milliseconds.
// A number that does not parse as a float (e.g. "1.2.3") is not a completion.
// A number too large for a float64 still closes the event and is returned as +Inf.
func (m *LineMatcher) MatchCompletion(op string, line string) (msec float64, ok bool) {
	groups := m.completionPattern(op).FindStringSubmatch(line)
	if groups == nil {
		return 0, false
	}
	msec, err := strconv.ParseFloat(groups[1], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return msec, true
}

func (m *LineMatcher) completionPattern(op string) *regexp.Regexp {
	re, ok := m.completions[op]
	if !ok {
		re = regexp.MustCompile(`^` + regexp.QuoteMeta(m.prefix) + `::` + regexp.QuoteMeta(op) + `: ([0-9.]+) msec`)
		m.completions[op] = re
	}
	return re
}
