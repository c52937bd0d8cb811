package ingestors

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineMatcher_MatchStart(t *testing.T) {
	t.Parallel()

	matcher := NewLineMatcher("op_Binary")

	tests := []struct {
		name      string
		line      string
		wantOp    string
		wantParam string
		wantOk    bool
	}{
		{
			name:      "start line",
			line:      "op_Binary::Add: in, nelems=10",
			wantOp:    "Add",
			wantParam: "in, nelems=10",
			wantOk:    true,
		},
		{
			name:      "producer tensor payload",
			line:      "op_Binary::Mul: in0=[dtype=1,dims=1,nelems=5] in1=[dtype=1,dims=1,nelems=5]",
			wantOp:    "Mul",
			wantParam: "in0=[dtype=1,dims=1,nelems=5] in1=[dtype=1,dims=1,nelems=5]",
			wantOk:    true,
		},
		{
			name:      "payload keeps trailing whitespace",
			line:      "op_Binary::Sub: in  ",
			wantOp:    "Sub",
			wantParam: "in  ",
			wantOk:    true,
		},
		{
			name:      "op with underscore and digits",
			line:      "op_Binary::Div_NoNan2: in",
			wantOp:    "Div_NoNan2",
			wantParam: "in",
			wantOk:    true,
		},
		{
			name: "completion line is not a start line",
			line: "op_Binary::Add: 1.000 msec",
		},
		{
			name: "payload not starting with in",
			line: "op_Binary::Add: begin",
		},
		{
			name: "prefix not at line start",
			line: "I0101 op_Binary::Add: in, nelems=10",
		},
		{
			name: "other subsystem",
			line: "op_Unary::Neg: in, nelems=10",
		},
		{
			name: "missing space after colon",
			line: "op_Binary::Add:in",
		},
		{
			name: "empty line",
			line: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, param, ok := matcher.MatchStart(tt.line)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantOp, op)
			assert.Equal(t, tt.wantParam, param)
		})
	}
}

func TestLineMatcher_MatchCompletion(t *testing.T) {
	t.Parallel()

	matcher := NewLineMatcher("op_Binary")

	tests := []struct {
		name     string
		op       string
		line     string
		wantMsec float64
		wantOk   bool
	}{
		{
			name:     "completion line",
			op:       "Add",
			line:     "op_Binary::Add: 1.000 msec",
			wantMsec: 1.0,
			wantOk:   true,
		},
		{
			name:     "integer time",
			op:       "Add",
			line:     "op_Binary::Add: 3 msec",
			wantMsec: 3.0,
			wantOk:   true,
		},
		{
			name:     "leading dot",
			op:       "Add",
			line:     "op_Binary::Add: .5 msec",
			wantMsec: 0.5,
			wantOk:   true,
		},
		{
			name:     "trailing text after msec",
			op:       "Mul",
			line:     "op_Binary::Mul: 2.500 msec (warm)",
			wantMsec: 2.5,
			wantOk:   true,
		},
		{
			name: "different op",
			op:   "Add",
			line: "op_Binary::Sub: 1.000 msec",
		},
		{
			name: "op name is a prefix of the logged op",
			op:   "Add",
			line: "op_Binary::AddN: 1.000 msec",
		},
		{
			name: "unparsable number",
			op:   "Add",
			line: "op_Binary::Add: 1.2.3 msec",
		},
		{
			name: "lone dot",
			op:   "Add",
			line: "op_Binary::Add: . msec",
		},
		{
			name: "wrong unit",
			op:   "Add",
			line: "op_Binary::Add: 1.000 usec",
		},
		{
			name: "start line",
			op:   "Add",
			line: "op_Binary::Add: in, nelems=10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msec, ok := matcher.MatchCompletion(tt.op, tt.line)
			assert.Equal(t, tt.wantOk, ok)
			assert.InDelta(t, tt.wantMsec, msec, 1e-9)
		})
	}
}

func TestLineMatcher_PrefixIsLiteral(t *testing.T) {
	t.Parallel()

	matcher := NewLineMatcher("op.Binary")

	_, _, ok := matcher.MatchStart("opXBinary::Add: in")
	assert.False(t, ok, "prefix must not be interpreted as a pattern")

	op, _, ok := matcher.MatchStart("op.Binary::Add: in")
	assert.True(t, ok)
	assert.Equal(t, "Add", op)
}

func TestLineMatcher_MatchCompletion_OutOfRangeTime(t *testing.T) {
	t.Parallel()

	msec, ok := NewLineMatcher("op_Binary").MatchCompletion("Add", "op_Binary::Add: "+strings.Repeat("9", 400)+" msec")

	assert.True(t, ok)
	assert.True(t, math.IsInf(msec, 1))
}
