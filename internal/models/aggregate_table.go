package models

// AggregateTable groups aggregates by operation, then by parameter signature.
// Both levels remember first-insertion order so Rows is deterministic for a given input.
type AggregateTable struct {
	ops  []string
	byOp map[string]*paramAggregates
}

type paramAggregates struct {
	params  []string
	byParam map[string]*Aggregate
}

// AggregateRow is the flattened view of one (op, param) group.
type AggregateRow struct {
	Op    string
	Param string
	Aggregate
}

func NewAggregateTable() *AggregateTable {
	return &AggregateTable{byOp: make(map[string]*paramAggregates)}
}

// GetOrInsert returns the aggregate for (op, param), creating empty entries at either level on first use.
func (t *AggregateTable) GetOrInsert(op, param string) *Aggregate {
	group, ok := t.byOp[op]
	if !ok {
		group = &paramAggregates{byParam: make(map[string]*Aggregate)}
		t.byOp[op] = group
		t.ops = append(t.ops, op)
	}

	agg, ok := group.byParam[param]
	if !ok {
		agg = &Aggregate{}
		group.byParam[param] = agg
		group.params = append(group.params, param)
	}
	return agg
}

// Get returns a copy of the aggregate for (op, param) without inserting it.
func (t *AggregateTable) Get(op, param string) (Aggregate, bool) {
	group, ok := t.byOp[op]
	if !ok {
		return Aggregate{}, false
	}
	agg, ok := group.byParam[param]
	if !ok {
		return Aggregate{}, false
	}
	return *agg, true
}

// Ops returns operation names in first-seen order.
func (t *AggregateTable) Ops() []string {
	return append([]string(nil), t.ops...)
}

// Params returns the parameter signatures recorded for op in first-seen order.
func (t *AggregateTable) Params(op string) []string {
	group, ok := t.byOp[op]
	if !ok {
		return nil
	}
	return append([]string(nil), group.params...)
}

// Len returns the number of (op, param) groups.
func (t *AggregateTable) Len() int {
	n := 0
	for _, group := range t.byOp {
		n += len(group.params)
	}
	return n
}

// Rows flattens the table, ops in first-seen order and params in first-seen order within each op.
func (t *AggregateTable) Rows() []AggregateRow {
	rows := make([]AggregateRow, 0, t.Len())
	for _, op := range t.ops {
		group := t.byOp[op]
		for _, param := range group.params {
			rows = append(rows, AggregateRow{
				Op:        op,
				Param:     param,
				Aggregate: *group.byParam[param],
			})
		}
	}
	return rows
}
