package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_Average(t *testing.T) {
	t.Parallel()

	var agg Aggregate
	_, ok := agg.Average()
	assert.False(t, ok, "average of an empty aggregate must not be computed")

	agg.Add(1.0)
	agg.Add(3.0)

	avg, ok := agg.Average()
	require.True(t, ok)
	assert.InDelta(t, 2.0, avg, 1e-9)
	assert.InDelta(t, 4.0, agg.TotalTime, 1e-9)
	assert.Equal(t, int64(2), agg.Count)
}

func TestAggregateTable_GetOrInsert_ReturnsSameAggregate(t *testing.T) {
	t.Parallel()

	table := NewAggregateTable()

	first := table.GetOrInsert("Add", "in, n=10")
	first.Add(1.5)
	second := table.GetOrInsert("Add", "in, n=10")
	second.Add(2.5)

	assert.Same(t, first, second)

	agg, ok := table.Get("Add", "in, n=10")
	require.True(t, ok)
	assert.Equal(t, Aggregate{TotalTime: 4.0, Count: 2}, agg)
	assert.Equal(t, 1, table.Len())
}

func TestAggregateTable_Get_DoesNotInsert(t *testing.T) {
	t.Parallel()

	table := NewAggregateTable()
	table.GetOrInsert("Add", "in, n=10")

	_, ok := table.Get("Mul", "in, n=10")
	assert.False(t, ok)
	_, ok = table.Get("Add", "in, n=5")
	assert.False(t, ok)

	assert.Equal(t, []string{"Add"}, table.Ops())
	assert.Equal(t, 1, table.Len())
}

func TestAggregateTable_Rows_FirstSeenOrder(t *testing.T) {
	t.Parallel()

	table := NewAggregateTable()
	table.GetOrInsert("Sub", "in, n=1").Add(1)
	table.GetOrInsert("Add", "in, n=2").Add(2)
	table.GetOrInsert("Sub", "in, n=3").Add(3)
	table.GetOrInsert("Add", "in, n=1").Add(4)
	table.GetOrInsert("Sub", "in, n=1").Add(5)

	assert.Equal(t, []string{"Sub", "Add"}, table.Ops())
	assert.Equal(t, []string{"in, n=1", "in, n=3"}, table.Params("Sub"))
	assert.Equal(t, []string{"in, n=2", "in, n=1"}, table.Params("Add"))
	assert.Nil(t, table.Params("Mul"))

	expected := []AggregateRow{
		{Op: "Sub", Param: "in, n=1", Aggregate: Aggregate{TotalTime: 6, Count: 2}},
		{Op: "Sub", Param: "in, n=3", Aggregate: Aggregate{TotalTime: 3, Count: 1}},
		{Op: "Add", Param: "in, n=2", Aggregate: Aggregate{TotalTime: 2, Count: 1}},
		{Op: "Add", Param: "in, n=1", Aggregate: Aggregate{TotalTime: 4, Count: 1}},
	}
	assert.Equal(t, expected, table.Rows())
}

func TestAggregateTable_Rows_Empty(t *testing.T) {
	t.Parallel()

	table := NewAggregateTable()
	assert.Empty(t, table.Rows())
	assert.Empty(t, table.Ops())
	assert.Equal(t, 0, table.Len())
}

func TestAggregateTable_OpsReturnsCopy(t *testing.T) {
	t.Parallel()

	table := NewAggregateTable()
	table.GetOrInsert("Add", "in")

	ops := table.Ops()
	ops[0] = "Mutated"

	assert.Equal(t, []string{"Add"}, table.Ops())
}
