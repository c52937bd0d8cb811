package aggregators

import (
	"fmt"
	"math"

	"binop-stats/internal/models"
)

//go:generate mockgen -source=aggregate_rolluper.go -destination=./mocks/aggregate_rolluper_mock.go -package=mocks
type SampleRolluper interface {
	// Rollup mutates table by folding sample into the aggregate of its (op, param) group.
	Rollup(table *models.AggregateTable, sample *models.Sample) error
}

type sampleRolluper struct{}

func NewSampleRolluper() SampleRolluper {
	return &sampleRolluper{}
}

func (r *sampleRolluper) Rollup(table *models.AggregateTable, sample *models.Sample) error {
	// Validate before touching the table so a rejected sample leaves no empty group behind
	if sample.Op == "" {
		return fmt.Errorf("sample without op: param=%q", sample.Param)
	}
	if math.IsNaN(sample.Time) || math.IsInf(sample.Time, 0) || sample.Time < 0 {
		return fmt.Errorf("invalid sample time for op %q: %v", sample.Op, sample.Time)
	}

	table.GetOrInsert(sample.Op, sample.Param).Add(sample.Time)
	return nil
}
