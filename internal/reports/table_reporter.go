package reports

import (
	"bufio"
	"fmt"
	"io"

	"binop-stats/internal/models"
	"binop-stats/internal/shared/loggers"
)

// Layout controls the fixed-width columns of a report line.
type Layout struct {
	NumberWidth int // width of the total, average and count columns
	Precision   int // decimal places of total and average
	OpWidth     int // op column, left-justified
}

// DefaultLayout renders lines as "%8.3f %8.3f %8d %-20s %s".
var DefaultLayout = Layout{NumberWidth: 8, Precision: 3, OpWidth: 20}

//go:generate mockgen -source=table_reporter.go -destination=./mocks/table_reporter_mock.go -package=mocks
type TableReporter interface {
	// Render writes one line per (op, param) group: total, average, count, op, param.
	Render(w io.Writer, table *models.AggregateTable) error
}

type tableReporter struct {
	lineFormat string
	logger     loggers.Logger
}

func NewTableReporter(layout Layout, logger loggers.Logger) TableReporter {
	return &tableReporter{
		lineFormat: fmt.Sprintf("%%%d.%df %%%d.%df %%%dd %%-%ds %%s\n",
			layout.NumberWidth, layout.Precision,
			layout.NumberWidth, layout.Precision,
			layout.NumberWidth,
			layout.OpWidth),
		logger: logger,
	}
}

func (r *tableReporter) Render(w io.Writer, table *models.AggregateTable) error {
	bw := bufio.NewWriter(w)
	written := 0
	for _, row := range table.Rows() {
		avg, ok := row.Average()
		if !ok {
			// groups only exist once a sample was added
			continue
		}
		if _, err := fmt.Fprintf(bw, r.lineFormat, row.TotalTime, avg, row.Count, row.Op, row.Param); err != nil {
			return fmt.Errorf("failed to write report line for op %s: %w", row.Op, err)
		}
		written++
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}

	r.logger.Debug().Msgf("rendered %d report lines", written)
	return nil
}
