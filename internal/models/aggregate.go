package models

// Aggregate accumulates the samples of one (op, param) group.
// TotalTime and Count only change together through Add.
type Aggregate struct {
	TotalTime float64 `json:"totalTime"` // milliseconds
	Count     int64   `json:"count"`
}

// Add folds one sample time into the aggregate.
func (a *Aggregate) Add(time float64) {
	a.TotalTime += time
	a.Count++
}

// Average returns TotalTime/Count. ok is false when no sample has been added.
func (a Aggregate) Average() (avg float64, ok bool) {
	if a.Count == 0 {
		return 0, false
	}
	return a.TotalTime / float64(a.Count), true
}
