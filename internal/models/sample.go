package models

// Sample is one fully matched observation from a benchmark log: an operation start line
// and its completion line.
//
// Example log lines producing a Sample:
//
//	op_Binary::Add: in0=[dtype=1,dims=1,nelems=1024] in1=[dtype=1,dims=1,nelems=1]
//	op_Binary::Add: 0.125 msec
//
// yield Sample{Op: "Add", Param: "in0=[dims=1,n=1024] in1=[dims=1,n=1]", Time: 0.125}.
type Sample struct {
	Op    string
	Param string  // normalized parameter signature
	Time  float64 // milliseconds
}
