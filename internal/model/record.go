package model

import (
	"strings"
	"time"
)

// PlotStatus represents the outcome of a plot request
type PlotStatus string

const (
	// PlotStatusOK means the expression was sampled successfully
	PlotStatusOK PlotStatus = "ok"

	// PlotStatusEmpty means the user submitted a blank expression
	PlotStatusEmpty PlotStatus = "empty"

	// PlotStatusError means parsing or evaluation failed
	PlotStatusError PlotStatus = "error"
)

// String returns the string representation of PlotStatus
func (ps PlotStatus) String() string {
	return string(ps)
}

// IsSuccess returns true if the request produced a drawable curve
func (ps PlotStatus) IsSuccess() bool {
	return ps == PlotStatusOK
}

// PlotRecord is one entry of the in-memory session history
type PlotRecord struct {
	ID         string
	Expression string
	Status     PlotStatus
	Segments   int    // number of curve segments produced
	Samples    int    // number of x values evaluated
	Dropped    int    // samples discarded as non-finite
	Error      string // error text if any
	CreatedAt  time.Time
}

// DisplayExpression returns the expression on a single line, or "—" if blank
func (r *PlotRecord) DisplayExpression() string {
	expr := strings.Join(strings.Fields(r.Expression), " ")
	if expr == "" {
		return "—"
	}
	return "y = " + expr
}
