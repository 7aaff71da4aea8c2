package plot

import (
	"math"
	"strings"

	"github.com/ytget/func-grapher/internal/expr"
	"github.com/ytget/func-grapher/internal/model"
)

// Result is the outcome of sampling one expression.
type Result struct {
	Segments []model.Segment // curve pieces in increasing-x order
	Samples  int             // x values evaluated
	Kept     int             // samples with a finite value
}

// Dropped returns the number of samples discarded as non-finite.
func (r Result) Dropped() int {
	return r.Samples - r.Kept
}

// Sample evaluates expression at every sample position of vp and connects
// consecutive finite values into screen segments. A non-finite value breaks
// the curve, as does a value whose screen position overflows (1e308 on a
// small y range) and a jump straight across the visible range (a pole such
// as tan(x) near pi/2). The first evaluation failure aborts the whole request.
func Sample(expression string, vp model.Viewport) (Result, error) {
	src := strings.TrimSpace(expression)
	if src == "" {
		return Result{}, ErrEmptyInput
	}
	if err := vp.Validate(); err != nil {
		return Result{}, err
	}

	compiled, err := expr.Parse(src)
	if err != nil {
		return Result{}, &EvaluationError{Expression: src, X: math.NaN(), Cause: err}
	}

	res := Result{Samples: vp.SampleCount()}
	var (
		prevY      float64
		prevScreen model.Point
		havePrev   bool
	)

	for i := 0; i < res.Samples; i++ {
		x := vp.SampleX(i)
		y, err := compiled.Eval(x)
		if err != nil {
			return Result{}, &EvaluationError{Expression: src, X: x, Cause: err}
		}
		if math.IsNaN(y) || math.IsInf(y, 0) {
			havePrev = false
			continue
		}

		screen := vp.ToScreen(x, y)
		if !finite(screen) {
			havePrev = false
			continue
		}

		res.Kept++
		if havePrev && !crossesRange(prevY, y, vp) {
			res.Segments = append(res.Segments, model.Segment{From: prevScreen, To: screen})
		}
		prevY, prevScreen, havePrev = y, screen, true
	}

	return res, nil
}

// crossesRange reports whether a and b sit on opposite sides outside the
// vertical range of vp. A steep continuous curve whose neighbouring samples
// overshoot both edges, such as 100*sin(30*x), is split there as well.
func crossesRange(a, b float64, vp model.Viewport) bool {
	return (a > vp.YMax && b < vp.YMin) || (a < vp.YMin && b > vp.YMax)
}

func finite(p model.Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
