package model

import "math"

// ClipMargin is how far past the surface edge a clipped segment may reach,
// so stroke caps on the border are still painted.
const ClipMargin = 2.0

// clipEdge is one side of the clip rectangle in Liang-Barsky form.
type clipEdge struct {
	p, q  float64
	onX   bool
	bound float64
}

// Clip trims s to the rectangle [xMin,xMax]×[yMin,yMax]. It reports false
// when no part of s lies inside or when s has non-finite coordinates.
// Endpoints moved onto an edge take that edge's exact coordinate, which
// keeps the result inside the rectangle even for segments that start
// astronomically far away.
func (s Segment) Clip(xMin, yMin, xMax, yMax float64) (Segment, bool) {
	dx := s.To.X - s.From.X
	dy := s.To.Y - s.From.Y
	for _, v := range [...]float64{s.From.X, s.From.Y, s.To.X, s.To.Y, dx, dy} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Segment{}, false
		}
	}

	edges := [4]clipEdge{
		{p: -dx, q: s.From.X - xMin, onX: true, bound: xMin},
		{p: dx, q: xMax - s.From.X, onX: true, bound: xMax},
		{p: -dy, q: s.From.Y - yMin, bound: yMin},
		{p: dy, q: yMax - s.From.Y, bound: yMax},
	}

	t0, t1 := 0.0, 1.0
	var enter, leave *clipEdge
	for i := range edges {
		e := &edges[i]
		if e.p == 0 {
			if e.q < 0 {
				return Segment{}, false
			}
			continue
		}
		t := e.q / e.p
		if e.p < 0 {
			if t > t1 {
				return Segment{}, false
			}
			if t > t0 {
				t0, enter = t, e
			}
		} else {
			if t < t0 {
				return Segment{}, false
			}
			if t < t1 {
				t1, leave = t, e
			}
		}
	}

	out := s
	if enter != nil {
		out.From = enter.point(s, dx, dy, t0, xMin, yMin, xMax, yMax)
	}
	if leave != nil {
		out.To = leave.point(s, dx, dy, t1, xMin, yMin, xMax, yMax)
	}
	return out, true
}

func (e *clipEdge) point(s Segment, dx, dy, t, xMin, yMin, xMax, yMax float64) Point {
	p := Point{
		X: clamp(s.From.X+t*dx, xMin, xMax),
		Y: clamp(s.From.Y+t*dy, yMin, yMax),
	}
	if e.onX {
		p.X = e.bound
	} else {
		p.Y = e.bound
	}
	return p
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ClipToSurface clips s to the pixel surface widened by ClipMargin.
func (v Viewport) ClipToSurface(s Segment) (Segment, bool) {
	return s.Clip(-ClipMargin, -ClipMargin, float64(v.Width)+ClipMargin, float64(v.Height)+ClipMargin)
}
