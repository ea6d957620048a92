// Package curve implements the monotone 1-D lookup tables used for
// efficiency, BSFC and emission-rate curves: piecewise-linear
// interpolation on load_ratio in [0, 1], with clamped extrapolation at
// the endpoints.
package curve

import (
	"math"
	"sort"

	"github.com/ohowland/feems/internal/pkg/errs"
)

// Point is a single (x, y) sample of a Curve.
type Point struct {
	X float64
	Y float64
}

// Curve is a sorted set of points with strictly increasing X, looked
// up by piecewise-linear interpolation and clamped outside its domain.
type Curve struct {
	points []Point
	floor  float64
	ceil   float64
	hasClip bool
}

// New builds a Curve from points, which need not be pre-sorted. It
// returns a ConfigurationError if fewer than one point is given or if
// two points share an X value.
func New(points []Point) (Curve, error) {
	if len(points) == 0 {
		return Curve{}, &errs.ConfigurationError{Reason: "curve has no points"}
	}
	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].X == sorted[i-1].X {
			return Curve{}, &errs.ConfigurationError{Reason: "curve has duplicate x values"}
		}
	}
	return Curve{points: sorted}, nil
}

// NewFlat builds a single-valued curve, constant across all loads.
func NewFlat(value float64) Curve {
	return Curve{points: []Point{{X: 0, Y: value}, {X: 1, Y: value}}}
}

// NewWithFloorCeiling builds a Curve whose lookups are clamped to
// [floor, ceil] after interpolation. Used for efficiency curves, which
// carry a floor of 0.01 and a ceiling of 1.0.
func NewWithFloorCeiling(points []Point, floor, ceil float64) (Curve, error) {
	c, err := New(points)
	if err != nil {
		return Curve{}, err
	}
	c.floor = floor
	c.ceil = ceil
	c.hasClip = true
	return c, nil
}

// Lookup returns the interpolated value at x. Values below the first
// point or above the last point are clamped to the nearest endpoint.
func (c Curve) Lookup(x float64) (float64, error) {
	if len(c.points) == 0 {
		return 0, &errs.CurveDomain{Reason: "lookup on empty curve"}
	}
	if math.IsNaN(x) {
		return 0, &errs.CurveDomain{Reason: "lookup at NaN x"}
	}
	y := c.interpolate(x)
	if math.IsNaN(y) {
		return 0, &errs.CurveDomain{Reason: "curve produced NaN"}
	}
	if c.hasClip {
		y = clip(y, c.floor, c.ceil)
	}
	return y, nil
}

// LookupSlice evaluates Lookup over every element of xs.
func (c Curve) LookupSlice(xs []float64) ([]float64, error) {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		y, err := c.Lookup(x)
		if err != nil {
			return nil, err
		}
		ys[i] = y
	}
	return ys, nil
}

// MustLookup panics on a domain error; reserved for curves constructed
// and validated at startup (e.g. static regime tables).
func (c Curve) MustLookup(x float64) float64 {
	y, err := c.Lookup(x)
	if err != nil {
		panic(err)
	}
	return y
}

func (c Curve) interpolate(x float64) float64 {
	n := len(c.points)
	if x <= c.points[0].X {
		return c.points[0].Y
	}
	if x >= c.points[n-1].X {
		return c.points[n-1].Y
	}
	// binary search for the segment containing x
	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if c.points[mid].X <= x {
			lo = mid
		} else {
			hi = mid
		}
	}
	p0, p1 := c.points[lo], c.points[hi]
	frac := (x - p0.X) / (p1.X - p0.X)
	return p0.Y + frac*(p1.Y-p0.Y)
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EfficiencyFloor and EfficiencyCeiling are the mandatory bounds on
// every reported component efficiency (spec §3, §8).
const (
	EfficiencyFloor   = 0.01
	EfficiencyCeiling = 1.0
)

// NewEfficiencyCurve builds a Curve pre-configured with the mandatory
// efficiency floor/ceiling.
func NewEfficiencyCurve(points []Point) (Curve, error) {
	return NewWithFloorCeiling(points, EfficiencyFloor, EfficiencyCeiling)
}

// IsEmpty reports whether c was never constructed via New/NewFlat
// (the zero Curve), used by constructors to reject a missing required
// curve.
func (c Curve) IsEmpty() bool {
	return len(c.points) == 0
}
