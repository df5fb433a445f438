package interp

import "math"

// Nearest returns x0 for t < 0.5 and x1 otherwise.
func Nearest(t, x0, x1 float64) float64 {
	if t < 0.5 {
		return x0
	}
	return x1
}

// Linear2 interpolates between x0 (t = 0) and x1 (t = 1).
func Linear2(t, x0, x1 float64) float64 {
	return (1-t)*x0 + t*x1
}

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}

// At returns x[i] with i clamped to [0, len(x)-1]. x must not be empty.
func At(x []float64, i int) float64 {
	return x[min(max(i, 0), len(x)-1)]
}

// split returns floor(pos), ceil(pos) and the fractional weight pos-floor(pos).
func split(pos float64) (lo, hi int, frac float64) {
	fl := math.Floor(pos)
	return int(fl), int(math.Ceil(pos)), pos - fl
}

// NearestAt reads x at pos by picking the closer of the floor and ceil
// neighbours. Halfway positions take the ceil neighbour.
func NearestAt(x []float64, pos float64) float64 {
	lo, hi, frac := split(pos)
	return Nearest(frac, At(x, lo), At(x, hi))
}

// LinearAt reads x at pos by blending the floor and ceil neighbours.
func LinearAt(x []float64, pos float64) float64 {
	lo, hi, frac := split(pos)
	return Linear2(frac, At(x, lo), At(x, hi))
}

// CubicAt reads x at pos with [Hermite4] through lo-1, lo, hi and hi+1.
func CubicAt(x []float64, pos float64) float64 {
	lo, hi, frac := split(pos)
	return Hermite4(frac, At(x, lo-1), At(x, lo), At(x, hi), At(x, hi+1))
}
