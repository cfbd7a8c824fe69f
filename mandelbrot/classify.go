package mandelbrot

import "fmt"

// EscapeRadius is the modulus past which an orbit is known to diverge.
const EscapeRadius = 2.0

// IterationResult is the outcome of iterating a single point.
type IterationResult struct {
	Escaped    bool
	Iterations uint32
}

// InSet reports whether the point survived every iteration without escaping.
func (r IterationResult) InSet() bool {
	return !r.Escaped
}

func (r IterationResult) String() string {
	return fmt.Sprintf("{IterationResult Escaped: %t Iterations: %d}", r.Escaped, r.Iterations)
}

// Classify runs the escape time algorithm z = z^2 + c starting at z = 0.
// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set#Unoptimized_na%C3%AFve_escape_time_algorithm
//
// Points close to the boundary can be misclassified as in the set for small maxIterations. Raising the
// bound only ever moves points from "in the set" to "escaped".
func Classify(c Point, maxIterations uint32) IterationResult {
	z := Point{}
	var iteration uint32
	for iteration < maxIterations && z.Modulus() < EscapeRadius {
		z = z.Square().Add(c)
		iteration++
	}

	return IterationResult{
		Escaped:    iteration < maxIterations,
		Iterations: iteration,
	}
}
