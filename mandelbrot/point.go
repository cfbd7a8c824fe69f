package mandelbrot

import (
	"fmt"
	"math"
)

// Point is a location on the complex plane. Arithmetic never mutates the receiver.
type Point struct {
	Real      float64
	Imaginary float64
}

func (p Point) Square() Point {
	return Point{
		Real:      p.Real*p.Real - p.Imaginary*p.Imaginary,
		Imaginary: 2 * p.Real * p.Imaginary,
	}
}

func (p Point) Add(c Point) Point {
	return Point{
		Real:      p.Real + c.Real,
		Imaginary: p.Imaginary + c.Imaginary,
	}
}

func (p Point) Modulus() float64 {
	return math.Sqrt(p.Real*p.Real + p.Imaginary*p.Imaginary)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %gi)", p.Real, p.Imaginary)
}
