package task

import "fmt"

// Coordinate addresses one pixel of the raster.
type Coordinate struct {
	Column uint
	Row    uint
}

func (c *Coordinate) String() string {
	output := "{Coordinate "
	output += fmt.Sprintf("Column: %d ", c.Column)
	output += fmt.Sprintf("Row: %d}", c.Row)
	return output
}
