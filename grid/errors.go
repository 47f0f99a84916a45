package grid

import "fmt"

// OutOfBoundsError is returned by Grid.Node when a coordinate lookup falls
// outside the grid. BadRow and BadCol distinguish which axis faulted;
// both may be set.
type OutOfBoundsError struct {
	Width, Height  int
	X, Y           int
	BadRow, BadCol bool
}

func (e *OutOfBoundsError) Error() string {
	switch {
	case e.BadRow && e.BadCol:
		return fmt.Sprintf("grid: (%d,%d) out of bounds for %dx%d grid (row and column)", e.X, e.Y, e.Width, e.Height)
	case e.BadRow:
		return fmt.Sprintf("grid: (%d,%d) out of bounds for %dx%d grid (row)", e.X, e.Y, e.Width, e.Height)
	default:
		return fmt.Sprintf("grid: (%d,%d) out of bounds for %dx%d grid (column)", e.X, e.Y, e.Width, e.Height)
	}
}
