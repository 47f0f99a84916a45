// Package planner implements the negative-first path planner: given a
// source and destination tile on a W×H grid, it produces the
// Manhattan-optimal hop sequence that never takes a prohibited turn
// (Up->Left or Right->Down), guaranteeing the ensemble of all planned paths
// is deadlock-free over bounded channels.
package planner

import (
	"fmt"

	"github.com/JasperDavidson/mesh-sim/direction"
	"github.com/JasperDavidson/mesh-sim/packet"
)

// OutOfBounds indicates a coordinate lookup failed because a row or column
// fell outside [0, dimension). BadRow and BadCol distinguish which axis faulted
// (both may be set).
type OutOfBounds struct {
	Width, Height  int
	Pos            packet.Pos
	BadRow, BadCol bool
}

func (e *OutOfBounds) Error() string {
	switch {
	case e.BadRow && e.BadCol:
		return fmt.Sprintf("planner: position %v out of bounds for %dx%d grid (row and column)", e.Pos, e.Width, e.Height)
	case e.BadRow:
		return fmt.Sprintf("planner: position %v out of bounds for %dx%d grid (row)", e.Pos, e.Width, e.Height)
	default:
		return fmt.Sprintf("planner: position %v out of bounds for %dx%d grid (column)", e.Pos, e.Width, e.Height)
	}
}

func checkBounds(width, height int, p packet.Pos) error {
	badCol := int(p.X) >= width
	badRow := int(p.Y) >= height
	if badCol || badRow {
		return &OutOfBounds{Width: width, Height: height, Pos: p, BadRow: badRow, BadCol: badCol}
	}
	return nil
}

// preference is one row of the primary/fallback direction table.
type preference struct {
	primary, fallback direction.Direction
}

// choose picks the (primary, fallback) pair for the current Manhattan gap,
// per the primary/fallback direction table. Exactly one of the eight rows always
// applies, given src != dst (the caller handles the zero-hop case).
func choose(dx, dy int) preference {
	switch {
	case dx > 0 && dy > 0:
		return preference{direction.Down, direction.Right}
	case dx > 0 && dy < 0:
		return preference{direction.Up, direction.Right}
	case dx < 0 && dy > 0:
		return preference{direction.Left, direction.Down}
	case dx < 0 && dy < 0:
		return preference{direction.Left, direction.Up}
	case dx == 0 && dy < 0:
		return preference{direction.Up, direction.Down}
	case dx == 0 && dy > 0:
		return preference{direction.Down, direction.Up}
	case dx < 0 && dy == 0:
		return preference{direction.Left, direction.Right}
	default: // dx > 0 && dy == 0
		return preference{direction.Right, direction.Left}
	}
}

// Plan computes the negative-first hop sequence from src to dst on a
// width×height grid. It returns an error if either endpoint is out of
// bounds. A zero-hop request (src == dst) returns a nil, empty path and no
// error.
func Plan(width, height int, src, dst packet.Pos) ([]direction.Direction, error) {
	if err := checkBounds(width, height, src); err != nil {
		return nil, err
	}
	if err := checkBounds(width, height, dst); err != nil {
		return nil, err
	}

	cur := src
	prev := direction.Init
	var path []direction.Direction

	for cur != dst {
		dx := int(dst.X) - int(cur.X)
		dy := int(dst.Y) - int(cur.Y)

		pref := choose(dx, dy)
		next := pref.primary
		if direction.ProhibitedTurn(prev, next) {
			next = pref.fallback
		}

		path = append(path, next)
		cur = packet.Advance(cur, next)
		prev = next
	}

	return path, nil
}
