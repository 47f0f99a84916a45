package node

import "fmt"

// ErrChannelClosed is returned by a task's run loop when one of its
// channels closes out from under it. This terminates only
// the affected task; the process (and the rest of the grid) continues.
type ErrChannelClosed struct {
	X, Y uint8
	Role string // "ingress" or "egress"
}

func (e *ErrChannelClosed) Error() string {
	return fmt.Sprintf("node(%d,%d): %s task: channel closed", e.X, e.Y, e.Role)
}

// SendDirError indicates egress was asked to forward a packet toward a
// direction with no outbound link — a planner bug, since the planner is
// contractually forbidden from emitting a hop that crosses a grid
// boundary. This is a programming invariant violation: the
// offending task aborts rather than attempting to recover.
type SendDirError struct {
	X, Y      uint8
	PacketID  uint64
	Direction fmt.Stringer
}

func (e *SendDirError) Error() string {
	return fmt.Sprintf("node(%d,%d): packet %d: no outbound link for direction %s", e.X, e.Y, e.PacketID, e.Direction)
}
