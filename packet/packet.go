// Package packet models the data carried through the mesh: tile positions,
// opaque payloads, and the packet header that the planner stamps at
// injection time and the routing fabric mutates hop by hop.
package packet

import (
	"fmt"
	"sync/atomic"

	"github.com/JasperDavidson/mesh-sim/direction"
)

// Pos is a tile coordinate on the grid. X grows to the right, Y grows
// downward.
type Pos struct {
	X, Y uint8
}

// String implements fmt.Stringer.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Payload is an opaque variant the core never inspects. Exactly one of the
// fields is meaningful, selected by Kind.
type Payload struct {
	Kind    PayloadKind
	Message string
	Integer uint64
}

// PayloadKind tags which field of Payload is populated.
type PayloadKind uint8

const (
	// Default is the zero-value payload kind: no message, no integer.
	Default PayloadKind = iota
	Message
	Integer
)

// nextID is a process-wide monotonic packet id allocator. IDs are unique
// for the lifetime of the process.
var nextID uint64

// NewID allocates the next process-unique packet id.
func NewID() uint64 {
	return atomic.AddUint64(&nextID, 1)
}

// Header is the mutable state carried by a packet as it moves through the
// fabric. Path is stamped once, at injection, by the planner; Step
// advances by one per hop; CurPos is updated by ingress on every arrival.
type Header struct {
	ID      uint64
	Dir     direction.Direction
	Path    []direction.Direction
	Step    int
	CurPos  Pos
	DestPos Pos
	Payload Payload
}

// New constructs a Header for a packet about to be planned and injected.
// Path and Step are left zero; grid.SendPacket (or grid.SendPacketToNode)
// is responsible for planning and stamping Path.
func New(cur, dest Pos, payload Payload) *Header {
	return &Header{
		ID:      NewID(),
		Dir:     direction.Init,
		CurPos:  cur,
		DestPos: dest,
		Payload: payload,
	}
}

// Arrived reports whether the packet has exhausted its planned path
// (invariant: CurPos == DestPos iff Step == len(Path)).
func (h *Header) Arrived() bool {
	return h.Step == len(h.Path)
}

// NextHop returns the direction of the packet's next hop and true, or
// (Init, false) if the path is exhausted.
func (h *Header) NextHop() (direction.Direction, bool) {
	if h.Arrived() {
		return direction.Init, false
	}
	return h.Path[h.Step], true
}

// Advance moves cur one step in direction d, applying d's delta directly.
// Used by the planner to walk a candidate path, and by ingress (package
// node) to update CurPos — ingress applies d.Opposite(), since the inbound
// link is named for the direction it was sent on, not the direction the
// packet is now moving (see package node for the arrival convention).
func Advance(cur Pos, d direction.Direction) Pos {
	dx, dy := d.Delta()
	return Pos{X: uint8(int(cur.X) + dx), Y: uint8(int(cur.Y) + dy)}
}
