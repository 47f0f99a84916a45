// Package event defines the lifecycle events the routing fabric emits on
// its global event stream, and a bounded collector used
// by harnesses and tests to observe a run without blocking forever.
package event

import (
	"github.com/JasperDavidson/mesh-sim/direction"
	"github.com/JasperDavidson/mesh-sim/packet"
)

// Event is the sum type of the three lifecycle events. The unexported
// method confines implementations to this package.
type Event interface {
	isEvent()
}

// PacketSent is emitted by egress when a packet is pushed onto an outbound
// link.
type PacketSent struct {
	ID      uint64
	SendDir direction.Direction
	From    packet.Pos
}

// PacketReceived is emitted by ingress when a packet arrives at an
// intermediate tile and is forwarded to an inner queue.
type PacketReceived struct {
	ID      uint64
	RecvDir direction.Direction
	At      packet.Pos
}

// PacketArrived is emitted by ingress when a packet's path is exhausted at
// the tile that received it.
type PacketArrived struct {
	ID   uint64
	At   packet.Pos
	Dest packet.Pos
}

func (PacketSent) isEvent()     {}
func (PacketReceived) isEvent() {}
func (PacketArrived) isEvent()  {}
