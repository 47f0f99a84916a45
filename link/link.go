// Package link provides the two bounded-channel primitives the routing
// fabric is built from: Link, a directed inter-tile connection, and
// InnerQueue, a directed intra-tile connection from a node's ingress task
// to its egress task.
package link

import "github.com/JasperDavidson/mesh-sim/packet"

// Link is a directed, bounded FIFO channel carrying packets between two
// adjacent tiles. Exactly one task owns the receive side; any number of
// tasks may hold the send side (in practice: exactly one, the neighbor's
// egress task).
type Link chan *packet.Header

// NewLink allocates a Link with the given capacity (recommended default
// 2).
func NewLink(capacity int) Link {
	return make(Link, capacity)
}

// InnerQueue is a directed, bounded FIFO channel internal to one tile,
// running from its ingress task to its egress task. One exists per
// cardinal direction plus one for local injection (recommended default
// 4).
type InnerQueue chan *packet.Header

// NewInnerQueue allocates an InnerQueue with the given capacity.
func NewInnerQueue(capacity int) InnerQueue {
	return make(InnerQueue, capacity)
}
