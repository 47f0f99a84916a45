// Package node implements the per-tile ingress and egress tasks: ingress
// drains up to four inbound links and routes each
// packet to arrival or to one of four directional inner queues; egress
// arbitrates across those four queues plus local injection and pushes each
// packet onto the chosen outbound link.
package node

import (
	"context"
	"errors"

	"github.com/JasperDavidson/mesh-sim/direction"
	"github.com/JasperDavidson/mesh-sim/event"
	"github.com/JasperDavidson/mesh-sim/link"
	"github.com/JasperDavidson/mesh-sim/packet"
	"github.com/JasperDavidson/mesh-sim/ratelimit"
)

// Node is one tile of the mesh. It is constructed once by the grid builder
// and owned by the grid for the process lifetime; Ingress and Egress hold
// only the references they need, never mutating anything outside their own
// queues and links.
type Node struct {
	X, Y uint8

	// Inbound links, one per cardinal direction. A nil entry means the
	// tile has no neighbor on that side (a boundary edge) — used directly
	// as a never-ready select branch.
	InUp, InDown, InLeft, InRight link.Link

	// Outbound links, symmetric to the inbound set.
	OutUp, OutDown, OutLeft, OutRight link.Link

	// Inner queues, keyed by the *ingress* direction that fed them (plus
	// Local, for harness injection) — an arbitrary but fixed choice; what
	// matters is that egress arbitrates fairly across all five.
	QueueUp, QueueDown, QueueLeft, QueueRight, QueueLocal link.InnerQueue

	Events chan<- event.Event

	TxPacer, RxPacer *ratelimit.Pacer

	Logger Logger
}

// outbound looks up the outbound link for a direction, or nil if the tile
// has no neighbor that way.
func (n *Node) outbound(d direction.Direction) link.Link {
	switch d {
	case direction.Up:
		return n.OutUp
	case direction.Down:
		return n.OutDown
	case direction.Left:
		return n.OutLeft
	case direction.Right:
		return n.OutRight
	default:
		return nil
	}
}

// RunIngress drains the node's inbound links and the grid's task spawner
// runs it for the lifetime of the process; there is no graceful shutdown
// in the core routing contract. It returns only if ctx is canceled or a
// channel closes out from under it.
func (n *Node) RunIngress(ctx context.Context) error {
	for {
		var (
			hdr *packet.Header
			ok  bool
			dir direction.Direction
		)

		select {
		case <-ctx.Done():
			return ctx.Err()

		case hdr, ok = <-n.InUp:
			dir = direction.Up
		case hdr, ok = <-n.InDown:
			dir = direction.Down
		case hdr, ok = <-n.InLeft:
			dir = direction.Left
		case hdr, ok = <-n.InRight:
			dir = direction.Right
		}

		if !ok {
			err := &ErrChannelClosed{X: n.X, Y: n.Y, Role: "ingress"}
			n.Logger.Err().Err(err).Log("ingress channel closed")
			return err
		}

		if n.RxPacer != nil {
			if err := n.RxPacer.Wait(ctx); err != nil {
				return err
			}
		}

		if err := n.deliver(ctx, hdr, dir); err != nil {
			return err
		}
	}
}

// deliver handles one arriving packet: update cur_pos, then either emit
// PacketArrived or forward to the inner queue named after dir.
func (n *Node) deliver(ctx context.Context, hdr *packet.Header, dir direction.Direction) error {
	// The inbound link is named for the direction it was sent on, not the
	// direction of travel: arriving via the "Up" link means the packet
	// moved downward. See packet.Advance's doc comment.
	hdr.CurPos = packet.Advance(hdr.CurPos, dir.Opposite())

	if hdr.Arrived() {
		n.Logger.Debug().
			Uint64("packet_id", hdr.ID).
			Str("at", hdr.CurPos.String()).
			Log("packet arrived")

		select {
		case n.Events <- event.PacketArrived{ID: hdr.ID, At: hdr.CurPos, Dest: hdr.DestPos}:
		case <-ctx.Done():
			return ctx.Err()
		}
		return nil
	}

	n.Logger.Debug().
		Uint64("packet_id", hdr.ID).
		Str("recv_dir", dir.String()).
		Str("at", hdr.CurPos.String()).
		Log("packet received")

	select {
	case n.Events <- event.PacketReceived{ID: hdr.ID, RecvDir: dir, At: hdr.CurPos}:
	case <-ctx.Done():
		return ctx.Err()
	}

	q := n.queueFor(dir)
	select {
	case q <- hdr:
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}

func (n *Node) queueFor(dir direction.Direction) link.InnerQueue {
	switch dir {
	case direction.Up:
		return n.QueueUp
	case direction.Down:
		return n.QueueDown
	case direction.Left:
		return n.QueueLeft
	default: // direction.Right
		return n.QueueRight
	}
}

// RunEgress arbitrates across the node's five inner queues (four
// directional plus local injection) and forwards each dequeued packet onto
// its next hop's outbound link. Like RunIngress, it runs until ctx is
// canceled or a channel closes.
func (n *Node) RunEgress(ctx context.Context) error {
	for {
		var (
			hdr *packet.Header
			ok  bool
		)

		select {
		case <-ctx.Done():
			return ctx.Err()

		case hdr, ok = <-n.QueueUp:
		case hdr, ok = <-n.QueueDown:
		case hdr, ok = <-n.QueueLeft:
		case hdr, ok = <-n.QueueRight:
		case hdr, ok = <-n.QueueLocal:
		}

		if !ok {
			err := &ErrChannelClosed{X: n.X, Y: n.Y, Role: "egress"}
			n.Logger.Err().Err(err).Log("egress channel closed")
			return err
		}

		if n.TxPacer != nil {
			if err := n.TxPacer.Wait(ctx); err != nil {
				return err
			}
		}

		if err := n.send(ctx, hdr); err != nil {
			return err
		}
	}
}

// send is the per-packet egress operation. A packet that has already
// reached its destination when dequeued only ever happens for a zero-hop
// local injection: ingress never places an already-arrived packet on a
// directional queue, so egress treats this case as immediate delivery,
// not an invariant violation.
func (n *Node) send(ctx context.Context, hdr *packet.Header) error {
	if hdr.Arrived() {
		n.Logger.Debug().
			Uint64("packet_id", hdr.ID).
			Str("at", hdr.CurPos.String()).
			Log("zero-hop packet arrived")

		select {
		case n.Events <- event.PacketArrived{ID: hdr.ID, At: hdr.CurPos, Dest: hdr.DestPos}:
		case <-ctx.Done():
			return ctx.Err()
		}
		return nil
	}

	sendDir, _ := hdr.NextHop()

	out := n.outbound(sendDir)
	if out == nil {
		err := &SendDirError{X: n.X, Y: n.Y, PacketID: hdr.ID, Direction: sendDir}
		n.Logger.Crit().Err(err).Log("no outbound link for planned hop")
		return err
	}

	n.Logger.Debug().
		Uint64("packet_id", hdr.ID).
		Str("send_dir", sendDir.String()).
		Str("from", hdr.CurPos.String()).
		Log("packet sent")

	select {
	case n.Events <- event.PacketSent{ID: hdr.ID, SendDir: sendDir, From: hdr.CurPos}:
	case <-ctx.Done():
		return ctx.Err()
	}

	hdr.Dir = sendDir
	hdr.Step++

	select {
	case out <- hdr:
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}

// IsFatal reports whether err represents a SendDirError — a programming
// invariant violation that should abort the offending task rather than be
// treated as an ordinary runtime condition.
func IsFatal(err error) bool {
	var sendDir *SendDirError
	return errors.As(err, &sendDir)
}
