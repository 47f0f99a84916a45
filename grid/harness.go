package grid

import (
	"context"

	"github.com/JasperDavidson/mesh-sim/node"
	"github.com/JasperDavidson/mesh-sim/packet"
	"github.com/JasperDavidson/mesh-sim/planner"
)

// SendPacket looks up the source tile from pkt.CurPos, plans the path via
// the planner from CurPos to DestPos, stamps the header, and enqueues it
// on that tile's local injection queue. The tile's egress task then picks
// it up: for a normal packet it produces the first hop, and for a
// zero-hop packet (source == destination) it emits PacketArrived
// immediately.
func (g *Grid) SendPacket(ctx context.Context, pkt *packet.Header) error {
	n, err := g.Node(int(pkt.CurPos.X), int(pkt.CurPos.Y))
	if err != nil {
		return err
	}
	return SendPacketToNode(ctx, g.width, g.height, n, pkt)
}

// SendPacketToNode is the free-function form of SendPacket, for callers
// that already hold a *node.Node. It plans pkt's path from pkt.CurPos to
// pkt.DestPos, stamps its step counter to 0, and enqueues pkt on n's local
// injection queue.
func SendPacketToNode(ctx context.Context, width, height int, n *node.Node, pkt *packet.Header) error {
	path, err := planner.Plan(width, height, pkt.CurPos, pkt.DestPos)
	if err != nil {
		return err
	}

	pkt.Path = path
	pkt.Step = 0

	select {
	case n.QueueLocal <- pkt:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
