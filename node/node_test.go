package node

import (
	"context"
	"testing"
	"time"

	"github.com/JasperDavidson/mesh-sim/direction"
	"github.com/JasperDavidson/mesh-sim/event"
	"github.com/JasperDavidson/mesh-sim/link"
	"github.com/JasperDavidson/mesh-sim/packet"
)

func newTestNode() (*Node, chan event.Event) {
	events := make(chan event.Event, 16)
	n := &Node{
		X: 1, Y: 1,
		InUp:    link.NewLink(2),
		InDown:  link.NewLink(2),
		InLeft:  link.NewLink(2),
		InRight: link.NewLink(2),

		OutUp:    link.NewLink(2),
		OutDown:  link.NewLink(2),
		OutLeft:  link.NewLink(2),
		OutRight: link.NewLink(2),

		QueueUp:    link.NewInnerQueue(4),
		QueueDown:  link.NewInnerQueue(4),
		QueueLeft:  link.NewInnerQueue(4),
		QueueRight: link.NewInnerQueue(4),
		QueueLocal: link.NewInnerQueue(4),

		Events: events,
		Logger: NopLogger(),
	}
	return n, events
}

func TestIngressCurPosUpdateConvention(t *testing.T) {
	// Arriving via the "Up" inbound link means the packet moved downward:
	// y increases. This pins that asymmetry explicitly.
	n, events := newTestNode()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	go func() { _ = n.RunIngress(ctx) }()

	hdr := packet.New(packet.Pos{X: 1, Y: 0}, packet.Pos{X: 1, Y: 2}, packet.Payload{})
	hdr.Path = []direction.Direction{direction.Down, direction.Down}
	hdr.Step = 1 // egress already advanced past this first Down hop; one hop remains

	n.InUp <- hdr

	select {
	case ev := <-events:
		recv, ok := ev.(event.PacketReceived)
		if !ok {
			t.Fatalf("expected PacketReceived, got %T", ev)
		}
		if recv.At.Y != 1 {
			t.Fatalf("expected y=1 after arriving via Up link, got %v", recv.At)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestIngressEmitsArrivedAndDropsPacket(t *testing.T) {
	n, events := newTestNode()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	go func() { _ = n.RunIngress(ctx) }()

	hdr := packet.New(packet.Pos{X: 1, Y: 2}, packet.Pos{X: 1, Y: 1}, packet.Payload{})
	hdr.Path = []direction.Direction{direction.Up}
	hdr.Step = 1 // exhausted: this is the final hop

	n.InDown <- hdr

	select {
	case ev := <-events:
		arr, ok := ev.(event.PacketArrived)
		if !ok {
			t.Fatalf("expected PacketArrived, got %T", ev)
		}
		if arr.At != (packet.Pos{X: 1, Y: 1}) {
			t.Fatalf("unexpected arrival position: %v", arr.At)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}

	select {
	case <-n.QueueDown:
		t.Fatal("an arrived packet should never be placed on an inner queue")
	default:
	}
}

func TestEgressAdvancesStepAndEmitsSent(t *testing.T) {
	n, events := newTestNode()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	go func() { _ = n.RunEgress(ctx) }()

	hdr := packet.New(packet.Pos{X: 1, Y: 1}, packet.Pos{X: 2, Y: 1}, packet.Payload{})
	hdr.Path = []direction.Direction{direction.Right}

	n.QueueLocal <- hdr

	select {
	case ev := <-events:
		sent, ok := ev.(event.PacketSent)
		if !ok {
			t.Fatalf("expected PacketSent, got %T", ev)
		}
		if sent.SendDir != direction.Right {
			t.Fatalf("expected Right, got %v", sent.SendDir)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}

	select {
	case got := <-n.OutRight:
		if got.Step != 1 {
			t.Fatalf("expected Step advanced to 1, got %d", got.Step)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for outbound packet")
	}
}

func TestEgressSendDirErrorOnMissingOutbound(t *testing.T) {
	n, _ := newTestNode()
	n.OutRight = nil // simulate a boundary tile: no outbound link east

	hdr := packet.New(packet.Pos{X: 1, Y: 1}, packet.Pos{X: 2, Y: 1}, packet.Payload{})
	hdr.Path = []direction.Direction{direction.Right}

	err := n.send(context.Background(), hdr)
	if err == nil {
		t.Fatal("expected a SendDirError")
	}
	if !IsFatal(err) {
		t.Fatalf("expected IsFatal(err) to be true, got err=%v", err)
	}
}
