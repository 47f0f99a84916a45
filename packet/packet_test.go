package packet

import (
	"testing"

	"github.com/JasperDavidson/mesh-sim/direction"
)

func TestNewIDMonotonicAndUnique(t *testing.T) {
	seen := make(map[uint64]bool)
	var prev uint64
	for i := 0; i < 100; i++ {
		id := NewID()
		if id == 0 {
			t.Fatalf("id should never be zero")
		}
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
		if i > 0 && id <= prev {
			t.Fatalf("ids should be monotonically increasing: %d <= %d", id, prev)
		}
		prev = id
	}
}

func TestHeaderArrivedAndNextHop(t *testing.T) {
	h := New(Pos{X: 0, Y: 0}, Pos{X: 0, Y: 0}, Payload{})
	if !h.Arrived() {
		t.Fatalf("zero-hop header should be immediately arrived")
	}
	if _, ok := h.NextHop(); ok {
		t.Fatalf("arrived header should not have a next hop")
	}

	h2 := New(Pos{X: 0, Y: 0}, Pos{X: 2, Y: 0}, Payload{})
	h2.Path = []direction.Direction{direction.Right, direction.Right}
	if h2.Arrived() {
		t.Fatalf("header with pending path should not be arrived")
	}
	d, ok := h2.NextHop()
	if !ok || d != direction.Right {
		t.Fatalf("expected Right, got %v ok=%v", d, ok)
	}
	h2.Step++
	h2.Step++
	if !h2.Arrived() {
		t.Fatalf("header should be arrived after consuming the whole path")
	}
}

func TestAdvance(t *testing.T) {
	cases := []struct {
		dir  direction.Direction
		want Pos
	}{
		{direction.Up, Pos{X: 1, Y: 0}},
		{direction.Down, Pos{X: 1, Y: 2}},
		{direction.Left, Pos{X: 0, Y: 1}},
		{direction.Right, Pos{X: 2, Y: 1}},
	}
	start := Pos{X: 1, Y: 1}
	for _, tc := range cases {
		got := Advance(start, tc.dir)
		if got != tc.want {
			t.Errorf("Advance(%v, %v) = %v, want %v", start, tc.dir, got, tc.want)
		}
	}
}
