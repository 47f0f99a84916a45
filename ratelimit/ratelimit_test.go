package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestNewPacerZeroRateUnconstrained(t *testing.T) {
	p := NewPacer(0)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	for i := 0; i < 1000; i++ {
		if err := p.Wait(ctx); err != nil {
			t.Fatalf("unconstrained pacer should never error: %v", err)
		}
	}
}

func TestNewPacerNegativeRateUnconstrained(t *testing.T) {
	p := NewPacer(-5)
	ctx := context.Background()
	if err := p.Wait(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPacerThrottles(t *testing.T) {
	p := NewPacer(10) // 10 hops/sec
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	for i := 0; i < 15; i++ {
		if err := p.Wait(ctx); err != nil {
			t.Fatalf("Wait: %v", err)
		}
	}
	elapsed := time.Since(start)
	// 15 hops at 10/sec should take at least ~500ms (not instant).
	if elapsed < 300*time.Millisecond {
		t.Fatalf("expected pacing to introduce delay, elapsed=%v", elapsed)
	}
}

func TestPacerRespectsContextCancel(t *testing.T) {
	p := NewPacer(1) // 1/sec, easy to exhaust
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	// drain the single allowed slot
	_ = p.Wait(context.Background())

	err := p.Wait(ctx)
	if err == nil {
		t.Fatalf("expected context deadline error")
	}
}
