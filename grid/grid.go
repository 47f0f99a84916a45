// Package grid implements the grid builder and the harness-facing
// interface: constructing the W×H node array, cross-wiring links and
// inner queues, spawning the 2·W·H per-node tasks, and exposing injection
// plus the event stream.
package grid

import (
	"context"
	"sync"

	"github.com/JasperDavidson/mesh-sim/event"
	"github.com/JasperDavidson/mesh-sim/link"
	"github.com/JasperDavidson/mesh-sim/node"
	"github.com/JasperDavidson/mesh-sim/ratelimit"
)

// Grid owns the W×H node array, every link and inner queue, and the
// lifetime of the 2·W·H ingress/egress tasks for the process.
type Grid struct {
	width, height int
	nodes         [][]*node.Node // nodes[y][x]

	cancel context.CancelFunc
	done   sync.WaitGroup
}

// Option configures Init beyond the required Config.
type Option func(*options)

type options struct {
	logger node.Logger
}

// WithLogger attaches a structured logger (the ambient logging
// stack — see package node) to every spawned task. If omitted, a no-op
// logger is used.
func WithLogger(logger node.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Init builds the grid, wires every link and inner queue, spawns the
// 2·Width*Height tasks, and returns the grid plus a receive handle over its
// event stream — the grid construction operation,
// generalized to accept the full Config.
//
// The supplied ctx governs task lifetime: canceling it stops every ingress
// and egress task. There is no *required* graceful
// shutdown; ctx is provided so tests (and harnesses that want one) aren't
// forced to leak goroutines across runs.
func Init(ctx context.Context, cfg Config, opts ...Option) (*Grid, <-chan event.Event, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = node.NopLogger()
	}

	sender, receiver := event.NewStream()

	g := &Grid{width: cfg.Width, height: cfg.Height}

	taskCtx, cancel := context.WithCancel(ctx)
	g.cancel = cancel

	g.allocateNodes(cfg, sender, o.logger)
	g.wireLinks(cfg)
	g.spawnTasks(taskCtx)

	o.logger.Info().
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Int("link_buffer_size", cfg.LinkBufferSize).
		Int("inner_buffer_size", cfg.InnerBufferSize).
		Log("grid initialized")

	return g, receiver, nil
}

// allocateNodes performs the second construction step: for
// each tile in row-major order, allocate its node and local-injection
// queue. Cardinal links are wired separately, in wireLinks, once every
// node exists.
func (g *Grid) allocateNodes(cfg Config, sender event.Sender, logger node.Logger) {
	g.nodes = make([][]*node.Node, cfg.Height)

	for y := 0; y < cfg.Height; y++ {
		g.nodes[y] = make([]*node.Node, cfg.Width)
		for x := 0; x < cfg.Width; x++ {
			// Each node gets its own Pacer: catrate.Limiter tracks a
			// sliding window per instance, so sharing one across nodes
			// would understate every node's configured rate.
			g.nodes[y][x] = &node.Node{
				X: uint8(x), Y: uint8(y),

				QueueUp:    link.NewInnerQueue(cfg.InnerBufferSize),
				QueueDown:  link.NewInnerQueue(cfg.InnerBufferSize),
				QueueLeft:  link.NewInnerQueue(cfg.InnerBufferSize),
				QueueRight: link.NewInnerQueue(cfg.InnerBufferSize),
				QueueLocal: link.NewInnerQueue(cfg.InnerBufferSize),

				Events: sender,

				TxPacer: ratelimit.NewPacer(cfg.TxRate),
				RxPacer: ratelimit.NewPacer(cfg.RxRate),

				Logger: logger,
			}
		}
	}
}

// wireLinks performs construction-order step 2's link allocation: for each
// tile, allocate any not-yet-allocated cardinal links to in-bounds
// neighbors. The boundary guard is coord+1 < dimension — never
// coord < dimension, an off-by-one that would allocate off-grid links.
func (g *Grid) wireLinks(cfg Config) {
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			here := g.nodes[y][x]

			if x+1 < cfg.Width {
				right := g.nodes[y][x+1]
				toRight := link.NewLink(cfg.LinkBufferSize)
				toLeft := link.NewLink(cfg.LinkBufferSize)
				here.OutRight = toRight
				right.InLeft = toRight
				right.OutLeft = toLeft
				here.InRight = toLeft
			}

			if y+1 < cfg.Height {
				below := g.nodes[y+1][x]
				toDown := link.NewLink(cfg.LinkBufferSize)
				toUp := link.NewLink(cfg.LinkBufferSize)
				here.OutDown = toDown
				below.InUp = toDown
				below.OutUp = toUp
				here.InDown = toUp
			}
		}
	}
}

// spawnTasks performs construction-order step 3: after all tiles and
// links exist, spawn one ingress and one egress task per tile.
func (g *Grid) spawnTasks(ctx context.Context) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			n := g.nodes[y][x]

			g.done.Add(2)
			go func() {
				defer g.done.Done()
				_ = n.RunIngress(ctx)
			}()
			go func() {
				defer g.done.Done()
				_ = n.RunEgress(ctx)
			}()
		}
	}
}

// Width and Height are the grid's fixed dimensions.
func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Node looks up the tile at (x, y), the literal grid.node(x, y) operation
// .
func (g *Grid) Node(x, y int) (*node.Node, error) {
	badCol := x < 0 || x >= g.width
	badRow := y < 0 || y >= g.height
	if badCol || badRow {
		return nil, &OutOfBoundsError{Width: g.width, Height: g.height, X: x, Y: y, BadRow: badRow, BadCol: badCol}
	}
	return g.nodes[y][x], nil
}

// Shutdown cancels every task's context and waits for them to exit. This
// is a harness convenience beyond the core contract (nothing requires
// no graceful shutdown); it exists so tests can tear a grid down between
// cases instead of leaking goroutines for the life of the test binary.
func (g *Grid) Shutdown() {
	g.cancel()
	g.done.Wait()
}
