// Package meshsim is the root of a 2D mesh Network-on-Chip simulator: a
// fleet of independently-scheduled routing tiles on a rectangular grid,
// connected by bounded links in the four cardinal directions, routing
// packets under a negative-first turn-restriction discipline that
// guarantees deadlock freedom over bounded channels.
//
// The concurrent routing fabric is the whole of this module's contract.
// See package direction for the cardinal-direction model and turn
// restriction, package packet for the wire-level header and payload,
// package planner for the path-planning algorithm, package link for the
// bounded channel types, package node for the per-tile ingress/egress
// tasks, and package grid for the builder and harness-facing interface
// (grid.Init, Grid.Node, Grid.SendPacket).
//
// The process entry point, CLI, workload generation, and any payload
// semantics are intentionally out of scope — see the design notes in
// DESIGN.md.
package meshsim
