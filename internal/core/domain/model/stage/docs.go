// Package stage models the production line: the Stage enum, the per-stage
// Config object (required measurement schema, verification gating, downstream
// stage) and the single-occupant Slot entity that enforces one active order
// per stage.
package stage
