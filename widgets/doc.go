// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (pill rows, stacks, popup overlay compositor)
// - self-contained animation steppers driven by the host's tick loop
//
// Not allowed here:
// - key handling, app state transitions, scope logic, or panel policy
package widgets
