// Package core contains app-wide contracts and state orchestration.
//
// Allowed here:
// - model routing, message contracts, key registry, frame scheduling
// - shared state machines used across sections (segmented control, palette)
// - panel policy (how active pills map to visible panels)
//
// Not allowed here:
// - concrete screen/modal rendering implementations
// - low-level widget rendering primitives
package core
