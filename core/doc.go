// Package core contains app-wide contracts and state orchestration.
//
// Allowed here:
// - the navigation store, screen routing, message contracts, command and key registries
// - chrome rendering shared by every signed-in screen (top bar, sidebar, logout confirmation)
// - view lifetimes used to scope scheduled work to the mounted screen
//
// Not allowed here:
// - concrete screen/overlay rendering implementations
// - low-level widget rendering primitives
package core
