// Package app assembles the concrete page: section implementations over the
// core engine and the wiring that hands a finished model to main.
package app
