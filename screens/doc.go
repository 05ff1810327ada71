// Package screens holds the modal layers stacked over the page: the jump
// palette and the intro splash. Screens own their key handling while on top
// of the stack; the page underneath stays frozen.
package screens
