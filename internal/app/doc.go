// Package app provides the Bubble Tea playground for the grid arranger.
//
// The Model owns a grid.Grid populated with ui.Tile children. Every key
// that changes geometry goes through the grid's validated setters; rejected
// mutations are reported in the status line and leave the grid untouched.
// Whenever the grid reports it needs layout, the model measures it against
// the terminal and lays it out again before the next View.
package app
