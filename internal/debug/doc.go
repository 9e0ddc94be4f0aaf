// Package debug provides debug logging for gridlayout.
//
// When enabled via the -debug flag (a path, or "-" for standard error),
// measure and layout passes, grid mutations and session I/O are traced so a
// misbehaving layout can be diagnosed without disturbing the terminal UI.
package debug
