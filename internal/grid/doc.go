// Package grid arranges a fixed number of children into uniformly sized
// cells of a rows by columns grid.
//
// Sizing is negotiated in two passes, the way view toolkits do it. Measure
// takes the constraint imposed by the parent, derives a cell size, asks every
// visible child to measure itself inside that cell and reports the size the
// grid wants. Layout takes the final size granted by the parent and places
// every visible child in its cell using row-major order.
//
// The arranger does not know about any concrete toolkit. Children are reached
// through the [Child] interface and host values such as padding and the
// suggested minimum size are passed in as options.
package grid
