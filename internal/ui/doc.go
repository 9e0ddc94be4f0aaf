// Package ui provides rendering for the gridlayout terminal playground.
//
// Tile adapts a text label to grid.Child so the arranger can measure and
// place it. Canvas rasterizes placed tiles into styled terminal lines, and
// Render composes the full screen from RenderParams. Rendering is pure: it
// never mutates the grid.
package ui
