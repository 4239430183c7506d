// Package render turns a discovered path into text: the coordinate sequence
// and a copy of the maze with every path cell replaced by a marker.
//
// Rendering is a pure function of (grid, path); the grid is never mutated.
// Callers report "no path" themselves instead of rendering a nil path.
//
// Default markers follow the classic console output: 0 = open, 1 = wall,
// 8 = path. WithMarkers replaces them, WithColor highlights path cells with
// ANSI escape codes.
package render
