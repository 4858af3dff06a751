// Package render provides pathsearch.Renderer implementations.
//
//   - Text:     titled text frames (symbols or ANSI colour blocks), optional
//     pacing delay; Display is the one-shot text dump of a grid.
//   - PNG:      keeps the latest snapshot and encodes it as a PNG image.
//   - Recorder: keeps frames in memory as rows of symbols.
//
// Picture adapts a grid to image.Image; Palette fixes the colours: walls
// black, open white, start blue, end red, path green, frontier yellow.
package render
