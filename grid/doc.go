// Package grid models a rectangular maze as a fixed array of cells.
//
// What:
//
//   - Cell is a closed enumeration: Wall, Open, Start, End, Frontier, OnPath.
//   - Grid stores H×W cells row-major and is never resized after New.
//   - Coord addresses cells as (row, col); Directions fixes the neighbour order.
//   - Parse/String round-trip the text dump used by tests and the CLI.
//   - ConnectedComponents/Reachable answer connectivity questions.
//
// Why:
//
//   - One shared model for generation, graph building, search and rendering.
//   - Frontier/OnPath are transient markings; ClearTransient removes them.
//
// Complexity:
//
//   - At/Set/InBounds:           O(1).
//   - Clone/Find/Count/Rows:     O(H×W).
//   - ConnectedComponents:       O(H×W), Memory: O(H×W).
//
// Errors:
//
//   - ErrInvalidDimensions: height or width even or below MinSize.
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: parsed rows of differing lengths.
//   - ErrUnknownSymbol: parsed rune with no Cell mapping.
package grid
