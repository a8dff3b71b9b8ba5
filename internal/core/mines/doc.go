// Package mines implements the Minesweeper game engine.
//
// The engine owns one game instance: the mine layout, per-cell adjacency
// counts, reveal and flag marks, and the game status.
//
// # Board
//
// A Board is a rows x columns matrix of Cells generated once from a resolved
// Dimensions triple. Exactly Bombs cells hold a mine and at least one cell is
// safe. Boards are mutated in place by the reveal and flag operations and are
// never reshaped; a new size means a new Engine.
//
// # Status
//
// Status is derived from the board after every mutation by Evaluate and moves
// through a small state machine: in_progress may become won or lost, and both
// of those are terminal.
//
// # Display
//
// DisplayGrid is a read-only projection of the board into presentation tokens.
// It is rebuilt on each call and never stored.
//
// # Concurrency
//
// An Engine is owned by a single session and performs no locking. Every
// operation, including a full cascade reveal, runs to completion before it
// returns.
package mines
