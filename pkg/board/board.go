// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package board implements a 3x3 tic-tac-toe grid as a plain value type.
// Boards are never shared between positions: every move produces a copy.
package board

import "fmt"

// Size is the width and the height of the board.
const Size = 3

// Board represents a tic-tac-toe position. Since it is an array, assigning
// or passing a Board copies all of its cells.
type Board [Size][Size]Mark

// lines contains every winning line of the board: the rows, the columns,
// and the two diagonals.
var lines = [8][Size]Move{
	// Rows
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},

	// Columns
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},

	// Diagonals
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// IsEmpty reports whether the given cell has no mark on it. The coordinates
// are expected to be inside the board.
func (b Board) IsEmpty(row, col int) bool {
	return b[row][col] == Empty
}

// WithMove returns a copy of the board with the given mark placed at the
// given cell. The receiver is left untouched. Placing a mark on an occupied
// cell is a programming error and panics.
func (b Board) WithMove(row, col int, mark Mark) Board {
	if mark == Empty {
		panic("board: placing an empty mark")
	}

	if !b.IsEmpty(row, col) {
		panic(fmt.Sprintf("board: cell %s is already occupied", Move{row, col}))
	}

	b[row][col] = mark
	return b
}

// Winner returns the mark which has three in a row on the board. X's lines
// are checked before O's, so the result is deterministic even on boards
// which can't occur in a real game.
func (b Board) Winner() (Mark, bool) {
	for _, mark := range [...]Mark{X, O} {
		if b.hasLine(mark) {
			return mark, true
		}
	}

	return Empty, false
}

// hasLine checks if the given mark occupies every cell of any line.
func (b Board) hasLine(mark Mark) bool {
next:
	for _, line := range lines {
		for _, cell := range line {
			if b[cell.Row][cell.Col] != mark {
				continue next
			}
		}

		return true
	}

	return false
}

// IsFull reports whether every cell of the board is marked.
func (b Board) IsFull() bool {
	for row := range Size {
		for col := range Size {
			if b.IsEmpty(row, col) {
				return false
			}
		}
	}

	return true
}

// IsTerminal reports whether the game on this board is over.
func (b Board) IsTerminal() bool {
	_, won := b.Winner()
	return won || b.IsFull()
}

// Moves returns the empty cells of the board in row-major order.
func (b Board) Moves() []Move {
	moves := make([]Move, 0, Size*Size)
	for row := range Size {
		for col := range Size {
			if b.IsEmpty(row, col) {
				moves = append(moves, Move{row, col})
			}
		}
	}

	return moves
}

// Count returns the number of cells marked with the given mark.
func (b Board) Count(mark Mark) int {
	n := 0
	for row := range Size {
		for col := range Size {
			if b[row][col] == mark {
				n++
			}
		}
	}

	return n
}

// SideToMove infers whose turn it is from the number of marks on the
// board, X always moving first.
func (b Board) SideToMove() Player {
	if b.Count(X) > b.Count(O) {
		return PlayerO
	}

	return PlayerX
}

// InRange checks if the given coordinates lie inside the board.
func InRange(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}
