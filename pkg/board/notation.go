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

package board

import (
	"errors"
	"fmt"
	"strings"
)

// Move is a cell of the board, addressed by 0-based row and column.
type Move struct {
	Row, Col int
}

// NoMove is returned when a board has no empty cells left.
var NoMove = Move{-1, -1}

var ErrInvalidMove = errors.New("invalid move")

// ParseMove parses a move in the <row><col> format, where both the row and
// the column are numbered from 1 to 3, so "11" is the top-left corner and
// "33" is the bottom-right one.
func ParseMove(str string) (Move, error) {
	str = strings.TrimSpace(str)
	if len(str) != 2 {
		return NoMove, fmt.Errorf("%w: %q", ErrInvalidMove, str)
	}

	row, col := int(str[0])-'1', int(str[1])-'1'
	if !InRange(row, col) {
		return NoMove, fmt.Errorf("%w: %q", ErrInvalidMove, str)
	}

	return Move{row, col}, nil
}

// String returns the move in the <row><col> format.
func (move Move) String() string {
	if move == NoMove {
		return "00"
	}

	return fmt.Sprintf("%c%c", '1'+move.Row, '1'+move.Col)
}

var ErrInvalidBoard = errors.New("invalid board")

// Parse reads a board from its notation: three rows separated by slashes,
// from the top row down, with 'x' and 'o' for marked cells and '.' for
// empty ones. The empty board is ".../.../...". '-' is also read as an
// empty cell.
func Parse(str string) (Board, error) {
	var b Board

	rows := strings.Split(strings.TrimSpace(str), "/")
	if len(rows) != Size {
		return b, fmt.Errorf("%w: expected %d rows, found %d", ErrInvalidBoard, Size, len(rows))
	}

	for row, cells := range rows {
		if len(cells) != Size {
			return b, fmt.Errorf("%w: row %d has %d cells", ErrInvalidBoard, row+1, len(cells))
		}

		for col := range Size {
			switch cells[col] {
			case 'x', 'X':
				b[row][col] = X
			case 'o', 'O':
				b[row][col] = O
			case '.', '-':
				b[row][col] = Empty
			default:
				return b, fmt.Errorf("%w: unexpected %q in row %d", ErrInvalidBoard, cells[col], row+1)
			}
		}
	}

	return b, nil
}

// String returns the notation of the board, see Parse.
func (b Board) String() string {
	var str strings.Builder
	for row := range Size {
		if row > 0 {
			str.WriteByte('/')
		}

		for col := range Size {
			switch b[row][col] {
			case X:
				str.WriteByte('x')
			case O:
				str.WriteByte('o')
			default:
				str.WriteByte('.')
			}
		}
	}

	return str.String()
}
