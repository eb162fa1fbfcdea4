package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/tictactoe/pkg/board"
)

func mustParse(t *testing.T, str string) board.Board {
	t.Helper()
	b, err := board.Parse(str)
	require.NoError(t, err)
	return b
}

func TestWinnerEveryLine(t *testing.T) {
	lines := [][3]board.Move{
		{{0, 0}, {0, 1}, {0, 2}},
		{{1, 0}, {1, 1}, {1, 2}},
		{{2, 0}, {2, 1}, {2, 2}},
		{{0, 0}, {1, 0}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}},
		{{0, 2}, {1, 2}, {2, 2}},
		{{0, 0}, {1, 1}, {2, 2}},
		{{0, 2}, {1, 1}, {2, 0}},
	}

	for _, mark := range []board.Mark{board.X, board.O} {
		for _, line := range lines {
			var b board.Board
			for _, cell := range line {
				b = b.WithMove(cell.Row, cell.Col, mark)
			}

			winner, ok := b.Winner()
			assert.True(t, ok, "line %v of %s", line, mark)
			assert.Equal(t, mark, winner, "line %v of %s", line, mark)
			assert.True(t, b.IsTerminal())
			assert.False(t, b.IsFull())
		}
	}
}

func TestWinnerNone(t *testing.T) {
	tests := []string{
		"---/---/---",
		"xx-/oo-/---",
		"xo-/-x-/o-o",
		"xox/xoo/oxx",
	}

	for _, tt := range tests {
		t.Run(tt, func(t *testing.T) {
			_, ok := mustParse(t, tt).Winner()
			assert.False(t, ok)
		})
	}
}

func TestWinnerChecksXFirst(t *testing.T) {
	// Unreachable in a real game, but the detector must still be stable.
	b := mustParse(t, "xxx/ooo/---")
	winner, ok := b.Winner()
	require.True(t, ok)
	assert.Equal(t, board.X, winner)
}

func TestDraw(t *testing.T) {
	b := mustParse(t, "xox/xoo/oxx")
	assert.True(t, b.IsFull())
	assert.True(t, b.IsTerminal())
	assert.Empty(t, b.Moves())

	_, ok := b.Winner()
	assert.False(t, ok)
}

func TestWithMoveCopies(t *testing.T) {
	original := mustParse(t, "x--/-o-/---")
	before := original

	moved := original.WithMove(2, 2, board.X)

	assert.Equal(t, before, original)
	for row := range board.Size {
		for col := range board.Size {
			if row == 2 && col == 2 {
				assert.True(t, original.IsEmpty(row, col))
				assert.Equal(t, board.X, moved[row][col])
				continue
			}
			assert.Equal(t, original[row][col], moved[row][col], "cell %d%d", row, col)
		}
	}
}

func TestWithMovePanicsOnOccupied(t *testing.T) {
	b := mustParse(t, "x--/---/---")
	assert.Panics(t, func() { b.WithMove(0, 0, board.O) })
	assert.Panics(t, func() { b.WithMove(1, 1, board.Empty) })
}

func TestMovesRowMajor(t *testing.T) {
	b := mustParse(t, "x-o/-x-/oo-")
	assert.Equal(t, []board.Move{{0, 1}, {1, 0}, {1, 2}, {2, 2}}, b.Moves())
}

func TestSideToMove(t *testing.T) {
	assert.Equal(t, board.PlayerX, mustParse(t, "---/---/---").SideToMove())
	assert.Equal(t, board.PlayerO, mustParse(t, "---/-x-/---").SideToMove())
	assert.Equal(t, board.PlayerX, mustParse(t, "o--/-x-/---").SideToMove())
}

func TestPlayer(t *testing.T) {
	for _, player := range []board.Player{board.PlayerX, board.PlayerO} {
		assert.Equal(t, player, player.Other().Other())
		assert.NotEqual(t, player, player.Other())

		back, ok := player.Mark().Player()
		require.True(t, ok)
		assert.Equal(t, player, back)
	}

	_, ok := board.Empty.Player()
	assert.False(t, ok)

	p, err := board.NewPlayer("O")
	require.NoError(t, err)
	assert.Equal(t, board.PlayerO, p)

	_, err = board.NewPlayer("z")
	assert.ErrorIs(t, err, board.ErrInvalidPlayer)
}

func TestParseMove(t *testing.T) {
	move, err := board.ParseMove("23")
	require.NoError(t, err)
	assert.Equal(t, board.Move{Row: 1, Col: 2}, move)
	assert.Equal(t, "23", move.String())

	for _, bad := range []string{"", "1", "123", "04", "40", "a1", "1-"} {
		_, err := board.ParseMove(bad)
		assert.ErrorIs(t, err, board.ErrInvalidMove, "input %q", bad)
	}
}

func TestNotation(t *testing.T) {
	b := mustParse(t, "X.o/.x./..O")
	assert.Equal(t, "x.o/.x./..o", b.String())
	assert.Equal(t, board.X, b[0][0])
	assert.Equal(t, board.O, b[2][2])

	// Dashes are read as empty cells too.
	assert.Equal(t, b, mustParse(t, "x-o/-x-/--o"))
	assert.Equal(t, board.Board{}, mustParse(t, ".../.../..."))
	assert.Equal(t, ".../.../...", board.Board{}.String())

	for _, bad := range []string{"", "---/---", "---/---/--", "---/-?-/---", "---/---/---/---"} {
		_, err := board.Parse(bad)
		assert.ErrorIs(t, err, board.ErrInvalidBoard, "input %q", bad)
	}
}
