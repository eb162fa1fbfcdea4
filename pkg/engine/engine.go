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

// Package engine keeps the state of a single game between a human and the
// computer, and finds the computer's moves with an exhaustive minimax search.
package engine

import (
	"errors"
	"fmt"

	"laptudirm.com/x/tictactoe/pkg/board"
)

var (
	ErrOutOfRange = errors.New("move out of range")
	ErrOccupied   = errors.New("cell already occupied")
	ErrGameOver   = errors.New("game already finished")
)

// Engine owns the board of a game and tracks whose turn it is. It is the
// only thing which mutates the game's board.
type Engine struct {
	board board.Board

	human    board.Player
	computer board.Player

	turn board.Player
}

// New creates a new game, with an empty board, where the human plays the
// given side and the computer plays the other one.
func New(human board.Player) *Engine {
	return &Engine{
		human:    human,
		computer: human.Other(),
		turn:     board.First,
	}
}

// CurrentTurn returns the player who has to make the next move.
func (engine *Engine) CurrentTurn() board.Player {
	return engine.turn
}

func (engine *Engine) Human() board.Player {
	return engine.human
}

func (engine *Engine) Computer() board.Player {
	return engine.computer
}

// Board returns a snapshot of the current board. Changing the returned
// value doesn't affect the game.
func (engine *Engine) Board() board.Board {
	return engine.board
}

// ApplyMove places the mark of the player to move on the given cell and
// passes the turn to the other player. It validates the move itself, so
// both the human's and the computer's moves go through it.
func (engine *Engine) ApplyMove(row, col int) error {
	move := board.Move{Row: row, Col: col}

	switch {
	case engine.IsTerminal():
		return fmt.Errorf("%w: move %s", ErrGameOver, move)
	case !board.InRange(row, col):
		return fmt.Errorf("%w: row %d col %d", ErrOutOfRange, row, col)
	case !engine.board.IsEmpty(row, col):
		return fmt.Errorf("%w: move %s", ErrOccupied, move)
	}

	engine.board = engine.board.WithMove(row, col, engine.turn.Mark())
	engine.turn = engine.turn.Other()
	return nil
}

// IsTerminal reports whether the game has ended.
func (engine *Engine) IsTerminal() bool {
	return engine.board.IsTerminal()
}

// Outcome returns the result of the game. The second return value is false
// while the game is still ongoing.
func (engine *Engine) Outcome() (Outcome, bool) {
	if mark, won := engine.board.Winner(); won {
		winner, _ := mark.Player()
		return Outcome{Winner: winner}, true
	}

	if engine.board.IsFull() {
		return Outcome{Draw: true}, true
	}

	return Outcome{}, false
}

// BestMove returns the optimal move for the computer in the current
// position. It should only be called on the computer's turn in a game which
// hasn't ended yet; on a full board it returns board.NoMove.
func (engine *Engine) BestMove() board.Move {
	return Search(engine.board, engine.computer)
}

// Outcome is the result of a finished game: either a win for one of the
// players or a draw.
type Outcome struct {
	// Winner is only meaningful when Draw is false. A drawn Outcome leaves
	// it at its zero value, which is board.PlayerX.
	Winner board.Player
	Draw   bool
}

func (outcome Outcome) String() string {
	if outcome.Draw {
		return "Draw"
	}

	return outcome.Winner.String() + " wins"
}
