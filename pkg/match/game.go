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

// Package match plays games between the engine and an opponent, either one
// at a time or as a tournament of game pairs.
package match

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/tictactoe/pkg/board"
	"laptudirm.com/x/tictactoe/pkg/engine"
)

var (
	ErrNoMoves    = errors.New("no moves left")
	ErrNoOpponent = errors.New("no opponent")
)

type Config struct {
	// Side is the side played by the opponent. The engine plays the other.
	Side board.Player

	Opponent Opponent

	// Observe, if set, is called before every move and once the game is
	// over, with the state of the game at that point.
	Observe func(Snapshot)
}

// Snapshot is the state of a game, as seen by an observer.
type Snapshot struct {
	Board board.Board
	Turn  board.Player

	// ComputerToMove is set when the engine will make the next move.
	ComputerToMove bool

	// Outcome is only valid once Over is set.
	Outcome engine.Outcome
	Over    bool
}

// Run plays a single game between the engine and the configured opponent
// and returns the game's Result from the engine's side of the board.
func Run(config *Config) (Result, engine.Outcome, error) {
	if config.Opponent == nil {
		return Draw, engine.Outcome{}, ErrNoOpponent
	}

	game := engine.New(config.Side)

	for {
		snapshot := Snapshot{
			Board:          game.Board(),
			Turn:           game.CurrentTurn(),
			ComputerToMove: game.CurrentTurn() == game.Computer(),
		}
		snapshot.Outcome, snapshot.Over = game.Outcome()

		if config.Observe != nil {
			config.Observe(snapshot)
		}

		if snapshot.Over {
			return resultOf(game, snapshot.Outcome), snapshot.Outcome, nil
		}

		var move board.Move
		if snapshot.ComputerToMove {
			move = game.BestMove()
		} else {
			var err error
			move, err = config.Opponent.Move(snapshot.Board, game.Human())
			if err != nil {
				return Draw, engine.Outcome{}, fmt.Errorf("%s: %w", config.Opponent.Name(), err)
			}
		}

		logrus.WithFields(logrus.Fields{
			"player": snapshot.Turn,
			"move":   move,
		}).Trace("match: move")

		// Illegal moves end the game here, the core never retries.
		if err := game.ApplyMove(move.Row, move.Col); err != nil {
			return Draw, engine.Outcome{}, fmt.Errorf("%s played %s: %w", snapshot.Turn, move, err)
		}
	}
}
