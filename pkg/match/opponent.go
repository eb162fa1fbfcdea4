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

package match

import (
	"fmt"
	"math/rand/v2"

	"laptudirm.com/x/tictactoe/pkg/board"
	"laptudirm.com/x/tictactoe/pkg/engine"
)

// Opponent is the player on the other side of the engine. The human
// player of the command line is an Opponent too.
type Opponent interface {
	Name() string

	// Move returns the opponent's move for the given board, on which it
	// plays the given side. The move should be legal; opponents which
	// read their moves from a user are responsible for re-prompting.
	Move(b board.Board, side board.Player) (board.Move, error)
}

// NewOpponent returns the built-in opponent with the given name. The seed
// is only used by opponents which make random choices.
func NewOpponent(name string, seed uint64) (Opponent, error) {
	switch name {
	case "random":
		return NewRandom(seed), nil
	case "perfect":
		return Perfect{}, nil
	default:
		return nil, fmt.Errorf("new opponent: invalid opponent %s", name)
	}
}

// Random plays a uniformly random empty cell.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (*Random) Name() string {
	return "random"
}

func (random *Random) Move(b board.Board, _ board.Player) (board.Move, error) {
	moves := b.Moves()
	if len(moves) == 0 {
		return board.NoMove, ErrNoMoves
	}

	return moves[random.rng.IntN(len(moves))], nil
}

// Perfect plays the engine's own search for its side, so a game against it
// always ends in a draw.
type Perfect struct{}

func (Perfect) Name() string {
	return "perfect"
}

func (Perfect) Move(b board.Board, side board.Player) (board.Move, error) {
	move := engine.Search(b, side)
	if move == board.NoMove {
		return move, ErrNoMoves
	}

	return move, nil
}
