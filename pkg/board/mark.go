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

// Mark represents the contents of a single cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

// String returns the upper-case letter of the mark, or a space for an
// empty cell.
func (mark Mark) String() string {
	switch mark {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Player returns the player who places the given mark.
func (mark Mark) Player() (Player, bool) {
	switch mark {
	case X:
		return PlayerX, true
	case O:
		return PlayerO, true
	default:
		return 0, false
	}
}

// Player represents one of the two sides of a game.
type Player uint8

const (
	PlayerX Player = iota
	PlayerO
)

// First is the player who makes the first move of every game.
const First = PlayerX

var ErrInvalidPlayer = errors.New("invalid player")

// NewPlayer parses a player from its letter, ignoring case.
func NewPlayer(str string) (Player, error) {
	switch strings.ToLower(str) {
	case "x":
		return PlayerX, nil
	case "o":
		return PlayerO, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPlayer, str)
	}
}

// Mark returns the mark placed by the player.
func (player Player) Mark() Mark {
	if player == PlayerX {
		return X
	}

	return O
}

// Other returns the opponent of the player.
func (player Player) Other() Player {
	return player ^ 1
}

func (player Player) String() string {
	return player.Mark().String()
}
