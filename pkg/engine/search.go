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

package engine

import (
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/tictactoe/pkg/board"
)

// Score is the minimax value of a position from the computer's point of
// view, under perfect play from both sides.
type Score int

const (
	Win  Score = +1
	Draw Score = 0
	Loss Score = -1

	// worst is lower than any real score.
	worst Score = Loss - 1
	// best is higher than any real score.
	best Score = Win + 1
)

// String returns a string representation of the given Score.
func (score Score) String() string {
	switch score {
	case Win:
		return "win"
	case Draw:
		return "draw"
	case Loss:
		return "loss"
	default:
		return "?"
	}
}

// Evaluation is the minimax score of playing a move.
type Evaluation struct {
	Move  board.Move
	Score Score
}

// Search returns the best move for the computer on the given board. Among
// equally good moves the first one in row-major order is chosen.
func Search(b board.Board, computer board.Player) board.Move {
	var search searcher
	bestMove, bestScore := board.NoMove, worst

	for _, move := range b.Moves() {
		child := b.WithMove(move.Row, move.Col, computer.Mark())
		score := search.minimax(child, computer, computer.Other())

		logrus.WithFields(logrus.Fields{
			"move":  move,
			"score": score,
		}).Trace("search: root move")

		if score > bestScore {
			bestMove, bestScore = move, score
		}

		// An immediate or forced win can't be replaced by a later move,
		// so the remaining moves needn't be searched.
		if bestScore == Win {
			break
		}
	}

	logrus.WithFields(logrus.Fields{
		"move":  bestMove,
		"score": bestScore,
		"nodes": search.nodes,
	}).Debug("search: finished")

	return bestMove
}

// Analyse evaluates every move for the computer on the given board, in
// row-major order. Unlike Search, every move is searched completely.
func Analyse(b board.Board, computer board.Player) []Evaluation {
	var search searcher
	moves := b.Moves()
	evaluations := make([]Evaluation, 0, len(moves))

	for _, move := range moves {
		child := b.WithMove(move.Row, move.Col, computer.Mark())
		evaluations = append(evaluations, Evaluation{
			Move:  move,
			Score: search.minimax(child, computer, computer.Other()),
		})
	}

	return evaluations
}

// Minimax returns the score of the given board for the computer, where
// toMove is the player who makes the next move.
func Minimax(b board.Board, computer, toMove board.Player) Score {
	var search searcher
	return search.minimax(b, computer, toMove)
}

// searcher counts the positions visited by a search.
type searcher struct {
	nodes int
}

func (search *searcher) minimax(b board.Board, computer, toMove board.Player) Score {
	search.nodes++

	if mark, won := b.Winner(); won {
		if mark == computer.Mark() {
			return Win
		}

		return Loss
	}

	if b.IsFull() {
		return Draw
	}

	// The computer picks the highest scoring child, the human the lowest.
	maximize := toMove == computer
	value := best
	if maximize {
		value = worst
	}

	for _, move := range b.Moves() {
		// b is a copy, so every child is a fresh board.
		child := b.WithMove(move.Row, move.Col, toMove.Mark())
		score := search.minimax(child, computer, toMove.Other())

		if maximize {
			value = max(value, score)
		} else {
			value = min(value, score)
		}
	}

	return value
}
