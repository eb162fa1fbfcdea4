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
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/tictactoe/pkg/board"
	"laptudirm.com/x/tictactoe/pkg/stats"
)

var ErrNoPairs = errors.New("tournament needs at least one game pair")

type TournamentConfig struct {
	// Name of the built-in opponent the engine plays against.
	Opponent string `yaml:"opponent"`

	// 1 Tournament = {PAIRS} Game Pairs
	// 1 Game Pair  = 2 Games, the engine plays X in the first one.
	Pairs int `yaml:"pairs"`

	// Number of games that will be played concurrently.
	Concurrency int `yaml:"concurrency"`

	// Seed of the first game's opponent; game n uses Seed+n.
	Seed uint64 `yaml:"seed"`
}

func NewTournament(config TournamentConfig) (*Tournament, error) {
	if config.Pairs <= 0 {
		return nil, ErrNoPairs
	}

	if config.Concurrency <= 0 {
		config.Concurrency = 1
	}

	// Fail early on an unknown opponent instead of inside every game.
	if _, err := NewOpponent(config.Opponent, config.Seed); err != nil {
		return nil, err
	}

	var tour Tournament
	tour.Config = config

	tour.games = make(chan *Game)
	tour.results = make(chan GameResult)
	tour.complete = make(chan bool)

	return &tour, nil
}

type Tournament struct {
	Config TournamentConfig

	games    chan *Game
	results  chan GameResult
	complete chan bool

	Summary Summary
}

// Summary is the score of the engine over a tournament.
type Summary struct {
	Wins, Draws, Losses int

	// Pairs counts the pentanomial results, indexed by PairResult-LossLoss.
	Pairs [5]int

	// Errors counts the games which couldn't be finished.
	Errors int
}

// Games returns the number of games which produced a result.
func (summary Summary) Games() int {
	return summary.Wins + summary.Draws + summary.Losses
}

// Pair returns the number of game pairs which ended with the given result.
func (summary Summary) Pair(result PairResult) int {
	if result < LossLoss || result > WinWin {
		return 0
	}

	return summary.Pairs[result-LossLoss]
}

// Game is a single game scheduled by a tournament.
type Game struct {
	Config

	Pair, Number int
}

// GameResult is the result of a finished Game.
type GameResult struct {
	Game *Game

	Result Result
	Err    error
}

func (result GameResult) String() string {
	if result.Err != nil {
		return "error: " + result.Err.Error()
	}

	return result.Result.String()
}

// Start plays all the games of the tournament and blocks until every one of
// them has finished, returning the engine's final score.
func (tour *Tournament) Start() Summary {
	go tour.ResultHandler()
	for i := 0; i < tour.Config.Concurrency; i++ {
		go tour.Thread()
	}

	for pair := 0; pair < tour.Config.Pairs; pair++ {
		for game := 0; game < 2; game++ {
			number := pair*2 + game + 1

			// NewTournament has already checked the opponent's name.
			opponent, _ := NewOpponent(tour.Config.Opponent, tour.Config.Seed+uint64(number))

			tour.games <- &Game{
				Config: Config{
					// The engine plays X in the first game of a pair.
					Side:     board.Player(game).Other(),
					Opponent: opponent,
				},

				Pair:   pair + 1,
				Number: number,
			}
		}
	}

	close(tour.games)
	<-tour.complete

	return tour.Summary
}

func (tour *Tournament) Thread() {
	for game := range tour.games {
		tour.RunGame(game)
	}
}

func (tour *Tournament) RunGame(game *Game) {
	logrus.Debugf(
		"\x1b[33mStarting\x1b[0m Pair #%d Game #%d: engine (%s) vs %s\n",
		game.Pair,
		game.Number,
		game.Side.Other(),
		game.Opponent.Name(),
	)

	result, _, err := Run(&game.Config)

	tour.results <- GameResult{
		Game:   game,
		Result: result,
		Err:    err,
	}
}

func (tour *Tournament) ResultHandler() {
	result_count := 0
	result_target := tour.Config.Pairs * 2

	// First game of every pair whose second game hasn't finished yet.
	halves := make(map[int]Result)

	for result := range tour.results {
		result_count++

		switch {
		case result.Err != nil:
			tour.Summary.Errors++
			logrus.Error(result.Err)

		default:
			switch result.Result {
			case Win:
				tour.Summary.Wins++
			case Draw:
				tour.Summary.Draws++
			case Loss:
				tour.Summary.Losses++
			}

			if other, found := halves[result.Game.Pair]; found {
				pair := GetPairResult(other, result.Result)
				tour.Summary.Pairs[pair-LossLoss]++
				delete(halves, result.Game.Pair)
			} else {
				halves[result.Game.Pair] = result.Result
			}
		}

		logrus.Infof(
			"\x1b[32mFinished\x1b[0m Pair #%d Game #%d: engine (%s) vs %s: %s\n",
			result.Game.Pair,
			result.Game.Number,
			result.Game.Side.Other(),
			result.Game.Opponent.Name(),
			result,
		)

		if result_count == result_target {
			close(tour.results)
			tour.complete <- true
			return
		}
	}
}

// Report prints the engine's score and Elo estimate against the opponent.
func (tour *Tournament) Report(w io.Writer) {
	score := tour.Summary
	lower, elo, upper := stats.Elo(score.Wins, score.Draws, score.Losses)
	pLower, pElo, pUpper := stats.PentaElo(
		score.Pair(LossLoss),
		score.Pair(DrawLoss),
		score.Pair(DrawDraw),
		score.Pair(WinDraw),
		score.Pair(WinWin),
	)

	fmt.Fprintln(w, "╔══════════════════════════════════════════════════════════╗")
	fmt.Fprintln(w, "║    Name               Elo Error   Wins Loss Draw   Total ║")
	fmt.Fprintln(w, "╠══════════════════════════════════════════════════════════╣")
	fmt.Fprintf(
		w,
		"║ %2d. %-15s   %+4.0f %4.0f   %4d %4d %4d   %5d ║\n",
		1, "engine",
		elo, math.Abs(math.Max(upper-elo, elo-lower)),
		score.Wins, score.Losses, score.Draws,
		score.Games(),
	)
	fmt.Fprintln(w, "╠══════════════════════════════════════════════════════════╣")
	fmt.Fprintf(
		w,
		"║ vs %-15s  Penta %+4.0f %4.0f  [%d, %d, %d, %d, %d] ║\n",
		tour.Config.Opponent,
		pElo, math.Abs(math.Max(pUpper-pElo, pElo-pLower)),
		score.Pair(LossLoss), score.Pair(DrawLoss), score.Pair(DrawDraw),
		score.Pair(WinDraw), score.Pair(WinWin),
	)
	fmt.Fprintln(w, "╚══════════════════════════════════════════════════════════╝")
}
