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

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/tictactoe/pkg/board"
	"laptudirm.com/x/tictactoe/pkg/match"
)

// tictactoe play
func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game against the computer",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play starts a game of tic-tac-toe between you and the
			computer. X always moves first.

			If no side is given, either with --side or in the config file,
			you are asked which side to play before every game, and games
			continue until you quit with 'q'.

			Moves are entered as <row><col>, with rows and columns numbered
			from 1 to 3: 11 is the top-left corner and 33 the bottom-right.

			With --save, the given side is written to the config file and
			used by later games.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			side := config.Side
			if cmd.Flag("side").Changed {
				side, _ = cmd.Flags().GetString("side")
			}

			var player board.Player
			if side != "" {
				var err error
				if player, err = board.NewPlayer(side); err != nil {
					return err
				}
			}

			config.Side = side
			if err := saveConfig(cmd); err != nil {
				return err
			}

			session := &session{
				in:     bufio.NewScanner(cmd.InOrStdin()),
				render: newRenderer(cmd.OutOrStdout()),
			}

			// A fixed side plays a single game.
			if side != "" {
				session.render.Separator()
				if err := session.play(player); err != nil && !errors.Is(err, io.EOF) {
					return err
				}
				return nil
			}

			return session.menu()
		},
	}

	cmd.Flags().StringP("side", "s", "", "Side to play, x or o")
	cmd.Flags().Bool("save", false, "Save the side to the config file")

	return cmd
}

// session is a run of the play command. Its games share the same input.
type session struct {
	in     *bufio.Scanner
	render *renderer
}

// menu repeatedly asks for a side and plays a game with it, like the
// classic prompt, until the user quits or the input ends.
func (session *session) menu() error {
	out := session.render.out
	session.render.Separator()

	for {
		var player board.Player
		for {
			fmt.Fprint(out, "Enter 'X' or 'O' ('q' to quit): ")
			if !session.in.Scan() {
				return session.in.Err()
			}

			input := strings.TrimSpace(session.in.Text())
			if input == "q" {
				return nil
			}

			var err error
			if player, err = board.NewPlayer(input); err == nil {
				break
			}
		}

		session.render.Separator()

		if err := session.play(player); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// play runs a single game with the human on the given side.
func (session *session) play(player board.Player) error {
	render := session.render
	out := render.out

	moves := 0
	result, outcome, err := match.Run(&match.Config{
		Side:     player,
		Opponent: &human{in: session.in, out: out},

		Observe: func(snapshot match.Snapshot) {
			render.PauseSpinner()
			if moves > 0 {
				render.Separator()
			}
			moves++

			render.Board(snapshot.Board)
			if !snapshot.Over && snapshot.ComputerToMove {
				fmt.Fprintln(out, "CPU's turn.")
				render.StartSpinner()
			}
		},
	})
	render.PauseSpinner()

	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"human":  player,
		"result": result,
	}).Debug("play: game finished")

	if outcome.Draw {
		fmt.Fprint(out, "Draw.\n\n")
	} else {
		fmt.Fprintf(out, "%s wins!\n\n", outcome.Winner)
	}

	return nil
}
