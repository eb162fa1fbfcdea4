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
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/tictactoe/pkg/match"
)

// tictactoe match
func Match() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Run a tournament between the computer and a built-in opponent",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`match plays game pairs between the computer and one of the
			built-in opponents and reports the computer's score and elo.
			The computer plays X in the first game of every pair and O in
			the second one. With --save, the options given as flags are
			written to the config file and used by later matches.

			The available opponents are 'random', which plays a random
			empty cell, and 'perfect', which plays like the computer.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			tourConfig := config.Match

			if cmd.Flag("opponent").Changed {
				tourConfig.Opponent, _ = cmd.Flags().GetString("opponent")
			}
			if cmd.Flag("pairs").Changed {
				tourConfig.Pairs, _ = cmd.Flags().GetInt("pairs")
			}
			if cmd.Flag("concurrency").Changed {
				tourConfig.Concurrency, _ = cmd.Flags().GetInt("concurrency")
			}
			if cmd.Flag("seed").Changed {
				tourConfig.Seed, _ = cmd.Flags().GetUint64("seed")
			}

			tour, err := match.NewTournament(tourConfig)
			if err != nil {
				return err
			}

			config.Match = tourConfig
			if err := saveConfig(cmd); err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"opponent":    tourConfig.Opponent,
				"pairs":       tourConfig.Pairs,
				"concurrency": tourConfig.Concurrency,
			}).Info("Starting tournament")

			summary := tour.Start()
			tour.Report(cmd.OutOrStdout())

			if summary.Errors > 0 {
				return fmt.Errorf("%d games could not be finished", summary.Errors)
			}

			return nil
		},
	}

	cmd.Flags().StringP("opponent", "o", "", "Opponent to play against (random, perfect)")
	cmd.Flags().IntP("pairs", "p", 0, "Number of game pairs to play")
	cmd.Flags().IntP("concurrency", "c", 0, "Number of games to play at once")
	cmd.Flags().Uint64("seed", 0, "Seed for the random opponent")
	cmd.Flags().Bool("save", false, "Save the match options to the config file")

	return cmd
}
