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

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/tictactoe/pkg/common"
)

// config is the configuration loaded before any command runs.
var config = common.Default()

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe against a computer which never loses",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// If --trace flag is provided, set logging level to Trace.
			switch {
			case cmd.Flag("trace").Changed:
				logrus.SetLevel(logrus.TraceLevel)
			case cmd.Flag("debug").Changed:
				logrus.SetLevel(logrus.DebugLevel)
			}

			path, _ := cmd.Flags().GetString("config")

			var err error
			config, err = common.LoadConfig(path)
			return err
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show tictactoe's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().BoolP("debug", "d", false, "Show Debug Information")
	root.PersistentFlags().String("config", common.ConfigFile, "Path to the configuration file")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// Register the various commands.
	root.AddCommand(Play())
	root.AddCommand(Match())
	root.AddCommand(Analyse())

	return root
}

// saveConfig writes the current configuration to the file given by the
// --config flag if the --save flag was provided.
func saveConfig(cmd *cobra.Command) error {
	if save, _ := cmd.Flags().GetBool("save"); !save {
		return nil
	}

	path, _ := cmd.Flags().GetString("config")
	if err := config.Dump(path); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	logrus.WithField("path", path).Info("Saved configuration")
	return nil
}
