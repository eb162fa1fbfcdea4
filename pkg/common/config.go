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

package common

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/tictactoe/pkg/board"
	"laptudirm.com/x/tictactoe/pkg/match"
)

type Config struct {
	// Side played by the human in `play`. If empty, the side is asked for
	// at the start of every game.
	Side string `yaml:"side"`

	Color   bool `yaml:"color"`   // Colour the marks on the board.
	Spinner bool `yaml:"spinner"` // Show a spinner while the computer thinks.

	Match match.TournamentConfig `yaml:"match"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Color:   true,
		Spinner: true,

		Match: match.TournamentConfig{
			Opponent:    "random",
			Pairs:       50,
			Concurrency: 4,
		},
	}
}

// LoadConfig reads the configuration file at the given path. Keys missing
// from the file keep their default values, and a missing file is the same
// as an empty one.
func LoadConfig(path string) (Config, error) {
	config := Default()

	file, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logrus.WithField("path", path).Debug("config: no config file, using defaults")
		return config, nil
	case err != nil:
		return config, fmt.Errorf("load config: %w", err)
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		return config, fmt.Errorf("load config %s: %w", path, err)
	}

	if config.Side != "" {
		if _, err := board.NewPlayer(config.Side); err != nil {
			return config, fmt.Errorf("load config %s: side: %w", path, err)
		}
	}

	return config, nil
}

// Dump writes the configuration to the given path, creating its directory
// if necessary.
func (config Config) Dump(path string) error {
	file, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), FilePermissions); err != nil {
		return err
	}

	return os.WriteFile(path, file, 0644)
}
