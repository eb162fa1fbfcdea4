package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/tictactoe/pkg/common"
)

// every cell in row-major order; the human skips the ones already taken.
const everyCell = "11\n12\n13\n21\n22\n23\n31\n32\n33\n"

func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	// Keep the user's own config file out of the tests.
	return runWithConfig(t, filepath.Join(t.TempDir(), "config.yaml"), input, args...)
}

func runWithConfig(t *testing.T, path, input string, args ...string) (string, error) {
	t.Helper()

	root := Root()
	out := new(bytes.Buffer)
	root.SetIn(strings.NewReader(input))
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(append(args, "--config", path))

	err := root.Execute()
	return out.String(), err
}

func TestPlayAsX(t *testing.T) {
	out, err := run(t, everyCell, "play", "--side", "x")
	require.NoError(t, err)

	assert.Contains(t, out, "Your turn (<row><col>, 11-33): ")
	assert.Contains(t, out, "CPU's turn.")
	assert.Contains(t, out, "O wins!")
	assert.NotContains(t, out, "X wins!")
	assert.Contains(t, out, "X | X | O\n---------\nX | O |  \n---------\nO |   |  \n")
}

func TestPlayAsO(t *testing.T) {
	out, err := run(t, everyCell, "play", "--side", "o")
	require.NoError(t, err)

	assert.Contains(t, out, "X wins!")
	assert.NotContains(t, out, "O wins!")
}

func TestPlayRejectsBadInput(t *testing.T) {
	out, err := run(t, "44\nhello\n\n"+everyCell, "play", "-s", "x")
	require.NoError(t, err)

	// Three rejected lines and then the first real move.
	first := strings.Index(out, "CPU's turn.")
	require.Positive(t, first)
	assert.Equal(t, 4, strings.Count(out[:first], "Your turn"))
}

func TestPlayInvalidSide(t *testing.T) {
	_, err := run(t, "", "play", "--side", "z")
	assert.Error(t, err)
}

func TestPlayMenu(t *testing.T) {
	out, err := run(t, "z\nq\n", "play")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "Enter 'X' or 'O' ('q' to quit): "))
	assert.NotContains(t, out, "Your turn")
}

func TestPlayMenuGameThenEOF(t *testing.T) {
	out, err := run(t, "O\n"+everyCell, "play")
	require.NoError(t, err)

	// Moves left over once the game is won are rejected by the side prompt
	// until the input runs out.
	won := strings.Index(out, "X wins!")
	require.Positive(t, won)
	assert.Equal(t, 1, strings.Count(out[:won], "Enter 'X' or 'O'"))
	assert.True(t, strings.HasSuffix(out, "Enter 'X' or 'O' ('q' to quit): "))
}

func TestPlaySideFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("side: o\n"), 0644))

	out, err := runWithConfig(t, path, everyCell, "play")
	require.NoError(t, err)
	assert.Contains(t, out, "X wins!")
	assert.NotContains(t, out, "Enter 'X' or 'O'")
}

func TestAnalyse(t *testing.T) {
	out, err := run(t, "", "analyse", "xx-/oo-/x--")
	require.NoError(t, err)

	assert.Contains(t, out, "Scores for O:\n  13  draw\n  23  win\n  32  loss\n  33  loss\n")
	assert.Contains(t, out, "Best move: 23")
}

func TestAnalyseSide(t *testing.T) {
	out, err := run(t, "", "analyse", ".../.../...", "--side", "o")
	require.NoError(t, err)
	assert.Contains(t, out, "Scores for O:")
	assert.Contains(t, out, "Best move: 11")
}

func TestAnalyseEmptyFirstCell(t *testing.T) {
	out, err := run(t, "", "analyse", ".../.../...")
	require.NoError(t, err)
	assert.Contains(t, out, "Scores for X:")
	assert.Contains(t, out, "Best move: 11")

	out, err = run(t, "", "analyse", ".x./.x./o..")
	require.NoError(t, err)
	assert.Contains(t, out, "Scores for O:")
	assert.Contains(t, out, "Best move: 32")
}

func TestAnalyseFinished(t *testing.T) {
	out, err := run(t, "", "analyse", "xxx/oo-/---")
	require.NoError(t, err)
	assert.Contains(t, out, "Game over: X wins")

	out, err = run(t, "", "analyse", "xox/xoo/oxx")
	require.NoError(t, err)
	assert.Contains(t, out, "Game over: Draw")
}

func TestAnalyseBadBoard(t *testing.T) {
	_, err := run(t, "", "analyse", "xx/oo/x")
	assert.Error(t, err)
}

func TestMatch(t *testing.T) {
	out, err := run(t, "", "match", "--opponent", "perfect", "--pairs", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "engine")
	assert.Contains(t, out, "perfect")
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	_, err := runWithConfig(t, path, "", "match", "--opponent", "perfect", "--pairs", "1", "--seed", "7", "--save")
	require.NoError(t, err)

	saved, err := common.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "perfect", saved.Match.Opponent)
	assert.Equal(t, 1, saved.Match.Pairs)
	assert.Equal(t, uint64(7), saved.Match.Seed)
	assert.Empty(t, saved.Side)

	_, err = runWithConfig(t, path, everyCell, "play", "--side", "o", "--save")
	require.NoError(t, err)

	saved, err = common.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "o", saved.Side)
	assert.Equal(t, "perfect", saved.Match.Opponent)
}

func TestNoSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	_, err := runWithConfig(t, path, "", "match", "--opponent", "perfect", "--pairs", "1")
	require.NoError(t, err)
	assert.NoFileExists(t, path)
}

func TestMatchInvalidOpponent(t *testing.T) {
	_, err := run(t, "", "match", "--opponent", "nobody")
	assert.Error(t, err)
}
