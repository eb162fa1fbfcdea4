package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"laptudirm.com/x/tictactoe/pkg/stats"
)

func TestEloNoGames(t *testing.T) {
	lower, elo, upper := stats.Elo(0, 0, 0)
	assert.Zero(t, lower)
	assert.Zero(t, elo)
	assert.Zero(t, upper)
}

func TestEloEvenScore(t *testing.T) {
	lower, elo, upper := stats.Elo(10, 20, 10)
	assert.InDelta(t, 0, elo, 1e-9)
	assert.Less(t, lower, elo)
	assert.Greater(t, upper, elo)
	assert.InDelta(t, -lower, upper, 1e-9)
}

func TestEloWinningScore(t *testing.T) {
	_, elo, _ := stats.Elo(50, 0, 0)
	assert.Zero(t, elo, "a perfect score has no finite elo")

	// 75% expected score is about +191 elo.
	_, elo, _ = stats.Elo(30, 30, 0)
	assert.InDelta(t, 190.85, elo, 0.1)
}

func TestPentaElo(t *testing.T) {
	lower, elo, upper := stats.PentaElo(0, 0, 0, 0, 0)
	assert.Zero(t, lower+elo+upper)

	lower, elo, upper = stats.PentaElo(5, 10, 20, 10, 5)
	assert.InDelta(t, 0, elo, 1e-9)
	assert.Less(t, lower, 0.0)
	assert.Greater(t, upper, 0.0)

	_, elo, _ = stats.PentaElo(0, 0, 10, 10, 0)
	assert.Greater(t, elo, 0.0)
}
