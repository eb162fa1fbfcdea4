package match

import "laptudirm.com/x/tictactoe/pkg/engine"

// PairResult represents the result of a single game pair.
type PairResult int

const (
	WinWin   = PairResult(Win + Win)   // Engine wins both games
	WinDraw  = PairResult(Win + Draw)  // Engine wins one and holds the other
	DrawDraw = PairResult(Draw + Draw) // Win-Loss or Draw-Draw
	DrawLoss = PairResult(Draw + Loss) // Opponent wins one and holds the other
	LossLoss = PairResult(Loss + Loss) // Opponent wins both games
)

// GetPairResult returns the PairResult given the Result of each game in the
// pair. Game 1 should have the engine playing X and game 2 playing O.
func GetPairResult(result1, result2 Result) PairResult {
	return PairResult(result1 + result2)
}

// Result represents the result of a single game, from the engine's side.
type Result int

const (
	Win  Result = +1
	Draw Result = 0
	Loss Result = -1
)

// resultOf converts a finished game's outcome to the engine's Result.
func resultOf(e *engine.Engine, outcome engine.Outcome) Result {
	switch {
	case outcome.Draw:
		return Draw
	case outcome.Winner == e.Computer():
		return Win
	default:
		return Loss
	}
}

// String returns a string representation of the given Result.
func (result Result) String() string {
	switch result {
	case Win:
		return "1-0"
	case Draw:
		return "1/2-1/2"
	case Loss:
		return "0-1"
	default:
		return "?-?"
	}
}
