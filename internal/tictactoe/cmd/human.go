package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/tictactoe/pkg/board"
)

// human is the Opponent for a person at the terminal. It asks for a move
// until it reads one which is legal on the board.
type human struct {
	in  *bufio.Scanner
	out io.Writer
}

func (*human) Name() string {
	return "human"
}

func (h *human) Move(b board.Board, _ board.Player) (board.Move, error) {
	for {
		fmt.Fprint(h.out, "Your turn (<row><col>, 11-33): ")

		line, err := h.readLine()
		if err != nil {
			return board.NoMove, err
		}

		move, err := board.ParseMove(line)
		if err != nil {
			logrus.Debug(err)
			continue
		}

		if !b.IsEmpty(move.Row, move.Col) {
			logrus.WithField("move", move).Debug("human: cell is occupied")
			continue
		}

		return move, nil
	}
}

// readLine reads the next line of input, returning io.EOF once the input
// has been exhausted.
func (h *human) readLine() (string, error) {
	if !h.in.Scan() {
		if err := h.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return h.in.Text(), nil
}
