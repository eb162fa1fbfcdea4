package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"golang.org/x/term"

	"laptudirm.com/x/tictactoe/pkg/board"
)

const SPIN = 14

// isTerminal checks if w writes to a terminal. Colours and the spinner are
// only shown on terminals.
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

type renderer struct {
	out  io.Writer
	x, o *color.Color
	spin *spinner.Spinner
}

func newRenderer(out io.Writer) *renderer {
	r := &renderer{
		out: out,
		x:   color.New(color.FgRed, color.Bold),
		o:   color.New(color.FgBlue, color.Bold),
	}

	if config.Color && isTerminal(out) {
		r.x.EnableColor()
		r.o.EnableColor()
	} else {
		r.x.DisableColor()
		r.o.DisableColor()
	}

	if config.Spinner && isTerminal(out) {
		r.spin = spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, spinner.WithWriter(out))
		r.spin.Suffix = " thinking..."
	}

	return r
}

func (r *renderer) mark(mark board.Mark) string {
	switch mark {
	case board.X:
		return r.x.Sprint(mark)
	case board.O:
		return r.o.Sprint(mark)
	default:
		return mark.String()
	}
}

// Board prints the board as rows of cells separated by pipes, with a rule
// between the rows.
func (r *renderer) Board(b board.Board) {
	for row := range board.Size {
		for col := range board.Size {
			end := " | "
			if col == board.Size-1 {
				end = "\n"
			}
			fmt.Fprint(r.out, r.mark(b[row][col]), end)
		}

		if row < board.Size-1 {
			fmt.Fprintln(r.out, "---------")
		} else {
			fmt.Fprintln(r.out)
		}
	}
}

func (r *renderer) Separator() {
	fmt.Fprint(r.out, "\n=================================\n\n")
}

func (r *renderer) StartSpinner() {
	if r.spin != nil {
		r.spin.Start()
	}
}

func (r *renderer) PauseSpinner() {
	if r.spin != nil {
		r.spin.Stop()
	}
}
