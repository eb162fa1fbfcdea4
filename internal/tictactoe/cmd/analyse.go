package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/tictactoe/pkg/board"
	"laptudirm.com/x/tictactoe/pkg/engine"
)

// tictactoe analyse
func Analyse() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyse board",
		Short: "Show the minimax score of every move on a board",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`analyse searches every move on the given board for the side
			to move, and prints the score of each along with the move the
			computer would play.

			Boards are written as three rows separated by slashes, from the
			top row down, using x and o for marked cells and . for an empty
			one. For example "x.o/.x./..." is a board where o has to block
			the diagonal, and ".../.../..." is the empty board.

			The side to move is worked out from the number of marks on the
			board, unless it is set with --side.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := board.Parse(args[0])
			if err != nil {
				return err
			}

			side := b.SideToMove()
			if cmd.Flag("side").Changed {
				str, _ := cmd.Flags().GetString("side")
				if side, err = board.NewPlayer(str); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			render := newRenderer(out)
			render.Board(b)

			if mark, won := b.Winner(); won {
				fmt.Fprintf(out, "Game over: %s wins\n", mark)
				return nil
			}
			if b.IsFull() {
				fmt.Fprintln(out, "Game over: Draw")
				return nil
			}

			fmt.Fprintf(out, "Scores for %s:\n", side)
			for _, evaluation := range engine.Analyse(b, side) {
				fmt.Fprintf(out, "  %s  %s\n", evaluation.Move, evaluation.Score)
			}

			fmt.Fprintf(out, "Best move: %s\n", engine.Search(b, side))
			return nil
		},
	}

	cmd.Flags().StringP("side", "s", "", "Side to move, x or o")

	return cmd
}
