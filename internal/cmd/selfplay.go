package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

func SelfPlay() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Let the engine play a full game against itself",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			first, err := cmd.Flags().GetString("first")
			if err != nil {
				return err
			}

			_, err = playSelf(cmd.OutOrStdout(), entity.Player(strings.ToUpper(first)))
			return err
		},
	}

	cmd.Flags().StringP("first", "f", string(entity.PlayerX), "Player moving first (X or O)")

	return cmd
}

// playSelf - plays best moves for both sides from an empty grid, printing each
// move and the final grid to w.
func playSelf(w io.Writer, first entity.Player, opts ...tictactoe.Option) (entity.Outcome, error) {
	engine, err := tictactoe.NewEngine(append([]tictactoe.Option{tictactoe.WithFirstPlayer(first)}, opts...)...)
	if err != nil {
		return "", err
	}

	for turn := 1; !engine.IsTerminated(); turn++ {
		mover := engine.CurrentPlayer()

		position, err := engine.GetBestMove()
		if err != nil {
			return "", fmt.Errorf("failed to pick move %d: %w", turn, err)
		}

		if _, err = engine.MakeMove(position.Row, position.Col); err != nil {
			return "", fmt.Errorf("failed to play move %d: %w", turn, err)
		}

		fmt.Fprintf(w, "%d. %s %s\n", turn, mover, position)
	}

	fmt.Fprintf(w, "\n%s\n%s\n", renderGrid(engine.Grid()), engine.LastOutcome())

	return engine.LastOutcome(), nil
}

func renderGrid(grid entity.Grid) string {
	rows := make([]string, 0, entity.BoardSize)

	for _, row := range grid {
		cells := make([]string, 0, entity.BoardSize)
		for _, cell := range row {
			if cell == entity.EmptyCell {
				cells = append(cells, ".")
				continue
			}
			cells = append(cells, string(cell))
		}
		rows = append(rows, strings.Join(cells, " "))
	}

	return strings.Join(rows, "\n")
}
