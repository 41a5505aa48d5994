package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	diceorch "github.com/KirkDiggler/rpg-story/internal/orchestrators/dice"
)

var rollCmd = &cobra.Command{
	Use:   "roll <notation>",
	Short: "Roll dice such as 1d6 or 2d6+3",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			return rollNotation(ctx, a.dice, args[0], cmd.OutOrStdout())
		})
	},
}

func rollNotation(ctx context.Context, svc diceorch.Service, notation string, w io.Writer) error {
	out, err := svc.RollNotation(ctx, &diceorch.RollNotationInput{Notation: notation})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, out.Description)
	return nil
}
