package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bet",
		Short: "Bet ledger commands",
	}

	cmd.AddCommand(newBetPlaceCmd())
	cmd.AddCommand(newBetListCmd())

	return cmd
}

func newBetPlaceCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Place a bet on a named event",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			req := map[string]string{"name": name}
			var result Bet

			if err := client.Post("/api/v1/bets", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Bet name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newBetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all placed bets",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Bet
			if err := client.Get("/api/v1/bets", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
