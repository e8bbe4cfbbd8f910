package cmd

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/stakeapi/stakeapi-go/internal/output"
	"github.com/stakeapi/stakeapi-go/pkg/stakeapi"
)

var (
	betGameID    string
	betEventID   string
	betType      string
	betAmount    string
	betCurrency  string
	betOdds      float64
	betSelection string

	betsLimit int
)

var betCmd = &cobra.Command{
	Use:   "bet",
	Short: "Place or cancel wagers",
}

var betPlaceCmd = &cobra.Command{
	Use:   "place",
	Short: "Place a wager",
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := decimal.NewFromString(betAmount)
		if err != nil {
			return &stakeapi.ValidationError{Field: "amount", Message: "must be a decimal number"}
		}

		req := stakeapi.BetRequest{
			GameID:    betGameID,
			EventID:   betEventID,
			BetType:   betType,
			Amount:    amount,
			Currency:  betCurrency,
			Selection: betSelection,
		}
		if cmd.Flags().Changed("odds") {
			req.Odds = &betOdds
		}

		return withSession(cmd.Context(), func(ctx context.Context, c *stakeapi.Client) error {
			placed, err := c.PlaceBet(ctx, req)
			if err != nil {
				return err
			}
			return render(placed, func() string { return output.BetsTable([]stakeapi.Bet{placed}) })
		})
	},
}

var betCancelCmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Cancel a pending wager",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd.Context(), func(ctx context.Context, c *stakeapi.Client) error {
			cancelled, err := c.CancelBet(ctx, args[0])
			if err != nil {
				return err
			}
			return render(cancelled, func() string { return output.BetsTable([]stakeapi.Bet{cancelled}) })
		})
	},
}

var betsCmd = &cobra.Command{
	Use:   "bets",
	Short: "List bet history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd.Context(), func(ctx context.Context, c *stakeapi.Client) error {
			bets, err := c.BetHistory(ctx, stakeapi.BetHistoryOptions{Limit: betsLimit})
			if err != nil {
				return err
			}
			return render(bets, func() string { return output.BetsTable(bets) })
		})
	},
}

func init() {
	betPlaceCmd.Flags().StringVar(&betGameID, "game", "", "casino game id")
	betPlaceCmd.Flags().StringVar(&betEventID, "event", "", "sports event id")
	betPlaceCmd.Flags().StringVar(&betType, "type", "", "bet type")
	betPlaceCmd.Flags().StringVar(&betAmount, "amount", "", "stake amount")
	betPlaceCmd.Flags().StringVar(&betCurrency, "currency", "usd", "stake currency")
	betPlaceCmd.Flags().Float64Var(&betOdds, "odds", 0, "accepted odds")
	betPlaceCmd.Flags().StringVar(&betSelection, "selection", "", "market selection")
	_ = betPlaceCmd.MarkFlagRequired("type")
	_ = betPlaceCmd.MarkFlagRequired("amount")

	betsCmd.Flags().IntVar(&betsLimit, "limit", 0, "maximum bets to return")

	betCmd.AddCommand(betPlaceCmd, betCancelCmd)
	rootCmd.AddCommand(betCmd, betsCmd)
}
