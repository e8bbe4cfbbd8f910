package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stakeapi/stakeapi-go/internal/output"
	"github.com/stakeapi/stakeapi-go/pkg/stakeapi"
)

var (
	transactionsType  string
	transactionsLimit int
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the authenticated user's profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd.Context(), func(ctx context.Context, c *stakeapi.Client) error {
			user, err := c.UserProfile(ctx)
			if err != nil {
				return err
			}
			return render(user, func() string {
				verified := "no"
				if user.Verified {
					verified = "yes"
				}
				return fmt.Sprintf("%s (%s)\n  country: %s\n  currency: %s\n  verified: %s\n  member since: %s",
					user.Username, user.ID, user.Country, user.Currency, verified, user.CreatedAt.Format("2006-01-02"))
			})
		})
	},
}

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show per-currency balances",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd.Context(), func(ctx context.Context, c *stakeapi.Client) error {
			balances, err := c.UserBalance(ctx)
			if err != nil {
				return err
			}
			return render(balances, func() string { return output.BalancesTable(balances) })
		})
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime betting statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd.Context(), func(ctx context.Context, c *stakeapi.Client) error {
			stats, err := c.UserStatistics(ctx)
			if err != nil {
				return err
			}
			return render(stats, func() string {
				return fmt.Sprintf("bets: %d  wagered: %s  won: %s  lost: %s  win rate: %.1f%%",
					stats.TotalBets, stats.TotalWagered, stats.TotalWon, stats.TotalLost, stats.WinRate)
			})
		})
	},
}

var transactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "List wallet transactions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd.Context(), func(ctx context.Context, c *stakeapi.Client) error {
			txs, err := c.Transactions(ctx, stakeapi.TransactionsOptions{Type: transactionsType, Limit: transactionsLimit})
			if err != nil {
				return err
			}
			return render(txs, func() string { return output.TransactionsTable(txs) })
		})
	},
}

func init() {
	transactionsCmd.Flags().StringVar(&transactionsType, "type", "", "filter by type (deposit, withdrawal, bet, win)")
	transactionsCmd.Flags().IntVar(&transactionsLimit, "limit", 0, "maximum transactions to return")
	rootCmd.AddCommand(profileCmd, balanceCmd, statsCmd, transactionsCmd)
}
