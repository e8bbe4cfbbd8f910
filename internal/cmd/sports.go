package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/stakeapi/stakeapi-go/internal/output"
	"github.com/stakeapi/stakeapi-go/pkg/stakeapi"
)

var (
	sportsSport string
	sportsLimit int
)

var sportsCmd = &cobra.Command{
	Use:   "sports",
	Short: "List sports events and odds",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd.Context(), func(ctx context.Context, c *stakeapi.Client) error {
			events, err := c.SportsEvents(ctx, stakeapi.EventsOptions{Sport: sportsSport, Limit: sportsLimit})
			if err != nil {
				return err
			}
			return render(events, func() string { return output.EventsTable(events) })
		})
	},
}

func init() {
	sportsCmd.Flags().StringVar(&sportsSport, "sport", "", "filter by sport slug")
	sportsCmd.Flags().IntVar(&sportsLimit, "limit", 0, "maximum events to return")
	rootCmd.AddCommand(sportsCmd)
}
