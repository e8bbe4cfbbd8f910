package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/stakeapi/stakeapi-go/internal/output"
	"github.com/stakeapi/stakeapi-go/pkg/stakeapi"
)

var (
	gamesCategory string
	gamesLimit    int
)

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List casino games",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd.Context(), func(ctx context.Context, c *stakeapi.Client) error {
			games, err := c.CasinoGames(ctx, stakeapi.GamesOptions{Category: gamesCategory, Limit: gamesLimit})
			if err != nil {
				return err
			}
			return render(games, func() string { return output.GamesTable(games) })
		})
	},
}

var gameCmd = &cobra.Command{
	Use:   "game <id>",
	Short: "Show details for one casino game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd.Context(), func(ctx context.Context, c *stakeapi.Client) error {
			game, err := c.GameDetails(ctx, args[0])
			if err != nil {
				return err
			}
			return render(game, func() string { return output.GamesTable([]stakeapi.Game{game}) })
		})
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List casino game categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd.Context(), func(ctx context.Context, c *stakeapi.Client) error {
			categories, err := c.CasinoCategories(ctx)
			if err != nil {
				return err
			}
			return render(categories, func() string { return output.CategoriesTable(categories) })
		})
	},
}

func init() {
	gamesCmd.Flags().StringVar(&gamesCategory, "category", "", "filter by category slug")
	gamesCmd.Flags().IntVar(&gamesLimit, "limit", 0, "maximum games to return")
	rootCmd.AddCommand(gamesCmd, gameCmd, categoriesCmd)
}
