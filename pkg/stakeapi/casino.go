package stakeapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// List size bounds accepted by the upstream.
const (
	DefaultListLimit = 50
	MaxListLimit     = 100
)

// GamesOptions filters CasinoGames. Filters pass through as query
// parameters; the upstream owns their semantics.
type GamesOptions struct {
	Category string
	Limit    int
}

// CasinoGames lists available casino games, optionally filtered by
// category.
func (c *Client) CasinoGames(ctx context.Context, opts GamesOptions) ([]Game, error) {
	query := url.Values{}
	if category := strings.TrimSpace(opts.Category); category != "" {
		query.Set("category", category)
	}
	query.Set("limit", strconv.Itoa(clampLimit(opts.Limit)))

	return call(ctx, c, false, func(ctx context.Context) ([]Game, error) {
		var payload struct {
			Games []Game `json:"games"`
		}
		if err := c.doREST(ctx, http.MethodGet, pathCasinoGames, query, nil, &payload); err != nil {
			return nil, err
		}
		return payload.Games, nil
	})
}

// GameDetails fetches a single game by id.
func (c *Client) GameDetails(ctx context.Context, gameID string) (Game, error) {
	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return Game{}, &ValidationError{Field: "game_id", Message: "must not be empty"}
	}

	path := fmt.Sprintf(pathCasinoGame, url.PathEscape(gameID))
	return call(ctx, c, false, func(ctx context.Context) (Game, error) {
		var game Game
		if err := c.doREST(ctx, http.MethodGet, path, nil, nil, &game); err != nil {
			return Game{}, err
		}
		return game, nil
	})
}

// CasinoCategories lists the game categories known to the platform.
func (c *Client) CasinoCategories(ctx context.Context) ([]Category, error) {
	return call(ctx, c, false, func(ctx context.Context) ([]Category, error) {
		var payload struct {
			Categories []Category `json:"categories"`
		}
		if err := c.doREST(ctx, http.MethodGet, pathCasinoCategories, nil, nil, &payload); err != nil {
			return nil, err
		}
		return payload.Categories, nil
	})
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
