package stakeapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// EventsOptions filters SportsEvents.
type EventsOptions struct {
	Sport string
	Limit int
}

// SportsEvents lists upcoming and live sports events, optionally filtered
// by sport slug.
func (c *Client) SportsEvents(ctx context.Context, opts EventsOptions) ([]SportEvent, error) {
	query := url.Values{}
	if sport := strings.TrimSpace(opts.Sport); sport != "" {
		query.Set("sport", sport)
	}
	query.Set("limit", strconv.Itoa(clampLimit(opts.Limit)))

	return call(ctx, c, false, func(ctx context.Context) ([]SportEvent, error) {
		var payload struct {
			Events []SportEvent `json:"events"`
		}
		if err := c.doREST(ctx, http.MethodGet, pathSportsEvents, query, nil, &payload); err != nil {
			return nil, err
		}
		return payload.Events, nil
	})
}
