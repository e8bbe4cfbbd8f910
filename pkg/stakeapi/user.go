package stakeapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// UserProfile fetches the authenticated user's profile over GraphQL.
func (c *Client) UserProfile(ctx context.Context) (User, error) {
	return call(ctx, c, false, func(ctx context.Context) (User, error) {
		var payload struct {
			User struct {
				ID              string    `json:"id"`
				Name            string    `json:"name"`
				Email           string    `json:"email"`
				IsEmailVerified bool      `json:"isEmailVerified"`
				CreatedAt       time.Time `json:"createdAt"`
				Country         string    `json:"country"`
				Currency        string    `json:"currency"`
			} `json:"user"`
		}
		if err := c.doGraphQL(ctx, queryUserProfile, "UserProfile", nil, &payload); err != nil {
			return User{}, err
		}
		currency := payload.User.Currency
		if currency == "" {
			currency = "USD"
		}
		return User{
			ID:        payload.User.ID,
			Username:  payload.User.Name,
			Email:     payload.User.Email,
			Verified:  payload.User.IsEmailVerified,
			CreatedAt: payload.User.CreatedAt,
			Country:   payload.User.Country,
			Currency:  currency,
		}, nil
	})
}

// UserBalance fetches per-currency balances over GraphQL, split between the
// main balance and the vault. Currency codes come back lowercase.
func (c *Client) UserBalance(ctx context.Context) (Balances, error) {
	type entry struct {
		Amount   decimal.Decimal `json:"amount"`
		Currency string          `json:"currency"`
	}

	return call(ctx, c, false, func(ctx context.Context) (Balances, error) {
		var payload struct {
			User struct {
				Balances struct {
					Available []entry `json:"available"`
					Vault     []entry `json:"vault"`
				} `json:"balances"`
			} `json:"user"`
		}
		if err := c.doGraphQL(ctx, queryUserBalances, "UserBalances", nil, &payload); err != nil {
			return Balances{}, err
		}

		out := Balances{
			Available: make(map[string]decimal.Decimal, len(payload.User.Balances.Available)),
			Vault:     make(map[string]decimal.Decimal, len(payload.User.Balances.Vault)),
		}
		for _, e := range payload.User.Balances.Available {
			out.Available[strings.ToLower(e.Currency)] = e.Amount
		}
		for _, e := range payload.User.Balances.Vault {
			out.Vault[strings.ToLower(e.Currency)] = e.Amount
		}
		return out, nil
	})
}

// UserStatistics fetches lifetime betting statistics.
func (c *Client) UserStatistics(ctx context.Context) (Statistics, error) {
	return call(ctx, c, false, func(ctx context.Context) (Statistics, error) {
		var stats Statistics
		if err := c.doREST(ctx, http.MethodGet, pathUserStatistics, nil, nil, &stats); err != nil {
			return Statistics{}, err
		}
		return stats, nil
	})
}

// TransactionsOptions filters Transactions.
type TransactionsOptions struct {
	Type  string
	Limit int
}

// Transactions lists wallet movements, newest first.
func (c *Client) Transactions(ctx context.Context, opts TransactionsOptions) ([]Transaction, error) {
	query := url.Values{}
	if kind := strings.TrimSpace(opts.Type); kind != "" {
		query.Set("type", kind)
	}
	query.Set("limit", strconv.Itoa(clampLimit(opts.Limit)))

	return call(ctx, c, false, func(ctx context.Context) ([]Transaction, error) {
		var payload struct {
			Transactions []Transaction `json:"transactions"`
		}
		if err := c.doREST(ctx, http.MethodGet, pathUserTransactions, query, nil, &payload); err != nil {
			return nil, err
		}
		return payload.Transactions, nil
	})
}
