package stakeapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestUserBalanceGraphQL(t *testing.T) {
	u := newUpstream(t)
	var payload graphqlRequest
	u.router.Post("/_api/graphql", func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &payload))

		writeJSON(t, w, http.StatusOK, `{"data":{"user":{"id":"u1","balances":{
			"available":[{"amount":0.00125,"currency":"BTC"},{"amount":100.5,"currency":"USD"}],
			"vault":[{"amount":1.0,"currency":"BTC"}]
		}}}}`)
	})

	c := u.client(t)
	balances, err := c.UserBalance(context.Background())
	require.NoError(t, err)

	require.Equal(t, "UserBalances", payload.OperationName)
	require.Contains(t, payload.Query, "balances")

	require.Len(t, balances.Available, 2)
	require.True(t, balances.Available["btc"].Equal(decimal.NewFromFloat(0.00125)))
	require.True(t, balances.Available["usd"].Equal(decimal.NewFromFloat(100.5)))
	require.True(t, balances.Vault["btc"].Equal(decimal.NewFromInt(1)))
}

func TestUserProfileGraphQLMapping(t *testing.T) {
	u := newUpstream(t)
	u.router.Post("/_api/graphql", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `{"data":{"user":{
			"id":"u1","name":"highroller","email":"hr@example.com",
			"isEmailVerified":true,"createdAt":"2023-04-01T10:00:00Z","country":"DE"
		}}}`)
	})

	c := u.client(t)
	user, err := c.UserProfile(context.Background())
	require.NoError(t, err)

	require.Equal(t, "u1", user.ID)
	require.Equal(t, "highroller", user.Username)
	require.Equal(t, "hr@example.com", user.Email)
	require.True(t, user.Verified)
	require.Equal(t, "DE", user.Country)
	require.Equal(t, "USD", user.Currency, "currency falls back to USD when the upstream omits it")
	require.Equal(t, 2023, user.CreatedAt.Year())
}

func TestGraphQLErrorsSurfaceAsUpstreamError(t *testing.T) {
	u := newUpstream(t)
	u.router.Post("/_api/graphql", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `{"errors":[{"message":"not logged in"},{"message":"session expired"}]}`)
	})

	c := u.client(t)
	_, err := c.UserBalance(context.Background())
	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	require.Equal(t, []string{"not logged in", "session expired"}, ue.Messages)
}

func TestUserStatistics(t *testing.T) {
	u := newUpstream(t)
	u.router.Get("/api/v1/user/statistics", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `{"total_bets":1200,"total_wagered":"5400.50","total_won":"5100.00","total_lost":"300.50","win_rate":48.5,"biggest_win":"900.00","favorite_game":"plinko"}`)
	})

	c := u.client(t)
	stats, err := c.UserStatistics(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1200, stats.TotalBets)
	require.True(t, stats.TotalWagered.Equal(decimal.RequireFromString("5400.50")))
	require.InDelta(t, 48.5, stats.WinRate, 0.001)
	require.Equal(t, "plinko", stats.FavoriteGame)
}

func TestTransactions(t *testing.T) {
	u := newUpstream(t)
	var query map[string][]string
	u.router.Get("/api/v1/user/transactions", func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		writeJSON(t, w, http.StatusOK, `{"transactions":[{"id":"t1","user_id":"u1","type":"deposit","amount":"50","currency":"usd","status":"confirmed","timestamp":"2025-01-02T03:04:05Z"}]}`)
	})

	c := u.client(t)
	txs, err := c.Transactions(context.Background(), TransactionsOptions{Type: "deposit", Limit: 10})
	require.NoError(t, err)
	require.Len(t, txs, 1)
	require.Equal(t, "deposit", txs[0].Type)
	require.Equal(t, []string{"deposit"}, query["type"])
	require.Equal(t, []string{"10"}, query["limit"])
}
