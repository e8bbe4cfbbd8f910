package stakeapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

type placeBetPayload struct {
	BetRequest
	IdempotencyKey string `json:"idempotency_key"`
}

// PlaceBet submits a wager. Retries happen only for rate-limit rejections,
// which the upstream refuses before processing; a timeout after the request
// left the client is never retried, so a wager cannot be double-submitted.
// The idempotency key is fixed per call, so any retried rejection carries
// the same key.
func (c *Client) PlaceBet(ctx context.Context, bet BetRequest) (Bet, error) {
	if err := validateBetRequest(bet); err != nil {
		return Bet{}, err
	}

	payload := placeBetPayload{
		BetRequest:     bet,
		IdempotencyKey: uuid.New().String(),
	}

	return call(ctx, c, true, func(ctx context.Context) (Bet, error) {
		var placed Bet
		if err := c.doREST(ctx, http.MethodPost, pathPlaceBet, nil, payload, &placed); err != nil {
			return Bet{}, err
		}
		return placed, nil
	})
}

// CancelBet cancels a pending bet. Mutating, same retry rules as PlaceBet.
func (c *Client) CancelBet(ctx context.Context, betID string) (Bet, error) {
	betID = strings.TrimSpace(betID)
	if betID == "" {
		return Bet{}, &ValidationError{Field: "bet_id", Message: "must not be empty"}
	}

	path := fmt.Sprintf(pathCancelBet, url.PathEscape(betID))
	return call(ctx, c, true, func(ctx context.Context) (Bet, error) {
		var cancelled Bet
		if err := c.doREST(ctx, http.MethodPost, path, nil, nil, &cancelled); err != nil {
			return Bet{}, err
		}
		return cancelled, nil
	})
}

// BetHistoryOptions filters BetHistory.
type BetHistoryOptions struct {
	Limit int
}

// BetHistory lists the user's past bets, newest first.
func (c *Client) BetHistory(ctx context.Context, opts BetHistoryOptions) ([]Bet, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(clampLimit(opts.Limit)))

	return call(ctx, c, false, func(ctx context.Context) ([]Bet, error) {
		var payload struct {
			Bets []Bet `json:"bets"`
		}
		if err := c.doREST(ctx, http.MethodGet, pathBetHistory, query, nil, &payload); err != nil {
			return nil, err
		}
		return payload.Bets, nil
	})
}

func validateBetRequest(bet BetRequest) error {
	if strings.TrimSpace(bet.GameID) == "" && strings.TrimSpace(bet.EventID) == "" {
		return &ValidationError{Field: "bet", Message: "either game_id or event_id is required"}
	}
	if strings.TrimSpace(bet.BetType) == "" {
		return &ValidationError{Field: "bet_type", Message: "must not be empty"}
	}
	if !bet.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Message: "must be positive"}
	}
	if strings.TrimSpace(bet.Currency) == "" {
		return &ValidationError{Field: "currency", Message: "must not be empty"}
	}
	return nil
}
