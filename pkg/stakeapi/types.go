package stakeapi

import (
	"time"

	"github.com/shopspring/decimal"
)

// Game is a casino game record.
type Game struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Provider     string          `json:"provider"`
	Description  string          `json:"description,omitempty"`
	MinBet       decimal.Decimal `json:"min_bet"`
	MaxBet       decimal.Decimal `json:"max_bet"`
	RTP          *float64        `json:"rtp,omitempty"`
	Volatility   string          `json:"volatility,omitempty"`
	Features     []string        `json:"features,omitempty"`
	ThumbnailURL string          `json:"thumbnail_url,omitempty"`
}

// Category is a casino game category.
type Category struct {
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Count int    `json:"count,omitempty"`
}

// SportEvent is a sports event with its current odds.
type SportEvent struct {
	ID        string             `json:"id"`
	Sport     string             `json:"sport"`
	League    string             `json:"league"`
	HomeTeam  string             `json:"home_team"`
	AwayTeam  string             `json:"away_team"`
	StartTime time.Time          `json:"start_time"`
	Status    string             `json:"status"`
	Odds      map[string]float64 `json:"odds,omitempty"`
	Live      bool               `json:"live"`
}

// User is the authenticated user's profile.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
	Country   string    `json:"country,omitempty"`
	Currency  string    `json:"currency"`
}

// Balances holds per-currency amounts split between the main (available)
// balance and the vault. Currency codes are lowercase.
type Balances struct {
	Available map[string]decimal.Decimal `json:"available"`
	Vault     map[string]decimal.Decimal `json:"vault"`
}

// Bet statuses as reported by the upstream.
const (
	BetStatusPending   = "pending"
	BetStatusWon       = "won"
	BetStatusLost      = "lost"
	BetStatusCancelled = "cancelled"
)

// Bet is a placed wager, casino or sports.
type Bet struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	GameID          string          `json:"game_id,omitempty"`
	EventID         string          `json:"event_id,omitempty"`
	BetType         string          `json:"bet_type"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency,omitempty"`
	PotentialPayout decimal.Decimal `json:"potential_payout"`
	Odds            *float64        `json:"odds,omitempty"`
	Status          string          `json:"status"`
	PlacedAt        time.Time       `json:"placed_at"`
	SettledAt       *time.Time      `json:"settled_at,omitempty"`
}

// BetRequest describes a wager to place. Either GameID or EventID must be
// set; Amount must be positive.
type BetRequest struct {
	GameID    string          `json:"game_id,omitempty"`
	EventID   string          `json:"event_id,omitempty"`
	BetType   string          `json:"bet_type"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Odds      *float64        `json:"odds,omitempty"`
	Selection string          `json:"selection,omitempty"`
}

// Transaction is a wallet movement: deposit, withdrawal, bet or win.
type Transaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Status      string          `json:"status"`
	Timestamp   time.Time       `json:"timestamp"`
	Description string          `json:"description,omitempty"`
}

// Statistics aggregates the user's lifetime betting activity.
type Statistics struct {
	TotalBets    int             `json:"total_bets"`
	TotalWagered decimal.Decimal `json:"total_wagered"`
	TotalWon     decimal.Decimal `json:"total_won"`
	TotalLost    decimal.Decimal `json:"total_lost"`
	WinRate      float64         `json:"win_rate"`
	BiggestWin   decimal.Decimal `json:"biggest_win"`
	FavoriteGame string          `json:"favorite_game,omitempty"`
}
