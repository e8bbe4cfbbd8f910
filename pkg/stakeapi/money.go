package stakeapi

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	gameNameStripRe  = regexp.MustCompile(`[^\w\s-]`)
	gameNameSpacesRe = regexp.MustCompile(`\s+`)
)

// FormatAmount renders an amount for display with the conventional symbol
// for the major fiat currencies, falling back to "amount CODE".
func FormatAmount(amount decimal.Decimal, currency string) string {
	fixed := amount.StringFixed(2)
	switch strings.ToUpper(currency) {
	case "USD":
		return "$" + fixed
	case "EUR":
		return "€" + fixed
	case "GBP":
		return "£" + fixed
	default:
		return fixed + " " + strings.ToUpper(currency)
	}
}

// ParseAmount converts an upstream value into a Decimal, tolerating both
// numeric and string encodings. ok is false when the value is absent or
// unparseable.
func ParseAmount(value any) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case nil:
		return decimal.Zero, false
	case float64:
		return decimal.NewFromFloat(v), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	default:
		return decimal.Zero, false
	}
}

// WinRate returns the win percentage over total bets, zero when no bets
// were placed.
func WinRate(wins, totalBets int) float64 {
	if totalBets == 0 {
		return 0
	}
	return float64(wins) / float64(totalBets) * 100
}

// WithinBetLimits reports whether amount falls inside the game's accepted
// range.
func WithinBetLimits(amount, minBet, maxBet decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(minBet) && amount.LessThanOrEqual(maxBet)
}

// SanitizeGameName strips special characters and collapses whitespace so a
// game name is safe to use in paths and filenames.
func SanitizeGameName(name string) string {
	out := gameNameStripRe.ReplaceAllString(name, "")
	out = gameNameSpacesRe.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}
