package output

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shopspring/decimal"

	"github.com/stakeapi/stakeapi-go/pkg/stakeapi"
)

// GamesTable renders casino games.
func GamesTable(games []stakeapi.Game) string {
	t := newTable()
	t.AppendHeader(table.Row{"ID", "Name", "Category", "Provider", "Min", "Max", "RTP"})
	for _, g := range games {
		t.AppendRow(table.Row{g.ID, g.Name, g.Category, g.Provider, g.MinBet.String(), g.MaxBet.String(), rtpLabel(g.RTP)})
	}
	t.AppendFooter(table.Row{"", "", "", "", "", "", strconv.Itoa(len(games)) + " games"})
	return t.Render()
}

// EventsTable renders sports events.
func EventsTable(events []stakeapi.SportEvent) string {
	t := newTable()
	t.AppendHeader(table.Row{"ID", "Sport", "League", "Match", "Starts", "Status"})
	for _, e := range events {
		match := e.HomeTeam + " vs " + e.AwayTeam
		status := e.Status
		if e.Live {
			status = "LIVE"
		}
		t.AppendRow(table.Row{e.ID, e.Sport, e.League, match, e.StartTime.Format(time.RFC3339), status})
	}
	return t.Render()
}

// BetsTable renders bet history.
func BetsTable(bets []stakeapi.Bet) string {
	t := newTable()
	t.AppendHeader(table.Row{"ID", "Type", "Amount", "Payout", "Status", "Placed"})
	for _, b := range bets {
		t.AppendRow(table.Row{
			b.ID,
			b.BetType,
			stakeapi.FormatAmount(b.Amount, b.Currency),
			stakeapi.FormatAmount(b.PotentialPayout, b.Currency),
			b.Status,
			b.PlacedAt.Format(time.RFC3339),
		})
	}
	return t.Render()
}

// TransactionsTable renders wallet movements.
func TransactionsTable(txs []stakeapi.Transaction) string {
	t := newTable()
	t.AppendHeader(table.Row{"ID", "Type", "Amount", "Status", "When"})
	for _, tx := range txs {
		t.AppendRow(table.Row{tx.ID, tx.Type, stakeapi.FormatAmount(tx.Amount, tx.Currency), tx.Status, tx.Timestamp.Format(time.RFC3339)})
	}
	return t.Render()
}

// BalancesTable renders per-currency balances.
func BalancesTable(b stakeapi.Balances) string {
	t := newTable()
	t.AppendHeader(table.Row{"Currency", "Available", "Vault"})
	for _, currency := range sortedCurrencies(b) {
		t.AppendRow(table.Row{strings.ToUpper(currency), amountOrZero(b.Available, currency), amountOrZero(b.Vault, currency)})
	}
	return t.Render()
}

// CategoriesTable renders casino categories.
func CategoriesTable(categories []stakeapi.Category) string {
	t := newTable()
	t.AppendHeader(table.Row{"Slug", "Name", "Games"})
	for _, c := range categories {
		t.AppendRow(table.Row{c.Slug, c.Name, c.Count})
	}
	return t.Render()
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	return t
}

func rtpLabel(rtp *float64) string {
	if rtp == nil {
		return "-"
	}
	return strconv.FormatFloat(*rtp, 'f', 2, 64) + "%"
}

func amountOrZero(m map[string]decimal.Decimal, currency string) string {
	if v, ok := m[currency]; ok {
		return v.String()
	}
	return "0"
}

func sortedCurrencies(b stakeapi.Balances) []string {
	seen := make(map[string]struct{}, len(b.Available)+len(b.Vault))
	var out []string
	for c := range b.Available {
		seen[c] = struct{}{}
	}
	for c := range b.Vault {
		seen[c] = struct{}{}
	}
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
