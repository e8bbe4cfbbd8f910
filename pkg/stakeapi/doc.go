// Package stakeapi is a typed client for the platform's REST and GraphQL
// web API: casino games, sports events, user profile and balances, and bet
// placement.
//
// A Client is a session: construct with New, Open before first use, Close
// when done. All calls from one session share a sliding-window rate
// limiter and a bounded connection pool. Transient failures (rate-limit
// rejections, timeouts, 5xx responses) are retried with exponential
// backoff; mutating calls are retried only on rejections the upstream is
// guaranteed not to have processed, so a wager is never double-submitted.
//
//	err := stakeapi.Session(ctx, stakeapi.Config{AccessToken: token},
//		func(c *stakeapi.Client) error {
//			games, err := c.CasinoGames(ctx, stakeapi.GamesOptions{Category: "slots"})
//			...
//		})
//
// Access tokens are extracted manually from a logged-in browser session;
// see TokenFromCurl.
package stakeapi
