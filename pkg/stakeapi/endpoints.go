package stakeapi

// REST endpoint paths. The platform is migrating surface area to GraphQL;
// these remain for the endpoints still served over plain REST.
const (
	apiBase = "/api/v1"

	pathGraphQL = "/_api/graphql"

	pathCasinoGames      = apiBase + "/casino/games"
	pathCasinoGame       = apiBase + "/casino/games/%s"
	pathCasinoCategories = apiBase + "/casino/categories"

	pathSportsEvents = apiBase + "/sports/events"

	pathUserStatistics   = apiBase + "/user/statistics"
	pathUserTransactions = apiBase + "/user/transactions"

	pathPlaceBet   = apiBase + "/bets/place"
	pathBetHistory = apiBase + "/bets/history"
	pathCancelBet  = apiBase + "/bets/%s/cancel"
)

// GraphQL documents for the endpoints served through /_api/graphql.
const (
	queryUserBalances = `
query UserBalances {
  user {
    id
    balances {
      available {
        amount
        currency
      }
      vault {
        amount
        currency
      }
    }
  }
}`

	queryUserProfile = `
query UserProfile {
  user {
    id
    name
    email
    isEmailVerified
    createdAt
    country
    currency
  }
}`
)
