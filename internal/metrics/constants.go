package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"

	MetricNameGamesStarted   = "banker_games_started_total"
	MetricNameGamesConcluded = "banker_games_concluded_total"
	MetricNameOffersComputed = "banker_offers_computed_total"
	MetricNameOfferAmounts   = "banker_offer_amount_dollars"
	MetricNamePayoutAmounts  = "banker_payout_amount_dollars"
	MetricNameActiveSessions = "banker_active_sessions"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextGamesStarted   = "Total number of games started, by actor"
	HelpTextGamesConcluded = "Total number of games concluded, by actor and outcome"
	HelpTextOffersComputed = "Total number of banker offers computed"
	HelpTextOfferAmounts   = "Distribution of banker offer amounts in dollars"
	HelpTextPayoutAmounts  = "Distribution of game payout amounts in dollars"
	HelpTextActiveSessions = "Number of live game sessions in the registry"
)

// Label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelActor   = "actor"
	LabelOutcome = "outcome"
)

// Histogram buckets
var (
	HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5}

	// PrizeAmountBuckets spans the board, $0.01 to $1,000,000
	PrizeAmountBuckets = []float64{1, 10, 100, 1000, 10000, 50000, 100000, 250000, 500000, 1000000}
)
