package wallet

// Wallet is keyed by customer id; every customer owns exactly one.
type Wallet struct {
	CustomerID   string  `json:"customerId"`
	Currency     string  `json:"currency"`
	Balance      float64 `json:"balance"`
	DailyLimit   float64 `json:"dailyLimit"`
	MonthlyLimit float64 `json:"monthlyLimit"`
}

// LimitsPayload carries the optional spending-limit fields of a PATCH.
// Pointers distinguish "absent" from an explicit zero.
type LimitsPayload struct {
	DailyLimit   *float64 `json:"dailyLimit"`
	MonthlyLimit *float64 `json:"monthlyLimit"`
}
