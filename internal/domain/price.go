// internal/domain/price.go
package domain

// Price is the current exchange rate for one unit of the base currency,
// expressed in the quote currency.
type Price struct {
	Base     string `json:"base"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// Time is the exchange's notion of the current time. API request signing
// requires the local clock to stay within a small window of it.
type Time struct {
	ISO   string `json:"iso"`
	Epoch int64  `json:"epoch"`
}
