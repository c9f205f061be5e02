// internal/domain/paymentmethod.go
package domain

// PaymentMethod represents a settlement instrument: a bank account, a card,
// or a linked fiat account. The Allow* capability flags gate which
// operations the method may be used for.
type PaymentMethod struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`     // e.g. "sepa_bank_account", "fiat_account"
	Currency      string `json:"currency"` // Settlement currency code
	PrimaryBuy    bool   `json:"primary_buy"`
	PrimarySell   bool   `json:"primary_sell"`
	AllowBuy      bool   `json:"allow_buy"`
	AllowSell     bool   `json:"allow_sell"`
	AllowDeposit  bool   `json:"allow_deposit"`
	AllowWithdraw bool   `json:"allow_withdraw"`
	InstantBuy    bool   `json:"instant_buy"`
	InstantSell   bool   `json:"instant_sell"`
	Verified      bool   `json:"verified"`
}
