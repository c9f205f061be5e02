// internal/domain/account.go
package domain

// AccountType defines the kind of balance-holding account on the exchange.
type AccountType string

const (
	AccountTypeWallet        AccountType = "wallet"
	AccountTypeFiat          AccountType = "fiat"
	AccountTypeVault         AccountType = "vault"
	AccountTypeMultisig      AccountType = "multisig"
	AccountTypeMultisigVault AccountType = "multisig_vault"
)

// CurrencyKind distinguishes fiat from crypto currencies.
type CurrencyKind string

const (
	CurrencyKindFiat   CurrencyKind = "fiat"
	CurrencyKindCrypto CurrencyKind = "crypto"
)

// Currency describes the currency an account is denominated in.
type Currency struct {
	Code     string       `json:"code"`     // e.g. "BTC", "EUR"
	Name     string       `json:"name"`     // e.g. "Bitcoin", "Euro"
	Exponent int32        `json:"exponent"` // Decimal precision of the currency
	Kind     CurrencyKind `json:"type"`
}

// Account represents one balance-holding entity (crypto wallet, fiat
// wallet, vault). It is fetched fresh from the exchange for every command
// invocation and never mutated locally.
type Account struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Primary  bool        `json:"primary"`
	Type     AccountType `json:"type"`
	Currency Currency    `json:"currency"`
	Balance  Money       `json:"balance"`
}

// ResourceRef is a lightweight reference to another exchange resource.
type ResourceRef struct {
	ID           string `json:"id"`
	Resource     string `json:"resource"`
	ResourcePath string `json:"resource_path"`
}
