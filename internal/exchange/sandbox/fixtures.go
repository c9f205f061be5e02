// internal/exchange/sandbox/fixtures.go
package sandbox

import "coinbase-cli/internal/domain"

// ExampleAccounts returns the fixture accounts: one fiat wallet with a
// balance, two funded and one empty crypto wallet.
func ExampleAccounts() []domain.Account {
	return []domain.Account{
		{
			ID:      "db7abb63-2e8b-534a-bdff-5d1dbf2234f2",
			Name:    "EUR Wallet",
			Primary: false,
			Type:    domain.AccountTypeFiat,
			Currency: domain.Currency{
				Code:     "EUR",
				Name:     "Euro",
				Exponent: 2,
				Kind:     domain.CurrencyKindFiat,
			},
			Balance: domain.Money{Amount: "172.83", Currency: "EUR"},
		},
		{
			ID:      "a3b02e94-73f8-557a-a553-4e0ad5abb3a2",
			Name:    "LTC Wallet",
			Primary: false,
			Type:    domain.AccountTypeWallet,
			Currency: domain.Currency{
				Code:     "LTC",
				Name:     "Litecoin",
				Exponent: 8,
				Kind:     domain.CurrencyKindCrypto,
			},
			Balance: domain.Money{Amount: "0.94940530", Currency: "LTC"},
		},
		{
			ID:      "ea81d255-a43d-53f7-8379-08a2f96d0034",
			Name:    "ETH Wallet",
			Primary: false,
			Type:    domain.AccountTypeWallet,
			Currency: domain.Currency{
				Code:     "ETH",
				Name:     "Ethereum",
				Exponent: 8,
				Kind:     domain.CurrencyKindCrypto,
			},
			Balance: domain.Money{Amount: "0.00000000", Currency: "ETH"},
		},
		{
			ID:      "33452906-0ab7-596a-98bd-cb3b62806ebe",
			Name:    "BTC Wallet",
			Primary: true,
			Type:    domain.AccountTypeWallet,
			Currency: domain.Currency{
				Code:     "BTC",
				Name:     "Bitcoin",
				Exponent: 8,
				Kind:     domain.CurrencyKindCrypto,
			},
			Balance: domain.Money{Amount: "0.25000000", Currency: "BTC"},
		},
	}
}

// ExamplePaymentMethods returns the fixture payment methods: a bank account
// that only allows withdrawals, and a fiat account allowing everything.
func ExamplePaymentMethods() []domain.PaymentMethod {
	return []domain.PaymentMethod{
		{
			ID:            "b378cf67-a6bd-5f84-bcb4-5c29682d186d",
			Name:          "ABN AMRO (NL84 ABNA 0463 4913 35)",
			Type:          "sepa_bank_account",
			Currency:      "EUR",
			AllowWithdraw: true,
			Verified:      true,
		},
		{
			ID:            "453ebbdf-9d09-578f-8fec-ecfd7e7fed17",
			Name:          "EUR Wallet",
			Type:          "fiat_account",
			Currency:      "EUR",
			PrimaryBuy:    true,
			PrimarySell:   true,
			AllowBuy:      true,
			AllowSell:     true,
			AllowDeposit:  true,
			AllowWithdraw: true,
			InstantBuy:    true,
			InstantSell:   true,
			Verified:      true,
		},
	}
}
