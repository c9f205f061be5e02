// internal/exchange/rest/wire.go
package rest

import "coinbase-cli/internal/domain"

// The v2 API wraps every payload in a {"data": ...} envelope and reports
// failures as {"errors": [{"id": ..., "message": ...}]}.

type accountEnvelope struct {
	Data accountWire `json:"data"`
}

type accountListEnvelope struct {
	Data []accountWire `json:"data"`
}

type accountWire struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Primary  bool         `json:"primary"`
	Type     string       `json:"type"`
	Currency currencyWire `json:"currency"`
	Balance  moneyWire    `json:"balance"`
}

type currencyWire struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Exponent int32  `json:"exponent"`
	Type     string `json:"type"`
}

type moneyWire struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type paymentMethodEnvelope struct {
	Data paymentMethodWire `json:"data"`
}

type paymentMethodListEnvelope struct {
	Data []paymentMethodWire `json:"data"`
}

type paymentMethodWire struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	Currency      string `json:"currency"`
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

type orderEnvelope struct {
	Data orderWire `json:"data"`
}

type orderWire struct {
	ID            string          `json:"id"`
	Status        string          `json:"status"`
	Amount        moneyWire       `json:"amount"`
	Subtotal      moneyWire       `json:"subtotal"`
	Fee           moneyWire       `json:"fee"`
	Total         moneyWire       `json:"total"`
	PaymentMethod resourceRefWire `json:"payment_method"`
	Transaction   resourceRefWire `json:"transaction"`
	Committed     bool            `json:"committed"`
	Instant       bool            `json:"instant"`
	PayoutAt      string          `json:"payout_at"`
}

type resourceRefWire struct {
	ID           string `json:"id"`
	Resource     string `json:"resource"`
	ResourcePath string `json:"resource_path"`
}

type priceEnvelope struct {
	Data priceWire `json:"data"`
}

type priceWire struct {
	Base     string `json:"base"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type timeEnvelope struct {
	Data timeWire `json:"data"`
}

type timeWire struct {
	ISO   string `json:"iso"`
	Epoch int64  `json:"epoch"`
}

type errorEnvelope struct {
	Errors []struct {
		ID      string `json:"id"`
		Message string `json:"message"`
	} `json:"errors"`
}

func (w accountWire) toDomain() domain.Account {
	return domain.Account{
		ID:      w.ID,
		Name:    w.Name,
		Primary: w.Primary,
		Type:    domain.AccountType(w.Type),
		Currency: domain.Currency{
			Code:     w.Currency.Code,
			Name:     w.Currency.Name,
			Exponent: w.Currency.Exponent,
			Kind:     domain.CurrencyKind(w.Currency.Type),
		},
		Balance: domain.Money{Amount: w.Balance.Amount, Currency: w.Balance.Currency},
	}
}

func (w paymentMethodWire) toDomain() domain.PaymentMethod {
	return domain.PaymentMethod{
		ID:            w.ID,
		Name:          w.Name,
		Type:          w.Type,
		Currency:      w.Currency,
		PrimaryBuy:    w.PrimaryBuy,
		PrimarySell:   w.PrimarySell,
		AllowBuy:      w.AllowBuy,
		AllowSell:     w.AllowSell,
		AllowDeposit:  w.AllowDeposit,
		AllowWithdraw: w.AllowWithdraw,
		InstantBuy:    w.InstantBuy,
		InstantSell:   w.InstantSell,
		Verified:      w.Verified,
	}
}

func (w orderWire) toDomain(kind domain.OrderKind) domain.Order {
	return domain.Order{
		ID:       w.ID,
		Kind:     kind,
		Status:   domain.OrderStatus(w.Status),
		Amount:   domain.Money{Amount: w.Amount.Amount, Currency: w.Amount.Currency},
		Subtotal: domain.Money{Amount: w.Subtotal.Amount, Currency: w.Subtotal.Currency},
		Fee:      domain.Money{Amount: w.Fee.Amount, Currency: w.Fee.Currency},
		Total:    domain.Money{Amount: w.Total.Amount, Currency: w.Total.Currency},
		PaymentMethod: domain.ResourceRef{
			ID:           w.PaymentMethod.ID,
			Resource:     w.PaymentMethod.Resource,
			ResourcePath: w.PaymentMethod.ResourcePath,
		},
		Transaction: domain.ResourceRef{
			ID:           w.Transaction.ID,
			Resource:     w.Transaction.Resource,
			ResourcePath: w.Transaction.ResourcePath,
		},
		Committed: w.Committed,
		Instant:   w.Instant,
		PayoutAt:  w.PayoutAt,
	}
}
