// internal/domain/order.go
package domain

// OrderKind tags which operation produced an order. Buys, sells and
// withdrawals are structurally identical on the wire, so one struct with a
// kind tag replaces three parallel record types.
type OrderKind string

const (
	OrderKindBuy        OrderKind = "buy"
	OrderKindSell       OrderKind = "sell"
	OrderKindWithdrawal OrderKind = "withdrawal"
)

// OrderStatus defines the lifecycle status of an order on the exchange.
type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "created"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCanceled  OrderStatus = "canceled"
)

// Order represents one trade or transfer request. It is created in status
// "created" (uncommitted) unless the caller asked for an immediate commit or
// a quote. Committing yields a new Order value; the exchange never mutates
// an order in place.
type Order struct {
	ID            string      `json:"id"`
	Kind          OrderKind   `json:"resource"`
	Status        OrderStatus `json:"status"`
	Amount        Money       `json:"amount"`   // Traded quantity
	Subtotal      Money       `json:"subtotal"` // Fiat value before fees
	Fee           Money       `json:"fee"`
	Total         Money       `json:"total"` // Subtotal plus fee for buys, minus fee for sells
	PaymentMethod ResourceRef `json:"payment_method"`
	Transaction   ResourceRef `json:"transaction"` // Resulting ledger transaction
	Committed     bool        `json:"committed"`
	Instant       bool        `json:"instant"`
	PayoutAt      string      `json:"payout_at,omitempty"` // ISO timestamp, empty when instant
}
