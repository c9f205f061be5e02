// internal/exchange/sandbox/sandbox.go
package sandbox

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"coinbase-cli/internal/domain"
	"coinbase-cli/internal/exchange"
)

// Fee rate applied by the sandbox to every order, as an illustration of the
// real exchange's pricing. Subtotal always equals the requested amount.
var feeRate = decimal.RequireFromString("0.1")

// Sandbox is an in-memory exchange.Exchange used by the --sandbox flag and
// by the tests. It owns a fixed set of accounts and payment methods and the
// orders placed during the invocation, and it enforces the same order state
// machine as the remote side: only a "created" order can be committed.
type Sandbox struct {
	// Accounts and PaymentMethods may be replaced before use to run against
	// custom fixtures.
	Accounts       []domain.Account
	PaymentMethods []domain.PaymentMethod

	orders map[string]domain.Order
}

// New creates a Sandbox populated with the example fixtures.
func New() *Sandbox {
	return &Sandbox{
		Accounts:       ExampleAccounts(),
		PaymentMethods: ExamplePaymentMethods(),
		orders:         make(map[string]domain.Order),
	}
}

// ListAccounts returns all sandbox accounts in fixture order.
func (s *Sandbox) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts := make([]domain.Account, len(s.Accounts))
	copy(accounts, s.Accounts)
	return accounts, nil
}

// FindAccount returns the account with the given id.
func (s *Sandbox) FindAccount(ctx context.Context, id string) (domain.Account, error) {
	for _, account := range s.Accounts {
		if account.ID == id {
			return account, nil
		}
	}
	// This is the error the real API sends back.
	return domain.Account{}, errors.New("Not found")
}

// ListPaymentMethods returns all sandbox payment methods in fixture order.
func (s *Sandbox) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	methods := make([]domain.PaymentMethod, len(s.PaymentMethods))
	copy(methods, s.PaymentMethods)
	return methods, nil
}

// FindPaymentMethod returns the payment method with the given id.
func (s *Sandbox) FindPaymentMethod(ctx context.Context, id string) (domain.PaymentMethod, error) {
	for _, method := range s.PaymentMethods {
		if method.ID == id {
			return method, nil
		}
	}
	return domain.PaymentMethod{}, errors.New("Not found")
}

// BuyPrice returns a fixed buy price for the pair.
func (s *Sandbox) BuyPrice(ctx context.Context, pair string) (domain.Price, error) {
	return price(pair, "15235.23")
}

// SellPrice returns a fixed sell price for the pair.
func (s *Sandbox) SellPrice(ctx context.Context, pair string) (domain.Price, error) {
	return price(pair, "15234.23")
}

// SpotPrice returns a fixed spot price for the pair.
func (s *Sandbox) SpotPrice(ctx context.Context, pair string) (domain.Price, error) {
	return price(pair, "15234.73")
}

func price(pair, amount string) (domain.Price, error) {
	base, quote, ok := strings.Cut(pair, "-")
	if !ok {
		return domain.Price{}, errors.New("invalid currency pair")
	}
	return domain.Price{Base: base, Amount: amount, Currency: quote}, nil
}

// ServerTime returns the local clock; the sandbox has no clock skew.
func (s *Sandbox) ServerTime(ctx context.Context) (domain.Time, error) {
	now := time.Now().UTC()
	return domain.Time{ISO: now.Format(time.RFC3339), Epoch: now.Unix()}, nil
}

// PlaceBuy creates a buy order: total = subtotal + fee.
func (s *Sandbox) PlaceBuy(ctx context.Context, accountID string, req exchange.OrderRequest) (domain.Order, error) {
	return s.place(accountID, domain.OrderKindBuy, req.Amount, req.Currency, req.PaymentMethod, req.Commit, req.Quote)
}

// PlaceSell creates a sell order: total = subtotal - fee.
func (s *Sandbox) PlaceSell(ctx context.Context, accountID string, req exchange.OrderRequest) (domain.Order, error) {
	return s.place(accountID, domain.OrderKindSell, req.Amount, req.Currency, req.PaymentMethod, req.Commit, req.Quote)
}

// PlaceWithdrawal creates a withdrawal: total = subtotal - fee, like a sell.
func (s *Sandbox) PlaceWithdrawal(ctx context.Context, accountID string, req exchange.WithdrawalRequest) (domain.Order, error) {
	return s.place(accountID, domain.OrderKindWithdrawal, req.Amount, req.Currency, req.PaymentMethod, req.Commit, false)
}

func (s *Sandbox) place(accountID string, kind domain.OrderKind, amount, currency, paymentMethod string, commit, quote bool) (domain.Order, error) {
	if _, err := s.FindAccount(context.Background(), accountID); err != nil {
		return domain.Order{}, err
	}
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return domain.Order{}, fmt.Errorf("invalid amount: %s", amount)
	}

	fee := amt.Mul(feeRate)
	subtotal := amt
	total := subtotal.Sub(fee)
	if kind == domain.OrderKindBuy {
		total = subtotal.Add(fee)
	}

	status := domain.OrderStatusCreated
	if quote || commit {
		status = domain.OrderStatusCompleted
	}

	transactionID := uuid.NewString()
	order := domain.Order{
		ID:       uuid.NewString(),
		Kind:     kind,
		Status:   status,
		Amount:   domain.NewMoney(amt, currency),
		Subtotal: domain.NewMoney(subtotal, currency),
		Fee:      domain.NewMoney(fee, currency),
		Total:    domain.NewMoney(total, currency),
		PaymentMethod: domain.ResourceRef{
			ID:           paymentMethod,
			Resource:     "payment_method",
			ResourcePath: "/v2/payment-methods/" + paymentMethod,
		},
		Transaction: domain.ResourceRef{
			ID:           transactionID,
			Resource:     "transaction",
			ResourcePath: "/v2/transactions/" + transactionID,
		},
		Committed: commit && !quote,
		PayoutAt:  "2017-12-15T23:50:24Z",
	}
	s.orders[order.ID] = order
	return order, nil
}

// CommitOrder finalizes a stored order. Committing anything other than a
// "created" order fails, mirroring the remote state machine.
func (s *Sandbox) CommitOrder(ctx context.Context, accountID string, kind domain.OrderKind, orderID string) (domain.Order, error) {
	order, ok := s.orders[orderID]
	if !ok {
		return domain.Order{}, errors.New("Not found")
	}
	if order.Status != domain.OrderStatusCreated {
		return domain.Order{}, fmt.Errorf("you cannot commit a %s order", order.Status)
	}
	committed := order
	committed.Status = domain.OrderStatusCompleted
	committed.Committed = true
	s.orders[orderID] = committed
	return committed, nil
}

// CancelOrder marks a stored order as canceled. The CLI never calls this;
// it exists so tests can stage the canceled-order commit failure.
func (s *Sandbox) CancelOrder(orderID string) error {
	order, ok := s.orders[orderID]
	if !ok {
		return errors.New("Not found")
	}
	order.Status = domain.OrderStatusCanceled
	s.orders[orderID] = order
	return nil
}
