// internal/workflow/order_test.go
package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"coinbase-cli/internal/console"
	"coinbase-cli/internal/domain"
	"coinbase-cli/internal/exchange"
	"coinbase-cli/internal/util"
)

// MockExchange is a mock implementation of exchange.Exchange.
type MockExchange struct {
	mock.Mock
}

func (m *MockExchange) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockExchange) FindAccount(ctx context.Context, id string) (domain.Account, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Account), args.Error(1)
}

func (m *MockExchange) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentMethod), args.Error(1)
}

func (m *MockExchange) FindPaymentMethod(ctx context.Context, id string) (domain.PaymentMethod, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.PaymentMethod), args.Error(1)
}

func (m *MockExchange) BuyPrice(ctx context.Context, pair string) (domain.Price, error) {
	args := m.Called(ctx, pair)
	return args.Get(0).(domain.Price), args.Error(1)
}

func (m *MockExchange) SellPrice(ctx context.Context, pair string) (domain.Price, error) {
	args := m.Called(ctx, pair)
	return args.Get(0).(domain.Price), args.Error(1)
}

func (m *MockExchange) SpotPrice(ctx context.Context, pair string) (domain.Price, error) {
	args := m.Called(ctx, pair)
	return args.Get(0).(domain.Price), args.Error(1)
}

func (m *MockExchange) ServerTime(ctx context.Context) (domain.Time, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Time), args.Error(1)
}

func (m *MockExchange) PlaceBuy(ctx context.Context, accountID string, req exchange.OrderRequest) (domain.Order, error) {
	args := m.Called(ctx, accountID, req)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *MockExchange) PlaceSell(ctx context.Context, accountID string, req exchange.OrderRequest) (domain.Order, error) {
	args := m.Called(ctx, accountID, req)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *MockExchange) PlaceWithdrawal(ctx context.Context, accountID string, req exchange.WithdrawalRequest) (domain.Order, error) {
	args := m.Called(ctx, accountID, req)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *MockExchange) CommitOrder(ctx context.Context, accountID string, kind domain.OrderKind, orderID string) (domain.Order, error) {
	args := m.Called(ctx, accountID, kind, orderID)
	return args.Get(0).(domain.Order), args.Error(1)
}

const (
	btcAccountID = "33452906-0ab7-596a-98bd-cb3b62806ebe"
	fiatMethodID = "453ebbdf-9d09-578f-8fec-ecfd7e7fed17"
)

func TestRunBuyCommittedThroughMenu(t *testing.T) {
	_, client := newSandboxClient()
	// Menu order: BTC, ETH, LTC wallets; pick BTC, then confirm with Commit.
	out := &console.Script{Inputs: []string{"1", "0.5"}, MenuChoices: []int{0}}

	err := RunBuy(context.Background(), Args{}, out, client)

	require.NoError(t, err)
	assert.Contains(t, out.Logs, "Buy Order:")
	assert.Contains(t, out.Logs, "- amount   : 0.5 BTC")
	assert.Contains(t, out.Logs, "- fee      : 0.05 BTC")
	assert.Contains(t, out.Logs, "- subtotal : 0.5 BTC")
	assert.Contains(t, out.Logs, "- total    : 0.55 BTC")
	assert.Contains(t, out.Logs, "- status   : created")
	assert.Contains(t, out.Logs, "Done!")
	assert.Contains(t, out.Busies, "Sending buy order to Coinbase")
	assert.Contains(t, out.Busies, "Committing order on Coinbase")
}

func TestRunBuyDefaultMenuChoiceCancels(t *testing.T) {
	_, client := newSandboxClient()
	// Menu choice 1 is Cancel, the pre-selected option.
	out := &console.Script{Inputs: []string{"1", "0.5"}, MenuChoices: []int{1}}

	err := RunBuy(context.Background(), Args{}, out, client)

	require.NoError(t, err)
	assert.Contains(t, out.Logs, "Canceled.")
	assert.NotContains(t, out.Logs, "Done!")
	assert.NotContains(t, out.Busies, "Committing order on Coinbase")
}

func TestRunBuyQuoteSkipsConfirmation(t *testing.T) {
	_, client := newSandboxClient()
	out := &console.Script{Inputs: []string{"1", "0.5"}}

	err := RunBuy(context.Background(), Args{Quote: true}, out, client)

	require.NoError(t, err)
	// A quote shows as completed and never reaches the confirmation menu.
	assert.Contains(t, out.Logs, "- status   : completed")
	assert.NotContains(t, out.Logs, "Done!")
	assert.NotContains(t, out.Logs, "Canceled.")
}

func TestRunBuyCommitFlagSkipsMenu(t *testing.T) {
	_, client := newSandboxClient()
	out := &console.Script{}

	err := RunBuy(context.Background(), Args{
		Account:       btcAccountID,
		PaymentMethod: fiatMethodID,
		Amount:        "0.5",
		Commit:        true,
	}, out, client)

	require.NoError(t, err)
	assert.Contains(t, out.Logs, "Done!")
}

func TestRunBuyInvalidAmountArgMakesNoRemoteCall(t *testing.T) {
	ex := &MockExchange{}
	client := exchange.NewClient(ex)
	out := &console.Script{}

	err := RunBuy(context.Background(), Args{Amount: "bogus"}, out, client)

	require.Error(t, err)
	assert.True(t, util.IsError(err, util.ErrInvalidAmount))
	assert.EqualError(t, err, "amount must be a number greater than 0, e.g. '40.5'")
	ex.AssertNotCalled(t, "ListAccounts", mock.Anything)
	assert.Empty(t, out.Busies)
}

func TestRunBuyAmountArgAllRejected(t *testing.T) {
	ex := &MockExchange{}
	client := exchange.NewClient(ex)
	out := &console.Script{}

	err := RunBuy(context.Background(), Args{Amount: "all"}, out, client)

	require.Error(t, err)
	assert.EqualError(t, err, "amount must be a number greater than 0, e.g. '40.5'")
}

func TestRunSellInvalidAmountArgMentionsAll(t *testing.T) {
	ex := &MockExchange{}
	client := exchange.NewClient(ex)
	out := &console.Script{}

	err := RunSell(context.Background(), Args{Amount: "-3"}, out, client)

	require.Error(t, err)
	assert.EqualError(t, err, "amount must be a number greater than 0, e.g. '40.5', or 'all'")
	ex.AssertNotCalled(t, "ListAccounts", mock.Anything)
}

func TestRunSellAllUsesAccountBalance(t *testing.T) {
	_, client := newSandboxClient()
	out := &console.Script{MenuChoices: []int{0}}

	// Eligible sellable wallets are BTC and LTC; explicit account avoids the
	// menu so the scripted inputs cover only the amount step.
	err := RunSell(context.Background(), Args{Account: btcAccountID, Amount: "all"}, out, client)

	require.NoError(t, err)
	assert.Contains(t, out.Logs, "- amount   : 0.25000000 BTC")
	assert.Contains(t, out.Logs, "- total    : 0.225000000 BTC")
	assert.Contains(t, out.Logs, "Done!")
}

func TestRunWithdrawShowsTransferDetails(t *testing.T) {
	_, client := newSandboxClient()
	// Two withdraw-capable methods; pick the bank account, then commit.
	out := &console.Script{Inputs: []string{"1", "100"}, MenuChoices: []int{0}}

	err := RunWithdraw(context.Background(), Args{}, out, client)

	require.NoError(t, err)
	assert.Contains(t, out.Logs, "Withdrawal:")
	assert.Contains(t, out.Logs, "- from     : EUR Wallet")
	assert.Contains(t, out.Logs, "- to       : ABN AMRO (NL84 ABNA 0463 4913 35)")
	assert.Contains(t, out.Logs, "- payout   : 2017-12-15T23:50:24Z")
	assert.Contains(t, out.Logs, "Done!")
}

func TestRunWithdrawQuoteFlagIgnored(t *testing.T) {
	_, client := newSandboxClient()
	out := &console.Script{Inputs: []string{"1", "100"}, MenuChoices: []int{1}}

	// Withdrawals have no quote; the flag must not short-circuit the
	// confirmation step.
	err := RunWithdraw(context.Background(), Args{Quote: true}, out, client)

	require.NoError(t, err)
	assert.Contains(t, out.Logs, "Canceled.")
}

func TestRunSellNoEligibleAccounts(t *testing.T) {
	sb, client := newSandboxClient()
	for i := range sb.Accounts {
		sb.Accounts[i].Balance.Amount = "0.00000000"
	}
	out := &console.Script{}

	err := RunSell(context.Background(), Args{}, out, client)

	require.Error(t, err)
	assert.EqualError(t, err, "no accounts available")
}

func TestRunBuyCancelledAtAccountMenu(t *testing.T) {
	_, client := newSandboxClient()
	out := &console.Script{}

	err := RunBuy(context.Background(), Args{}, out, client)

	require.Error(t, err)
	assert.True(t, util.IsError(err, util.ErrCancelled))
}

func TestCommitReturnsNewOrderFacade(t *testing.T) {
	_, client := newSandboxClient()
	account, err := client.Account(context.Background(), btcAccountID)
	require.NoError(t, err)

	order, err := account.Buy(context.Background(), exchange.OrderRequest{
		Amount:        "0.5",
		Currency:      "BTC",
		PaymentMethod: fiatMethodID,
	})
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusCreated, order.Status)

	committed, err := order.Commit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, committed.Status)
	assert.True(t, committed.Committed)
	// The original facade is untouched.
	assert.Equal(t, domain.OrderStatusCreated, order.Status)
	assert.Same(t, account, committed.Account())
}
