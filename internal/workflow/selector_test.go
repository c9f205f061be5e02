// internal/workflow/selector_test.go
package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coinbase-cli/internal/console"
	"coinbase-cli/internal/domain"
	"coinbase-cli/internal/exchange"
	"coinbase-cli/internal/exchange/sandbox"
	"coinbase-cli/internal/util"
)

func newSandboxClient() (*sandbox.Sandbox, *exchange.Client) {
	sb := sandbox.New()
	return sb, exchange.NewClient(sb)
}

func TestChooseAccountExplicitID(t *testing.T) {
	_, client := newSandboxClient()
	out := &console.Script{}

	account, err := ChooseAccount(context.Background(), client, out, "db7abb63-2e8b-534a-bdff-5d1dbf2234f2", nil)

	require.NoError(t, err)
	assert.Equal(t, "EUR Wallet", account.Name)
	assert.Equal(t, []string{"Retrieving your account from Coinbase"}, out.Busies)
	// Explicit selection prints nothing besides the busy line.
	assert.Empty(t, out.Logs)
}

func TestChooseAccountExplicitIDNotFound(t *testing.T) {
	_, client := newSandboxClient()
	out := &console.Script{}

	_, err := ChooseAccount(context.Background(), client, out, "no-such-account", nil)

	require.Error(t, err)
	assert.EqualError(t, err, "error retrieving your account: Not found")
}

func TestChooseAccountSingleCandidateAutoSelected(t *testing.T) {
	_, client := newSandboxClient()
	out := &console.Script{}

	account, err := ChooseAccount(context.Background(), client, out, "", func(a *exchange.Account) bool {
		return a.Type == domain.AccountTypeFiat
	})

	require.NoError(t, err)
	assert.Equal(t, "EUR Wallet", account.Name)
	require.Len(t, out.Logs, 1)
	assert.Equal(t, "Using account: EUR Wallet, id: db7abb63-2e8b-534a-bdff-5d1dbf2234f2, balance: 172.83 EUR, type: fiat", out.Logs[0])
}

func TestChooseAccountNoCandidates(t *testing.T) {
	_, client := newSandboxClient()
	out := &console.Script{}

	_, err := ChooseAccount(context.Background(), client, out, "", func(a *exchange.Account) bool {
		return false
	})

	require.Error(t, err)
	assert.True(t, util.IsError(err, util.ErrNoAccounts))
}

func TestChooseAccountMenuSortedByName(t *testing.T) {
	_, client := newSandboxClient()
	out := &console.Script{Inputs: []string{"2"}}

	account, err := ChooseAccount(context.Background(), client, out, "", func(a *exchange.Account) bool {
		return a.Type == domain.AccountTypeWallet
	})

	require.NoError(t, err)
	// Fixture order is LTC, ETH, BTC; sorted by name the menu shows
	// BTC, ETH, LTC, so choice 2 is the ETH wallet.
	assert.Equal(t, "ETH Wallet", account.Name)
	require.GreaterOrEqual(t, len(out.Logs), 4)
	assert.Equal(t, "", out.Logs[0])
	assert.Contains(t, out.Logs[1], "1:   name: BTC Wallet")
	assert.Contains(t, out.Logs[2], "2:   name: ETH Wallet")
	assert.Contains(t, out.Logs[3], "3:   name: LTC Wallet")
}

func TestChooseAccountMenuRepromptsOnInvalidInput(t *testing.T) {
	_, client := newSandboxClient()
	out := &console.Script{Inputs: []string{"0", "banana", "7", "1"}}

	account, err := ChooseAccount(context.Background(), client, out, "", func(a *exchange.Account) bool {
		return a.Type == domain.AccountTypeWallet
	})

	require.NoError(t, err)
	assert.Equal(t, "BTC Wallet", account.Name)
	// The list is printed once; each retry repeats only the prompt.
	listed := 0
	prompts := 0
	for _, line := range out.Logs {
		if len(line) > 0 && line[0] >= '1' && line[0] <= '9' {
			listed++
		}
		if line == "Please choose an account by typing in its number:" {
			prompts++
		}
	}
	assert.Equal(t, 3, listed)
	assert.Equal(t, 4, prompts)
}

func TestChooseAccountMenuCancelled(t *testing.T) {
	_, client := newSandboxClient()
	out := &console.Script{}

	_, err := ChooseAccount(context.Background(), client, out, "", func(a *exchange.Account) bool {
		return a.Type == domain.AccountTypeWallet
	})

	require.Error(t, err)
	assert.True(t, util.IsError(err, util.ErrCancelled))
	assert.EqualError(t, err, "operation cancelled by user")
}

func TestChoosePaymentMethodSingleCandidateAutoSelected(t *testing.T) {
	_, client := newSandboxClient()
	out := &console.Script{}

	method, err := ChoosePaymentMethod(context.Background(), client, out, "", func(m domain.PaymentMethod) bool {
		return m.AllowBuy
	})

	require.NoError(t, err)
	assert.Equal(t, "EUR Wallet", method.Name)
	require.Len(t, out.Logs, 1)
	assert.Equal(t, "Using payment method: EUR Wallet, id 453ebbdf-9d09-578f-8fec-ecfd7e7fed17, type: fiat_account, currency: EUR", out.Logs[0])
}

func TestChoosePaymentMethodMenu(t *testing.T) {
	_, client := newSandboxClient()
	out := &console.Script{Inputs: []string{"1"}}

	method, err := ChoosePaymentMethod(context.Background(), client, out, "", func(m domain.PaymentMethod) bool {
		return m.AllowWithdraw
	})

	require.NoError(t, err)
	// Sorted by name: "ABN AMRO (...)" before "EUR Wallet".
	assert.Equal(t, "sepa_bank_account", method.Type)
}

func TestChoosePaymentMethodNoCandidates(t *testing.T) {
	sb, client := newSandboxClient()
	sb.PaymentMethods = nil
	out := &console.Script{}

	_, err := ChoosePaymentMethod(context.Background(), client, out, "", nil)

	require.Error(t, err)
	assert.True(t, util.IsError(err, util.ErrNoPaymentMethods))
	assert.EqualError(t, err, "no payment methods available")
}

func TestChooseAmountValid(t *testing.T) {
	out := &console.Script{Inputs: []string{"30.5"}}

	amount, err := ChooseAmount(context.Background(), out, "EUR", AllowAllNo)

	require.NoError(t, err)
	assert.Equal(t, "30.5", amount)
	assert.Contains(t, out.Logs, "Please enter the amount of EUR e.g. '30.5'")
}

func TestChooseAmountAllPermitted(t *testing.T) {
	out := &console.Script{Inputs: []string{"all"}}

	amount, err := ChooseAmount(context.Background(), out, "BTC", AllowAllYes)

	require.NoError(t, err)
	assert.Equal(t, "all", amount)
	assert.Contains(t, out.Logs, "Please enter the amount of BTC e.g. '30.5', or 'all'")
}

func TestChooseAmountAllRejectedWhenNotPermitted(t *testing.T) {
	out := &console.Script{Inputs: []string{"all", "12"}}

	amount, err := ChooseAmount(context.Background(), out, "EUR", AllowAllNo)

	require.NoError(t, err)
	assert.Equal(t, "12", amount)
	assert.Equal(t, []string{"please enter a valid amount e.g. '30.5'"}, out.Errors)
}

func TestChooseAmountRepromptsUntilValid(t *testing.T) {
	out := &console.Script{Inputs: []string{"abc", "-5", "0", "2.5"}}

	amount, err := ChooseAmount(context.Background(), out, "EUR", AllowAllNo)

	require.NoError(t, err)
	assert.Equal(t, "2.5", amount)
	assert.Equal(t, []string{
		"please enter a valid amount e.g. '30.5'",
		"please enter an amount greater than zero",
		"please enter an amount greater than zero",
	}, out.Errors)
}

func TestChooseAmountCancelled(t *testing.T) {
	out := &console.Script{}

	_, err := ChooseAmount(context.Background(), out, "EUR", AllowAllNo)

	require.Error(t, err)
	assert.True(t, util.IsError(err, util.ErrCancelled))
}
