// internal/workflow/selector.go
package workflow

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"coinbase-cli/internal/console"
	"coinbase-cli/internal/domain"
	"coinbase-cli/internal/exchange"
	"coinbase-cli/internal/util"
)

// ChooseAccount resolves one account. With an explicit id only that account
// is fetched; otherwise the user picks from the filtered candidates, sorted
// by name (remote order breaks ties). A single candidate is auto-selected
// without a prompt.
func ChooseAccount(
	ctx context.Context,
	client *exchange.Client,
	out console.Output,
	accountID string,
	filter func(*exchange.Account) bool,
) (*exchange.Account, error) {
	if accountID != "" {
		account, err := console.BusyWhile(ctx, out, "Retrieving your account from Coinbase",
			func(ctx context.Context) (*exchange.Account, error) {
				return client.Account(ctx, accountID)
			})
		if err != nil {
			return nil, fmt.Errorf("error retrieving your account: %s", err.Error())
		}
		return account, nil
	}

	accounts, err := console.BusyWhile(ctx, out, "Retrieving your accounts from Coinbase",
		func(ctx context.Context) ([]*exchange.Account, error) {
			return client.Accounts(ctx)
		})
	if err != nil {
		return nil, err
	}
	if filter != nil {
		eligible := accounts[:0]
		for _, account := range accounts {
			if filter(account) {
				eligible = append(eligible, account)
			}
		}
		accounts = eligible
	}
	sort.SliceStable(accounts, func(i, j int) bool {
		return accounts[i].Name < accounts[j].Name
	})

	// Is there anything to choose?
	if len(accounts) == 0 {
		return nil, util.ErrNoAccounts
	}
	if len(accounts) == 1 {
		account := accounts[0]
		out.Log("Using account: %s, id: %s, balance: %s %s, type: %s",
			account.Name, account.ID, account.Balance.Amount, account.Balance.Currency, account.Type)
		return account, nil
	}

	// Ask the user to choose.
	out.Log("")
	for i, account := range accounts {
		out.Log("%d:   name: %s, id: %s, balance: %s %s, type: %s",
			i+1, account.Name, account.ID, account.Balance.Amount, account.Balance.Currency, account.Type)
	}
	for {
		out.Log("Please choose an account by typing in its number:")
		input, ok := out.Input(console.InputOpts{})
		if !ok {
			return nil, util.ErrCancelled
		}
		if n, err := strconv.Atoi(input); err == nil && n > 0 && n <= len(accounts) {
			return accounts[n-1], nil
		}
	}
}

// ChoosePaymentMethod resolves one payment method, mirroring ChooseAccount
// with a capability filter.
func ChoosePaymentMethod(
	ctx context.Context,
	client *exchange.Client,
	out console.Output,
	methodID string,
	filter func(domain.PaymentMethod) bool,
) (domain.PaymentMethod, error) {
	if methodID != "" {
		method, err := client.PaymentMethod(ctx, methodID)
		if err != nil {
			return domain.PaymentMethod{}, fmt.Errorf("error retrieving your payment method: %s", err.Error())
		}
		return method, nil
	}

	methods, err := console.BusyWhile(ctx, out, "Retrieving your payment methods from Coinbase",
		func(ctx context.Context) ([]domain.PaymentMethod, error) {
			return client.PaymentMethods(ctx)
		})
	if err != nil {
		return domain.PaymentMethod{}, err
	}
	if filter != nil {
		eligible := methods[:0]
		for _, method := range methods {
			if filter(method) {
				eligible = append(eligible, method)
			}
		}
		methods = eligible
	}
	sort.SliceStable(methods, func(i, j int) bool {
		return methods[i].Name < methods[j].Name
	})

	if len(methods) == 0 {
		return domain.PaymentMethod{}, util.ErrNoPaymentMethods
	}
	if len(methods) == 1 {
		method := methods[0]
		out.Log("Using payment method: %s, id %s, type: %s, currency: %s",
			method.Name, method.ID, method.Type, method.Currency)
		return method, nil
	}

	out.Log("")
	for i, method := range methods {
		out.Log("%d:   name: %s, id %s, type: %s, currency: %s",
			i+1, method.Name, method.ID, method.Type, method.Currency)
	}
	for {
		out.Log("Please choose a payment method by typing in its number:")
		input, ok := out.Input(console.InputOpts{})
		if !ok {
			return domain.PaymentMethod{}, util.ErrCancelled
		}
		if n, err := strconv.Atoi(input); err == nil && n > 0 && n <= len(methods) {
			return methods[n-1], nil
		}
	}
}

// AllowAll controls whether the amount prompt accepts the literal "all".
type AllowAll int

const (
	AllowAllNo AllowAll = iota
	AllowAllYes
)

// ChooseAmount prompts for a decimal quantity of the given currency, or the
// literal "all" when permitted. Invalid input re-prompts indefinitely; only
// a cancellation aborts. When "all" is not permitted it is rejected with the
// same message as a malformed number.
func ChooseAmount(ctx context.Context, out console.Output, currency string, allowAll AllowAll) (string, error) {
	suffix := ""
	if allowAll == AllowAllYes {
		suffix = ", or 'all'"
	}
	out.Log("")
	for {
		out.Log("Please enter the amount of %s e.g. '30.5'%s", currency, suffix)
		input, ok := out.Input(console.InputOpts{})
		if !ok {
			return "", util.ErrCancelled
		}
		if input == "all" {
			if allowAll == AllowAllYes {
				return "all", nil
			}
			out.Error("please enter a valid amount e.g. '30.5'")
			continue
		}
		amount, err := decimal.NewFromString(input)
		if err != nil {
			out.Error("please enter a valid amount e.g. '30.5'")
			continue
		}
		if !amount.IsPositive() {
			out.Error("please enter an amount greater than zero")
			continue
		}
		return amount.String(), nil
	}
}
