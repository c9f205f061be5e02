// internal/workflow/order.go
package workflow

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"coinbase-cli/internal/console"
	"coinbase-cli/internal/domain"
	"coinbase-cli/internal/exchange"
	"coinbase-cli/internal/util"
)

// Args are the pre-supplied parameters of one order command. Empty strings
// mean "ask the user interactively".
type Args struct {
	Account       string // Account id; skips the account menu
	PaymentMethod string // Payment method id; skips the method menu
	Amount        string // Decimal amount, or "all" where permitted
	Quote         bool   // Request a non-binding quote instead of a real order
	Commit        bool   // Commit immediately without the confirmation menu
}

// kindSpec captures how the shared order workflow differs per operation:
// the eligibility predicates, whether "all" and quotes apply, and the
// display texts.
type kindSpec struct {
	kind         domain.OrderKind
	title        string
	sendBusy     string
	allowAll     AllowAll
	hasQuote     bool
	accountOK    func(*exchange.Account) bool
	methodOK     func(domain.PaymentMethod) bool
	place        func(ctx context.Context, account *exchange.Account, req exchange.OrderRequest) (*exchange.Order, error)
	showTransfer bool // Withdrawals also show source, destination and payout
}

var buySpec = kindSpec{
	kind:     domain.OrderKindBuy,
	title:    "Buy Order:",
	sendBusy: "Sending buy order to Coinbase",
	allowAll: AllowAllNo,
	hasQuote: true,
	accountOK: func(account *exchange.Account) bool {
		return account.Type == domain.AccountTypeWallet
	},
	methodOK: func(method domain.PaymentMethod) bool { return method.AllowBuy },
	place: func(ctx context.Context, account *exchange.Account, req exchange.OrderRequest) (*exchange.Order, error) {
		return account.Buy(ctx, req)
	},
}

var sellSpec = kindSpec{
	kind:     domain.OrderKindSell,
	title:    "Sell Order:",
	sendBusy: "Sending sell order to Coinbase",
	allowAll: AllowAllYes,
	hasQuote: true,
	accountOK: func(account *exchange.Account) bool {
		return account.Type == domain.AccountTypeWallet && account.Balance.IsPositive()
	},
	methodOK: func(method domain.PaymentMethod) bool { return method.AllowSell },
	place: func(ctx context.Context, account *exchange.Account, req exchange.OrderRequest) (*exchange.Order, error) {
		return account.Sell(ctx, req)
	},
}

var withdrawSpec = kindSpec{
	kind:     domain.OrderKindWithdrawal,
	title:    "Withdrawal:",
	sendBusy: "Sending withdrawal to Coinbase",
	allowAll: AllowAllYes,
	hasQuote: false,
	accountOK: func(account *exchange.Account) bool {
		return account.Type == domain.AccountTypeFiat
	},
	methodOK: func(method domain.PaymentMethod) bool { return method.AllowWithdraw },
	place: func(ctx context.Context, account *exchange.Account, req exchange.OrderRequest) (*exchange.Order, error) {
		return account.Withdraw(ctx, exchange.WithdrawalRequest{
			Amount:        req.Amount,
			Currency:      req.Currency,
			PaymentMethod: req.PaymentMethod,
			Commit:        req.Commit,
		})
	},
	showTransfer: true,
}

// RunBuy buys coins for cash.
func RunBuy(ctx context.Context, args Args, out console.Output, client *exchange.Client) error {
	return run(ctx, buySpec, args, out, client)
}

// RunSell sells coins for cash.
func RunSell(ctx context.Context, args Args, out console.Output, client *exchange.Client) error {
	return run(ctx, sellSpec, args, out, client)
}

// RunWithdraw withdraws fiat money to a payment method.
func RunWithdraw(ctx context.Context, args Args, out console.Output, client *exchange.Client) error {
	return run(ctx, withdrawSpec, args, out, client)
}

// run drives one order lifecycle: validate the static arguments, resolve
// account, payment method and amount, submit the order, and commit or
// cancel. Every failure aborts the remaining steps; nothing local needs
// rolling back because the remote side owns all state.
func run(ctx context.Context, spec kindSpec, args Args, out console.Output, client *exchange.Client) error {
	if err := validateAmountArg(args.Amount, spec.allowAll); err != nil {
		return err
	}

	account, err := ChooseAccount(ctx, client, out, args.Account, spec.accountOK)
	if err != nil {
		return err
	}
	method, err := ChoosePaymentMethod(ctx, client, out, args.PaymentMethod, spec.methodOK)
	if err != nil {
		return err
	}

	amount := args.Amount
	if amount == "" {
		amount, err = ChooseAmount(ctx, out, account.Currency.Code, spec.allowAll)
		if err != nil {
			return err
		}
	}
	// "all" resolves against the balance only now, after the account is known.
	if amount == "all" {
		amount = account.Balance.Amount
	}

	order, err := console.BusyWhile(ctx, out, spec.sendBusy,
		func(ctx context.Context) (*exchange.Order, error) {
			return spec.place(ctx, account, exchange.OrderRequest{
				Amount:        amount,
				Currency:      account.Currency.Code,
				PaymentMethod: method.ID,
				Commit:        false,
				Quote:         args.Quote && spec.hasQuote,
			})
		})
	if err != nil {
		return err
	}

	out.Log("")
	out.Log(spec.title)
	out.Log("- amount   : %s %s", order.Amount.Amount, order.Amount.Currency)
	if spec.showTransfer {
		out.Log("- from     : %s", account.Name)
		out.Log("- to       : %s", method.Name)
	}
	out.Log("- fee      : %s %s", order.Fee.Amount, order.Fee.Currency)
	out.Log("- subtotal : %s %s", order.Subtotal.Amount, order.Subtotal.Currency)
	out.Log("- total    : %s %s", order.Total.Amount, order.Total.Currency)
	out.Log("- status   : %s", order.Status)
	if spec.showTransfer {
		out.Log("- payout   : %s", order.PayoutAt)
	}

	// A quote is price discovery only; it is never committed.
	if spec.hasQuote && args.Quote {
		return nil
	}

	doCommit := args.Commit
	if !doCommit {
		choice, ok := out.Menu(console.MenuOpts{Options: []string{"Commit", "Cancel"}, Selected: 1})
		doCommit = ok && choice == 0
	}
	if !doCommit {
		out.Log("Canceled.")
		return nil
	}
	if _, err := console.BusyWhile(ctx, out, "Committing order on Coinbase",
		func(ctx context.Context) (*exchange.Order, error) {
			return order.Commit(ctx)
		}); err != nil {
		return err
	}
	out.Log("Done!")
	return nil
}

// validateAmountArg is the pure local guard on an explicit amount argument;
// it runs before any network call.
func validateAmountArg(amount string, allowAll AllowAll) error {
	if amount == "" {
		return nil
	}
	example := "e.g. '40.5'"
	if allowAll == AllowAllYes {
		if amount == "all" {
			return nil
		}
		example = "e.g. '40.5', or 'all'"
	}
	d, err := decimal.NewFromString(amount)
	if err != nil || !d.IsPositive() {
		return fmt.Errorf("%w, %s", util.ErrInvalidAmount, example)
	}
	return nil
}
