// internal/cli/info.go
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"sort"
	"time"

	"coinbase-cli/internal/console"
	"coinbase-cli/internal/domain"
)

// newFlagSet creates a silent flag set; parse errors surface through the
// returned error, not on stderr.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// cmdAccounts lists the user's accounts sorted by name.
func (a *App) cmdAccounts(ctx context.Context, args []string) error {
	fs := newFlagSet("accounts")
	useSandbox := fs.Bool("sandbox", false, "use the fake exchange")
	if err := fs.Parse(args); err != nil {
		return err
	}
	client, err := a.buildClient(*useSandbox)
	if err != nil {
		return err
	}

	accounts, err := console.BusyWhile(ctx, a.Out, "Retrieving your accounts from Coinbase",
		func(ctx context.Context) ([]domain.Account, error) {
			facades, err := client.Accounts(ctx)
			if err != nil {
				return nil, err
			}
			records := make([]domain.Account, len(facades))
			for i, facade := range facades {
				records[i] = facade.Account
			}
			return records, nil
		})
	if err != nil {
		return err
	}
	sort.SliceStable(accounts, func(i, j int) bool { return accounts[i].Name < accounts[j].Name })
	if len(accounts) == 0 {
		a.Out.Log("no accounts available")
	}
	for _, account := range accounts {
		a.Out.Log("name: %s, id: %s, balance: %s %s, type: %s",
			account.Name, account.ID, account.Balance.Amount, account.Balance.Currency, account.Type)
	}
	return nil
}

// cmdPaymentMethods lists the user's payment methods sorted by name.
func (a *App) cmdPaymentMethods(ctx context.Context, args []string) error {
	fs := newFlagSet("paymentmethods")
	useSandbox := fs.Bool("sandbox", false, "use the fake exchange")
	if err := fs.Parse(args); err != nil {
		return err
	}
	client, err := a.buildClient(*useSandbox)
	if err != nil {
		return err
	}

	methods, err := console.BusyWhile(ctx, a.Out, "Retrieving your payment methods from Coinbase",
		func(ctx context.Context) ([]domain.PaymentMethod, error) {
			return client.PaymentMethods(ctx)
		})
	if err != nil {
		return err
	}
	sort.SliceStable(methods, func(i, j int) bool { return methods[i].Name < methods[j].Name })
	if len(methods) == 0 {
		a.Out.Log("no payment methods available")
	}
	for _, method := range methods {
		a.Out.Log("name: %s, id %s, type: %s, currency: %s",
			method.Name, method.ID, method.Type, method.Currency)
	}
	return nil
}

// cmdPrice fetches the buy, sell or spot price for a currency pair given as
// two positional arguments.
func (a *App) cmdPrice(ctx context.Context, side string, args []string) error {
	fs := newFlagSet(side + "price")
	useSandbox := fs.Bool("sandbox", false, "use the fake exchange")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("usage: %sprice <currency1> <currency2>", side)
	}
	pair := fs.Arg(0) + "-" + fs.Arg(1)

	client, err := a.buildClient(*useSandbox)
	if err != nil {
		return err
	}

	price, err := console.BusyWhile(ctx, a.Out, fmt.Sprintf("Getting %s price from Coinbase", side),
		func(ctx context.Context) (domain.Price, error) {
			switch side {
			case "buy":
				return client.BuyPrice(ctx, pair)
			case "sell":
				return client.SellPrice(ctx, pair)
			default:
				return client.SpotPrice(ctx, pair)
			}
		})
	if err != nil {
		return err
	}
	a.Out.Log("%s: 1 %s = %s %s", side, price.Base, price.Amount, price.Currency)
	return nil
}

// cmdTime shows the exchange's clock next to the local one.
func (a *App) cmdTime(ctx context.Context, args []string) error {
	fs := newFlagSet("time")
	useSandbox := fs.Bool("sandbox", false, "use the fake exchange")
	if err := fs.Parse(args); err != nil {
		return err
	}
	client, err := a.buildClient(*useSandbox)
	if err != nil {
		return err
	}

	serverTime, err := console.BusyWhile(ctx, a.Out, "Getting time from Coinbase",
		func(ctx context.Context) (domain.Time, error) {
			return client.ServerTime(ctx)
		})
	if err != nil {
		return err
	}
	a.Out.Log("Coinbase: %s", serverTime.ISO)
	a.Out.Log("You     : %s", time.Now().UTC().Format(time.RFC3339))
	return nil
}
