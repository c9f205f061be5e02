// internal/cli/orders.go
package cli

import (
	"context"

	"coinbase-cli/internal/workflow"
)

// cmdOrder runs the buy, sell or withdraw workflow. Flags pre-supply the
// interactive steps; whatever is missing gets asked for.
func (a *App) cmdOrder(ctx context.Context, kind string, args []string) error {
	fs := newFlagSet(kind)
	useSandbox := fs.Bool("sandbox", false, "use the fake exchange")
	var wfArgs workflow.Args
	fs.StringVar(&wfArgs.Account, "account", "", "account id")
	fs.StringVar(&wfArgs.Account, "a", "", "account id (shorthand)")
	fs.StringVar(&wfArgs.PaymentMethod, "payment-method", "", "payment method id")
	fs.StringVar(&wfArgs.PaymentMethod, "p", "", "payment method id (shorthand)")
	fs.StringVar(&wfArgs.Amount, "amount", "", "amount to trade")
	fs.StringVar(&wfArgs.Amount, "t", "", "amount to trade (shorthand)")
	fs.BoolVar(&wfArgs.Commit, "commit", false, "commit without asking")
	if kind != "withdraw" {
		fs.BoolVar(&wfArgs.Quote, "quote", false, "get a price quote instead of placing an order")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := a.buildClient(*useSandbox)
	if err != nil {
		return err
	}

	switch kind {
	case "buy":
		return workflow.RunBuy(ctx, wfArgs, a.Out, client)
	case "sell":
		return workflow.RunSell(ctx, wfArgs, a.Out, client)
	default:
		return workflow.RunWithdraw(ctx, wfArgs, a.Out, client)
	}
}
