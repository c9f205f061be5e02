// internal/cli/app.go
package cli

import (
	"context"
	"fmt"

	"coinbase-cli/internal/config"
	"coinbase-cli/internal/console"
)

// App wires the collaborators of the command surface: the terminal, the
// configuration manager, and the exchange client construction. One App
// handles exactly one command per process invocation.
type App struct {
	Out     console.Output
	Manager *config.Manager
}

// New creates an App.
func New(out console.Output, manager *config.Manager) *App {
	return &App{Out: out, Manager: manager}
}

// Run dispatches one command. The returned error is what the process should
// report before exiting non-zero; a nil return means exit code 0.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return nil
	}

	command, rest := args[0], args[1:]
	switch command {
	case "accounts":
		return a.cmdAccounts(ctx, rest)
	case "paymentmethods":
		return a.cmdPaymentMethods(ctx, rest)
	case "buyprice":
		return a.cmdPrice(ctx, "buy", rest)
	case "sellprice":
		return a.cmdPrice(ctx, "sell", rest)
	case "spotprice":
		return a.cmdPrice(ctx, "spot", rest)
	case "time":
		return a.cmdTime(ctx, rest)
	case "buy":
		return a.cmdOrder(ctx, "buy", rest)
	case "sell":
		return a.cmdOrder(ctx, "sell", rest)
	case "withdraw":
		return a.cmdOrder(ctx, "withdraw", rest)
	case "get":
		return a.cmdGet(rest)
	case "set":
		return a.cmdSet(rest)
	case "unset":
		return a.cmdUnset(rest)
	case "help", "-h", "--help":
		a.usage()
		return nil
	default:
		return fmt.Errorf("unknown command '%s'", command)
	}
}

func (a *App) usage() {
	a.Out.Log("This is a tool for trading on Coinbase on the command-line.")
	a.Out.Log("")
	a.Out.Log("Commands:")
	a.Out.Log("  accounts                     list your coinbase accounts")
	a.Out.Log("  paymentmethods               list your coinbase payment methods")
	a.Out.Log("  buyprice <cur1> <cur2>       current buy price, e.g. buyprice BTC EUR")
	a.Out.Log("  sellprice <cur1> <cur2>      current sell price, e.g. sellprice BTC EUR")
	a.Out.Log("  spotprice <cur1> <cur2>      current spot price, e.g. spotprice BTC EUR")
	a.Out.Log("  time                         the current time as Coinbase knows it")
	a.Out.Log("  buy                          buy a cryptocurrency")
	a.Out.Log("  sell                         sell a cryptocurrency")
	a.Out.Log("  withdraw                     withdraw a fiat currency")
	a.Out.Log("  get <variable>               retrieve a variable, e.g. 'api-key'")
	a.Out.Log("  set <variable> <value>       store a variable, e.g. 'api-key'")
	a.Out.Log("  unset <variable>             remove a variable, e.g. 'api-key'")
	a.Out.Log("")
	a.Out.Log("Remote commands accept --sandbox to run against a fake exchange.")
}
