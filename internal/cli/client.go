// internal/cli/client.go
package cli

import (
	"coinbase-cli/internal/config"
	"coinbase-cli/internal/console"
	"coinbase-cli/internal/exchange"
	"coinbase-cli/internal/exchange/rest"
	"coinbase-cli/internal/exchange/sandbox"
	"coinbase-cli/internal/util"
)

// defaultAPIVersion is sent when the user never set one.
const defaultAPIVersion = "2017-07-21"

// buildClient constructs the exchange client for one command. Credentials
// come from the configuration file, overlaid with environment variables, and
// are prompted for interactively as a last resort. The configuration is
// loaded once here and passed along; nothing caches it behind the caller's
// back.
func (a *App) buildClient(useSandbox bool) (*exchange.Client, error) {
	if useSandbox {
		return exchange.NewClient(sandbox.New()), nil
	}

	vars := config.ApplyEnv(a.Manager.Load()).Variables
	if vars.APIVersion == "" {
		vars.APIVersion = defaultAPIVersion
	}
	if vars.APIKey == "" {
		a.Out.Log("Please enter your API key:")
		key, ok := a.Out.Input(console.InputOpts{})
		if !ok {
			return nil, util.ErrCancelled
		}
		vars.APIKey = key
	}
	if vars.APISecret == "" {
		a.Out.Log("Please enter your API secret:")
		secret, ok := a.Out.Input(console.InputOpts{})
		if !ok {
			return nil, util.ErrCancelled
		}
		vars.APISecret = secret
	}

	return exchange.NewClient(rest.NewClient(rest.Config{
		APIKey:     vars.APIKey,
		APISecret:  vars.APISecret,
		APIVersion: vars.APIVersion,
	})), nil
}
