// internal/cli/vars.go
package cli

import (
	"fmt"

	"coinbase-cli/internal/config"
	"coinbase-cli/internal/util"
)

// variable accessors keyed by the names users type on the command line.
var variableNames = []string{"api-key", "api-secret", "api-version"}

func variableRef(vars *config.Variables, name string) (*string, error) {
	switch name {
	case "api-key":
		return &vars.APIKey, nil
	case "api-secret":
		return &vars.APISecret, nil
	case "api-version":
		return &vars.APIVersion, nil
	default:
		return nil, fmt.Errorf("%w '%s'", util.ErrUnknownVariable, name)
	}
}

// cmdGet prints the stored value of one configuration variable.
func (a *App) cmdGet(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: get <variable>, one of %v", variableNames)
	}
	cfg := a.Manager.Load()
	ref, err := variableRef(&cfg.Variables, args[0])
	if err != nil {
		return err
	}
	a.Out.Log("%s", *ref)
	return nil
}

// cmdSet stores one configuration variable.
func (a *App) cmdSet(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: set <variable> <value>, one of %v", variableNames)
	}
	cfg := a.Manager.Load()
	ref, err := variableRef(&cfg.Variables, args[0])
	if err != nil {
		return err
	}
	*ref = args[1]
	return a.Manager.Save(cfg)
}

// cmdUnset removes one configuration variable.
func (a *App) cmdUnset(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: unset <variable>, one of %v", variableNames)
	}
	cfg := a.Manager.Load()
	ref, err := variableRef(&cfg.Variables, args[0])
	if err != nil {
		return err
	}
	*ref = ""
	return a.Manager.Save(cfg)
}
