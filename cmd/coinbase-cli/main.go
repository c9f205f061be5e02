// cmd/coinbase-cli/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"coinbase-cli/internal/cli"
	"coinbase-cli/internal/config"
	"coinbase-cli/internal/console"
	"coinbase-cli/internal/util"
)

func main() {
	util.InitLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Ctrl-C cancels the in-flight command instead of killing the process
	// mid-write.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		cancel()
	}()

	out := console.NewTerminal()

	manager, err := config.NewManager()
	if err != nil {
		out.Error("%s", err.Error())
		os.Exit(1)
	}

	app := cli.New(out, manager)
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		out.Error("%s", err.Error())
		os.Exit(1)
	}
}
