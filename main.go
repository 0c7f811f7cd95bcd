package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/superfly/herokuctl/iostreams"

	"github.com/superfly/herokuctl/internal/cli"
	"github.com/superfly/herokuctl/internal/sentry"
)

func main() {
	os.Exit(run())
}

func run() (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			sentry.Recover(r)

			exitCode = 3
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	return cli.Run(ctx, iostreams.System(), os.Args[1:]...)
}
