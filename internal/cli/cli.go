// Package cli implements the command line interface.
package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/superfly/herokuctl/iostreams"

	"github.com/superfly/herokuctl/internal/clierr"
	"github.com/superfly/herokuctl/internal/httptracing"
	"github.com/superfly/herokuctl/internal/logger"
	"github.com/superfly/herokuctl/internal/tracing"

	"github.com/superfly/herokuctl/internal/command/root"
)

// Run runs the command line interface with the given arguments and reports the
// exit code the application should exit with.
func Run(ctx context.Context, io *iostreams.IOStreams, args ...string) int {
	log := logger.FromEnv(io.ErrOut).WithColor(io.ColorEnabled())

	ctx = iostreams.NewContext(ctx, io)
	ctx = logger.NewContext(ctx, log)

	if shutdown, err := tracing.Init(ctx); err != nil {
		log.Warnf("failed initializing tracing: %v", err)
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			if err := shutdown(ctx); err != nil {
				log.Debugf("failed shutting down tracing: %v", err)
			}
		}()
	}

	httptracing.Init()
	defer httptracing.Finish(log)

	cmd := root.New()
	cmd.SetOut(io.Out)
	cmd.SetErr(io.ErrOut)
	cmd.SetArgs(args)

	cs := io.ColorScheme()

	switch _, err := cmd.ExecuteContextC(ctx); {
	case err == nil:
		return 0
	case clierr.IsCancelledError(err):
		return 127
	default:
		printError(io.ErrOut, cs, err)

		return 1
	}
}

func printError(w io.Writer, cs *iostreams.ColorScheme, err error) {
	var b bytes.Buffer

	fmt.Fprintln(&b, cs.Red("Error"), err)

	description := clierr.GetErrorDescription(err)
	if description != "" {
		fmt.Fprintf(&b, "\n%s\n", cs.Bold(description))
	}

	suggestion := clierr.GetErrorSuggestion(err)
	if suggestion != "" {
		fmt.Fprintf(&b, "\n%s\n", cs.Yellow(suggestion))
	}

	_, _ = b.WriteTo(w)
}
