// Package sentry reports panics to Sentry.
package sentry

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/logrusorgru/aurora"

	"github.com/superfly/herokuctl/internal/buildinfo"
)

// DSNEnvKey names the environment variable holding the DSN panics are
// reported to. Reporting is off when it is unset.
const DSNEnvKey = "HEROKU_SENTRY_DSN"

const sendTimeout = 3 * time.Second

// hub is nil when reporting is off.
var hub *sentry.Hub

func init() {
	var err error
	if hub, err = newHub(os.Getenv(DSNEnvKey)); err != nil {
		fmt.Fprintf(os.Stderr, "failed initializing sentry: %v\n", err)
	}
}

func newHub(dsn string) (*sentry.Hub, error) {
	if dsn == "" {
		return nil, nil
	}

	client, err := sentry.NewClient(clientOptions(dsn))
	if err != nil {
		return nil, err
	}

	return sentry.NewHub(client, sentry.NewScope()), nil
}

func clientOptions(dsn string) sentry.ClientOptions {
	return sentry.ClientOptions{
		Dsn:         dsn,
		Environment: buildinfo.Environment(),
		Release:     buildinfo.Version().String(),
		Transport:   &sentry.HTTPSyncTransport{Timeout: sendTimeout},
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			// development builds never report
			if buildinfo.IsDev() {
				return nil
			}

			return event
		},
	}
}

// Recover reports v, the value of a recovered panic, and prints an apology
// to stderr.
func Recover(v any) {
	if hub != nil {
		_ = hub.Recover(v)
	}

	printError(os.Stderr, v)
}

func printError(w io.Writer, v any) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, aurora.Red("Oops, something went wrong! Could you try that again?"))

	if buildinfo.IsDev() {
		fmt.Fprintf(&buf, "\n%v\n%s\n", v, debug.Stack())
	}

	_, _ = buf.WriteTo(w)
}
