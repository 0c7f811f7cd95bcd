// Package httptracing records HTTP traffic to a HAR file when asked to via
// the environment.
package httptracing

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/haileys/go-harlog"

	"github.com/superfly/herokuctl/internal/logger"
)

// EnvKey names the environment variable holding the path of the HAR file to
// write.
const EnvKey = "HEROKU_OUTPUT_HAR"

type recorder struct {
	path      string
	container *harlog.HARContainer
}

// active is nil unless recording was requested.
var active *recorder

// Init starts recording when EnvKey is set.
func Init() {
	active = nil

	if path := os.Getenv(EnvKey); path != "" {
		active = &recorder{
			path:      path,
			container: harlog.NewHARContainer(),
		}
	}
}

// Enabled reports whether HTTP traffic is being recorded.
func Enabled() bool {
	return active != nil
}

// Finish writes the recorded traffic. Failures are logged, not returned, as
// they should not fail the command.
func Finish(log *logger.Logger) {
	if active == nil {
		return
	}

	if err := active.write(); err != nil {
		log.Warnf("failed writing HAR file %s: %v", active.path, err)
	}
}

func (r *recorder) write() error {
	data, err := json.MarshalIndent(r.container, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(r.path, data, 0o600)
}

// NewTransport wraps transport so that its traffic is recorded. It returns
// transport as is when recording is off.
func NewTransport(transport http.RoundTripper) http.RoundTripper {
	if active == nil {
		return transport
	}

	return &harlog.Transport{
		Transport: transport,
		Container: active.container,
	}
}
