// Package addons implements opening the web dashboard of an add-on, either
// by resolving the add-on (or one of its attachments) and opening its
// web_url or by performing a single sign-on handoff.
package addons

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/superfly/herokuctl/internal/platform"
	"github.com/superfly/herokuctl/internal/tracing"
)

// NamespaceSeparator marks an identifier as globally addressable, e.g.
// heroku-redis::redis-123. Such identifiers are never scoped to an app.
const NamespaceSeparator = "::"

// Mode selects how Open reaches a dashboard.
type Mode int

const (
	// ModeResolve resolves the add-on or attachment and opens its web_url.
	ModeResolve Mode = iota

	// ModeSSO requests an SSO descriptor and follows it.
	ModeSSO
)

func (m Mode) String() string {
	switch m {
	case ModeResolve:
		return "resolve"
	case ModeSSO:
		return "sso"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// API wraps the platform calls the package depends on.
type API interface {
	GetAddOn(ctx context.Context, id string) (*platform.AddOn, error)
	GetAppAddOn(ctx context.Context, appName, id string) (*platform.AddOn, error)
	GetAttachment(ctx context.Context, id string) (*platform.Attachment, error)
	GetAppAttachment(ctx context.Context, appName, id string) (*platform.Attachment, error)
	GetSSO(ctx context.Context, appName, addOn string) (*platform.SSO, error)
}

var _ API = (*platform.Client)(nil)

// Opener opens add-on dashboards.
type Opener struct {
	API     API
	Browser Browser

	// TempDir is the directory SSO documents are written to. Defaults to
	// the OS temporary directory.
	TempDir string
}

// Open opens the dashboard of the add-on id identifies. app may be empty in
// ModeResolve, in which case id is resolved globally.
func (o *Opener) Open(ctx context.Context, mode Mode, app, id string) (err error) {
	ctx, span := tracing.StartSpan(ctx, "addons.open",
		attribute.String("app.name", app),
		attribute.String("addon.id", id),
		attribute.String("addons.mode", mode.String()),
	)
	defer func() {
		if err != nil {
			tracing.RecordError(span, err, "failed to open add-on dashboard")
		}
		span.End()
	}()

	switch mode {
	case ModeResolve:
		r := Resolver{API: o.API}

		var res *Resource
		if res, err = r.Resolve(ctx, app, id); err != nil {
			return err
		}

		return o.Browser.Open(ctx, res.WebURL)
	case ModeSSO:
		return o.handoff(ctx, app, id)
	default:
		return fmt.Errorf("unknown mode %s", mode)
	}
}
