package addons

import (
	"context"
	"fmt"
	"strings"

	"github.com/superfly/herokuctl/internal/logger"
	"github.com/superfly/herokuctl/internal/platform"
)

// Kind tags an Outcome.
type Kind int

const (
	// Found means the lookup returned the resource.
	Found Kind = iota

	// NotFound means the platform answered 404.
	NotFound

	// Ambiguous means the platform answered 422, the identifier matching
	// more than one resource.
	Ambiguous

	// Failed covers every other error, transport failures included.
	Failed
)

func (k Kind) String() string {
	switch k {
	case Found:
		return "found"
	case NotFound:
		return "not found"
	case Ambiguous:
		return "ambiguous"
	default:
		return "failed"
	}
}

// Resource is a resolved add-on or attachment.
type Resource struct {
	// Type is either "add-on" or "attachment".
	Type   string
	Name   string
	WebURL string
}

// Outcome is the result of a single resolution stage. Resource is set when
// Kind is Found, Err otherwise.
type Outcome struct {
	Kind     Kind
	Resource *Resource
	Err      error
}

func outcomeOf(res *Resource, err error) Outcome {
	switch {
	case err == nil:
		return Outcome{Kind: Found, Resource: res}
	case platform.IsNotFound(err):
		return Outcome{Kind: NotFound, Err: err}
	case platform.IsAmbiguous(err):
		return Outcome{Kind: Ambiguous, Err: err}
	default:
		return Outcome{Kind: Failed, Err: err}
	}
}

// action is what the Resolver does after a stage.
type action int

const (
	accept action = iota
	tryAttachment
	failWithAddOn
	failWithAttachment
)

// afterAddOn maps the add-on outcome onto the next action. Only not found
// and ambiguous add-ons fall back to attachments.
var afterAddOn = map[Kind]action{
	Found:     accept,
	NotFound:  tryAttachment,
	Ambiguous: tryAttachment,
	Failed:    failWithAddOn,
}

// afterAttachment maps the attachment outcome onto the next action. A
// missing attachment reports the add-on error, which names the add-on the
// user most likely meant.
var afterAttachment = map[Kind]action{
	Found:     accept,
	NotFound:  failWithAddOn,
	Ambiguous: failWithAttachment,
	Failed:    failWithAttachment,
}

// Resolver maps identifiers onto add-ons or attachments.
type Resolver struct {
	API API
}

// Resolve returns the add-on or, failing that, the attachment id identifies
// in the scope of app. An empty app, or an id containing the
// NamespaceSeparator, resolves globally.
func (r *Resolver) Resolve(ctx context.Context, app, id string) (*Resource, error) {
	log := logger.MaybeFromContext(ctx)

	addOn := r.resolveAddOn(ctx, app, id)
	log.Debugf("add-on %s: %s", id, addOn.Kind)

	switch afterAddOn[addOn.Kind] {
	case accept:
		return withDashboard(addOn.Resource)
	case failWithAddOn:
		return nil, addOn.Err
	}

	attachment := r.resolveAttachment(ctx, app, id)
	log.Debugf("attachment %s: %s", id, attachment.Kind)

	switch afterAttachment[attachment.Kind] {
	case accept:
		return withDashboard(attachment.Resource)
	case failWithAddOn:
		return nil, addOn.Err
	default:
		return nil, attachment.Err
	}
}

func (r *Resolver) resolveAddOn(ctx context.Context, app, id string) Outcome {
	if isGlobal(app, id) {
		return outcomeOf(addOnResource(r.API.GetAddOn(ctx, id)))
	}

	out := outcomeOf(addOnResource(r.API.GetAppAddOn(ctx, app, id)))
	if out.Kind == NotFound {
		return outcomeOf(addOnResource(r.API.GetAddOn(ctx, id)))
	}

	return out
}

func (r *Resolver) resolveAttachment(ctx context.Context, app, id string) Outcome {
	if isGlobal(app, id) {
		return outcomeOf(attachmentResource(r.API.GetAttachment(ctx, id)))
	}

	return outcomeOf(attachmentResource(r.API.GetAppAttachment(ctx, app, id)))
}

func isGlobal(app, id string) bool {
	return app == "" || strings.Contains(id, NamespaceSeparator)
}

func addOnResource(a *platform.AddOn, err error) (*Resource, error) {
	if err != nil {
		return nil, err
	}

	return &Resource{Type: "add-on", Name: a.Name, WebURL: a.WebURL}, nil
}

func attachmentResource(a *platform.Attachment, err error) (*Resource, error) {
	if err != nil {
		return nil, err
	}

	return &Resource{Type: "attachment", Name: a.Name, WebURL: a.WebURL}, nil
}

func withDashboard(res *Resource) (*Resource, error) {
	if res.WebURL == "" {
		return nil, fmt.Errorf("%s %s has no dashboard", res.Type, res.Name)
	}

	return res, nil
}
