package mock

import (
	"context"

	"github.com/superfly/herokuctl/internal/addons"
)

var _ addons.Browser = (*Browser)(nil)

type Browser struct {
	OpenFunc func(ctx context.Context, url string) error
}

func (m *Browser) Open(ctx context.Context, url string) error {
	return m.OpenFunc(ctx, url)
}
