package mock

import (
	"context"

	"github.com/superfly/herokuctl/internal/addons"
	"github.com/superfly/herokuctl/internal/platform"
)

var _ addons.API = (*PlatformClient)(nil)

type PlatformClient struct {
	GetAddOnFunc         func(ctx context.Context, id string) (*platform.AddOn, error)
	GetAppAddOnFunc      func(ctx context.Context, appName, id string) (*platform.AddOn, error)
	GetAttachmentFunc    func(ctx context.Context, id string) (*platform.Attachment, error)
	GetAppAttachmentFunc func(ctx context.Context, appName, id string) (*platform.Attachment, error)
	GetSSOFunc           func(ctx context.Context, appName, addOn string) (*platform.SSO, error)
}

func (m *PlatformClient) GetAddOn(ctx context.Context, id string) (*platform.AddOn, error) {
	return m.GetAddOnFunc(ctx, id)
}

func (m *PlatformClient) GetAppAddOn(ctx context.Context, appName, id string) (*platform.AddOn, error) {
	return m.GetAppAddOnFunc(ctx, appName, id)
}

func (m *PlatformClient) GetAttachment(ctx context.Context, id string) (*platform.Attachment, error) {
	return m.GetAttachmentFunc(ctx, id)
}

func (m *PlatformClient) GetAppAttachment(ctx context.Context, appName, id string) (*platform.Attachment, error) {
	return m.GetAppAttachmentFunc(ctx, appName, id)
}

func (m *PlatformClient) GetSSO(ctx context.Context, appName, addOn string) (*platform.SSO, error) {
	return m.GetSSOFunc(ctx, appName, addOn)
}
