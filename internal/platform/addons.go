package platform

import (
	"context"
	"fmt"
	"net/url"
)

// AppRef is the compact form the platform embeds apps in other resources as.
type AppRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AddOn is a provisioned add-on.
type AddOn struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	State  string `json:"state"`
	WebURL string `json:"web_url"`
	App    AppRef `json:"app"`

	AddOnService struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"addon_service"`
}

// Attachment binds an add-on to an app under a name.
type Attachment struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	WebURL string `json:"web_url"`
	App    AppRef `json:"app"`

	AddOn struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		App  AppRef `json:"app"`
	} `json:"addon"`
}

// SSO describes how to establish an authenticated session on an add-on's
// dashboard.
type SSO struct {
	// Method is either "get" or "post".
	Method string `json:"method"`

	// Action is the target URL.
	Action string `json:"action"`

	// Params are the signed form fields to POST to Action.
	Params map[string]string `json:"params"`
}

// GetAddOn fetches the add-on id identifies globally.
// GET /addons/{id}
func (c *Client) GetAddOn(ctx context.Context, id string) (*AddOn, error) {
	out := new(AddOn)

	path := fmt.Sprintf("/addons/%s", url.PathEscape(id))
	if err := c.get(ctx, path, acceptHeroku, out); err != nil {
		return nil, err
	}

	return out, nil
}

// GetAppAddOn fetches the add-on id identifies in the scope of appName.
// GET /apps/{app}/addons/{id}
func (c *Client) GetAppAddOn(ctx context.Context, appName, id string) (*AddOn, error) {
	out := new(AddOn)

	path := fmt.Sprintf("/apps/%s/addons/%s", url.PathEscape(appName), url.PathEscape(id))
	if err := c.get(ctx, path, acceptHeroku, out); err != nil {
		return nil, err
	}

	return out, nil
}

// GetAttachment fetches the attachment id identifies globally.
// GET /addon-attachments/{id}
func (c *Client) GetAttachment(ctx context.Context, id string) (*Attachment, error) {
	out := new(Attachment)

	path := fmt.Sprintf("/addon-attachments/%s", url.PathEscape(id))
	if err := c.get(ctx, path, acceptHeroku, out); err != nil {
		return nil, err
	}

	return out, nil
}

// GetAppAttachment fetches the attachment id identifies in the scope of
// appName.
// GET /apps/{app}/addon-attachments/{id}
func (c *Client) GetAppAttachment(ctx context.Context, appName, id string) (*Attachment, error) {
	out := new(Attachment)

	path := fmt.Sprintf("/apps/%s/addon-attachments/%s", url.PathEscape(appName), url.PathEscape(id))
	if err := c.get(ctx, path, acceptHeroku, out); err != nil {
		return nil, err
	}

	return out, nil
}

// GetSSO fetches the SSO descriptor for the add-on addOn of appName.
// GET /apps/{app}/addons/{addon}/sso
func (c *Client) GetSSO(ctx context.Context, appName, addOn string) (*SSO, error) {
	out := new(SSO)

	path := fmt.Sprintf("/apps/%s/addons/%s/sso", url.PathEscape(appName), url.PathEscape(addOn))
	if err := c.get(ctx, path, acceptJSON, out); err != nil {
		return nil, err
	}

	return out, nil
}
