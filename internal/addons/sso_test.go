package addons_test

import (
	"context"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superfly/herokuctl/internal/addons"
	"github.com/superfly/herokuctl/internal/clierr"
	"github.com/superfly/herokuctl/internal/platform"
)

func ssoAPI(calls *[]string, sso *platform.SSO, err error) addons.API {
	api := fakeAPI(calls, nil)
	api.GetSSOFunc = func(_ context.Context, app, addOn string) (*platform.SSO, error) {
		*calls = append(*calls, "/apps/"+app+"/addons/"+addOn+"/sso")
		return sso, err
	}
	return api
}

// openedDocument returns the contents of the file the file:// URL u points
// to.
func openedDocument(t *testing.T, u string) (string, string) {
	t.Helper()

	require.True(t, strings.HasPrefix(u, "file://"), "expected a file URL, got %s", u)

	parsed, err := url.Parse(u)
	require.NoError(t, err)

	path := filepath.FromSlash(parsed.Path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return path, string(data)
}

func TestSSOPost(t *testing.T) {
	var calls, opened []string

	dir := t.TempDir()

	opener := &addons.Opener{
		API: ssoAPI(&calls, &platform.SSO{
			Method: "post",
			Action: "https://provider.example.com/heroku/sso",
			Params: map[string]string{"token": "abc"},
		}, nil),
		Browser: recordingBrowser(&opened, nil),
		TempDir: dir,
	}

	err := opener.Open(context.Background(), addons.ModeSSO, "myapp", "redis-123")
	require.NoError(t, err)

	assert.Equal(t, []string{"/apps/myapp/addons/redis-123/sso"}, calls)
	require.Len(t, opened, 1)
	assert.NotEqual(t, "https://provider.example.com/heroku/sso", opened[0])

	path, doc := openedDocument(t, opened[0])
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "heroku-sso-"))
	assert.Equal(t, ".html", filepath.Ext(path))

	assert.Contains(t, doc, "<title>Heroku Add-ons SSO</title>")
	assert.Contains(t, doc, "<h3>Opening redis-123 on myapp...</h3>")
	assert.Contains(t, doc, `<form method="POST" action="https://provider.example.com/heroku/sso">`)
	assert.Contains(t, doc, `"token":"abc"`)
	assert.Contains(t, doc, `input.type = "hidden";`)
	assert.Contains(t, doc, "form.submit();")
	assert.NotContains(t, doc, "jquery")
}

func TestSSOGet(t *testing.T) {
	var calls, opened []string

	dir := t.TempDir()

	opener := &addons.Opener{
		API: ssoAPI(&calls, &platform.SSO{
			Method: "get",
			Action: "https://provider.example.com/heroku/sso?token=abc",
		}, nil),
		Browser: recordingBrowser(&opened, nil),
		TempDir: dir,
	}

	err := opener.Open(context.Background(), addons.ModeSSO, "myapp", "redis-123")
	require.NoError(t, err)

	assert.Equal(t, []string{"https://provider.example.com/heroku/sso?token=abc"}, opened)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSSODocumentEscaping(t *testing.T) {
	var calls, opened []string

	opener := &addons.Opener{
		API: ssoAPI(&calls, &platform.SSO{
			Method: "post",
			Action: "https://provider.example.com/sso",
			Params: map[string]string{
				"token":   `a"b'c</script><script>alert(1)</script>`,
				"user_id": "a&b",
			},
		}, nil),
		Browser: recordingBrowser(&opened, nil),
		TempDir: t.TempDir(),
	}

	err := opener.Open(context.Background(), addons.ModeSSO, "my<app>", "<b>redis</b>")
	require.NoError(t, err)
	require.Len(t, opened, 1)

	_, doc := openedDocument(t, opened[0])

	assert.Contains(t, doc, "<h3>Opening &lt;b&gt;redis&lt;/b&gt; on my&lt;app&gt;...</h3>")
	assert.NotContains(t, doc, "<b>redis</b>")
	assert.NotContains(t, doc, "<script>alert(1)</script>")
	assert.Contains(t, doc, `"user_id":`)
}

func TestSSODocumentsAreUnique(t *testing.T) {
	var calls, opened []string

	opener := &addons.Opener{
		API: ssoAPI(&calls, &platform.SSO{
			Method: "post",
			Action: "https://provider.example.com/sso",
			Params: map[string]string{"token": "abc"},
		}, nil),
		Browser: recordingBrowser(&opened, nil),
		TempDir: t.TempDir(),
	}

	ctx := context.Background()
	require.NoError(t, opener.Open(ctx, addons.ModeSSO, "myapp", "redis-123"))
	require.NoError(t, opener.Open(ctx, addons.ModeSSO, "myapp", "redis-123"))

	require.Len(t, opened, 2)
	assert.NotEqual(t, opened[0], opened[1])

	for _, u := range opened {
		_, doc := openedDocument(t, u)
		assert.Contains(t, doc, `"token":"abc"`)
	}
}

func TestSSODescriptorErrorPropagates(t *testing.T) {
	var calls, opened []string

	descriptorErr := notFound("Couldn't find that add on.")

	opener := &addons.Opener{
		API:     ssoAPI(&calls, nil, descriptorErr),
		Browser: recordingBrowser(&opened, nil),
	}

	err := opener.Open(context.Background(), addons.ModeSSO, "myapp", "redis-123")
	assert.Same(t, descriptorErr, err)
	assert.Empty(t, opened)
}

func TestSSORequiresApp(t *testing.T) {
	var calls, opened []string

	opener := &addons.Opener{
		API:     ssoAPI(&calls, &platform.SSO{Method: "get", Action: "https://example.com"}, nil),
		Browser: recordingBrowser(&opened, nil),
	}

	err := opener.Open(context.Background(), addons.ModeSSO, "", "redis-123")
	require.Error(t, err)

	assert.Contains(t, clierr.GetErrorSuggestion(err), "--app")
	assert.Empty(t, calls)
	assert.Empty(t, opened)
}

func TestSSOWriteFailure(t *testing.T) {
	var calls, opened []string

	opener := &addons.Opener{
		API: ssoAPI(&calls, &platform.SSO{
			Method: "post",
			Action: "https://provider.example.com/sso",
		}, nil),
		Browser: recordingBrowser(&opened, nil),
		TempDir: filepath.Join(t.TempDir(), "missing"),
	}

	err := opener.Open(context.Background(), addons.ModeSSO, "myapp", "redis-123")

	var writeErr *addons.WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Equal(t, "https://provider.example.com/sso", writeErr.URL)
	assert.Contains(t, clierr.GetErrorSuggestion(err), "https://provider.example.com/sso")
	assert.Empty(t, opened)
}

func TestSSOSkipsResolution(t *testing.T) {
	var calls, opened []string

	opener := &addons.Opener{
		API:     ssoAPI(&calls, &platform.SSO{Method: "get", Action: "https://provider.example.com/sso"}, nil),
		Browser: recordingBrowser(&opened, nil),
	}

	err := opener.Open(context.Background(), addons.ModeSSO, "myapp", "heroku-redis::redis-123")
	require.NoError(t, err)

	assert.Equal(t, []string{"/apps/myapp/addons/heroku-redis::redis-123/sso"}, calls)
}
