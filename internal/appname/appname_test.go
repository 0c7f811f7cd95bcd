package appname

import (
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepo(t *testing.T, remotes map[string][]string) string {
	t.Helper()

	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	for name, urls := range remotes {
		_, err := repo.CreateRemote(&config.RemoteConfig{Name: name, URLs: urls})
		require.NoError(t, err)
	}

	return dir
}

func TestParseRemoteURL(t *testing.T) {
	tests := []struct {
		url  string
		app  string
		isOK bool
	}{
		{url: "https://git.heroku.com/myapp.git", app: "myapp", isOK: true},
		{url: "https://git.heroku.com/myapp", app: "myapp", isOK: true},
		{url: "git@heroku.com:myapp.git", app: "myapp", isOK: true},
		{url: "ssh://git@heroku.com/myapp.git", app: "myapp", isOK: true},
		{url: "https://github.com/acme/myapp.git"},
		{url: "https://git.heroku.com/"},
		{url: "https://git.heroku.com/acme/myapp.git"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			app, ok := ParseRemoteURL(tt.url)
			assert.Equal(t, tt.isOK, ok)
			assert.Equal(t, tt.app, app)
		})
	}
}

func TestDetectPrecedence(t *testing.T) {
	dir := initRepo(t, map[string][]string{
		DefaultRemote: {"https://git.heroku.com/from-remote.git"},
	})

	app, src, err := Detect(Options{Flag: "from-flag", Env: "from-env", Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, "from-flag", app)
	assert.Equal(t, SourceFlag, src)

	app, src, err = Detect(Options{Env: "from-env", Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, "from-env", app)
	assert.Equal(t, SourceEnv, src)

	app, src, err = Detect(Options{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, "from-remote", app)
	assert.Equal(t, SourceRemote, src)
}

func TestDetectNamedRemote(t *testing.T) {
	dir := initRepo(t, map[string][]string{
		DefaultRemote: {"https://git.heroku.com/production.git"},
		"staging":     {"git@heroku.com:staging.git"},
	})

	app, src, err := Detect(Options{Dir: dir, Remote: "staging"})
	require.NoError(t, err)
	assert.Equal(t, "staging", app)
	assert.Equal(t, SourceRemote, src)
}

func TestDetectMissingNamedRemote(t *testing.T) {
	dir := initRepo(t, nil)

	_, _, err := Detect(Options{Dir: dir, Remote: "staging"})
	assert.ErrorIs(t, err, git.ErrRemoteNotFound)
}

func TestDetectWithoutApp(t *testing.T) {
	app, src, err := Detect(Options{Dir: t.TempDir()})
	require.NoError(t, err)
	assert.Empty(t, app)
	assert.Equal(t, SourceNone, src)

	app, src, err = Detect(Options{Dir: initRepo(t, nil)})
	require.NoError(t, err)
	assert.Empty(t, app)
	assert.Equal(t, SourceNone, src)
}

func TestFromRemoteRejectsForeignURLs(t *testing.T) {
	dir := initRepo(t, map[string][]string{
		DefaultRemote: {"https://github.com/acme/myapp.git"},
	})

	_, err := FromRemote(dir, DefaultRemote)
	assert.EqualError(t, err, "git remote heroku does not point to a Heroku app")
}

func TestFromRemoteMultipleApps(t *testing.T) {
	dir := initRepo(t, map[string][]string{
		DefaultRemote: {"https://git.heroku.com/one.git", "git@heroku.com:two.git"},
	})

	_, err := FromRemote(dir, DefaultRemote)
	assert.EqualError(t, err, "git remote heroku points to multiple apps: one, two")
}
