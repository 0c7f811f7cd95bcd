// Package appname implements detection of the app an invocation targets.
package appname

import (
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// DefaultRemote is the git remote consulted when none is named.
const DefaultRemote = "heroku"

// Source names where Detect found the app.
type Source string

const (
	SourceNone   Source = ""
	SourceFlag   Source = "flag"
	SourceEnv    Source = "env"
	SourceRemote Source = "git remote"
)

// Options are the inputs of Detect.
type Options struct {
	// Flag is the value of --app.
	Flag string

	// Env is the app named by the environment.
	Env string

	// Dir is where the git repository is looked up from.
	Dir string

	// Remote is the git remote to read the app from. A named remote must
	// exist; when empty DefaultRemote is consulted if present.
	Remote string
}

// Detect returns the app opts point to, in order of precedence: the flag,
// the environment and the git remote. It returns an empty name and
// SourceNone when none of them does.
func Detect(opts Options) (string, Source, error) {
	if opts.Flag != "" {
		return opts.Flag, SourceFlag, nil
	}
	if opts.Env != "" {
		return opts.Env, SourceEnv, nil
	}

	remote, required := opts.Remote, true
	if remote == "" {
		remote, required = DefaultRemote, false
	}

	app, err := FromRemote(opts.Dir, remote)
	switch {
	case err == nil:
		return app, SourceRemote, nil
	case !required && (errors.Is(err, git.ErrRepositoryNotExists) || errors.Is(err, git.ErrRemoteNotFound)):
		return "", SourceNone, nil
	default:
		return "", SourceNone, err
	}
}

// FromRemote returns the app the git remote named remote of the repository
// containing dir points to.
func FromRemote(dir, remote string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", errors.Wrapf(err, "failed opening git repository at %s", dir)
	}

	r, err := repo.Remote(remote)
	if err != nil {
		return "", errors.Wrapf(err, "failed reading git remote %s", remote)
	}

	apps := lo.Uniq(lo.FilterMap(r.Config().URLs, func(u string, _ int) (string, bool) {
		return ParseRemoteURL(u)
	}))

	switch len(apps) {
	case 0:
		return "", fmt.Errorf("git remote %s does not point to a Heroku app", remote)
	case 1:
		return apps[0], nil
	default:
		return "", fmt.Errorf("git remote %s points to multiple apps: %s", remote, strings.Join(apps, ", "))
	}
}

var remotePrefixes = []string{
	"https://git.heroku.com/",
	"ssh://git@heroku.com/",
	"git@heroku.com:",
}

// ParseRemoteURL returns the app a Heroku git URL names, e.g. myapp for
// https://git.heroku.com/myapp.git or git@heroku.com:myapp.git.
func ParseRemoteURL(u string) (string, bool) {
	prefix, ok := lo.Find(remotePrefixes, func(p string) bool {
		return strings.HasPrefix(u, p)
	})
	if !ok {
		return "", false
	}

	app := strings.TrimSuffix(strings.TrimPrefix(u, prefix), ".git")
	if app == "" || strings.Contains(app, "/") {
		return "", false
	}

	return app, true
}
