// Package command implements helpers useful for when building cobra commands.
package command

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/superfly/herokuctl/internal/appname"
	"github.com/superfly/herokuctl/internal/buildinfo"
	"github.com/superfly/herokuctl/internal/clierr"
	"github.com/superfly/herokuctl/internal/config"
	"github.com/superfly/herokuctl/internal/flag"
	"github.com/superfly/herokuctl/internal/logger"
	"github.com/superfly/herokuctl/internal/platform"
	"github.com/superfly/herokuctl/internal/state"
)

type (
	Preparer func(context.Context) (context.Context, error)

	Runner func(context.Context) error
)

// ErrNoAuthToken is returned by RequireSession when no credential is
// configured.
var ErrNoAuthToken = errors.New("no API key found")

func New(usage, short, long string, fn Runner, p ...Preparer) *cobra.Command {
	return &cobra.Command{
		Use:   usage,
		Short: short,
		Long:  long,
		RunE:  newRunE(fn, p...),
	}
}

var commonPreparers = []Preparer{
	determineWorkingDir,
	determineUserHomeDir,
	determineConfigDir,
	loadConfig,
	initClient,
}

func newRunE(fn Runner, preparers ...Preparer) func(*cobra.Command, []string) error {
	if fn == nil {
		return nil
	}

	return func(cmd *cobra.Command, _ []string) (err error) {
		ctx := cmd.Context()
		ctx = flag.NewContext(ctx, cmd.Flags())

		// run the common preparers
		if ctx, err = prepare(ctx, commonPreparers...); err != nil {
			return
		}

		// run the preparers specific to the command
		if ctx, err = prepare(ctx, preparers...); err != nil {
			return
		}

		// run the command
		return fn(ctx)
	}
}

func prepare(parent context.Context, preparers ...Preparer) (ctx context.Context, err error) {
	ctx = parent

	for _, p := range preparers {
		if ctx, err = p(ctx); err != nil {
			break
		}
	}

	return
}

func determineWorkingDir(ctx context.Context) (context.Context, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed determining working directory: %w", err)
	}

	logger.FromContext(ctx).
		Debugf("determined working directory: %q", wd)

	return state.WithWorkingDirectory(ctx, wd), nil
}

func determineUserHomeDir(ctx context.Context) (context.Context, error) {
	wd, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed determining user home directory: %w", err)
	}

	logger.FromContext(ctx).
		Debugf("determined user home directory: %q", wd)

	return state.WithUserHomeDirectory(ctx, wd), nil
}

func determineConfigDir(ctx context.Context) (context.Context, error) {
	dir := filepath.Join(state.UserHomeDirectory(ctx), ".config", buildinfo.Name())

	logger.FromContext(ctx).
		Debugf("determined config directory: %q", dir)

	return state.WithConfigDirectory(ctx, dir), nil
}

func loadConfig(ctx context.Context) (context.Context, error) {
	path := filepath.Join(state.ConfigDirectory(ctx), config.FileName)

	cfg, err := config.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed loading config from %s: %w", path, err)
	}

	logger.FromContext(ctx).Debug("config initialized.")

	return config.NewContext(ctx, cfg), nil
}

func initClient(ctx context.Context) (context.Context, error) {
	logger := logger.FromContext(ctx)
	cfg := config.FromContext(ctx)

	var auth platform.Auth
	switch {
	case cfg.SealedAPIKey != "":
		auth = platform.TokenizerAuth(cfg.TokenizerURL, cfg.SealedAPIKey, cfg.TokenizerAuth)
	case cfg.APIKey != "":
		auth = platform.BearerTokenAuth(cfg.APIKey)
	default:
		logger.Debug("no credentials; skipped client initialization.")

		return ctx, nil
	}

	c, err := platform.New(platform.Options{
		BaseURL:    cfg.APIBaseURL,
		Auth:       auth,
		UserAgent:  buildinfo.UserAgent(),
		MaxRetries: cfg.HTTPRetries,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("client initialized.")

	return platform.NewContext(ctx, c), nil
}

// RequireSession is a Preparer which makes sure a session exists.
func RequireSession(ctx context.Context) (context.Context, error) {
	if !config.FromContext(ctx).Authenticated() {
		return nil, clierr.WithSuggestion(ErrNoAuthToken,
			fmt.Sprintf("Set %s or pass --api-key.", config.APIKeyEnvKey))
	}

	return ctx, nil
}

// LoadAppName is a Preparer which determines the app the command runs
// against from the app flag, the environment and the git remote, in that
// order. It leaves the app empty when none of them names one.
func LoadAppName(ctx context.Context) (context.Context, error) {
	app, src, err := appname.Detect(appname.Options{
		Flag:   flag.GetApp(ctx),
		Env:    config.FromContext(ctx).App,
		Dir:    state.WorkingDirectory(ctx),
		Remote: flag.GetRemote(ctx),
	})
	if err != nil {
		return nil, err
	}

	if app != "" {
		logger.FromContext(ctx).Debugf("determined app %q from %s", app, src)
	}

	return state.WithAppName(ctx, app), nil
}
