// Package config implements the layered configuration of the CLI.
package config

import (
	"context"
	"errors"
	"io/fs"
	"sync"

	"github.com/spf13/pflag"

	"github.com/superfly/herokuctl/internal/env"
	"github.com/superfly/herokuctl/internal/flag"
	"github.com/superfly/herokuctl/internal/flag/flagnames"
)

const (
	// FileName denotes the name of the config file.
	FileName = "config.yml"

	envKeyPrefix          = "HEROKU_"
	APIBaseURLEnvKey      = envKeyPrefix + "API_URL"
	APIKeyEnvKey          = envKeyPrefix + "API_KEY"
	SealedAPIKeyEnvKey    = envKeyPrefix + "SEALED_API_KEY"
	TokenizerURLEnvKey    = envKeyPrefix + "TOKENIZER_URL"
	TokenizerAuthEnvKey   = envKeyPrefix + "TOKENIZER_AUTH"
	SudoEnvKey            = envKeyPrefix + "SUDO"
	AppEnvKey             = envKeyPrefix + "APP"
	HTTPRetriesEnvKey     = envKeyPrefix + "HTTP_RETRIES"
	verboseOutputEnvKey   = envKeyPrefix + "VERBOSE"
	defaultAPIBaseURL     = "https://api.heroku.com"
	defaultTokenizerURL   = "https://tokenizer.fly.io"
	defaultHTTPRetryCount = 0
)

// Config wraps the functionality of the configuration file.
//
// Instances of Config are safe for concurrent use.
type Config struct {
	mu sync.RWMutex

	// APIBaseURL denotes the base URL of the platform API.
	APIBaseURL string

	// APIKey denotes the user's platform API key.
	APIKey string

	// SealedAPIKey denotes an API key sealed for the tokenizer proxy. It is
	// used in place of APIKey when set.
	SealedAPIKey string

	// TokenizerURL denotes the URL of the tokenizer proxy.
	TokenizerURL string

	// TokenizerAuth denotes the credential presented to the tokenizer proxy.
	TokenizerAuth string

	// Sudo denotes whether the operator override is in effect.
	Sudo bool

	// App denotes the app named by the environment, if any.
	App string

	// HTTPRetries denotes how many times a request failing with a temporary
	// network error is retried.
	HTTPRetries int

	// VerboseOutput denotes whether the user wants the output to be verbose.
	VerboseOutput bool
}

// New returns a new instance of Config populated with default values.
func New() *Config {
	return &Config{
		APIBaseURL:   defaultAPIBaseURL,
		TokenizerURL: defaultTokenizerURL,
		HTTPRetries:  defaultHTTPRetryCount,
	}
}

// Load returns a Config built from the defaults, the file at path (if it
// exists), the environment and the flags ctx carries, in that order of
// precedence.
func Load(ctx context.Context, path string) (*Config, error) {
	cfg := New()

	switch err := cfg.ApplyFile(path); {
	case err == nil, errors.Is(err, fs.ErrNotExist):
		break
	default:
		return nil, err
	}

	cfg.ApplyEnv()

	cfg.ApplyFlags(flag.FromContext(ctx))

	return cfg, nil
}

// Authenticated reports whether cfg carries any credential.
func (cfg *Config) Authenticated() bool {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()

	return cfg.APIKey != "" || cfg.SealedAPIKey != ""
}

// ApplyEnv sets the properties of cfg which may be set via environment
// variables to the values these variables contain.
func (cfg *Config) ApplyEnv() {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()

	cfg.APIKey = env.FirstOrDefault(cfg.APIKey, APIKeyEnvKey)
	cfg.APIBaseURL = env.FirstOrDefault(cfg.APIBaseURL, APIBaseURLEnvKey)
	cfg.SealedAPIKey = env.FirstOrDefault(cfg.SealedAPIKey, SealedAPIKeyEnvKey)
	cfg.TokenizerURL = env.FirstOrDefault(cfg.TokenizerURL, TokenizerURLEnvKey)
	cfg.TokenizerAuth = env.FirstOrDefault(cfg.TokenizerAuth, TokenizerAuthEnvKey)
	cfg.App = env.FirstOrDefault(cfg.App, AppEnvKey)
	cfg.HTTPRetries = env.Int(HTTPRetriesEnvKey, cfg.HTTPRetries)

	// the override is triggered by presence alone
	cfg.Sudo = env.IsSet(SudoEnvKey) || cfg.Sudo
	cfg.VerboseOutput = env.IsTruthy(verboseOutputEnvKey) || cfg.VerboseOutput
}

// ApplyFile sets the properties of cfg which may be set via configuration file
// to the values the file at the given path contains.
func (cfg *Config) ApplyFile(path string) (err error) {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()

	var w struct {
		APIKey     string `yaml:"api_key"`
		APIBaseURL string `yaml:"api_url"`
	}

	if err = unmarshal(path, &w); err == nil {
		if w.APIKey != "" {
			cfg.APIKey = w.APIKey
		}
		if w.APIBaseURL != "" {
			cfg.APIBaseURL = w.APIBaseURL
		}
	}

	return
}

// ApplyFlags sets the properties of cfg which may be set via command line flags
// to the values the flags of the given FlagSet may contain.
func (cfg *Config) ApplyFlags(fs *pflag.FlagSet) {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()

	applyStringFlags(fs, map[string]*string{
		flagnames.APIKey: &cfg.APIKey,
	})

	applyBoolFlags(fs, map[string]*bool{
		flagnames.Verbose: &cfg.VerboseOutput,
	})
}

func applyStringFlags(fs *pflag.FlagSet, flags map[string]*string) {
	for name, dst := range flags {
		if !fs.Changed(name) {
			continue
		}

		if v, err := fs.GetString(name); err != nil {
			panic(err)
		} else {
			*dst = v
		}
	}
}

func applyBoolFlags(fs *pflag.FlagSet, flags map[string]*bool) {
	for name, dst := range flags {
		if !fs.Changed(name) {
			continue
		}

		if v, err := fs.GetBool(name); err != nil {
			panic(err)
		} else {
			*dst = v
		}
	}
}
