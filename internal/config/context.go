package config

import "context"

type contextKey struct{}

// NewContext returns a copy of ctx that carries cfg.
func NewContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, contextKey{}, cfg)
}

// FromContext returns the Config stored in ctx by NewContext.
func FromContext(ctx context.Context) *Config {
	cfg, ok := ctx.Value(contextKey{}).(*Config)
	if !ok {
		panic("config: context carries no Config")
	}

	return cfg
}
