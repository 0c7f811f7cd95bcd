package flag

import (
	"context"

	"github.com/spf13/pflag"

	"github.com/superfly/herokuctl/internal/flag/flagnames"
)

type contextKey struct{}

// NewContext returns a copy of ctx that carries the parsed flag set.
func NewContext(ctx context.Context, fs *pflag.FlagSet) context.Context {
	return context.WithValue(ctx, contextKey{}, fs)
}

// FromContext returns the flag set stored in ctx by NewContext.
func FromContext(ctx context.Context) *pflag.FlagSet {
	fs, ok := ctx.Value(contextKey{}).(*pflag.FlagSet)
	if !ok {
		panic("flag: context carries no FlagSet")
	}

	return fs
}

// FirstArg returns the first positional argument, or "" when there is none.
func FirstArg(ctx context.Context) string {
	if args := FromContext(ctx).Args(); len(args) > 0 {
		return args[0]
	}

	return ""
}

// GetString returns the value of the named string flag. Unknown flags read
// as "".
func GetString(ctx context.Context, name string) string {
	v, _ := FromContext(ctx).GetString(name)

	return v
}

// GetBool returns the value of the named boolean flag. Unknown flags read as
// false.
func GetBool(ctx context.Context, name string) bool {
	v, _ := FromContext(ctx).GetBool(name)

	return v
}

func GetApp(ctx context.Context) string {
	return GetString(ctx, flagnames.App)
}

func GetRemote(ctx context.Context) string {
	return GetString(ctx, flagnames.Remote)
}
