// Package state implements getters and setters for command Contexts.
package state

import "context"

type contextKeyType int

const (
	_ contextKeyType = iota
	workingDirectoryKey
	userHomeDirectoryKey
	configDirectoryKey
	appNameKey
)

// WithWorkingDirectory derives a Context from ctx that carries dir.
func WithWorkingDirectory(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, workingDirectoryKey, dir)
}

// WorkingDirectory returns the working directory ctx carries.
//
// WorkingDirectory panics in case ctx carries no working directory.
func WorkingDirectory(ctx context.Context) string {
	return ctx.Value(workingDirectoryKey).(string)
}

// WithUserHomeDirectory derives a Context from ctx that carries dir.
func WithUserHomeDirectory(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, userHomeDirectoryKey, dir)
}

// UserHomeDirectory returns the user's home directory ctx carries.
//
// UserHomeDirectory panics in case ctx carries no home directory.
func UserHomeDirectory(ctx context.Context) string {
	return ctx.Value(userHomeDirectoryKey).(string)
}

// WithConfigDirectory derives a Context from ctx that carries dir.
func WithConfigDirectory(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, configDirectoryKey, dir)
}

// ConfigDirectory returns the config directory ctx carries.
//
// ConfigDirectory panics in case ctx carries no config directory.
func ConfigDirectory(ctx context.Context) string {
	return ctx.Value(configDirectoryKey).(string)
}

// WithAppName derives a Context from ctx that carries appName. An empty
// appName denotes an invocation without app context.
func WithAppName(ctx context.Context, appName string) context.Context {
	return context.WithValue(ctx, appNameKey, appName)
}

// AppName returns the app name ctx carries or an empty string in case it
// carries none.
func AppName(ctx context.Context) string {
	name, _ := ctx.Value(appNameKey).(string)

	return name
}
