// Package flag implements flag-related functionality.
package flag

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/superfly/herokuctl/internal/flag/flagnames"
)

// Flag describes a flag a command accepts.
type Flag interface {
	addTo(*cobra.Command)
}

// Add registers flags with cmd.
func Add(cmd *cobra.Command, flags ...Flag) {
	for _, f := range flags {
		f.addTo(cmd)
	}
}

// Bool describes a boolean flag.
type Bool struct {
	Name        string
	Shorthand   string
	Description string
	Default     bool
	Hidden      bool
	// Persistent flags are inherited by subcommands.
	Persistent bool
}

func (b Bool) addTo(cmd *cobra.Command) {
	fs := flagSet(cmd, b.Persistent)
	fs.BoolP(b.Name, b.Shorthand, b.Default, b.Description)
	fs.Lookup(b.Name).Hidden = b.Hidden
}

// String describes a string flag.
type String struct {
	Name        string
	Shorthand   string
	Description string
	Default     string
	Hidden      bool
	// Persistent flags are inherited by subcommands.
	Persistent bool
}

func (s String) addTo(cmd *cobra.Command) {
	fs := flagSet(cmd, s.Persistent)
	fs.StringP(s.Name, s.Shorthand, s.Default, s.Description)
	fs.Lookup(s.Name).Hidden = s.Hidden
}

func flagSet(cmd *cobra.Command, persistent bool) *pflag.FlagSet {
	if persistent {
		return cmd.PersistentFlags()
	}

	return cmd.Flags()
}

// App returns the flag naming the app a command targets.
func App() String {
	return String{
		Name:        flagnames.App,
		Shorthand:   "a",
		Description: "App to run command against",
	}
}

// Remote returns the flag naming the git remote the app is read from.
func Remote() String {
	return String{
		Name:        flagnames.Remote,
		Shorthand:   "r",
		Description: "Git remote of app to use",
	}
}

// APIKey returns the flag carrying the platform API key.
func APIKey() String {
	return String{
		Name:        flagnames.APIKey,
		Description: "Heroku API key",
		Persistent:  true,
	}
}

func Verbose() Bool {
	return Bool{
		Name:        flagnames.Verbose,
		Description: "Verbose output",
		Persistent:  true,
	}
}

func JSONOutput() Bool {
	return Bool{
		Name:        flagnames.JSONOutput,
		Shorthand:   "j",
		Description: "JSON output",
	}
}
