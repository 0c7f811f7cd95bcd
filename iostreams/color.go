package iostreams

import (
	"os"

	"github.com/mgutz/ansi"
)

// colorEnvDisabled reports whether NO_COLOR or CLICOLOR=0 asks for plain
// output.
func colorEnvDisabled() bool {
	return os.Getenv("NO_COLOR") != "" || os.Getenv("CLICOLOR") == "0"
}

func colorEnvForced() bool {
	v := os.Getenv("CLICOLOR_FORCE")

	return v != "" && v != "0"
}

var (
	red    = ansi.ColorFunc("red")
	yellow = ansi.ColorFunc("yellow")
	cyan   = ansi.ColorFunc("cyan")
	bold   = ansi.ColorFunc("default+b")
)

// ColorScheme paints text for terminals that support color and leaves it
// untouched otherwise.
type ColorScheme struct {
	enabled bool
}

func NewColorScheme(enabled bool) *ColorScheme {
	return &ColorScheme{enabled: enabled}
}

func (c *ColorScheme) paint(fn func(string) string, t string) string {
	if c == nil || !c.enabled {
		return t
	}

	return fn(t)
}

func (c *ColorScheme) Red(t string) string    { return c.paint(red, t) }
func (c *ColorScheme) Yellow(t string) string { return c.paint(yellow, t) }
func (c *ColorScheme) Cyan(t string) string   { return c.paint(cyan, t) }
func (c *ColorScheme) Bold(t string) string   { return c.paint(bold, t) }
