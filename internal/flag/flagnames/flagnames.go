// Package flagnames contains the names of flags shared between commands.
package flagnames

const (
	// APIKey denotes the name of the API key flag.
	APIKey = "api-key"

	// Verbose denotes the name of the verbose flag.
	Verbose = "verbose"

	// App denotes the name of the app flag.
	App = "app"

	// Remote denotes the name of the git remote flag.
	Remote = "remote"

	// JSONOutput denotes the name of the JSON output flag.
	JSONOutput = "json"
)
