package buildinfo

import (
	"fmt"
	"time"

	"github.com/blang/semver"
)

// set via -ldflags by the release build
var (
	buildDate = "<date>"
	version   = "<version>"
	commit    = "<commit>"
)

var (
	parsedVersion   semver.Version
	parsedBuildDate time.Time
)

func init() {
	loadMeta()
}

// loadMeta parses the link time metadata. Development builds, which carry
// none, are versioned 0.0.0-{unix build time}+dev. Release builds panic on
// malformed metadata.
func loadMeta() {
	date, err := time.Parse(time.RFC3339, buildDate)

	switch {
	case IsDev():
		if err != nil {
			date = time.Now()
		}

		parsedBuildDate = date
		parsedVersion = semver.Version{
			Pre:   []semver.PRVersion{{VersionNum: uint64(date.Unix()), IsNum: true}},
			Build: []string{"dev"},
		}
	case err != nil:
		panic(fmt.Sprintf("malformed build date %q: %v", buildDate, err))
	default:
		parsedBuildDate = date.UTC()
		parsedVersion = semver.MustParse(version)
	}
}

func Commit() string {
	return commit
}

func Version() semver.Version {
	return parsedVersion
}

func BuildDate() time.Time {
	return parsedBuildDate
}
