// Package buildinfo reports how and when the running binary was built.
package buildinfo

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/blang/semver"
)

const defaultName = "herokuctl"

var cachedName = defaultName

func init() {
	if exe, err := os.Executable(); err == nil {
		cachedName = filepath.Base(exe)
	}
}

// Name returns the name for the executable that started the current
// process.
func Name() string {
	return cachedName
}

// BuildInfo describes the running binary.
type BuildInfo struct {
	Name        string         `json:"name"`
	Version     semver.Version `json:"version"`
	Commit      string         `json:"commit"`
	BuildDate   time.Time      `json:"build_date"`
	OS          string         `json:"os"`
	Arch        string         `json:"arch"`
	Environment string         `json:"environment"`
}

func (i BuildInfo) String() string {
	return fmt.Sprintf("%s v%s %s/%s Commit: %s BuildDate: %s",
		i.Name,
		i.Version,
		i.OS,
		i.Arch,
		i.Commit,
		i.BuildDate.Format(time.RFC3339))
}

func Info() BuildInfo {
	return BuildInfo{
		Name:        Name(),
		Version:     Version(),
		Commit:      Commit(),
		BuildDate:   BuildDate(),
		OS:          OS(),
		Arch:        Arch(),
		Environment: Environment(),
	}
}

// UserAgent reports the User-Agent header value sent to the platform API.
func UserAgent() string {
	return fmt.Sprintf("%s/%s (%s; %s)", defaultName, Version(), OS(), Arch())
}

func OS() string {
	return runtime.GOOS
}

func Arch() string {
	return runtime.GOARCH
}
