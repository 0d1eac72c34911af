package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/zapsharkrs/whiskerwood-modtools/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/zapsharkrs/whiskerwood-modtools/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/zapsharkrs/whiskerwood-modtools/internal/version.Date={{.Date}}
)

// Info is the build information in a renderable shape
type Info struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
}

// Get returns the current build information
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

func (i Info) String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", i.Version, i.Commit, i.Date)
}
