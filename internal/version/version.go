package version

import (
	"encoding/json"
	"io"
	"os"
	"runtime"
)

// Заполняются через -ldflags "-X github.com/wolfeidau/node-quotas/internal/version.Release=..."
var (
	Binary    = "quotas"
	Release   = "UNKNOWN"
	BuildDate = "UNKNOWN"
	GitHash   = "UNKNOWN"
)

type Info struct {
	Binary    string `json:"binary"`
	Release   string `json:"release"`
	BuildDate string `json:"build_date"`
	GitHash   string `json:"git_hash"`
	GoVersion string `json:"go_version"`
}

func Get() Info {
	return Info{
		Binary:    Binary,
		Release:   Release,
		BuildDate: BuildDate,
		GitHash:   GitHash,
		GoVersion: runtime.Version(),
	}
}

// Fprint пишет Info одной строкой JSON.
func Fprint(w io.Writer) error {
	return json.NewEncoder(w).Encode(Get())
}

func PrintVersion() {
	_ = Fprint(os.Stdout)
}
