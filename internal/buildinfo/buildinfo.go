package buildinfo

import (
	"fmt"

	"github.com/vdparikh/roman"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("roman %s (commit=%s, date=%s, archaic=%t, max=%d)",
		Version, Commit, Date, roman.Archaic, roman.MaxValue)
}
