package wproj

import (
	"runtime/debug"
)

const root = "github.com/gridworks/wproj"

// Version returns the module version and checksum. The returned values are
// only valid in binaries built with module support.
func Version() (version, sum string) {
	b, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	for _, m := range b.Deps {
		if m.Path == root {
			if m.Replace != nil && m.Replace.Version != "" {
				return m.Replace.Version, m.Replace.Sum
			}
			return m.Version, m.Sum
		}
	}
	return "", ""
}
