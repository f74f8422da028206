package compileinfo

import (
	"fmt"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// CompileInfo is the build stamp embedded by the go tool.
type CompileInfo struct {
	Package    string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c CompileInfo) String() string {
	if c.GoVersion == "" {
		return "Build information is not available for this binary."
	}

	mod := ""
	if c.Modified {
		mod = " Files in the repo were modified after that commit."
	}

	return fmt.Sprintf("This %s binary was built with %s at commit %v at time %v.%s", c.Package, c.GoVersion, c.Commit, c.CommitTime, mod)
}

// Get reads the stamp from the running binary. Fields stay empty when the
// binary was built without module or VCS information (e.g. under go test).
func Get() CompileInfo {
	z, ok := debug.ReadBuildInfo()
	if !ok {
		return CompileInfo{}
	}

	return fromBuildInfo(z)
}

func fromBuildInfo(z *debug.BuildInfo) CompileInfo {
	out := CompileInfo{
		GoVersion: z.GoVersion,
		Package:   z.Path,
	}

	for _, s := range z.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}

	return out
}

// Log writes the stamp as one structured debug-level event.
func Log(logger zerolog.Logger) {
	z := Get()
	logger.Debug().
		Str("package", z.Package).
		Str("go", z.GoVersion).
		Str("commit", z.Commit).
		Str("commit_time", z.CommitTime).
		Bool("modified", z.Modified).
		Msg(z.String())
}
