// Command gemini-teamcity reports gemini test runs to TeamCity.
package main

import (
	"os"
	"runtime/debug"
	"strings"

	"github.com/gemini-teamcity/gemini-teamcity/internal/app"
)

const unknownVersion = "(unknown)"

// version describes the binary from its module version and the VCS
// settings stamped in by the go tool.
func version(info *debug.BuildInfo) string {
	if info == nil {
		return unknownVersion
	}

	settings := make(map[string]string, len(info.Settings))
	for _, kv := range info.Settings {
		settings[kv.Key] = kv.Value
	}

	var parts []string
	if v := info.Main.Version; v != "" && v != "(devel)" {
		parts = append(parts, v)
	}
	if vcs, ok := settings["vcs"]; ok {
		parts = append(parts, vcs)
	}
	if revision, ok := settings["vcs.revision"]; ok {
		if len(revision) > 7 {
			revision = revision[:7]
		}
		parts = append(parts, revision)
	}
	if modified := settings["vcs.modified"]; modified == "true" {
		parts = append(parts, "dirty")
	}

	if len(parts) == 0 {
		return unknownVersion
	}
	return strings.Join(parts, " ")
}

func main() {
	info, _ := debug.ReadBuildInfo()
	os.Exit(app.Execute(version(info), os.Stdout, os.Stderr))
}
