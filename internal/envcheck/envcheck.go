// Package envcheck compares the modules linked into a binary against the
// versions the targets were tested with.
//
// Nothing runs at import time; callers invoke [Check] explicitly.
package envcheck

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/san-kum/targets/internal/logging"
)

// GoToolchain names the Go release in a Requirement.
const GoToolchain = "go"

type Requirement struct {
	Module string
	Min    string
}

// Tested lists the minimum versions the test suite was run against.
var Tested = []Requirement{
	{Module: GoToolchain, Min: "1.25.0"},
	{Module: "gonum.org/v1/gonum", Min: "v0.17.0"},
	{Module: "gonum.org/v1/plot", Min: "v0.16.0"},
	{Module: "github.com/go-echarts/go-echarts/v2", Min: "v2.7.0"},
	{Module: "github.com/charmbracelet/bubbletea", Min: "v1.3.10"},
	{Module: "github.com/guptarohit/asciigraph", Min: "v0.7.3"},
}

// Check returns one warning per required module that is missing from info
// or older than its minimum. Each warning is also written to the ops log.
// A nil info reports every requirement as missing.
func Check(info *debug.BuildInfo, reqs []Requirement) []string {
	found := linkedVersions(info)

	var warnings []string
	for _, req := range reqs {
		v, ok := found[req.Module]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("No %s module is found.", req.Module))
			continue
		}

		outdated, err := older(v, req.Min)
		if err != nil {
			logging.Diagf("envcheck: %s: %v", req.Module, err)
			continue
		}
		if outdated {
			warnings = append(warnings, fmt.Sprintf(
				"Your current version of %s (%s) is older than the one used in tests (%s). It is recommended to upgrade it.",
				req.Module, v, req.Min))
		}
	}

	for _, w := range warnings {
		logging.Opsf("%s", w)
	}
	return warnings
}

// CheckBinary runs Check against the build info of the running binary.
func CheckBinary(reqs []Requirement) []string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		info = nil
	}
	return Check(info, reqs)
}

func linkedVersions(info *debug.BuildInfo) map[string]string {
	found := make(map[string]string)
	if info == nil {
		return found
	}
	if info.GoVersion != "" {
		found[GoToolchain] = info.GoVersion
	}
	if info.Main.Path != "" {
		found[info.Main.Path] = info.Main.Version
	}
	for _, dep := range info.Deps {
		m := dep
		if m.Replace != nil {
			m = m.Replace
		}
		found[dep.Path] = m.Version
	}
	return found
}

func older(current, min string) (bool, error) {
	cur, err := semver.NewVersion(strings.TrimPrefix(current, GoToolchain))
	if err != nil {
		return false, fmt.Errorf("current version %q: %w", current, err)
	}
	want, err := semver.NewVersion(min)
	if err != nil {
		return false, fmt.Errorf("minimum version %q: %w", min, err)
	}
	return cur.LessThan(want), nil
}
