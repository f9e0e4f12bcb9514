// Package testname derives the TeamCity test name of a gemini state and
// the location its screenshots are filed under.
package testname

import (
	"path/filepath"
	"strings"
	"unicode"
)

// Kind names one of the screenshots kept for a state.
type Kind string

const (
	Reference Kind = "Reference"
	Current   Kind = "Current"
	Diff      Kind = "Diff"
)

// ID returns the test name for a state captured in a browser. Suite and
// state names are trimmed, whitespace inside the browser id is dropped,
// and any whitespace left after joining the parts with "." becomes "_".
func ID(suiteFullName, stateName, browserID string) string {
	joined := strings.Join([]string{
		strings.TrimSpace(suiteFullName),
		strings.TrimSpace(stateName),
		strings.Map(dropSpace, browserID),
	}, ".")
	return strings.Map(underscoreSpace, joined)
}

// ImagePath returns where a screenshot of the given kind is stored below
// base. Unlike ID, the parts are only trimmed: inner spaces are kept.
func ImagePath(base, suiteFullName, stateName, browserID string, kind Kind) string {
	return filepath.Join(
		base,
		strings.TrimSpace(suiteFullName),
		strings.TrimSpace(stateName),
		strings.TrimSpace(browserID),
		string(kind)+".png",
	)
}

func dropSpace(r rune) rune {
	if unicode.IsSpace(r) {
		return -1
	}
	return r
}

func underscoreSpace(r rune) rune {
	if unicode.IsSpace(r) {
		return '_'
	}
	return r
}
