package testhelpers

import (
	"bytes"
	"os"
)

// Contains reports whether the file exists and its contents include
// needle.
func Contains(filename string, needle string) bool {
	body, err := os.ReadFile(filename)
	if err != nil {
		return false
	}
	return bytes.Contains(body, []byte(needle))
}
