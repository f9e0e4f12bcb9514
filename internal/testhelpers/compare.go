package testhelpers

import (
	"reflect"
	"testing"
)

// CompareErrors compares two error values and reports an error if
// their types aren't identical (and therefore also if either value is
// nil but the other one isn't).
func CompareErrors(t *testing.T, name string, expected, actual error) {
	t.Helper()
	if actual == nil && expected != nil || actual != nil && expected == nil {
		t.Errorf("%s: Expected result:\n%#v\nGot:\n%#v", name, expected, actual)
	} else if reflect.TypeOf(actual) != reflect.TypeOf(expected) {
		t.Errorf("%s: Expected result:\n%#v\nGot:\n%#v", name, expected, actual)
	}
}
