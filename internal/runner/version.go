package runner

import (
	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
)

// SupportedProtocol is the range of event stream versions this reporter
// knows how to read.
const SupportedProtocol = ">= 1.0.0, < 2.0.0"

var supportedProtocol = mustConstraint(SupportedProtocol)

// CheckProtocolVersion returns an error if the event stream version
// announced by startRunner is outside SupportedProtocol.
func CheckProtocolVersion(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return errors.Wrapf(err, "invalid protocol version %q", version)
	}
	if !supportedProtocol.Check(v) {
		return errors.Errorf("protocol version %s is not in the supported range %q", v, SupportedProtocol)
	}
	return nil
}

func mustConstraint(c string) *semver.Constraints {
	constraints, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraints
}
