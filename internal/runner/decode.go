package runner

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// DecodeLine decodes one line of the event stream. The "event" member
// selects the variant, the rest of the object is its payload.
func DecodeLine(line []byte) (Event, error) {
	if !gjson.ValidBytes(line) {
		return nil, errors.Errorf("invalid JSON: %s", line)
	}

	name := gjson.GetBytes(line, "event")
	if !name.Exists() {
		return nil, errors.New(`missing "event" member`)
	}

	switch name.String() {
	case EventStartRunner:
		return StartRunner{
			ProtocolVersion: gjson.GetBytes(line, "protocolVersion").String(),
		}, nil
	case EventEndRunner:
		return EndRunner{}, nil
	case EventBeginState, EventSkipState, EventTestResult, EventErr:
	default:
		return nil, errors.Errorf("unknown event %q", name.String())
	}

	var te TestEvent
	if err := json.Unmarshal(line, &te); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s event", name.String())
	}
	if err := checkTestNameMembers(line); err != nil {
		return nil, errors.Wrapf(err, "invalid %s event", name.String())
	}
	te.Diff = FileDiffSaver{}
	if te.DiffImg != nil {
		te.Diff = FileDiffSaver{Path: te.DiffImg.Path}
	}

	switch name.String() {
	case EventBeginState:
		return BeginState{te}, nil
	case EventSkipState:
		return SkipState{te}, nil
	case EventTestResult:
		return TestResult{te}, nil
	default:
		return Err{te}, nil
	}
}

// checkTestNameMembers makes sure the members a test name is built from
// are strings. An absent state is left to the consumer, err events may
// name the suite's states instead.
func checkTestNameMembers(line []byte) error {
	for _, path := range []string{"suite.fullName", "browserId"} {
		if gjson.GetBytes(line, path).Type != gjson.String {
			return errors.Errorf("missing string member %q", path)
		}
	}

	if state := gjson.GetBytes(line, "state"); state.Exists() && state.Type != gjson.Null {
		if state.Get("name").Type != gjson.String {
			return errors.New(`missing string member "state.name"`)
		}
	}

	if states := gjson.GetBytes(line, "suite.states"); states.IsArray() {
		for i, state := range states.Array() {
			if state.Get("name").Type != gjson.String {
				return errors.Errorf(`missing string member "suite.states.%d.name"`, i)
			}
		}
	}
	return nil
}
