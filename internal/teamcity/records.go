package teamcity

var (
	_ Record = TestStarted{}
	_ Record = TestIgnored{}
	_ Record = TestFailed{}
	_ Record = TestFinished{}
	_ Record = PublishArtifacts{}
	_ Record = TestMetadata{}
)

// TestStarted opens a test in the given flow.
type TestStarted struct {
	Name   string
	FlowID string
}

func (r TestStarted) ServiceMessage() Message {
	return Message{
		Name:  "testStarted",
		Attrs: attrs{}.add("name", r.Name).addOptional("flowId", r.FlowID),
	}
}

// TestIgnored reports a skipped test.
type TestIgnored struct {
	Name   string
	FlowID string
}

func (r TestIgnored) ServiceMessage() Message {
	return Message{
		Name:  "testIgnored",
		Attrs: attrs{}.add("name", r.Name).addOptional("flowId", r.FlowID),
	}
}

// TestFailed marks a test as failed. Message and Details are optional.
type TestFailed struct {
	Name    string
	Message string
	Details string
	FlowID  string
}

func (r TestFailed) ServiceMessage() Message {
	return Message{
		Name: "testFailed",
		Attrs: attrs{}.
			add("name", r.Name).
			addOptional("message", r.Message).
			addOptional("details", r.Details).
			addOptional("flowId", r.FlowID),
	}
}

// TestFinished closes a test in the given flow.
type TestFinished struct {
	Name   string
	FlowID string
}

func (r TestFinished) ServiceMessage() Message {
	return Message{
		Name:  "testFinished",
		Attrs: attrs{}.add("name", r.Name).addOptional("flowId", r.FlowID),
	}
}

// PublishArtifacts asks the build server to publish Source under the
// artifact directory Target.
type PublishArtifacts struct {
	Source string
	Target string
}

func (r PublishArtifacts) ServiceMessage() Message {
	return Message{
		Name:  "publishArtifacts",
		Value: r.Source + " => " + r.Target,
	}
}

// TestMetadata attaches a typed value, e.g. an image artifact, to a test.
type TestMetadata struct {
	TestName string
	Type     string
	Value    string
}

func (r TestMetadata) ServiceMessage() Message {
	return Message{
		Name: "testMetadata",
		Attrs: attrs{}.
			add("testName", r.TestName).
			add("type", r.Type).
			add("value", r.Value),
	}
}
