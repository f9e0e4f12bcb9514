// Package runner models the lifecycle events of a gemini test run and
// delivers them to observers.
package runner

import (
	"context"

	"github.com/pkg/errors"

	"github.com/gemini-teamcity/gemini-teamcity/internal/file"
)

// Names of the events as they appear in the event stream.
const (
	EventStartRunner = "startRunner"
	EventBeginState  = "beginState"
	EventSkipState   = "skipState"
	EventTestResult  = "testResult"
	EventErr         = "err"
	EventEndRunner   = "endRunner"
)

type Suite struct {
	FullName string `json:"fullName"`

	// States is nil if the event did not list the suite's states.
	States []State `json:"states"`
}

type State struct {
	Name string `json:"name"`
}

type Image struct {
	Path string `json:"path"`
}

// DiffSaver writes the diff image of a failed comparison to dest.
type DiffSaver interface {
	SaveDiffTo(ctx context.Context, dest string) error
}

// TestEvent describes one occurrence of a state in a browser. Optional
// parts are nil when the runner did not send them.
type TestEvent struct {
	Suite     Suite  `json:"suite"`
	State     *State `json:"state"`
	BrowserID string `json:"browserId"`
	SessionID string `json:"sessionId"`

	Equal   *bool     `json:"equal"`
	RefImg  *Image    `json:"refImg"`
	CurrImg *Image    `json:"currImg"`
	DiffImg *Image    `json:"diffImg"`
	Diff    DiffSaver `json:"-"`

	Message string `json:"message"`
	Stack   string `json:"stack"`
}

// IsEqual reports whether the comparison succeeded. A missing result
// counts as a difference.
func (e TestEvent) IsEqual() bool {
	return e.Equal != nil && *e.Equal
}

// Event is one of StartRunner, BeginState, SkipState, TestResult, Err,
// EndRunner or Closed.
type Event interface {
	Name() string
	event()
}

type StartRunner struct {
	ProtocolVersion string
}

type BeginState struct{ TestEvent }

type SkipState struct{ TestEvent }

type TestResult struct{ TestEvent }

// Err is sent when the runner fails. Without State it affects every state
// of the suite that has not finished yet.
type Err struct{ TestEvent }

type EndRunner struct{}

// Closed is the last value published on a Runner. Err is set if reading
// the event stream failed.
type Closed struct {
	Err error
}

func (StartRunner) Name() string { return EventStartRunner }
func (BeginState) Name() string  { return EventBeginState }
func (SkipState) Name() string   { return EventSkipState }
func (TestResult) Name() string  { return EventTestResult }
func (Err) Name() string         { return EventErr }
func (EndRunner) Name() string   { return EventEndRunner }
func (Closed) Name() string      { return "closed" }

func (StartRunner) event() {}
func (BeginState) event()  {}
func (SkipState) event()   {}
func (TestResult) event()  {}
func (Err) event()         {}
func (EndRunner) event()   {}
func (Closed) event()      {}

// FileDiffSaver saves a diff image the runner already wrote to Path.
type FileDiffSaver struct {
	Path string
}

func (s FileDiffSaver) SaveDiffTo(ctx context.Context, dest string) error {
	if s.Path == "" {
		return errors.New("runner did not provide a diff image")
	}
	return file.Copier{}.Copy(ctx, s.Path, dest)
}
