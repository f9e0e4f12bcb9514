// Package translator turns the events of a gemini run into TeamCity
// service messages and files the screenshots of each test.
package translator

//go:generate moq -fmt goimports -pkg translator_test -out ./translator_mock_test.go . Sink Copier ScreenshotReporter
//go:generate moq -fmt goimports -pkg translator_test -out ./diffsaver_mock_test.go ../runner DiffSaver

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/gemini-teamcity/gemini-teamcity/internal/logging"
	"github.com/gemini-teamcity/gemini-teamcity/internal/runner"
	"github.com/gemini-teamcity/gemini-teamcity/internal/teamcity"
	"github.com/gemini-teamcity/gemini-teamcity/internal/testname"
)

type Sink interface {
	Emit(record teamcity.Record) error
}

type Copier interface {
	Copy(ctx context.Context, sourcePath, destPath string) error
}

type ScreenshotReporter interface {
	Report(testName string, imagePath string) error
}

// Translator handles the events of exactly one run. Handle must not be
// called concurrently.
type Translator struct {
	sink      Sink
	reporter  ScreenshotReporter
	copier    Copier
	imagesDir string

	// finished holds the names of tests that were skipped or have a
	// result. Failures reported for an err event are not recorded.
	finished map[string]struct{}

	tasks *errgroup.Group

	log logging.Logger
}

func New(sink Sink, reporter ScreenshotReporter, copier Copier, imagesDir string, log logging.Logger) *Translator {
	return &Translator{
		sink:      sink,
		reporter:  reporter,
		copier:    copier,
		imagesDir: imagesDir,
		finished:  map[string]struct{}{},
		tasks:     &errgroup.Group{},
		log:       log,
	}
}

// ImagesDir returns the directory the run's screenshots are copied to.
func (t *Translator) ImagesDir() string {
	return t.imagesDir
}

// Handle translates a single event. Screenshots are copied and reported
// in the background; Wait returns once all of them are settled.
func (t *Translator) Handle(ctx context.Context, ev runner.Event) error {
	t.log.Debugf("Handle %s event", ev.Name())

	switch ev := ev.(type) {
	case runner.BeginState:
		return t.beginState(ev.TestEvent)
	case runner.SkipState:
		return t.skipState(ev.TestEvent)
	case runner.TestResult:
		return t.testResult(ctx, ev.TestEvent)
	case runner.Err:
		return t.failure(ev.TestEvent)
	default:
		t.log.Debugf("Nothing to translate for %s event", ev.Name())
		return nil
	}
}

// Wait blocks until all screenshots of the run are reported and returns
// the first error of the protocol sink.
func (t *Translator) Wait() error {
	return t.tasks.Wait()
}

func (t *Translator) beginState(ev runner.TestEvent) error {
	name, err := testName(ev, ev.State)
	if err != nil {
		return errors.Wrap(err, runner.EventBeginState)
	}

	return t.sink.Emit(teamcity.TestStarted{Name: name, FlowID: ev.SessionID})
}

func (t *Translator) skipState(ev runner.TestEvent) error {
	name, err := testName(ev, ev.State)
	if err != nil {
		return errors.Wrap(err, runner.EventSkipState)
	}

	if err := t.sink.Emit(teamcity.TestIgnored{Name: name, FlowID: ev.SessionID}); err != nil {
		return err
	}
	t.finished[name] = struct{}{}
	return nil
}

func (t *Translator) testResult(ctx context.Context, ev runner.TestEvent) error {
	name, err := testName(ev, ev.State)
	if err != nil {
		return errors.Wrap(err, runner.EventTestResult)
	}
	equal := ev.IsEqual()

	if ev.RefImg == nil {
		return errors.Errorf("%s: test %q has no reference image", runner.EventTestResult, name)
	}
	if !equal {
		if ev.CurrImg == nil {
			return errors.Errorf("%s: test %q has no current image", runner.EventTestResult, name)
		}
		if ev.Diff == nil {
			return errors.Errorf("%s: test %q can not save a diff image", runner.EventTestResult, name)
		}
	}

	refImg := ev.RefImg.Path
	t.capture(name, t.imagePath(ev, testname.Reference), func(dest string) error {
		return t.copier.Copy(ctx, refImg, dest)
	})

	if !equal {
		currImg := ev.CurrImg.Path
		t.capture(name, t.imagePath(ev, testname.Current), func(dest string) error {
			return t.copier.Copy(ctx, currImg, dest)
		})

		diff := ev.Diff
		t.capture(name, t.imagePath(ev, testname.Diff), func(dest string) error {
			return diff.SaveDiffTo(ctx, dest)
		})

		if err := t.sink.Emit(teamcity.TestFailed{Name: name, FlowID: ev.SessionID}); err != nil {
			return err
		}
	}

	if err := t.sink.Emit(teamcity.TestFinished{Name: name, FlowID: ev.SessionID}); err != nil {
		return err
	}
	t.finished[name] = struct{}{}
	return nil
}

func (t *Translator) failure(ev runner.TestEvent) error {
	if ev.State != nil {
		name, err := testName(ev, ev.State)
		if err != nil {
			return errors.Wrap(err, runner.EventErr)
		}
		return t.failTest(name, ev)
	}

	if ev.Suite.States == nil {
		return errors.Errorf("%s: event for suite %q has neither a state nor suite states", runner.EventErr, ev.Suite.FullName)
	}

	for i := range ev.Suite.States {
		name, err := testName(ev, &ev.Suite.States[i])
		if err != nil {
			return errors.Wrap(err, runner.EventErr)
		}
		if _, ok := t.finished[name]; ok {
			t.log.Debugf("Test %s already finished, not failing it", name)
			continue
		}
		if err := t.failTest(name, ev); err != nil {
			return err
		}
	}
	return nil
}

func (t *Translator) failTest(name string, ev runner.TestEvent) error {
	err := t.sink.Emit(teamcity.TestFailed{
		Name:    name,
		Message: ev.Message,
		Details: ev.Stack,
		FlowID:  ev.SessionID,
	})
	if err != nil {
		return err
	}

	return t.sink.Emit(teamcity.TestFinished{Name: name, FlowID: ev.SessionID})
}

// capture saves a screenshot to dest in the background and reports it
// once it is saved. A screenshot that can not be saved is logged and not
// reported.
func (t *Translator) capture(name string, dest string, save func(dest string) error) {
	t.tasks.Go(func() error {
		if err := save(dest); err != nil {
			t.log.Errorf("Failed to save screenshot %s of test %s: %v", dest, name, err)
			return nil
		}
		t.log.Debugf("Saved screenshot %s of test %s", dest, name)

		return t.reporter.Report(name, dest)
	})
}

func (t *Translator) imagePath(ev runner.TestEvent, kind testname.Kind) string {
	return testname.ImagePath(t.imagesDir, ev.Suite.FullName, ev.State.Name, ev.BrowserID, kind)
}

func testName(ev runner.TestEvent, state *runner.State) (string, error) {
	if state == nil {
		return "", errors.Errorf("event for suite %q in browser %q has no state", ev.Suite.FullName, ev.BrowserID)
	}
	return testname.ID(ev.Suite.FullName, state.Name, ev.BrowserID), nil
}
