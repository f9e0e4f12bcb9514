// Package report runs the translation of a gemini event stream into
// TeamCity service messages.
package report

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/gemini-teamcity/gemini-teamcity/internal/file"
	"github.com/gemini-teamcity/gemini-teamcity/internal/logging"
	"github.com/gemini-teamcity/gemini-teamcity/internal/observer"
	"github.com/gemini-teamcity/gemini-teamcity/internal/runner"
	"github.com/gemini-teamcity/gemini-teamcity/internal/screenshot"
	"github.com/gemini-teamcity/gemini-teamcity/internal/teamcity"
	"github.com/gemini-teamcity/gemini-teamcity/internal/translator"
)

// Stdin is the events file name that selects standard input.
const Stdin = "-"

const imagesDirPattern = "gemini-"

type Report struct {
	eventsFile string
	imagesDir  string
	follow     bool
	quiet      bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	log logging.Logger
}

func New(
	eventsFile string,
	imagesDir string,
	follow bool,
	quiet bool,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
	log logging.Logger,
) Report {
	return Report{
		eventsFile: eventsFile,
		imagesDir:  imagesDir,
		follow:     follow,
		quiet:      quiet,
		stdin:      stdin,
		stdout:     stdout,
		stderr:     stderr,
		log:        log,
	}
}

// Run reads the event stream until it ends and reports every run it
// contains. Service messages go to stdout, the summary to stderr.
func (r Report) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bus := runner.New()

	source, closeSource, err := r.openSource(bus)
	if err != nil {
		return err
	}
	defer closeSource()

	sink := teamcity.NewWriter(r.stdout)
	reporter := screenshot.New(sink)

	// Set up observers
	observers := []observer.Interface{
		translator.NewObserver(ctx, cancel, bus, r.newRun(sink, reporter), r.log),
	}
	if !r.quiet {
		observers = append(observers, observer.NewSummaryObserver(bus, r.stderr, r.log))
	}
	for _, obs := range observers {
		if err := obs.Start(); err != nil {
			return errors.Wrap(err, "initialization error")
		}
	}

	runErr := source.Run(ctx)

	for _, obs := range observers {
		// A failed translation cancels the source.
		if err := obs.Finalize(); err != nil && (runErr == nil || errors.Is(runErr, context.Canceled)) {
			runErr = err
		}
	}

	return runErr
}

func (r Report) openSource(bus *runner.Runner) (*runner.Source, func(), error) {
	if r.follow {
		source, err := runner.NewFollowSource(r.eventsFile, bus, r.log)
		return source, func() {}, err
	}

	if r.eventsFile == "" || r.eventsFile == Stdin {
		return runner.NewReaderSource(r.stdin, bus, r.log), func() {}, nil
	}

	f, err := os.Open(r.eventsFile)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open events file")
	}
	closeFile := func() {
		if err := f.Close(); err != nil {
			r.log.Debugf("close events file: %v", err)
		}
	}
	return runner.NewReaderSource(f, bus, r.log), closeFile, nil
}

func (r Report) newRun(sink translator.Sink, reporter translator.ScreenshotReporter) translator.RunFactory {
	return func(ctx context.Context) (*translator.Translator, error) {
		dir, err := r.prepareImagesDir()
		if err != nil {
			return nil, err
		}
		return translator.New(sink, reporter, file.Copier{}, dir, r.log), nil
	}
}

// prepareImagesDir returns the directory a run's screenshots are saved
// in. Without a configured directory, every run gets a new one below
// the working directory.
func (r Report) prepareImagesDir() (string, error) {
	if r.imagesDir == "" {
		dir, err := os.MkdirTemp(".", imagesDirPattern)
		if err != nil {
			return "", errors.Wrap(err, "failed to create images directory")
		}
		return dir, nil
	}

	if err := os.MkdirAll(r.imagesDir, 0755); err != nil {
		return "", errors.Wrapf(err, "failed to create images directory %q", r.imagesDir)
	}
	return r.imagesDir, nil
}
