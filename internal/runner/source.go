package runner

import (
	"bufio"
	"bytes"
	"context"
	"io"

	"github.com/hpcloud/tail"
	"github.com/pkg/errors"

	"github.com/gemini-teamcity/gemini-teamcity/internal/logging"
)

const maxLineSize = 4 * 1024 * 1024

// Source reads the event stream written by the runner and publishes the
// decoded events on a Runner.
type Source struct {
	runner *Runner

	next func(ctx context.Context) ([]byte, error)
	stop func()

	// follow sources end with the endRunner event, as they never see EOF.
	follow bool

	log logging.Logger
}

// NewReaderSource reads events from r until EOF.
func NewReaderSource(r io.Reader, runner *Runner, log logging.Logger) *Source {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	return &Source{
		runner: runner,
		next: func(ctx context.Context) ([]byte, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return nil, err
				}
				return nil, io.EOF
			}
			return append([]byte(nil), scanner.Bytes()...), nil
		},
		stop: func() {},
		log:  log,
	}
}

// NewFollowSource reads events from a file that is still being written,
// until the endRunner event arrives or the context is canceled.
func NewFollowSource(filename string, runner *Runner, log logging.Logger) (*Source, error) {
	t, err := tail.TailFile(filename, tail.Config{Follow: true, Logger: tailLogger{log}})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to follow events file %q", filename)
	}

	return &Source{
		runner: runner,
		next: func(ctx context.Context) ([]byte, error) {
			select {
			case line, ok := <-t.Lines:
				if !ok {
					if err := t.Err(); err != nil {
						return nil, err
					}
					return nil, io.EOF
				}
				if line.Err != nil {
					return nil, line.Err
				}
				return []byte(line.Text), nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		},
		stop: func() {
			// tail blocks sending lines after endRunner until they are read.
			go func() {
				for range t.Lines {
				}
			}()
			if err := t.Stop(); err != nil {
				log.Debugf("stop following events file: %v", err)
			}
			t.Cleanup()
		},
		follow: true,
		log:    log,
	}, nil
}

// Run publishes events until the stream ends and finally publishes
// Closed. A canceled context ends a followed stream without error.
func (s *Source) Run(ctx context.Context) error {
	err := s.run(ctx)
	if s.follow && errors.Is(err, context.Canceled) {
		s.log.Warning("Stopped following the events file before the run ended")
		err = nil
	}
	s.runner.Publish(Closed{Err: err})
	return err
}

func (s *Source) run(ctx context.Context) error {
	defer s.stop()

	lineno := 0
	for {
		line, err := s.next(ctx)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to read events")
		}
		lineno++

		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		ev, err := DecodeLine(line)
		if err != nil {
			return errors.Wrapf(err, "event on line %d", lineno)
		}
		s.log.Debugf("event %s on line %d", ev.Name(), lineno)

		if start, ok := ev.(StartRunner); ok && start.ProtocolVersion != "" {
			if err := CheckProtocolVersion(start.ProtocolVersion); err != nil {
				s.log.Warningf("Event stream may not be understood: %v", err)
			}
		}

		s.runner.Publish(ev)

		if _, ok := ev.(EndRunner); ok && s.follow {
			return nil
		}
	}
}

type tailLogger struct {
	log logging.Logger
}

func (t tailLogger) Fatal(v ...interface{})                 { t.log.Fatal(v...) }
func (t tailLogger) Fatalf(format string, v ...interface{}) { t.log.Fatalf(format, v...) }
func (t tailLogger) Fatalln(v ...interface{})               { t.log.Fatal(v...) }
func (t tailLogger) Panic(v ...interface{})                 { t.log.Error(v...); panic("") }
func (t tailLogger) Panicf(format string, v ...interface{}) { t.log.Errorf(format, v...); panic("") }
func (t tailLogger) Panicln(v ...interface{})               { t.log.Error(v...); panic("") }
func (t tailLogger) Print(v ...interface{})                 { t.log.Debug(v...) }
func (t tailLogger) Printf(format string, v ...interface{}) { t.log.Debugf(format, v...) }
func (t tailLogger) Println(v ...interface{})               { t.log.Debug(v...) }
