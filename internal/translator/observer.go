package translator

import (
	"context"

	"github.com/imkira/go-observer"

	"github.com/gemini-teamcity/gemini-teamcity/internal/logging"
	"github.com/gemini-teamcity/gemini-teamcity/internal/runner"
)

// RunFactory prepares a Translator for a new run.
type RunFactory func(ctx context.Context) (*Translator, error)

// Observer translates the events published on a runner.Runner, one
// Translator per run.
type Observer struct {
	ctx    context.Context
	cancel context.CancelFunc
	bus    *runner.Runner
	newRun RunFactory

	stream observer.Stream
	done   chan error

	log logging.Logger
}

// NewObserver returns an Observer for bus. If cancel is not nil, it is
// called when the translation fails, so the event source stops reading.
func NewObserver(ctx context.Context, cancel context.CancelFunc, bus *runner.Runner, newRun RunFactory, log logging.Logger) *Observer {
	return &Observer{
		ctx:    ctx,
		cancel: cancel,
		bus:    bus,
		newRun: newRun,
		done:   make(chan error, 1),
		log:    log,
	}
}

// Start subscribes to the runner and translates its events in a new
// goroutine.
func (o *Observer) Start() error {
	o.stream = o.bus.Observe()
	go func() {
		err := o.consume()
		if err != nil && o.cancel != nil {
			o.cancel()
		}
		o.done <- err
	}()
	return nil
}

// Finalize waits until the event stream is closed and every screenshot is
// reported, or until the translation failed. It returns the first error.
func (o *Observer) Finalize() error {
	return <-o.done
}

func (o *Observer) consume() error {
	var run *Translator

	for {
		<-o.stream.Changes()
		data := o.stream.Next()

		var err error
		switch ev := data.(type) {
		case runner.StartRunner:
			if err = wait(run); err != nil {
				break
			}
			run, err = o.newRun(o.ctx)
			if err == nil {
				o.log.Infof("Started run, saving screenshots to %s", run.ImagesDir())
			}
		case runner.EndRunner:
			err = wait(run)
			run = nil
		case runner.Closed:
			return wait(run)
		case runner.Event:
			if run == nil {
				o.log.Warningf("Received %s event before startRunner", ev.Name())
				if run, err = o.newRun(o.ctx); err != nil {
					break
				}
			}
			if err = run.Handle(o.ctx, ev); err != nil {
				_ = run.Wait()
				run = nil
			}
		default:
			o.log.Debugf("Ignoring unexpected value on the event bus: %+v", data)
		}

		if err != nil {
			return err
		}
	}
}

func wait(run *Translator) error {
	if run == nil {
		return nil
	}
	return run.Wait()
}
