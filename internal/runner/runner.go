package runner

import (
	"github.com/imkira/go-observer"
)

// Runner is the event bus of a test run. Every observer sees every
// published event, in publishing order.
type Runner struct {
	prop observer.Property
}

func New() *Runner {
	return &Runner{
		prop: observer.NewProperty(nil),
	}
}

// Publish hands an event to all observers. It never blocks.
func (r *Runner) Publish(ev Event) {
	r.prop.Update(ev)
}

// Observe returns a stream positioned at the most recently published
// value, nil if nothing has been published yet. Observers have to call it
// before the first event is published to see the whole run.
func (r *Runner) Observe() observer.Stream {
	return r.prop.Observe()
}
