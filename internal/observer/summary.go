package observer

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/imkira/go-observer"

	"github.com/gemini-teamcity/gemini-teamcity/internal/logging"
	"github.com/gemini-teamcity/gemini-teamcity/internal/runner"
	"github.com/gemini-teamcity/gemini-teamcity/internal/testname"
)

// Summary counts the test outcomes of a suite or a whole run.
type Summary struct {
	NumberOk      int
	NumberNotOk   int
	NumberIgnored int
}

func (s Summary) total() int {
	return s.NumberOk + s.NumberNotOk
}

// SummaryObserver prints the outcome of every test as it arrives and a
// summary per suite when the run is over.
type SummaryObserver struct {
	done   chan struct{}
	bus    *runner.Runner
	stream observer.Stream
	out    io.Writer

	log logging.Logger
}

func NewSummaryObserver(bus *runner.Runner, out io.Writer, log logging.Logger) *SummaryObserver {
	return &SummaryObserver{
		done: make(chan struct{}),
		bus:  bus,
		out:  out,
		log:  log,
	}
}

type run struct {
	results       map[string]Summary
	globalSummary Summary

	// finished tests are not failed again by a suite wide error.
	finished map[string]struct{}
}

func newRun() *run {
	return &run{
		results:  map[string]Summary{},
		finished: map[string]struct{}{},
	}
}

// Start launches a consumer responsible for printing a summary
// at the end of each run.
func (so *SummaryObserver) Start() error {
	so.stream = so.bus.Observe()

	go func() {
		defer close(so.done)

		var current *run
		for {
			<-so.stream.Changes()
			data := so.stream.Next()

			switch event := data.(type) {
			case runner.StartRunner:
				so.printSummary(current)
				current = newRun()
			case runner.EndRunner:
				so.printSummary(current)
				current = nil
			case runner.Closed:
				so.printSummary(current)
				return
			case runner.Event:
				if current == nil {
					current = newRun()
				}
				so.record(current, event)
			default:
				so.log.Debugf("Receive data that we don't know how to manage %+v", data)
			}
		}
	}()
	return nil
}

// Finalize waits for the observer to receive the final property value
// and output the summary of the last run.
func (so *SummaryObserver) Finalize() error {
	<-so.done
	return nil
}

func (so *SummaryObserver) record(r *run, ev runner.Event) {
	switch event := ev.(type) {
	case runner.SkipState:
		if event.State == nil {
			return
		}
		name := testname.ID(event.Suite.FullName, event.State.Name, event.BrowserID)
		so.update(r, event.Suite.FullName, func(s *Summary) { s.NumberIgnored++ })
		r.finished[name] = struct{}{}
		fmt.Fprintf(so.out, "- %s skipped\n", name)
	case runner.TestResult:
		if event.State == nil {
			return
		}
		name := testname.ID(event.Suite.FullName, event.State.Name, event.BrowserID)
		r.finished[name] = struct{}{}
		if event.IsEqual() {
			so.update(r, event.Suite.FullName, func(s *Summary) { s.NumberOk++ })
			fmt.Fprintf(so.out, "\u2611 %s\n", name)
			return
		}
		so.update(r, event.Suite.FullName, func(s *Summary) { s.NumberNotOk++ })
		fmt.Fprintf(so.out, "\u2610 %s: screenshot differs from the reference\n", name)
	case runner.Err:
		states := event.Suite.States
		if event.State != nil {
			states = []runner.State{*event.State}
		}
		for _, state := range states {
			name := testname.ID(event.Suite.FullName, state.Name, event.BrowserID)
			if _, ok := r.finished[name]; ok && event.State == nil {
				continue
			}
			so.update(r, event.Suite.FullName, func(s *Summary) { s.NumberNotOk++ })
			fmt.Fprintf(so.out, "\u2610 %s:\n%s\n", name, event.Message)
		}
	}
}

func (so *SummaryObserver) update(r *run, suite string, f func(s *Summary)) {
	suite = strings.TrimSpace(suite)
	summary := r.results[suite]
	f(&summary)
	r.results[suite] = summary
	f(&r.globalSummary)
}

func (so *SummaryObserver) printSummary(r *run) {
	if r == nil {
		return
	}

	fmt.Fprintf(so.out, "\nSummary: %s All tests: %d/%d%s\n", getIconStatus(r.globalSummary.NumberNotOk), r.globalSummary.NumberOk, r.globalSummary.total(), ignored(r.globalSummary))

	// Ordering by suite name
	keys := make([]string, 0, len(r.results))
	for key := range r.results {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		summary := r.results[key]
		fmt.Fprintf(so.out, "\t %s %s: %d/%d%s\n", getIconStatus(summary.NumberNotOk), key, summary.NumberOk, summary.total(), ignored(summary))
	}
}

func ignored(s Summary) string {
	if s.NumberIgnored == 0 {
		return ""
	}
	return fmt.Sprintf(" (%d ignored)", s.NumberIgnored)
}

func getIconStatus(numberNotOk int) string {
	if numberNotOk == 0 {
		return "\u2611"
	}

	return "\u2610"
}
