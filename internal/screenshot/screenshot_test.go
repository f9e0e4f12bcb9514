package screenshot_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"

	"github.com/gemini-teamcity/gemini-teamcity/internal/screenshot"
	"github.com/gemini-teamcity/gemini-teamcity/internal/teamcity"
)

type recordingSink struct {
	records []teamcity.Record
	err     error
}

func (s *recordingSink) Emit(record teamcity.Record) error {
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, record)
	return nil
}

func TestReport(t *testing.T) {
	is := is.New(t)

	cwd, err := os.Getwd()
	is.NoErr(err)

	sink := &recordingSink{}
	r := screenshot.New(sink)

	err = r.Report("testName", "path/to/image.png")
	is.NoErr(err)

	is.Equal(len(sink.records), 2) // publish artifact and metadata
	is.Equal(sink.records[0], teamcity.PublishArtifacts{
		Source: filepath.Join(cwd, "path/to/image.png"),
		Target: ".teamcity/path/to",
	})
	is.Equal(sink.records[1], teamcity.TestMetadata{
		TestName: "testName",
		Type:     "image",
		Value:    ".teamcity/path/to/image.png",
	})
}

func TestReportKeepsSpacesInPath(t *testing.T) {
	is := is.New(t)

	sink := &recordingSink{}
	r := screenshot.New(sink)

	err := r.Report("root_suite.state.chrome41", "gemini-0/root suite/state/chrome 41/Diff.png")
	is.NoErr(err)

	is.Equal(len(sink.records), 2)
	is.Equal(sink.records[0].(teamcity.PublishArtifacts).Target, ".teamcity/gemini-0/root suite/state/chrome 41")
	is.Equal(sink.records[1].(teamcity.TestMetadata).Value, ".teamcity/gemini-0/root suite/state/chrome 41/Diff.png")
}

func TestReportSinkError(t *testing.T) {
	is := is.New(t)

	sinkErr := errors.New("stdout closed")
	sink := &recordingSink{err: sinkErr}
	r := screenshot.New(sink)

	err := r.Report("testName", "path/to/image.png")
	is.Equal(err, sinkErr) // sink error is passed on unchanged
	is.Equal(len(sink.records), 0)
}
