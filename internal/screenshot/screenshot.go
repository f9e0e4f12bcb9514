// Package screenshot publishes saved screenshots to TeamCity and links
// them to their test.
package screenshot

import (
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/gemini-teamcity/gemini-teamcity/internal/teamcity"
)

// HiddenArtifactsPath is the artifact directory TeamCity keeps out of the
// regular artifact listing.
const HiddenArtifactsPath = ".teamcity"

const metadataTypeImage = "image"

type Sink interface {
	Emit(record teamcity.Record) error
}

type Reporter struct {
	sink Sink
	abs  func(path string) (string, error)
}

func New(sink Sink) Reporter {
	return Reporter{
		sink: sink,
		abs:  filepath.Abs,
	}
}

// Report publishes the image at imagePath below the hidden artifacts
// directory, keeping its relative directory, and attaches it to the test
// as image metadata.
func (r Reporter) Report(testName string, imagePath string) error {
	source, err := r.abs(imagePath)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve screenshot path %q", imagePath)
	}

	err = r.sink.Emit(teamcity.PublishArtifacts{
		Source: source,
		Target: filepath.ToSlash(filepath.Join(HiddenArtifactsPath, filepath.Dir(imagePath))),
	})
	if err != nil {
		return err
	}

	return r.sink.Emit(teamcity.TestMetadata{
		TestName: testName,
		Type:     metadataTypeImage,
		Value:    filepath.ToSlash(filepath.Join(HiddenArtifactsPath, imagePath)),
	})
}
