package teamcity

import (
	"io"
	"sync"

	"github.com/pkg/errors"
)

// Writer writes one service message per line. It is safe for concurrent
// use; messages are never interleaved.
type Writer struct {
	mutex *sync.Mutex
	out   io.Writer
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{
		mutex: &sync.Mutex{},
		out:   out,
	}
}

// Emit writes the record's message followed by a newline.
func (w *Writer) Emit(record Record) error {
	msg := record.ServiceMessage()
	line := msg.String() + "\n"

	w.mutex.Lock()
	defer w.mutex.Unlock()

	if _, err := io.WriteString(w.out, line); err != nil {
		return errors.Wrapf(err, "failed to write %s service message", msg.Name)
	}
	return nil
}
