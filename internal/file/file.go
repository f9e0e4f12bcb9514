package file

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

func Exists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}

// Copy copies the contents of the source filename to the destination
// file path, creating missing parent directories of the destination. If
// the destination file exists it'll be overwritten. Symbolic links will be
// followed and file mode, ownership, etc will not be copied.
func Copy(sourcePath, destPath string) error {
	r, err := os.Open(sourcePath)
	if err != nil {
		return err
	}
	defer r.Close()

	if err = os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return err
	}
	w, err := os.Create(destPath)
	if err != nil {
		return err
	}
	if _, err = io.Copy(w, r); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// Copier copies screenshots into the images directory.
type Copier struct{}

func (Copier) Copy(ctx context.Context, sourcePath, destPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !Exists(sourcePath) {
		return errors.Errorf("runner screenshot %q does not exist", sourcePath)
	}
	return Copy(sourcePath, destPath)
}
