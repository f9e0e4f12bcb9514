package testhelpers

import (
	"os"
	"path/filepath"
)

// FileWithMode contains information about a pathname and its desired
// filemode and contents. It can be used to quickly create those files
// in tests that rely on files in the file system. Missing parent
// directories of Path are created.
type FileWithMode struct {
	Path     string
	Mode     os.FileMode
	Contents string
}

// Create creates the regular file or directory described by the
// FileWithMode type instance below dir.
func (fwm FileWithMode) Create(dir string) error {
	path := filepath.Join(dir, fwm.Path)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if fwm.Mode&os.ModeDir != 0 {
		return os.Mkdir(path, fwm.Mode&os.ModePerm)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(fwm.Contents)
	if err != nil {
		return err
	}
	return f.Chmod(fwm.Mode & os.ModePerm)
}

// CreateAll creates all files below dir, stopping at the first error.
func CreateAll(dir string, files ...FileWithMode) error {
	for _, fwm := range files {
		if err := fwm.Create(dir); err != nil {
			return err
		}
	}
	return nil
}
