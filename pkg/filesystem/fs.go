package filesystem

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/devboot/nvboot/pkg/errors"
)

// NewOS creates the host filesystem
func NewOS() afero.Fs {
	return afero.NewOsFs()
}

// NewMemory creates an empty in-memory filesystem
func NewMemory() afero.Fs {
	return afero.NewMemMapFs()
}

// Exists reports whether path exists. Stat errors other than not-exist count
// as present so that guards never overwrite something they cannot inspect.
func Exists(fsys afero.Fs, path string) bool {
	_, err := fsys.Stat(path)
	if err == nil {
		return true
	}
	return !os.IsNotExist(err)
}

// IsDir reports whether path is an existing directory
func IsDir(fsys afero.Fs, path string) bool {
	ok, err := afero.IsDir(fsys, path)
	return err == nil && ok
}

// Contains reports whether the file at path contains needle. A missing file
// contains nothing.
func Contains(fsys afero.Fs, path string, needle []byte) (bool, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path).
			WithDetail("path", path)
	}
	return bytes.Contains(data, needle), nil
}

// MkdirAll creates dir and its parents
func MkdirAll(fsys afero.Fs, dir string) error {
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir).
			WithDetail("path", dir)
	}
	return nil
}

// WriteFile writes data to path, creating parent directories
func WriteFile(fsys afero.Fs, path string, data []byte, perm fs.FileMode) error {
	if err := MkdirAll(fsys, filepath.Dir(path)); err != nil {
		return err
	}
	if err := afero.WriteFile(fsys, path, data, perm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).
			WithDetail("path", path)
	}
	return nil
}

// AppendFile appends data to path. The file and its parents are created when
// missing.
func AppendFile(fsys afero.Fs, path string, data []byte) error {
	if err := MkdirAll(fsys, filepath.Dir(path)); err != nil {
		return err
	}
	f, err := fsys.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to open %s for appending", path).
			WithDetail("path", path)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(data); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to append to %s", path).
			WithDetail("path", path)
	}
	return nil
}

// CopyFile copies src to dst, creating parent directories of dst
func CopyFile(fsys afero.Fs, src, dst string) error {
	data, err := afero.ReadFile(fsys, src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", src).
			WithDetail("path", src)
	}
	mode := fs.FileMode(0644)
	if info, err := fsys.Stat(src); err == nil {
		mode = info.Mode().Perm()
	}
	return WriteFile(fsys, dst, data, mode)
}
