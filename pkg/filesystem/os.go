package filesystem

import (
	"io"
	"io/fs"
	"os"

	"github.com/zapsharkrs/whiskerwood-modtools/pkg/types"
)

// osFS implements types.FS using the OS filesystem
type osFS struct{}

// NewOS creates a new OS filesystem implementation
func NewOS() types.FS {
	return &osFS{}
}

func (o *osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (o *osFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (o *osFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (o *osFS) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

func (o *osFS) Create(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

func (o *osFS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (o *osFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

func (o *osFS) Remove(name string) error {
	return os.Remove(name)
}

func (o *osFS) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// FileExists reports whether path exists and is a regular file
func FileExists(fsys types.FS, path string) bool {
	if path == "" {
		return false
	}
	info, err := fsys.Stat(path)
	return err == nil && !info.IsDir()
}

// DirExists reports whether path exists and is a directory
func DirExists(fsys types.FS, path string) bool {
	if path == "" {
		return false
	}
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}
