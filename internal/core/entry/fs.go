package entry

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FS is the filesystem surface the listing needs
type FS interface {
	// ReadDirNames returns the names in dir in directory-native order
	ReadDirNames(dir string) ([]string, error)
	// Canonicalize returns the absolute, symlink-free form of path.
	// It fails if path does not exist.
	Canonicalize(path string) (string, error)
	// Stat follows symlinks
	Stat(path string) (fs.FileInfo, error)
	// Lstat does not follow symlinks
	Lstat(path string) (fs.FileInfo, error)
}

// OSFS implements FS on top of the host filesystem
type OSFS struct{}

// ReadDirNames implements FS.
// os.ReadDir sorts by name, so the directory is read with Readdirnames
// to keep the order the filesystem returns.
func (OSFS) ReadDirNames(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return f.Readdirnames(-1)
}

// Canonicalize implements FS
func (OSFS) Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// Stat implements FS
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// Lstat implements FS
func (OSFS) Lstat(path string) (fs.FileInfo, error) {
	return os.Lstat(path)
}
