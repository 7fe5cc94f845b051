// Package helpers provides filesystem fixtures shared by tests.
package helpers

import (
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"
)

// MemFS is an in-memory entry.FS. Directory enumeration returns names in
// insertion order, which lets tests pin down "natural" order.
type MemFS struct {
	nodes      map[string]*memNode
	children   map[string][]string
	readDirErr map[string]error
}

type memNode struct {
	name   string
	mode   fs.FileMode
	size   int64
	target string
}

// NewMemFS creates an empty MemFS containing only the root directory
func NewMemFS() *MemFS {
	m := &MemFS{
		nodes:      make(map[string]*memNode),
		children:   make(map[string][]string),
		readDirErr: make(map[string]error),
	}
	m.nodes["/"] = &memNode{name: "/", mode: fs.ModeDir | 0o755}
	return m
}

// AddDir adds a directory
func (m *MemFS) AddDir(path string) *MemFS {
	return m.add(path, &memNode{mode: fs.ModeDir | 0o755})
}

// AddFile adds a regular file with the given size and permissions
func (m *MemFS) AddFile(path string, size int64, perm fs.FileMode) *MemFS {
	return m.add(path, &memNode{mode: perm, size: size})
}

// AddSymlink adds a symlink pointing at target, which may not exist
func (m *MemFS) AddSymlink(path, target string) *MemFS {
	return m.add(path, &memNode{mode: fs.ModeSymlink | 0o777, target: filepath.Clean(target)})
}

// Remove deletes a node but keeps its name in the parent listing,
// simulating an entry that vanished after enumeration.
func (m *MemFS) Remove(path string) *MemFS {
	delete(m.nodes, filepath.Clean(path))
	return m
}

// FailReadDir makes enumeration of dir fail with err
func (m *MemFS) FailReadDir(dir string, err error) *MemFS {
	m.readDirErr[filepath.Clean(dir)] = err
	return m
}

func (m *MemFS) add(path string, node *memNode) *MemFS {
	path = filepath.Clean(path)
	node.name = filepath.Base(path)
	if _, exists := m.nodes[path]; !exists {
		parent := filepath.Dir(path)
		m.children[parent] = append(m.children[parent], node.name)
	}
	m.nodes[path] = node
	return m
}

// ReadDirNames implements entry.FS
func (m *MemFS) ReadDirNames(dir string) ([]string, error) {
	dir = filepath.Clean(dir)
	if err, ok := m.readDirErr[dir]; ok {
		return nil, &fs.PathError{Op: "open", Path: dir, Err: err}
	}
	node, err := m.follow(dir)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: dir, Err: err}
	}
	if !node.mode.IsDir() {
		return nil, &fs.PathError{Op: "readdirent", Path: dir, Err: syscall.ENOTDIR}
	}
	names := make([]string, len(m.children[dir]))
	copy(names, m.children[dir])
	return names, nil
}

// Canonicalize implements entry.FS
func (m *MemFS) Canonicalize(path string) (string, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join("/", path)
	}
	path = filepath.Clean(path)
	for range 40 {
		node, ok := m.nodes[path]
		if !ok {
			return "", &fs.PathError{Op: "lstat", Path: path, Err: fs.ErrNotExist}
		}
		if node.mode&fs.ModeSymlink == 0 {
			return path, nil
		}
		path = node.target
	}
	return "", &fs.PathError{Op: "lstat", Path: path, Err: syscall.ELOOP}
}

// Stat implements entry.FS
func (m *MemFS) Stat(path string) (fs.FileInfo, error) {
	node, err := m.follow(filepath.Clean(path))
	if err != nil {
		return nil, &fs.PathError{Op: "stat", Path: path, Err: err}
	}
	return memInfo{node: node, name: filepath.Base(path)}, nil
}

// Lstat implements entry.FS
func (m *MemFS) Lstat(path string) (fs.FileInfo, error) {
	node, ok := m.nodes[filepath.Clean(path)]
	if !ok {
		return nil, &fs.PathError{Op: "lstat", Path: path, Err: fs.ErrNotExist}
	}
	return memInfo{node: node, name: node.name}, nil
}

func (m *MemFS) follow(path string) (*memNode, error) {
	for range 40 {
		node, ok := m.nodes[path]
		if !ok {
			return nil, fs.ErrNotExist
		}
		if node.mode&fs.ModeSymlink == 0 {
			return node, nil
		}
		path = node.target
	}
	return nil, syscall.ELOOP
}

type memInfo struct {
	node *memNode
	name string
}

func (i memInfo) Name() string       { return i.name }
func (i memInfo) Size() int64        { return i.node.size }
func (i memInfo) Mode() fs.FileMode  { return i.node.mode }
func (i memInfo) ModTime() time.Time { return time.Time{} }
func (i memInfo) IsDir() bool        { return i.node.mode.IsDir() }
func (i memInfo) Sys() any           { return nil }

// WriteFile creates a file with content and permissions under dir
func WriteFile(t *testing.T, dir, name, content string, perm os.FileMode) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent of %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	// WriteFile is subject to umask; force the requested bits.
	if err := os.Chmod(path, perm); err != nil {
		t.Fatalf("failed to chmod %s: %v", path, err)
	}
	return path
}

// Symlink creates a symlink at dir/name pointing to target
func Symlink(t *testing.T, dir, name, target string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.Symlink(target, path); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	return path
}
