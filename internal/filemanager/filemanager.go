// Package filemanager reads and writes YAML files under an advisory file
// lock, so concurrent invocations never observe a half-written file.
package filemanager

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

// ErrLockTimeout is returned when acquiring a file lock times out
var ErrLockTimeout = errors.New("timeout acquiring file lock")

// ErrExists is returned by Create when the file is already present
var ErrExists = errors.New("file already exists")

const retryDelay = 50 * time.Millisecond

// Manager serializes access to YAML files of type T
type Manager[T any] struct {
	lockTimeout time.Duration
}

// NewManager creates a new file manager with default settings
func NewManager[T any]() *Manager[T] {
	return &Manager[T]{
		lockTimeout: 5 * time.Second,
	}
}

// NewManagerWithTimeout creates a new file manager with custom lock timeout
func NewManagerWithTimeout[T any](timeout time.Duration) *Manager[T] {
	return &Manager[T]{
		lockTimeout: timeout,
	}
}

// LockPath returns the lock file guarding path. A sibling file is locked
// instead of path itself because path is replaced by rename on write.
func LockPath(path string) string {
	return path + ".lock"
}

// ReadBytes returns the raw content of path under a shared lock
func (m *Manager[T]) ReadBytes(ctx context.Context, path string) ([]byte, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	unlock, err := m.lock(ctx, path, true)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return os.ReadFile(path)
}

// Write replaces path with the YAML encoding of data
func (m *Manager[T]) Write(ctx context.Context, path string, data *T) error {
	return m.write(ctx, path, data, true)
}

// Create writes data to path, failing with ErrExists if path is present
func (m *Manager[T]) Create(ctx context.Context, path string, data *T) error {
	return m.write(ctx, path, data, false)
}

func (m *Manager[T]) write(ctx context.Context, path string, data *T, overwrite bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	unlock, err := m.lock(ctx, path, false)
	if err != nil {
		return err
	}
	defer unlock()

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return ErrExists
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat file: %w", err)
		}
	}

	yamlData, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal yaml: %w", err)
	}

	// Write to a unique temp file, then rename over the target
	tempFile := fmt.Sprintf("%s.%d.%d.tmp", path, os.Getpid(), time.Now().UnixNano())
	if err := writeSynced(tempFile, yamlData); err != nil {
		_ = os.Remove(tempFile)
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tempFile, path); err != nil {
		_ = os.Remove(tempFile)
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}

func (m *Manager[T]) lock(ctx context.Context, path string, shared bool) (func(), error) {
	lock := flock.New(LockPath(path))

	lockCtx, cancel := context.WithTimeout(ctx, m.lockTimeout)
	defer cancel()

	var locked bool
	var err error
	if shared {
		locked, err = lock.TryRLockContext(lockCtx, retryDelay)
	} else {
		locked, err = lock.TryLockContext(lockCtx, retryDelay)
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrLockTimeout
		}
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, ErrLockTimeout
	}

	return func() { _ = lock.Unlock() }, nil
}

func writeSynced(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
