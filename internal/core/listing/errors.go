package listing

import "fmt"

// ErrPathResolution is returned when a requested directory does not exist
// or cannot be made absolute
type ErrPathResolution struct {
	Path string
	Err  error
}

func (e ErrPathResolution) Error() string {
	return fmt.Sprintf("cannot resolve %s: %v", e.Path, e.Err)
}

func (e ErrPathResolution) Unwrap() error {
	return e.Err
}

// ErrNotDirectory is returned when a requested path resolves to something
// other than a directory
type ErrNotDirectory struct {
	Path string
}

func (e ErrNotDirectory) Error() string {
	return fmt.Sprintf("not a directory: %s", e.Path)
}

// ErrEnumeration describes a directory that exists but could not be read.
// The renderer reports it and lists the directory as empty.
type ErrEnumeration struct {
	Path string
	Err  error
}

func (e ErrEnumeration) Error() string {
	return fmt.Sprintf("cannot read directory %s: %v", e.Path, e.Err)
}

func (e ErrEnumeration) Unwrap() error {
	return e.Err
}

// ErrWrite is returned when the output sink fails
type ErrWrite struct {
	Err error
}

func (e ErrWrite) Error() string {
	return fmt.Sprintf("failed to write output: %v", e.Err)
}

func (e ErrWrite) Unwrap() error {
	return e.Err
}
