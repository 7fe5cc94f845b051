// Package entry models directory entries and resolves their filesystem metadata.
package entry

import "path/filepath"

// Kind classifies a directory entry
type Kind int

const (
	// KindUnresolved marks an entry whose metadata has not been resolved yet
	KindUnresolved Kind = iota
	// KindRegularFile is anything that is neither a directory nor a symlink
	KindRegularFile
	// KindDirectory is a directory
	KindDirectory
	// KindSymlink is a symbolic link whose target exists
	KindSymlink
	// KindMissing is an entry that no longer resolves, e.g. a broken symlink
	KindMissing
)

func (k Kind) String() string {
	switch k {
	case KindRegularFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindSymlink:
		return "symlink"
	case KindMissing:
		return "missing"
	default:
		return "unresolved"
	}
}

// LinkPolicy decides how a symlink that resolves is classified
type LinkPolicy int

const (
	// LinkAsSymlink classifies a resolving symlink as KindSymlink,
	// even when it points at a directory.
	LinkAsSymlink LinkPolicy = iota
	// LinkAsTarget classifies a resolving symlink by its target.
	LinkAsTarget
)

// Entry is a single item of a directory listing.
// Size and Executable are only meaningful once the entry is resolved and
// its Kind is not KindMissing.
type Entry struct {
	Name       string
	Path       string
	Kind       Kind
	Size       uint64
	Executable bool
}

// New creates an unresolved entry for name inside dir
func New(dir, name string) Entry {
	return Entry{
		Name: name,
		Path: filepath.Join(dir, name),
	}
}

// Resolved reports whether metadata has been attached to the entry
func (e Entry) Resolved() bool {
	return e.Kind != KindUnresolved
}

// Missing reports whether the entry failed to resolve
func (e Entry) Missing() bool {
	return e.Kind == KindMissing
}
