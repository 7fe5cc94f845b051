package entry

import "io/fs"

// execBits covers the owner, group and other execute permissions
const execBits fs.FileMode = 0o111

// Resolve attaches metadata to e. It never fails: an entry whose path
// cannot be stat'ed (vanished, broken symlink, unreadable) comes back as
// KindMissing with no size and no executable bit.
func Resolve(fsys FS, e Entry, policy LinkPolicy) Entry {
	target, err := fsys.Stat(e.Path)
	if err != nil {
		return Entry{Name: e.Name, Path: e.Path, Kind: KindMissing}
	}

	e.Size = uint64(max(target.Size(), 0))
	e.Executable = !target.IsDir() && target.Mode().Perm()&execBits != 0

	switch {
	case policy == LinkAsSymlink && isSymlink(fsys, e.Path):
		e.Kind = KindSymlink
	case target.IsDir():
		e.Kind = KindDirectory
	default:
		e.Kind = KindRegularFile
	}
	return e
}

// ResolveAll resolves every entry, preserving order
func ResolveAll(fsys FS, entries []Entry, policy LinkPolicy) []Entry {
	resolved := make([]Entry, len(entries))
	for i, e := range entries {
		resolved[i] = Resolve(fsys, e, policy)
	}
	return resolved
}

func isSymlink(fsys FS, path string) bool {
	info, err := fsys.Lstat(path)
	if err != nil {
		return false
	}
	return info.Mode()&fs.ModeSymlink != 0
}
