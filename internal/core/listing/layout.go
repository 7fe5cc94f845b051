package listing

import (
	"strings"

	"github.com/aki/dircontents/internal/core/entry"
	"github.com/mattn/go-runewidth"
)

const (
	// gutter is the spacing after every name
	gutter = 2
	// sizeFieldWidth is the width of the size column in size mode
	sizeFieldWidth = 10
)

// Classify returns the color of an entry. Later rules win:
// default, directory, symlink, executable, missing.
func Classify(e entry.Entry) Color {
	c := ColorDefault
	if e.Kind == entry.KindDirectory {
		c = ColorDirectory
	}
	if e.Kind == entry.KindSymlink {
		c = ColorSymlink
	}
	if e.Executable {
		c = ColorExecutable
	}
	if e.Missing() {
		c = ColorMissing
	}
	return c
}

// Layout arranges resolved entries into lines for a terminal that is width
// cells wide.
//
// With ShowSize every entry gets its own line, prefixed by a fixed-width
// size field. Otherwise names are padded to a common column width and
// wrapped, unless all of them fit on one line, in which case each name
// only gets its own width plus the gutter.
func Layout(entries []entry.Entry, opts Options, width int) []Line {
	if len(entries) == 0 {
		return nil
	}

	widths := make([]int, len(entries))
	longest := 0
	for i, e := range entries {
		widths[i] = runewidth.StringWidth(e.Name)
		longest = max(longest, widths[i])
	}
	column := longest + gutter

	if opts.ShowSize {
		return sizeLines(entries, opts)
	}

	perLine := max(1, width/column)
	compact := column*len(entries) <= width

	lines := make([]Line, 0, (len(entries)+perLine-1)/perLine)
	var line Line
	for i, e := range entries {
		cell := column
		if compact {
			cell = widths[i] + gutter
		}
		line = append(line, Segment{Text: padRight(e.Name, widths[i], cell), Color: Classify(e)})
		if len(line) == perLine {
			lines = append(lines, line)
			line = nil
		}
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

func sizeLines(entries []entry.Entry, opts Options) []Line {
	lines := make([]Line, 0, len(entries))
	for _, e := range entries {
		if e.Missing() {
			lines = append(lines, Line{{Text: e.Name, Color: ColorMissing}})
			continue
		}
		size := FormatSize(e.Size, opts.HumanReadable, opts.SizeBase)
		text := padRight(size, len(size), sizeFieldWidth) + e.Name
		lines = append(lines, Line{{Text: text, Color: Classify(e)}})
	}
	return lines
}

// Render lays out entries and writes them to sink. Every line ends with a
// line break and the block ends with one blank line.
func Render(sink Sink, entries []entry.Entry, opts Options, width int) error {
	for _, line := range Layout(entries, opts, width) {
		for _, seg := range line {
			if err := sink.Write(seg.Text, seg.Color); err != nil {
				return ErrWrite{Err: err}
			}
		}
		if err := sink.Write("\n", ColorNone); err != nil {
			return ErrWrite{Err: err}
		}
	}
	if err := sink.Write("\n", ColorNone); err != nil {
		return ErrWrite{Err: err}
	}
	return nil
}

// padRight pads s, which is current cells wide, with spaces up to target
func padRight(s string, current, target int) string {
	if current >= target {
		return s
	}
	return s + strings.Repeat(" ", target-current)
}
