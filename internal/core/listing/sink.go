package listing

import "strings"

// Color is the display class of a piece of output
type Color int

const (
	// ColorNone is uncolored text, used for line breaks
	ColorNone Color = iota
	// ColorDefault is white
	ColorDefault
	// ColorDirectory is bold blue
	ColorDirectory
	// ColorSymlink is cyan
	ColorSymlink
	// ColorExecutable is green
	ColorExecutable
	// ColorMissing is bold red
	ColorMissing
	// ColorHeader is yellow
	ColorHeader
)

func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorDirectory:
		return "directory"
	case ColorSymlink:
		return "symlink"
	case ColorExecutable:
		return "executable"
	case ColorMissing:
		return "missing"
	case ColorHeader:
		return "header"
	default:
		return "none"
	}
}

// Sink receives colored text. Writes must appear in the order they are made.
type Sink interface {
	Write(text string, c Color) error
	Flush() error
}

// Segment is one colored piece of text
type Segment struct {
	Text  string
	Color Color
}

// Line is the ordered content of one output line, without the line break
type Line []Segment

// String returns the text of the line without colors
func (l Line) String() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Recorder is a Sink that keeps every write in memory
type Recorder struct {
	Segments []Segment
	Flushes  int
}

// Write implements Sink
func (r *Recorder) Write(text string, c Color) error {
	r.Segments = append(r.Segments, Segment{Text: text, Color: c})
	return nil
}

// Flush implements Sink
func (r *Recorder) Flush() error {
	r.Flushes++
	return nil
}

// Text returns everything written so far without colors
func (r *Recorder) Text() string {
	return Line(r.Segments).String()
}

// Lines splits the recorded output at line breaks. Each element is the
// text of one line.
func (r *Recorder) Lines() []string {
	text := r.Text()
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
