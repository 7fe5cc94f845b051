package listing

import (
	"github.com/aki/dircontents/internal/core/entry"
	"github.com/aki/dircontents/internal/core/logger"
)

// HeaderPrefix starts the line naming each listed directory
const HeaderPrefix = "➥ "

// Renderer lists directories into a Sink, one block per directory
type Renderer struct {
	fs        entry.FS
	sink      Sink
	opts      Options
	width     int
	logger    logger.Logger
	onWarning func(error)
}

// RendererOption configures a Renderer
type RendererOption func(*Renderer)

// WithLogger sets the logger used for diagnostics
func WithLogger(l logger.Logger) RendererOption {
	return func(r *Renderer) {
		r.logger = l
	}
}

// WithWarningHandler sets a callback for non-fatal problems such as an
// unreadable directory
func WithWarningHandler(fn func(error)) RendererOption {
	return func(r *Renderer) {
		r.onWarning = fn
	}
}

// NewRenderer creates a Renderer writing to sink for a terminal width
// columns wide
func NewRenderer(fsys entry.FS, sink Sink, display Options, width int, options ...RendererOption) *Renderer {
	r := &Renderer{
		fs:        fsys,
		sink:      sink,
		opts:      display,
		width:     width,
		logger:    logger.Nop(),
		onWarning: func(error) {},
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Render lists each path in order, or the working directory when paths is
// empty. It stops at the first fatal error; blocks rendered before it stay
// in the sink. Flushing the sink is left to the caller.
func (r *Renderer) Render(paths []string) error {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	for _, path := range paths {
		if err := r.RenderDir(path); err != nil {
			return err
		}
	}
	return nil
}

// RenderDir lists a single directory
func (r *Renderer) RenderDir(path string) error {
	abs, err := r.fs.Canonicalize(path)
	if err != nil {
		return ErrPathResolution{Path: path, Err: err}
	}
	info, err := r.fs.Stat(abs)
	if err != nil {
		return ErrPathResolution{Path: path, Err: err}
	}
	if !info.IsDir() {
		return ErrNotDirectory{Path: abs}
	}

	names, err := r.fs.ReadDirNames(abs)
	if err != nil {
		enumErr := ErrEnumeration{Path: abs, Err: err}
		r.logger.Debug("listing directory as empty", "path", abs, "error", err)
		r.onWarning(enumErr)
		names = nil
	}

	entries := make([]entry.Entry, len(names))
	for i, name := range names {
		entries[i] = entry.New(abs, name)
	}
	selected := entry.ResolveAll(r.fs, Select(entries, r.opts), r.opts.Links)

	r.logger.Debug("rendering directory",
		"path", abs,
		"enumerated", len(names),
		"shown", len(selected),
		"width", r.width,
	)

	if err := r.sink.Write(HeaderPrefix+abs, ColorHeader); err != nil {
		return ErrWrite{Err: err}
	}
	if err := r.sink.Write("\n", ColorNone); err != nil {
		return ErrWrite{Err: err}
	}
	return Render(r.sink, selected, r.opts, r.width)
}
