package ui

import (
	"bytes"
	"io"

	"github.com/aki/dircontents/internal/core/listing"
	"github.com/charmbracelet/lipgloss"
)

// ColorWriter is a listing.Sink that styles text with lipgloss and keeps
// everything in memory until Flush, so a listing reaches its destination
// in a single write.
type ColorWriter struct {
	out     io.Writer
	buf     bytes.Buffer
	palette Palette
}

// NewColorWriter creates a ColorWriter for out. With ColorAuto the color
// profile is detected from out.
func NewColorWriter(out io.Writer, mode ColorMode) *ColorWriter {
	r := lipgloss.NewRenderer(out)
	applyColorMode(r, mode)

	return &ColorWriter{
		out:     out,
		palette: NewPalette(r),
	}
}

// Write implements listing.Sink
func (w *ColorWriter) Write(text string, c listing.Color) error {
	// lipgloss pads multi-line blocks, so line breaks are never styled
	if c == listing.ColorNone {
		_, err := w.buf.WriteString(text)
		return err
	}
	_, err := w.buf.WriteString(w.palette.Render(text, c))
	return err
}

// Flush implements listing.Sink
func (w *ColorWriter) Flush() error {
	if w.buf.Len() == 0 {
		return nil
	}
	defer w.buf.Reset()

	_, err := w.out.Write(w.buf.Bytes())
	return err
}

// Buffered returns the number of bytes waiting for Flush
func (w *ColorWriter) Buffered() int {
	return w.buf.Len()
}
