package output

import (
	"fmt"
	"io"
	"sync"

	"github.com/devboot/nvboot/pkg/ui"
	"github.com/devboot/nvboot/pkg/ui/output/styles"
)

// Reporter writes styled progress messages
type Reporter struct {
	mu    sync.Mutex
	w     io.Writer
	plain bool
}

// NewReporter creates a reporter writing to w. FormatAuto detects the
// format from w.
func NewReporter(w io.Writer, format ui.Format) *Reporter {
	if format == ui.FormatAuto {
		format = ui.DetectFormat(w)
	}
	return &Reporter{w: w, plain: format != ui.FormatTerminal}
}

// Writer is the destination of the reporter
func (r *Reporter) Writer() io.Writer { return r.w }

// Plain reports whether styling is disabled
func (r *Reporter) Plain() bool { return r.plain }

// Info prints a bold step header preceded by a blank line
func (r *Reporter) Info(format string, args ...interface{}) {
	r.println("\n" + r.render("Info", fmt.Sprintf(format, args...)))
}

// Success prints a completed step
func (r *Reporter) Success(format string, args ...interface{}) {
	r.println(r.render("Success", fmt.Sprintf(format, args...)))
}

// Warning prints a tolerated problem
func (r *Reporter) Warning(format string, args ...interface{}) {
	r.println(r.render("Warning", fmt.Sprintf(format, args...)))
}

// Error prints a failure
func (r *Reporter) Error(format string, args ...interface{}) {
	r.println(r.render("Error", fmt.Sprintf(format, args...)))
}

// Muted prints secondary detail
func (r *Reporter) Muted(format string, args ...interface{}) {
	r.println(r.render("Muted", fmt.Sprintf(format, args...)))
}

// Command echoes a command line before it runs. It satisfies
// executor.Echoer.
func (r *Reporter) Command(line string) {
	r.println(r.render("Command", "$ "+line))
}

// Style renders text in the named style, or returns it unchanged in plain mode
func (r *Reporter) Style(name, text string) string {
	return r.render(name, text)
}

func (r *Reporter) render(style, text string) string {
	if r.plain {
		return text
	}
	return styles.GetStyle(style).Render(text)
}

func (r *Reporter) println(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintln(r.w, s)
}
