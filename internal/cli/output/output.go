// Package output formats command output for terminals and pipes.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Styles holds the lipgloss styles used across commands.
type Styles struct {
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Path    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, tty bool) *Styles {
	if !tty {
		plain := r.NewStyle()
		return &Styles{Success: plain, Warning: plain, Error: plain, Muted: plain, Bold: plain, Path: plain}
	}
	return &Styles{
		Success: r.NewStyle().Foreground(lipgloss.Color("#22C55E")).Bold(true),
		Warning: r.NewStyle().Foreground(lipgloss.Color("#EAB308")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("#888888")),
		Bold:    r.NewStyle().Bold(true),
		Path:    r.NewStyle().Foreground(lipgloss.Color("#5B8DEF")),
	}
}

// Renderer writes command output to w. Styling is applied only when w is a
// terminal; pipes and buffers get plain text.
type Renderer struct {
	w      io.Writer
	tty    bool
	styles *Styles
}

// NewRenderer creates a renderer for w.
func NewRenderer(w io.Writer) *Renderer {
	tty := IsTerminal(w)

	lr := lipgloss.NewRenderer(w)
	if !tty {
		lr.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		w:      w,
		tty:    tty,
		styles: newStyles(lr, tty),
	}
}

// Writer returns the underlying writer.
func (r *Renderer) Writer() io.Writer {
	return r.w
}

// IsTTY reports whether output goes to a terminal.
func (r *Renderer) IsTTY() bool {
	return r.tty
}

// Styles returns the renderer's styles.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Println writes a line.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.w, a...)
}

// Success writes a status line in the success style.
func (r *Renderer) Success(format string, args ...any) {
	r.Println(r.styles.Success.Render(fmt.Sprintf(format, args...)))
}

// FileEntry is one row of a file table.
type FileEntry struct {
	Path string
	Size int64
}

// FileTable writes files as a two-column table of path and size.
func (r *Renderer) FileTable(files []FileEntry) {
	if len(files) == 0 {
		r.Println(r.styles.Muted.Render("(no files)"))
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"File", "Size"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignRight},
	})

	var total int64
	for _, f := range files {
		t.AppendRow(table.Row{r.styles.Path.Render(f.Path), humanize.Bytes(uint64(f.Size))}) //nolint:gosec // sizes are never negative
		total += f.Size
	}
	t.AppendFooter(table.Row{fmt.Sprintf("%d files", len(files)), humanize.Bytes(uint64(total))}) //nolint:gosec // sizes are never negative

	t.Render()
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}
