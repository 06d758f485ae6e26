package renderer

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/dshills/kite/internal/renderer/statusline"
)

// Config configures the renderer.
type Config struct {
	// FillChar marks rows past the end of the document.
	FillChar string

	// FillColor is the foreground color of fill rows.
	FillColor ansi.Color

	// Welcome enables the banner shown for an untouched, unnamed document.
	Welcome bool

	// Name and Version appear in the welcome banner.
	Name    string
	Version string
}

// DefaultConfig returns the default renderer configuration.
func DefaultConfig() Config {
	return Config{
		FillChar:  "~",
		FillColor: ansi.Blue,
		Welcome:   true,
		Name:      "kite",
		Version:   "dev",
	}
}

// Frame is everything needed to draw one screen.
type Frame struct {
	// Terminal size
	Rows int
	Cols int

	// Lines are the document lines from the viewport start onward.
	// Lines that do not fit are ignored.
	Lines []string

	// CursorRow and CursorCol are the 1-based screen position of the
	// text cursor.
	CursorRow int
	CursorCol int

	// Status bar
	Mode     string // mode status text
	Message  string // replaces Mode when set
	FileName string
	Modified bool
	Count    string
	Line     int // 1-based cursor line
	Col      int // 1-based cursor column

	// Command line
	CommandLine bool
	CommandText string
	CommandPos  int

	// Welcome shows the banner instead of document rows.
	Welcome bool
}

// ShowWelcome reports whether a document in the given state gets the
// welcome banner.
func ShowWelcome(modified bool, fileName string) bool {
	return !modified && fileName == ""
}

// Renderer assembles terminal frames.
type Renderer struct {
	config Config
	fill   string
	status *statusline.StatusLine
	buf    bytes.Buffer
}

// New creates a renderer.
func New(config Config) *Renderer {
	if config.FillChar == "" {
		config.FillChar = "~"
	}
	return &Renderer{
		config: config,
		fill:   ansi.Style{}.ForegroundColor(config.FillColor).Styled(config.FillChar),
		status: statusline.New(0),
	}
}

// Config returns the renderer configuration.
func (r *Renderer) Config() Config {
	return r.config
}

// Render returns the bytes for frame f. The returned slice is reused by
// the next call.
func (r *Renderer) Render(f Frame) []byte {
	r.buf.Reset()
	if f.Rows < 1 || f.Cols < 1 {
		return r.buf.Bytes()
	}

	r.buf.WriteString(ansi.HideCursor)
	r.buf.WriteString(ansi.CursorHomePosition)

	textRows := f.Rows - 1
	for row := 1; row <= textRows; row++ {
		r.buf.WriteString(ansi.CursorPosition(1, row))
		r.buf.WriteString(r.fill)
		r.buf.WriteString(ansi.EraseLineRight)
	}

	r.drawStatus(f)

	if f.Welcome && r.config.Welcome {
		r.drawWelcome(f)
	} else {
		r.drawLines(f)
	}

	if f.CommandLine {
		r.buf.WriteString(ansi.CursorPosition(r.status.CommandCursorColumn(), f.Rows))
	} else {
		r.buf.WriteString(ansi.CursorPosition(max(f.CursorCol, 1), max(f.CursorRow, 1)))
	}
	r.buf.WriteString(ansi.ShowCursor)
	return r.buf.Bytes()
}

func (r *Renderer) drawStatus(f Frame) {
	s := r.status
	s.Resize(f.Cols)
	status := f.Mode
	if f.Message != "" {
		status = f.Message
	}
	s.SetStatus(status)
	s.SetFilename(f.FileName)
	s.SetModified(f.Modified)
	s.SetCount(f.Count)
	s.SetPosition(f.Line, f.Col)
	s.SetCommand(f.CommandLine, f.CommandText, f.CommandPos)

	r.buf.WriteString(ansi.CursorPosition(1, f.Rows))
	r.buf.WriteString(s.Render())
}

// drawLines writes document lines, each wrapped over as many rows as
// it needs, until the text rows run out.
func (r *Renderer) drawLines(f Frame) {
	row := 1
	textRows := f.Rows - 1
	for _, line := range f.Lines {
		if row > textRows {
			return
		}
		for off := 0; ; off += f.Cols {
			if row > textRows {
				return
			}
			end := min(off+f.Cols, len(line))
			r.buf.WriteString(ansi.CursorPosition(1, row))
			r.buf.WriteString(ansi.EraseEntireLine)
			r.buf.WriteString(printable(line[off:end]))
			row++
			if end >= len(line) {
				break
			}
		}
	}
}

// Banner returns the welcome banner lines.
func (r *Renderer) Banner() []string {
	title := r.config.Name + " editor"
	if r.config.Version != "" {
		title += " -- version " + r.config.Version
	}
	return []string{
		title,
		"",
		"i to insert, :w <file> to save, Ctrl-Q to quit",
	}
}

// drawWelcome centers the banner horizontally, a third of the way down.
func (r *Renderer) drawWelcome(f Frame) {
	textRows := f.Rows - 1
	row := textRows / 3
	for _, text := range r.Banner() {
		row++
		if row > textRows {
			return
		}
		if text == "" {
			continue
		}
		if len(text) > f.Cols {
			text = text[:f.Cols]
		}
		col := (f.Cols-len(text))/2 + 1
		r.buf.WriteString(ansi.CursorPosition(col, row))
		r.buf.WriteString(text)
	}
}

// printable replaces bytes that would move the terminal cursor with '?'
// so every byte occupies one cell.
func printable(s string) string {
	if strings.IndexFunc(s, isControl) < 0 {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if c < ' ' || c == 0x7f {
			b[i] = '?'
		}
	}
	return string(b)
}

func isControl(r rune) bool {
	return r < ' ' || r == 0x7f
}
