package render

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color palette - Dracula theme inspired.
var (
	colorPurple = lipgloss.Color("#bd93f9")
	colorGreen  = lipgloss.Color("#50fa7b")
	colorCyan   = lipgloss.Color("#8be9fd")
)

// Styles colors duration text. The zero value renders plain text.
type Styles struct {
	enabled bool

	Number lipgloss.Style
	Unit   lipgloss.Style
	Header lipgloss.Style
}

// PlainStyles returns styles that leave text untouched.
func PlainStyles() Styles {
	return Styles{}
}

// NewStyles returns colored styles bound to r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		enabled: true,
		Number:  r.NewStyle().Foreground(colorCyan),
		Unit:    r.NewStyle().Foreground(colorGreen),
		Header:  r.NewStyle().Bold(true).Foreground(colorPurple),
	}
}

// Enabled reports whether styling is applied.
func (s Styles) Enabled() bool {
	return s.enabled
}

// ResolveColor picks styles for out according to mode ("auto", "always" or
// "never"). In auto mode color is used only when out is a terminal and
// NO_COLOR is unset.
func ResolveColor(mode string, out io.Writer) Styles {
	switch mode {
	case "never":
		return PlainStyles()
	case "always":
		r := lipgloss.NewRenderer(out)
		r.SetColorProfile(termenv.TrueColor)
		return NewStyles(r)
	}

	if os.Getenv("NO_COLOR") != "" {
		return PlainStyles()
	}
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return PlainStyles()
	}
	return NewStyles(lipgloss.NewRenderer(out))
}

// Duration colors the digit runs and unit runs of a formatted duration.
func (s Styles) Duration(text string) string {
	if !s.enabled {
		return text
	}

	var b strings.Builder
	start := 0
	inNumber := false
	flush := func(end int) {
		if end <= start {
			return
		}
		if inNumber {
			b.WriteString(s.Number.Render(text[start:end]))
		} else {
			b.WriteString(s.Unit.Render(text[start:end]))
		}
		start = end
	}

	for i, r := range text {
		isNum := (r >= '0' && r <= '9') || r == '.'
		if i == 0 {
			inNumber = isNum
			continue
		}
		if isNum != inNumber {
			flush(i)
			inNumber = isNum
		}
	}
	flush(len(text))

	return b.String()
}

// Heading styles a table header line.
func (s Styles) Heading(text string) string {
	if !s.enabled {
		return text
	}
	return s.Header.Render(text)
}
