// Package ui renders the status lines, banners and highlights shared by the
// prompts and the command flow.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const bannerWidth = 60

type Printer struct {
	out io.Writer

	header  lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	info    lipgloss.Style
	label   lipgloss.Style
	accent  lipgloss.Style
}

// NewPrinter styles output for w. Colors are only emitted when w is a
// terminal and NO_COLOR is unset.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(colorProfile(w))

	return &Printer{
		out:     w,
		header:  r.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		success: r.NewStyle().Foreground(lipgloss.Color("10")),
		failure: r.NewStyle().Foreground(lipgloss.Color("9")),
		info:    r.NewStyle().Foreground(lipgloss.Color("12")),
		label:   r.NewStyle().Foreground(lipgloss.Color("12")),
		accent:  r.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

func colorProfile(w io.Writer) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return termenv.Ascii
	}
	return termenv.NewOutput(file).EnvColorProfile()
}

func (p *Printer) Writer() io.Writer {
	return p.out
}

// Header prints a centered banner framed by rules.
func (p *Printer) Header(text string) {
	rule := strings.Repeat("=", bannerWidth)
	title := lipgloss.PlaceHorizontal(bannerWidth, lipgloss.Center, text)
	_, _ = fmt.Fprintf(p.out, "\n%s\n%s\n%s\n\n",
		p.header.Render(rule), p.header.Render(title), p.header.Render(rule))
}

func (p *Printer) Success(text string) {
	_, _ = fmt.Fprintln(p.out, p.success.Render("✓ "+text))
}

func (p *Printer) Error(text string) {
	_, _ = fmt.Fprintln(p.out, p.failure.Render("✗ "+text))
}

func (p *Printer) Info(text string) {
	_, _ = fmt.Fprintln(p.out, p.info.Render("ℹ "+text))
}

// Field prints a "Name: value" line with the name emphasized.
func (p *Printer) Field(name, value string) {
	_, _ = fmt.Fprintf(p.out, "%s %s\n", p.label.Render(name+":"), value)
}

// Title prints a section title for menus and the calendar.
func (p *Printer) Title(text string) {
	_, _ = fmt.Fprintf(p.out, "\n%s\n", p.label.Render(text))
}

// Accent returns text in the highlight color.
func (p *Printer) Accent(text string) string {
	return p.accent.Render(text)
}

func (p *Printer) Println(a ...any) {
	_, _ = fmt.Fprintln(p.out, a...)
}

func (p *Printer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(p.out, format, a...)
}
