package emograd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// personalityStyles are the terminal styles of the built-in personalities.
var personalityStyles = map[string]lipgloss.Style{
	"wholesome": lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	"sassy":     lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
	"quiet":     lipgloss.NewStyle().Faint(true),
	"nervous":   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	"chaotic":   lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
	"arrogant":  lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Italic(true),
	"tired":     lipgloss.NewStyle().Faint(true).Italic(true),
	"hype":      lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	"academic":  lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	"pirate":    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	"zen":       lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Faint(true),
}

// PersonalityStyle returns the terminal style associated with a personality
// name. ok is false for names without a scheme; callers should then print
// unstyled.
func PersonalityStyle(name string) (lipgloss.Style, bool) {
	style, ok := personalityStyles[strings.ToLower(name)]
	return style, ok
}

// ColoredPrinter renders feedback messages in the color scheme of a
// personality. Its Print method fits the facade's WithPrintFunc option.
type ColoredPrinter struct {
	name     string
	style    lipgloss.Style
	hasStyle bool
	enabled  bool
	out      io.Writer
}

// PrinterOption is the type for the options of NewColoredPrinter.
type PrinterOption func(*ColoredPrinter)

// WithPrinterOutput sets the destination writer. Default is stdout.
func WithPrinterOutput(out io.Writer) PrinterOption {
	return func(p *ColoredPrinter) {
		p.out = out
	}
}

// WithPrinterColor forces colored output on or off. Default follows whether
// stdout is a terminal.
func WithPrinterColor(enabled bool) PrinterOption {
	return func(p *ColoredPrinter) {
		p.enabled = enabled
	}
}

// NewColoredPrinter creates a printer using the color scheme of the named
// personality. Unknown names are fine; they just print unstyled.
func NewColoredPrinter(personality string, options ...PrinterOption) *ColoredPrinter {
	p := &ColoredPrinter{
		out:     os.Stdout,
		enabled: isatty.IsTerminal(os.Stdout.Fd()),
	}
	p.SetPersonality(personality)

	for _, opt := range options {
		opt(p)
	}
	return p
}

// Print writes one message, styled when colors are enabled and the
// personality has a scheme.
func (x *ColoredPrinter) Print(msg string) {
	if x.enabled && x.hasStyle {
		msg = x.style.Render(msg)
	}
	fmt.Fprintln(x.out, msg)
}

// SetPersonality switches the printer to another personality's color scheme.
func (x *ColoredPrinter) SetPersonality(personality string) {
	x.name = personality
	x.style, x.hasStyle = PersonalityStyle(personality)
}

// Personality returns the name of the active color scheme.
func (x *ColoredPrinter) Personality() string {
	return x.name
}
