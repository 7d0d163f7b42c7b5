package utils

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
)

// DiagnosticLevel represents the level of diagnostic output
type DiagnosticLevel int

const (
	DiagnosticSilent DiagnosticLevel = iota
	DiagnosticError
	DiagnosticWarn
	DiagnosticInfo
	DiagnosticVerbose
	DiagnosticDebug
)

// DiagnosticSystem provides structured, user-friendly output
type DiagnosticSystem struct {
	level     DiagnosticLevel
	useColors bool
	showTime  bool
	output    io.Writer
	errorOut  io.Writer
	indent    int
}

// NewDiagnosticSystem creates a new diagnostic system
func NewDiagnosticSystem(level DiagnosticLevel) *DiagnosticSystem {
	return &DiagnosticSystem{
		level:     level,
		useColors: shouldUseColors(),
		showTime:  level >= DiagnosticVerbose,
		output:    os.Stdout,
		errorOut:  os.Stderr,
	}
}

// NewQuietDiagnostics creates a diagnostic system that only shows errors
func NewQuietDiagnostics() *DiagnosticSystem {
	return NewDiagnosticSystem(DiagnosticError)
}

// NewVerboseDiagnostics creates a diagnostic system with full output
func NewVerboseDiagnostics() *DiagnosticSystem {
	return NewDiagnosticSystem(DiagnosticVerbose)
}

// SetOutput redirects regular and error output
func (d *DiagnosticSystem) SetOutput(output, errorOut io.Writer) {
	d.output = output
	d.errorOut = errorOut
}

// SetColors enables or disables colored level tags
func (d *DiagnosticSystem) SetColors(enabled bool) {
	d.useColors = enabled
}

// SetShowTime enables or disables timestamps
func (d *DiagnosticSystem) SetShowTime(enabled bool) {
	d.showTime = enabled
}

// Level returns the configured diagnostic level
func (d *DiagnosticSystem) Level() DiagnosticLevel {
	return d.level
}

var levelColors = map[string]*color.Color{
	"ERROR":   color.New(color.FgRed),
	"WARN":    color.New(color.FgYellow),
	"INFO":    color.New(color.FgBlue),
	"SUCCESS": color.New(color.FgGreen),
	"VERBOSE": color.New(color.FgHiBlack),
	"DEBUG":   color.New(color.FgMagenta),
}

// Error outputs error messages (always shown unless silent)
func (d *DiagnosticSystem) Error(format string, args ...interface{}) {
	if d.level >= DiagnosticError {
		d.writeMessage(d.errorOut, "ERROR", format, args...)
	}
}

// Warn outputs warning messages
func (d *DiagnosticSystem) Warn(format string, args ...interface{}) {
	if d.level >= DiagnosticWarn {
		d.writeMessage(d.output, "WARN", format, args...)
	}
}

// Info outputs informational messages
func (d *DiagnosticSystem) Info(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		d.writeMessage(d.output, "INFO", format, args...)
	}
}

// Success outputs success messages with emphasis
func (d *DiagnosticSystem) Success(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		d.writeMessage(d.output, "SUCCESS", format, args...)
	}
}

// Verbose outputs detailed messages (verbose mode only)
func (d *DiagnosticSystem) Verbose(format string, args ...interface{}) {
	if d.level >= DiagnosticVerbose {
		d.writeMessage(d.output, "VERBOSE", format, args...)
	}
}

// Debug outputs debug messages (highest verbosity)
func (d *DiagnosticSystem) Debug(format string, args ...interface{}) {
	if d.level >= DiagnosticDebug {
		d.writeMessage(d.output, "DEBUG", format, args...)
	}
}

// Section creates a prominent section header
func (d *DiagnosticSystem) Section(title string) {
	if d.level >= DiagnosticInfo {
		fmt.Fprintf(d.output, "%s\n", d.paint(color.New(color.FgCyan, color.Bold), title))
	}
}

// Subsection creates a subsection header
func (d *DiagnosticSystem) Subsection(title string) {
	if d.level >= DiagnosticInfo {
		fmt.Fprintf(d.output, "\n%s:\n", title)
	}
}

// List outputs a bulleted list item
func (d *DiagnosticSystem) List(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		message := fmt.Sprintf(format, args...)
		fmt.Fprintf(d.output, "%s- %s\n", d.getIndent(), message)
	}
}

// Suggestions lists hints below an error, shown with errors
func (d *DiagnosticSystem) Suggestions(hints []string) {
	if d.level >= DiagnosticError {
		for _, hint := range hints {
			fmt.Fprintf(d.errorOut, "%s  hint: %s\n", d.getIndent(), hint)
		}
	}
}

// Indent increases the indentation level
func (d *DiagnosticSystem) Indent() {
	d.indent++
}

// Unindent decreases the indentation level
func (d *DiagnosticSystem) Unindent() {
	if d.indent > 0 {
		d.indent--
	}
}

// Summary outputs a final summary with statistics sorted by key
func (d *DiagnosticSystem) Summary(title string, stats map[string]interface{}) {
	if d.level < DiagnosticInfo {
		return
	}

	keys := make([]string, 0, len(stats))
	for key := range stats {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Fprintf(d.output, "\n%s\n", d.paint(color.New(color.FgGreen), title))
	for _, key := range keys {
		fmt.Fprintf(d.output, "   %s: %v\n", key, stats[key])
	}
	fmt.Fprintln(d.output)
}

// writeMessage is the internal message writing function
func (d *DiagnosticSystem) writeMessage(writer io.Writer, level, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	var output strings.Builder
	output.WriteString(d.getIndent())

	if d.showTime {
		output.WriteString(time.Now().Format("15:04:05 "))
	}

	tag := fmt.Sprintf("[%s]", level)
	output.WriteString(d.paint(levelColors[level], tag))
	output.WriteString(" ")

	output.WriteString(message)
	output.WriteString("\n")

	fmt.Fprint(writer, output.String())
}

// paint colors text when colors are enabled
func (d *DiagnosticSystem) paint(c *color.Color, text string) string {
	if !d.useColors || c == nil {
		return text
	}
	c.EnableColor()
	return c.Sprint(text)
}

// getIndent returns the current indentation string
func (d *DiagnosticSystem) getIndent() string {
	return strings.Repeat("  ", d.indent)
}

// shouldUseColors determines if colors should be used
func shouldUseColors() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}
