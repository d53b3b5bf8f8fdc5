// Package report renders diagnostics the way the CLI prints them to
// stderr: `LEVEL: message  at PATH:LINE` (spec §6's wire-format note).
package report

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/rivo/uniseg"

	"github.com/zztool/zz/span"
)

// Level is a diagnostic's severity.
type Level uint8

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

// String implements fmt.Stringer, and is the exact token the CLI prints.
func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Diagnostic is a single reported finding: a linter violation, a parse
// error, or a config problem, tied to a location in a file.
type Diagnostic struct {
	Level   Level
	Rule    string // lint rule name, or "" for parser/config diagnostics
	Message string
	Path    string
	Span    span.Span
	Line    int // 1-based; callers compute this from Span and source newlines
}

// LineOf computes the 1-based line number of offset within src.
func LineOf(src []byte, offset uint32) int {
	line := 1
	for i := uint32(0); i < offset && int(i) < len(src); i++ {
		if src[i] == '\n' {
			line++
		}
	}
	return line
}

// ColumnOf computes the 1-based display column of offset within its
// line, the way a terminal would count it rather than counting raw bytes
// (uniseg.StringWidth: a multi-byte UTF-8 rune or a combining-mark
// cluster is one column wide, an East Asian wide character or an emoji
// two). Editors and LSP-style consumers rendering a caret under
// a diagnostic need this; the CLI's own stderr output sticks to the
// simpler PATH:LINE convention spec §6 mandates.
func ColumnOf(src []byte, offset uint32) int {
	if int(offset) > len(src) {
		offset = uint32(len(src))
	}
	lineStart := bytes.LastIndexByte(src[:offset], '\n') + 1
	return uniseg.StringWidth(string(src[lineStart:offset])) + 1
}

// Format renders d in the CLI's stable convention.
func (d Diagnostic) Format() string {
	return fmt.Sprintf("%s: %s  at %s:%d", d.Level, d.Message, d.Path, d.Line)
}

// Print writes every diagnostic to w, one per line, sorted by (path,
// line, level) for deterministic output (spec §5's ordering guarantee
// extended to reporting, since two parallel workers may finish out of
// order).
func Print(w io.Writer, diags []Diagnostic) {
	sorted := make([]Diagnostic, len(diags))
	copy(sorted, diags)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Path != sorted[j].Path {
			return sorted[i].Path < sorted[j].Path
		}
		if sorted[i].Line != sorted[j].Line {
			return sorted[i].Line < sorted[j].Line
		}
		return sorted[i].Level > sorted[j].Level
	})
	for _, d := range sorted {
		fmt.Fprintln(w, d.Format())
	}
}

// HasErrors reports whether any diagnostic in diags is LevelError, used
// by the CLI to decide exit codes.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Level == LevelError {
			return true
		}
	}
	return false
}
