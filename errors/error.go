// Package errors is the diagnostic engine: it turns a byte position in a
// Source into a line/column-accurate, caret-annotated GraphQLError, and
// provides the panic/recover plumbing the lexer and parser use to fail
// fast on the first syntax error.
package errors

import (
	"fmt"
	"strings"

	"github.com/shyptr/gqlparse/source"
)

// GraphQLError is the single error type the parser ever returns. It
// carries enough structure for tooling (byte positions, resolved
// line/column locations, the originating Source) as well as a
// human-readable Error() string.
type GraphQLError struct {
	Message       string                 `json:"message"`
	Source        *source.Source         `json:"-"`
	Positions     []int                  `json:"positions,omitempty"`
	Locations     []Location             `json:"locations,omitempty"`
	Path          []interface{}          `json:"path,omitempty"`
	Rule          string                 `json:"-"`
	ResolverError error                  `json:"-"`
	Extensions    map[string]interface{} `json:"extensions,omitempty"`
}

var _ error = (*GraphQLError)(nil)

// Error renders "Syntax Error <source-name> (<line>:<column>) <message>",
// i.e. the first line of Description. It never renders the source
// snippet; call Description for that. An error without a location
// renders as "graphql: <message>" instead.
func (err *GraphQLError) Error() string {
	if err == nil {
		return "<nil>"
	}
	if len(err.Locations) == 0 {
		str := fmt.Sprintf("graphql: %s", err.Message)
		if err.ResolverError != nil {
			str += " " + err.ResolverError.Error()
		}
		return str
	}
	loc := err.Locations[0]
	return fmt.Sprintf("Syntax Error %s (%d:%d) %s", err.sourceName(), loc.Line, loc.Column, err.Message)
}

func (err *GraphQLError) sourceName() string {
	if err.Source != nil && err.Source.Name != "" {
		return err.Source.Name
	}
	return source.DefaultName
}

// Description renders the full multi-line diagnostic per spec.md §4.4:
// the one-line summary, a blank line, up to three lines of source
// context, and a caret under the offending column.
func (err *GraphQLError) Description() string {
	summary := err.Error()
	if err.Source == nil || len(err.Positions) == 0 || len(err.Locations) == 0 {
		return summary
	}

	body := err.Source.Body
	pos := err.Positions[0]
	reportedLine := err.Locations[0].Line

	lines := splitLines(body)
	physicalLine, physicalColumn := physicalLocation(body, pos)

	var b strings.Builder
	b.WriteString(summary)
	b.WriteString("\n\n")
	for i := physicalLine - 1; i <= physicalLine+1; i++ {
		if i < 1 || i > len(lines) {
			continue
		}
		label := reportedLine + (i - physicalLine)
		prefix := fmt.Sprintf("%d: ", label)
		b.WriteString(prefix)
		b.WriteString(lines[i-1])
		b.WriteString("\n")
		if i == physicalLine {
			b.WriteString(strings.Repeat(" ", len(prefix)+physicalColumn-1))
			b.WriteString("^\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// MultiError collects more than one GraphQLError. The parser itself
// never produces one (spec.md §7: fail fast, no recovery past the
// first syntax error) but callers composing several independent parses
// may want to report them together.
type MultiError []*GraphQLError

func (m MultiError) Error() string {
	var res string
	for _, err := range m {
		res += err.Error() + "\n"
	}
	return res
}

// Location is a resolved, 1-based (line, column) pair.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Before reports whether a sorts strictly earlier than b in reading order.
func (a Location) Before(b Location) bool {
	return a.Line < b.Line || (a.Line == b.Line && a.Column < b.Column)
}

// New builds a GraphQLError carrying only a message, with no location
// information. Used for errors that aren't anchored to source text, e.g.
// "Must provide Source. Received: undefined."
func New(format string, arg ...interface{}) *GraphQLError {
	return &GraphQLError{
		Message: fmt.Sprintf(format, arg...),
	}
}

// NewSyntaxError builds a GraphQLError anchored at position in src,
// resolving the (line, column) location from src's body and
// LocationOffset.
func NewSyntaxError(src *source.Source, position int, message string) *GraphQLError {
	err := &GraphQLError{
		Message:   message,
		Source:    src,
		Positions: []int{position},
	}
	if src != nil {
		line, column := location(src, position)
		err.Locations = []Location{{Line: line, Column: column}}
	}
	return err
}

// location resolves a byte offset to a 1-based (line, column) pair,
// honoring src.LocationOffset the way an embedded source would: every
// line is shifted by LocationOffset.Line-1, and only the first physical
// line additionally absorbs LocationOffset.Column-1, since that's the
// only line that starts mid-way through the outer document.
func location(src *source.Source, pos int) (line, column int) {
	physicalLine, physicalColumn := physicalLocation(src.Body, pos)
	line = physicalLine + src.LocationOffset.Line - 1
	column = physicalColumn
	if physicalLine == 1 {
		column += src.LocationOffset.Column - 1
	}
	return
}

// physicalLocation resolves pos to a 1-based (line, column) pair within
// body itself, ignorant of any LocationOffset. Line terminators are LF,
// CR, or CRLF (the pair counts once).
func physicalLocation(body string, pos int) (line, column int) {
	if pos > len(body) {
		pos = len(body)
	}
	line = 1
	lineStart := 0
	i := 0
	for i < pos {
		c := body[i]
		switch c {
		case '\n':
			i++
			line++
			lineStart = i
		case '\r':
			i++
			if i < len(body) && body[i] == '\n' {
				i++
			}
			line++
			lineStart = i
		default:
			i++
		}
	}
	column = pos - lineStart + 1
	return
}

// splitLines splits body into physical lines on LF, CR, or CRLF, with
// terminators stripped. An empty body yields a single empty line.
func splitLines(body string) []string {
	var lines []string
	start := 0
	i := 0
	for i < len(body) {
		switch body[i] {
		case '\n':
			lines = append(lines, body[start:i])
			i++
			start = i
		case '\r':
			lines = append(lines, body[start:i])
			i++
			if i < len(body) && body[i] == '\n' {
				i++
			}
			start = i
		default:
			i++
		}
	}
	lines = append(lines, body[start:])
	return lines
}
