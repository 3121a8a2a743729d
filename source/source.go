// Package source wraps the raw text handed to the lexer and parser.
//
// A Source is immutable once constructed; AST nodes and diagnostics keep
// a back-reference to it rather than copying the body around.
package source

// LocationOffset shifts the reported line and column of every position
// resolved against a Source. It exists for embedded documents: a GraphQL
// block quoted inside a larger file can report locations relative to
// where it actually starts, rather than relative to byte zero.
type LocationOffset struct {
	Line   int
	Column int
}

// DefaultName is the conventional default name used when the caller does not
// supply one, matching the placeholder graphql-js uses for ad-hoc parses.
const DefaultName = "GraphQL"

// Option configures a Source at construction time.
type Option func(*Source)

// WithName overrides the source's logical name, used in diagnostics.
func WithName(name string) Option {
	return func(s *Source) {
		s.Name = name
	}
}

// WithLocationOffset overrides the (line, column) that byte offset 0 is
// reported as. Both fields must be 1 or greater; New does not validate
// this, callers embedding sources are expected to know their own offset.
func WithLocationOffset(offset LocationOffset) Option {
	return func(s *Source) {
		s.LocationOffset = offset
	}
}

// Source is the text a Lexer tokenizes and a Parser consumes, plus the
// metadata diagnostics need to describe where a problem occurred.
type Source struct {
	Body           string
	Name           string
	LocationOffset LocationOffset
}

// New builds a Source over body, defaulting Name to DefaultName and
// LocationOffset to (1, 1).
func New(body string, opts ...Option) *Source {
	s := &Source{
		Body:           body,
		Name:           DefaultName,
		LocationOffset: LocationOffset{Line: 1, Column: 1},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
