// Package parser implements a recursive-descent parser for the GraphQL
// query/schema document language, producing a location-annotated
// ast.Document from a source text. It has no recovery: the first rule
// violation aborts the parse with a *errors.GraphQLError (spec.md §7).
package parser

import (
	"github.com/shyptr/gqlparse/ast"
	"github.com/shyptr/gqlparse/errors"
	"github.com/shyptr/gqlparse/lexer"
	"github.com/shyptr/gqlparse/source"
)

// Options controls location tracking in the produced AST.
type Options struct {
	// NoLocation, when true, makes every node's GetLoc() return nil.
	NoLocation bool
	// NoSource, when true, keeps each node's Loc.Start/End but drops the
	// Loc.Source back-reference.
	NoSource bool
}

// Option configures Options. Functional options, not a struct literal,
// so call sites read as `parser.Parse(src, parser.NoLocation())`.
type Option func(*Options)

// NoLocation makes the parser omit Loc from every node it produces.
func NoLocation() Option {
	return func(o *Options) { o.NoLocation = true }
}

// NoSource makes the parser omit the Source back-reference from every
// node's Loc, while still recording Start/End.
func NoSource() Option {
	return func(o *Options) { o.NoSource = true }
}

// parser drives a single Lexer with one-token lookahead. It is created
// fresh for each call to Parse and discarded afterward.
type parser struct {
	lex     *lexer.Lexer
	source  *source.Source
	options Options
	token   lexer.Token
	lastEnd int
}

// Parse parses src (a raw string or a *source.Source) into a Document.
// On any syntax error it returns a nil Document and a *errors.GraphQLError
// describing the first rule violated.
func Parse(src interface{}, opts ...Option) (*ast.Document, *errors.GraphQLError) {
	s, gqlErr := toSource(src)
	if gqlErr != nil {
		return nil, gqlErr
	}

	var options Options
	for _, opt := range opts {
		opt(&options)
	}

	p := &parser{
		lex:     lexer.New(s),
		source:  s,
		options: options,
		token:   lexer.Token{Kind: lexer.SOF},
	}

	var doc *ast.Document
	if gqlErr := errors.Catch(s, func() {
		p.advance()
		doc = parseDocument(p)
	}); gqlErr != nil {
		return nil, gqlErr
	}
	return doc, nil
}

func toSource(src interface{}) (*source.Source, *errors.GraphQLError) {
	switch v := src.(type) {
	case *source.Source:
		if v == nil {
			return nil, errors.New("Must provide Source. Received: undefined.")
		}
		return v, nil
	case string:
		if v == "" {
			return nil, errors.New("Must provide Source. Received: undefined.")
		}
		return source.New(v), nil
	default:
		return nil, errors.New("Must provide Source. Received: undefined.")
	}
}

// advance moves the lookahead to the next significant token, recording
// the end of the token just consumed.
func (p *parser) advance() {
	p.lastEnd = p.token.End
	p.token = p.lex.NextToken(p.token.End)
}

// expect consumes the current token if it has kind, or raises a syntax
// error. It returns the consumed token so callers needing its Value
// (e.g. parseName) can use it before advancing further.
func (p *parser) expect(kind lexer.Kind) lexer.Token {
	tok := p.token
	if tok.Kind != kind {
		errors.Throw(tok.Start, "Expected %s, found %s", kind.Label(), tok.Describe())
	}
	p.advance()
	return tok
}

// expectKeyword consumes the current token if it is a Name token whose
// value equals word.
func (p *parser) expectKeyword(word string) {
	tok := p.token
	if tok.Kind != lexer.NAME || tok.Value != word {
		errors.Throw(tok.Start, "Expected %q, found %s", word, tok.Describe())
	}
	p.advance()
}

// unexpected raises "Unexpected <token>" for the current token — the
// catch-all for "no production accepts this".
func (p *parser) unexpected() {
	errors.Throw(p.token.Start, "Unexpected %s", p.token.Describe())
}

// loc builds a *ast.Loc spanning [start, p.lastEnd), honoring
// NoLocation/NoSource. Called after all of a production's tokens have
// been consumed, so p.lastEnd is the byte offset just past the last one.
func (p *parser) loc(start int) *ast.Loc {
	if p.options.NoLocation {
		return nil
	}
	l := &ast.Loc{Start: start, End: p.lastEnd}
	if !p.options.NoSource {
		l.Source = p.source
	}
	return l
}
