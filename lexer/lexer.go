// Package lexer tokenizes GraphQL source text.
//
// The Lexer is stateless with respect to its caller: NextToken takes the
// byte position to resume from and returns the next significant token at
// or after it, skipping whitespace, commas, line terminators, the BOM,
// and comments along the way. It keeps no backtracking buffer — the
// parser owns the cursor and drives lookahead by calling NextToken again
// with the previous token's End.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/shyptr/gqlparse/errors"
	"github.com/shyptr/gqlparse/source"
)

// bom is the UTF-8 encoding of U+FEFF, treated as insignificant
// whitespace wherever it appears, per spec.md §4.1.
const bom = "\uFEFF"

// Lexer tokenizes a single Source.
type Lexer struct {
	source *source.Source
	body   string
}

// New returns a Lexer over src.
func New(src *source.Source) *Lexer {
	return &Lexer{source: src, body: src.Body}
}

// NextToken returns the next token at or after pos, skipping insignificant
// characters. Once EOF has been reached, every further call (for any
// pos >= len(body)) returns an EOF token whose Start and End are pos.
func (l *Lexer) NextToken(pos int) Token {
	pos = l.skipIgnored(pos)
	body := l.body

	if pos >= len(body) {
		return Token{Kind: EOF, Start: pos, End: pos}
	}

	c := body[pos]
	switch c {
	case '!':
		return Token{Kind: BANG, Start: pos, End: pos + 1}
	case '$':
		return Token{Kind: DOLLAR, Start: pos, End: pos + 1}
	case '(':
		return Token{Kind: PAREN_L, Start: pos, End: pos + 1}
	case ')':
		return Token{Kind: PAREN_R, Start: pos, End: pos + 1}
	case '.':
		if strings.HasPrefix(body[pos:], "...") {
			return Token{Kind: SPREAD, Start: pos, End: pos + 3}
		}
		errors.Throw(pos, "Unexpected character: %q", ".")
	case ':':
		return Token{Kind: COLON, Start: pos, End: pos + 1}
	case '=':
		return Token{Kind: EQUALS, Start: pos, End: pos + 1}
	case '@':
		return Token{Kind: AT, Start: pos, End: pos + 1}
	case '[':
		return Token{Kind: BRACKET_L, Start: pos, End: pos + 1}
	case ']':
		return Token{Kind: BRACKET_R, Start: pos, End: pos + 1}
	case '{':
		return Token{Kind: BRACE_L, Start: pos, End: pos + 1}
	case '|':
		return Token{Kind: PIPE, Start: pos, End: pos + 1}
	case '}':
		return Token{Kind: BRACE_R, Start: pos, End: pos + 1}
	case '"':
		return l.lexString(pos)
	}

	if c == '-' || isDigit(c) {
		return l.lexNumber(pos)
	}
	if isNameStart(c) {
		return l.lexName(pos)
	}

	r, _ := utf8.DecodeRuneInString(body[pos:])
	errors.Throw(pos, "Unexpected character: %q", string(r))
	panic("unreachable")
}

// skipIgnored advances past whitespace, commas, line terminators, the
// BOM, and `#`-comments, returning the position of the next significant
// byte (or len(body)).
func (l *Lexer) skipIgnored(pos int) int {
	body := l.body
	for pos < len(body) {
		c := body[pos]
		switch {
		case c == ' ' || c == '\t' || c == ',':
			pos++
		case c == '\n':
			pos++
		case c == '\r':
			pos++
			if pos < len(body) && body[pos] == '\n' {
				pos++
			}
		case strings.HasPrefix(body[pos:], bom):
			pos += len(bom)
		case c == '#':
			pos++
			for pos < len(body) && body[pos] != '\n' && body[pos] != '\r' {
				pos++
			}
		default:
			return pos
		}
	}
	return pos
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isNameContinue(c byte) bool {
	return isNameStart(c) || isDigit(c)
}

func (l *Lexer) lexName(start int) Token {
	body := l.body
	pos := start + 1
	for pos < len(body) && isNameContinue(body[pos]) {
		pos++
	}
	return Token{Kind: NAME, Start: start, End: pos, Value: body[start:pos]}
}

// lexNumber implements:
//
//	IntValue   : -? IntegerPart
//	IntegerPart: 0 | NonZeroDigit Digit*
//	FloatValue : IntValue ( . Digit+ )? ( [eE] [+-]? Digit+ )?
//
// with at least a fractional or exponent part present for FLOAT.
func (l *Lexer) lexNumber(start int) Token {
	body := l.body
	pos := start
	if body[pos] == '-' {
		pos++
	}
	if pos >= len(body) || !isDigit(body[pos]) {
		errors.Throw(start, "Invalid number, expected digit but got: %s", describeAt(body, pos))
	}
	if body[pos] == '0' {
		pos++
		if pos < len(body) && isDigit(body[pos]) {
			errors.Throw(start, "Invalid number, unexpected digit after 0: %s", describeAt(body, pos))
		}
	} else {
		for pos < len(body) && isDigit(body[pos]) {
			pos++
		}
	}

	isFloat := false
	if pos < len(body) && body[pos] == '.' {
		isFloat = true
		pos++
		if pos >= len(body) || !isDigit(body[pos]) {
			errors.Throw(start, "Invalid number, expected digit but got: %s", describeAt(body, pos))
		}
		for pos < len(body) && isDigit(body[pos]) {
			pos++
		}
	}

	if pos < len(body) && (body[pos] == 'e' || body[pos] == 'E') {
		isFloat = true
		pos++
		if pos < len(body) && (body[pos] == '+' || body[pos] == '-') {
			pos++
		}
		if pos >= len(body) || !isDigit(body[pos]) {
			errors.Throw(start, "Invalid number, expected digit but got: %s", describeAt(body, pos))
		}
		for pos < len(body) && isDigit(body[pos]) {
			pos++
		}
	}

	if pos < len(body) && (isNameStart(body[pos]) || body[pos] == '.') {
		errors.Throw(start, "Invalid number, expected digit but got: %s", describeAt(body, pos))
	}

	kind := INT
	if isFloat {
		kind = FLOAT
	}
	return Token{Kind: kind, Start: start, End: pos, Value: body[start:pos]}
}

func describeAt(body string, pos int) string {
	if pos >= len(body) {
		return "<EOF>"
	}
	r, _ := utf8.DecodeRuneInString(body[pos:])
	return string(r)
}

// lexString implements the escape handling from spec.md §4.1: `"`, `\`,
// `/`, `\b`, `\f`, `\n`, `\r`, `\t`, and `\uXXXX`. Bare control characters
// other than tab, and line terminators, inside the string are errors, as is reaching EOF
// or a line terminator before the closing quote.
func (l *Lexer) lexString(start int) Token {
	body := l.body
	pos := start + 1
	var value strings.Builder

	for {
		if pos >= len(body) {
			errors.Throw(start, "Unterminated string.")
		}
		c := body[pos]
		if c == '"' {
			pos++
			break
		}
		if c == '\n' || c == '\r' {
			errors.Throw(start, "Unterminated string.")
		}
		if c < 0x20 && c != '\t' {
			errors.Throw(pos, "Invalid character within String: %q", string(rune(c)))
		}
		if c != '\\' {
			r, size := utf8.DecodeRuneInString(body[pos:])
			value.WriteRune(r)
			pos += size
			continue
		}

		// escape sequence
		escPos := pos
		pos++
		if pos >= len(body) {
			errors.Throw(start, "Unterminated string.")
		}
		switch body[pos] {
		case '"':
			value.WriteByte('"')
			pos++
		case '\\':
			value.WriteByte('\\')
			pos++
		case '/':
			value.WriteByte('/')
			pos++
		case 'b':
			value.WriteByte('\b')
			pos++
		case 'f':
			value.WriteByte('\f')
			pos++
		case 'n':
			value.WriteByte('\n')
			pos++
		case 'r':
			value.WriteByte('\r')
			pos++
		case 't':
			value.WriteByte('\t')
			pos++
		case 'u':
			pos++
			code, ok := readHex4(body, pos)
			if !ok {
				errors.Throw(escPos, "Invalid character escape sequence: \\u%s", safeSlice(body, pos, pos+4))
			}
			value.WriteRune(rune(code))
			pos += 4
		default:
			errors.Throw(escPos, "Invalid character escape sequence: \\%s", describeAt(body, pos))
		}
	}

	return Token{Kind: STRING, Start: start, End: pos, Value: value.String()}
}

func safeSlice(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(s) {
		end = len(s)
	}
	if start > end {
		return ""
	}
	return s[start:end]
}

func readHex4(body string, pos int) (int, bool) {
	if pos+4 > len(body) {
		return 0, false
	}
	code := 0
	for i := 0; i < 4; i++ {
		c := body[pos+i]
		var d int
		switch {
		case c >= '0' && c <= '9':
			d = int(c - '0')
		case c >= 'a' && c <= 'f':
			d = int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = int(c-'A') + 10
		default:
			return 0, false
		}
		code = code<<4 | d
	}
	return code, true
}
