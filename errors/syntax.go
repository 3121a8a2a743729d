package errors

import (
	"fmt"

	"github.com/shyptr/gqlparse/source"
)

// syntaxPanic is the value the lexer and parser panic with when a rule is
// violated. It is unexported: Throw and Catch are the only way to raise
// or observe one, the same way the teacher's lexer kept its syntaxError
// string type private to itself and exposed only catchSyntaxError.
type syntaxPanic struct {
	pos     int
	message string
}

// Throw aborts the current parse with a syntax error anchored at pos.
// Lexer and parser production code call this instead of threading
// (T, error) through every recursive-descent function.
func Throw(pos int, format string, args ...interface{}) {
	panic(syntaxPanic{pos: pos, message: fmt.Sprintf(format, args...)})
}

// Catch runs fn, recovering a Throw raised anywhere beneath it and
// turning it into a *GraphQLError anchored against src. Any other panic
// propagates unchanged.
func Catch(src *source.Source, fn func()) (err *GraphQLError) {
	defer func() {
		if r := recover(); r != nil {
			if sp, ok := r.(syntaxPanic); ok {
				err = NewSyntaxError(src, sp.pos, sp.message)
				return
			}
			panic(r)
		}
	}()
	fn()
	return
}
