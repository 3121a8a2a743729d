package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shyptr/gqlparse/source"
)

func TestGraphQLError_Error(t *testing.T) {
	t.Run("with no location uses the graphql: prefix", func(t *testing.T) {
		err := New("Must provide Source. Received: undefined.")
		assert.Equal(t, "graphql: Must provide Source. Received: undefined.", err.Error())
	})

	t.Run("with a location renders Syntax Error with source name", func(t *testing.T) {
		src := source.New("{", source.WithName("MyQuery.graphql"))
		err := NewSyntaxError(src, 1, "Expected Name, found EOF")
		assert.Equal(t, "Syntax Error MyQuery.graphql (1:2) Expected Name, found EOF", err.Error())
	})

	t.Run("falls back to the default source name", func(t *testing.T) {
		src := source.New("{")
		err := NewSyntaxError(src, 1, "Expected Name, found EOF")
		assert.Equal(t, "Syntax Error GraphQL (1:2) Expected Name, found EOF", err.Error())
	})

	t.Run("nil receiver", func(t *testing.T) {
		var err *GraphQLError
		assert.Equal(t, "<nil>", err.Error())
	})
}

func TestNewSyntaxError_locationResolution(t *testing.T) {
	src := source.New("line one\nline two\nline three")
	// "line one\n" is 9 bytes; position 9 is the start of "line two".
	err := NewSyntaxError(src, 9, "boom")
	require.Len(t, err.Locations, 1)
	assert.Equal(t, Location{Line: 2, Column: 1}, err.Locations[0])
}

func TestNewSyntaxError_locationOffset(t *testing.T) {
	src := source.New("field", source.WithLocationOffset(source.LocationOffset{Line: 5, Column: 10}))
	err := NewSyntaxError(src, 0, "boom")
	require.Len(t, err.Locations, 1)
	// first physical line absorbs both line and column offsets.
	assert.Equal(t, Location{Line: 5, Column: 10}, err.Locations[0])
}

func TestNewSyntaxError_locationOffsetSecondLine(t *testing.T) {
	src := source.New("one\ntwo", source.WithLocationOffset(source.LocationOffset{Line: 5, Column: 10}))
	err := NewSyntaxError(src, 4, "boom")
	require.Len(t, err.Locations, 1)
	// only the first physical line absorbs the column offset.
	assert.Equal(t, Location{Line: 6, Column: 1}, err.Locations[0])
}

func TestGraphQLError_Description(t *testing.T) {
	src := source.New("{\n  field\n}")
	// byte 4 is the "f" of "field", column 3 of line 2.
	err := NewSyntaxError(src, 4, "Expected Name, found }")
	desc := err.Description()
	assert.Contains(t, desc, "Syntax Error GraphQL (2:3)")
	assert.Contains(t, desc, "1: {")
	assert.Contains(t, desc, "2:   field")
	assert.Contains(t, desc, "3: }")
	assert.Contains(t, desc, "^")
}

func TestGraphQLError_DescriptionWithoutSource(t *testing.T) {
	err := New("Must provide Source. Received: undefined.")
	assert.Equal(t, err.Error(), err.Description())
}

func TestLocation_Before(t *testing.T) {
	assert.True(t, Location{Line: 1, Column: 1}.Before(Location{Line: 1, Column: 2}))
	assert.True(t, Location{Line: 1, Column: 5}.Before(Location{Line: 2, Column: 1}))
	assert.False(t, Location{Line: 2, Column: 1}.Before(Location{Line: 1, Column: 5}))
	assert.False(t, Location{Line: 1, Column: 1}.Before(Location{Line: 1, Column: 1}))
}

func TestMultiError_Error(t *testing.T) {
	m := MultiError{
		New("first"),
		New("second"),
	}
	assert.Equal(t, "graphql: first\ngraphql: second\n", m.Error())
}

func TestCatch_recoversThrow(t *testing.T) {
	src := source.New("abc")
	err := Catch(src, func() {
		Throw(1, "boom %d", 42)
	})
	require.NotNil(t, err)
	assert.Equal(t, "boom 42", err.Message)
	assert.Equal(t, []int{1}, err.Positions)
}

func TestCatch_returnsNilOnSuccess(t *testing.T) {
	src := source.New("abc")
	err := Catch(src, func() {})
	assert.Nil(t, err)
}

func TestCatch_rePanicsOtherValues(t *testing.T) {
	src := source.New("abc")
	assert.Panics(t, func() {
		Catch(src, func() {
			panic("not a syntax error")
		})
	})
}
