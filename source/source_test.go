package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_defaults(t *testing.T) {
	s := New("{ field }")
	assert.Equal(t, "{ field }", s.Body)
	assert.Equal(t, DefaultName, s.Name)
	assert.Equal(t, LocationOffset{Line: 1, Column: 1}, s.LocationOffset)
}

func TestNew_withOptions(t *testing.T) {
	s := New("{ field }",
		WithName("MyQuery.graphql"),
		WithLocationOffset(LocationOffset{Line: 3, Column: 5}),
	)
	assert.Equal(t, "MyQuery.graphql", s.Name)
	assert.Equal(t, LocationOffset{Line: 3, Column: 5}, s.LocationOffset)
}
