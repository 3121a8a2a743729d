package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shyptr/gqlparse/source"
)

func TestLoc_String(t *testing.T) {
	t.Run("with a named source", func(t *testing.T) {
		src := source.New("{ field }", source.WithName("MyQuery.graphql"))
		loc := &Loc{Start: 0, End: 9, Source: src}
		assert.Equal(t, "<Loc start=0 end=9 source=MyQuery.graphql>", loc.String())
	})

	t.Run("without a source falls back to the placeholder name", func(t *testing.T) {
		loc := &Loc{Start: 0, End: 9}
		assert.Equal(t, "<Loc start=0 end=9 source=GraphQL>", loc.String())
	})
}

func TestNode_kindsAreStable(t *testing.T) {
	cases := []struct {
		node Node
		kind string
	}{
		{&Document{}, KindDocument},
		{&OperationDefinition{}, KindOperationDefinition},
		{&FragmentDefinition{}, KindFragmentDefinition},
		{&SelectionSet{}, KindSelectionSet},
		{&Field{}, KindField},
		{&FragmentSpread{}, KindFragmentSpread},
		{&InlineFragment{}, KindInlineFragment},
		{&Argument{}, KindArgument},
		{&Variable{}, KindVariable},
		{&VariableDefinition{}, KindVariableDefinition},
		{&Directive{}, KindDirective},
		{&NamedType{}, KindNamedType},
		{&ListType{}, KindListType},
		{&NonNullType{}, KindNonNullType},
		{&Name{}, KindName},
		{&IntValue{}, KindIntValue},
		{&FloatValue{}, KindFloatValue},
		{&StringValue{}, KindStringValue},
		{&BooleanValue{}, KindBooleanValue},
		{&NullValue{}, KindNullValue},
		{&EnumValue{}, KindEnumValue},
		{&ListValue{}, KindListValue},
		{&ObjectValue{}, KindObjectValue},
		{&ObjectField{}, KindObjectField},
	}
	for _, c := range cases {
		assert.Equal(t, c.kind, c.node.Kind())
	}
}

func TestType_String(t *testing.T) {
	named := &NamedType{Name: &Name{Value: "String"}}
	list := &ListType{Type: named}
	nonNull := &NonNullType{Type: list}

	assert.Equal(t, "String", named.String())
	assert.Equal(t, "[String]", list.String())
	assert.Equal(t, "[String]!", nonNull.String())
}

func TestUndefined_isDistinctFromNil(t *testing.T) {
	var defaultValue Value
	assert.Nil(t, defaultValue)
	assert.NotEqual(t, defaultValue, Undefined)
}
