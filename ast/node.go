// Package ast defines the GraphQL abstract syntax tree: a closed family
// of node types produced exclusively by package parser, immutable once
// built, and owned exclusively by their parent (no node is shared by two
// parents).
package ast

import (
	"fmt"

	"github.com/shyptr/gqlparse/source"
)

// Loc is a node's half-open byte range [Start, End) in Source.Body, plus
// an optional back-reference to the Source itself. A node carries a nil
// *Loc when the parser ran with the NoLocation option; Source is nil
// when it ran with NoSource.
type Loc struct {
	Start  int
	End    int
	Source *source.Source
}

func (l *Loc) String() string {
	name := source.DefaultName
	if l.Source != nil && l.Source.Name != "" {
		name = l.Source.Name
	}
	return fmt.Sprintf("<Loc start=%d end=%d source=%s>", l.Start, l.End, name)
}

// Node is implemented by every AST variant. Kind returns a stable,
// human-readable discriminator (used by diagnostics and by any consumer
// walking the tree without a type switch); GetLoc returns the node's
// location, or nil in no-location mode.
type Node interface {
	Kind() string
	GetLoc() *Loc
}

// Kind string constants, one per Node variant. These exist mostly so
// external tooling (e.g. a re-serializer) can discriminate nodes without
// importing every concrete type, matching the `Kind()`-returns-a-string
// convention the teacher's own AST used throughout internal/ast.
const (
	KindDocument            = "Document"
	KindOperationDefinition = "OperationDefinition"
	KindFragmentDefinition  = "FragmentDefinition"
	KindSelectionSet        = "SelectionSet"
	KindField               = "Field"
	KindFragmentSpread      = "FragmentSpread"
	KindInlineFragment      = "InlineFragment"
	KindArgument            = "Argument"
	KindVariable            = "Variable"
	KindVariableDefinition  = "VariableDefinition"
	KindDirective           = "Directive"
	KindNamedType           = "NamedType"
	KindListType            = "ListType"
	KindNonNullType         = "NonNullType"
	KindName                = "Name"
	KindIntValue            = "IntValue"
	KindFloatValue          = "FloatValue"
	KindStringValue         = "StringValue"
	KindBooleanValue        = "BooleanValue"
	KindNullValue           = "NullValue"
	KindEnumValue           = "EnumValue"
	KindListValue           = "ListValue"
	KindObjectValue         = "ObjectValue"
	KindObjectField         = "ObjectField"
)
