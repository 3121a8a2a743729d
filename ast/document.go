package ast

// Document is the root of every parse: an ordered sequence of
// definitions. A Document contains only one operation, that operation
// may be written in the shorthand `{ ... }` form; with more than one
// operation present, each must be named (spec.md §3) — the parser does
// not enforce this itself, since it is a validation-time rule rather
// than a syntactic one (see DESIGN.md).
type Document struct {
	Definitions []Definition
	Loc         *Loc
}

func (d *Document) Kind() string { return KindDocument }
func (d *Document) GetLoc() *Loc { return d.Loc }

// Definition is an OperationDefinition or a FragmentDefinition. The
// schema-definition variants spec.md mentions as possibly present are
// not part of this closed family: the sampled grammar never exercises
// them (spec.md §3).
type Definition interface {
	Node
	isDefinition()
}

var (
	_ Definition = (*OperationDefinition)(nil)
	_ Definition = (*FragmentDefinition)(nil)
)

// OperationType distinguishes the three operation kinds GraphQL models.
type OperationType string

const (
	OperationTypeQuery        OperationType = "query"
	OperationTypeMutation     OperationType = "mutation"
	OperationTypeSubscription OperationType = "subscription"
)

// OperationDefinition is a query, mutation, or subscription. Name,
// VariableDefinitions and Directives are all absent in the shorthand
// `{ ... }` form.
type OperationDefinition struct {
	Operation           OperationType
	Name                *Name
	VariableDefinitions []*VariableDefinition
	Directives          []*Directive
	SelectionSet        *SelectionSet
	Loc                 *Loc
}

func (o *OperationDefinition) Kind() string { return KindOperationDefinition }
func (o *OperationDefinition) GetLoc() *Loc { return o.Loc }
func (o *OperationDefinition) isDefinition() {}

// FragmentDefinition is a named, reusable selection set with a type
// condition. Name may never be the reserved word "on" (spec.md §3).
type FragmentDefinition struct {
	Name          *Name
	TypeCondition *NamedType
	Directives    []*Directive
	SelectionSet  *SelectionSet
	Loc           *Loc
}

func (f *FragmentDefinition) Kind() string { return KindFragmentDefinition }
func (f *FragmentDefinition) GetLoc() *Loc { return f.Loc }
func (f *FragmentDefinition) isDefinition() {}
