package ast

// Name is a GraphQL identifier: [_A-Za-z][_A-Za-z0-9]*. It appears in
// many positions (field names, aliases, argument names, variable names,
// directive names, enum values, type names) and is otherwise just a
// string — the grammar position it occupies, not the Name node itself,
// determines what it means.
type Name struct {
	Value string
	Loc   *Loc
}

func (n *Name) Kind() string { return KindName }
func (n *Name) GetLoc() *Loc { return n.Loc }
