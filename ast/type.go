package ast

import "fmt"

// Type is the input-type grammar: a NamedType, a ListType wrapping
// another Type, or a NonNullType wrapping a NamedType or ListType.
// NonNullType never wraps another NonNullType — `!` applies at most
// once per type, so `[T]!` and `[T!]!` are both representable but `T!!`
// is not.
type Type interface {
	Node
	String() string
	isType()
}

var (
	_ Type = (*NamedType)(nil)
	_ Type = (*ListType)(nil)
	_ Type = (*NonNullType)(nil)
)

// NamedType is a bare type reference by name, e.g. `String`.
type NamedType struct {
	Name *Name
	Loc  *Loc
}

func (n *NamedType) Kind() string  { return KindNamedType }
func (n *NamedType) GetLoc() *Loc  { return n.Loc }
func (n *NamedType) String() string { return n.Name.Value }
func (n *NamedType) isType()       {}

// ListType is `[ Type ]`.
type ListType struct {
	Type Type
	Loc  *Loc
}

func (l *ListType) Kind() string   { return KindListType }
func (l *ListType) GetLoc() *Loc   { return l.Loc }
func (l *ListType) String() string { return fmt.Sprintf("[%s]", l.Type.String()) }
func (l *ListType) isType()        {}

// NonNullType is `NamedType !` or `ListType !`.
type NonNullType struct {
	Type Type
	Loc  *Loc
}

func (n *NonNullType) Kind() string   { return KindNonNullType }
func (n *NonNullType) GetLoc() *Loc   { return n.Loc }
func (n *NonNullType) String() string { return fmt.Sprintf("%s!", n.Type.String()) }
func (n *NonNullType) isType()        {}
