package ast

// An operation selects the set of information it needs, and will
// receive exactly that information and nothing more, avoiding
// over-fetching and under-fetching data:
//
//	{
//	  id
//	  firstName
//	  lastName
//	}
//
// The id, firstName, and lastName fields above form a SelectionSet.
// Selection sets may also contain fragment references.
type SelectionSet struct {
	Selections []Selection
	Loc        *Loc
}

func (s *SelectionSet) Kind() string { return KindSelectionSet }
func (s *SelectionSet) GetLoc() *Loc { return s.Loc }

// Selection is a Field, FragmentSpread, or InlineFragment — the three
// things a SelectionSet may be built from.
type Selection interface {
	Node
	isSelection()
}

var (
	_ Selection = (*Field)(nil)
	_ Selection = (*FragmentSpread)(nil)
	_ Selection = (*InlineFragment)(nil)
)

// FragmentSpread is `...Name Directives?`: a reference to a named
// fragment defined elsewhere in the document.
type FragmentSpread struct {
	Name       *Name
	Directives []*Directive
	Loc        *Loc
}

func (f *FragmentSpread) Kind() string { return KindFragmentSpread }
func (f *FragmentSpread) GetLoc() *Loc { return f.Loc }
func (f *FragmentSpread) isSelection() {}

// InlineFragment is `...TypeCondition? Directives? SelectionSet`: an
// anonymous, optionally type-conditioned selection-set branch.
type InlineFragment struct {
	TypeCondition *NamedType
	Directives    []*Directive
	SelectionSet  *SelectionSet
	Loc           *Loc
}

func (f *InlineFragment) Kind() string { return KindInlineFragment }
func (f *InlineFragment) GetLoc() *Loc { return f.Loc }
func (f *InlineFragment) isSelection() {}
