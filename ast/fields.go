package ast

// A selection set is primarily composed of fields. A field describes
// one discrete piece of information available to request within a
// selection set; it may itself carry a nested SelectionSet, allowing
// deeply nested requests:
//
//	{
//	  me {
//	    id
//	    friends {
//	      name
//	    }
//	  }
//	}
//
// Alias, when present, renames the field in the response; Name is
// always the field actually being requested from the schema.
type Field struct {
	Alias        *Name
	Name         *Name
	Arguments    []*Argument
	Directives   []*Directive
	SelectionSet *SelectionSet
	Loc          *Loc
}

func (f *Field) Kind() string { return KindField }
func (f *Field) GetLoc() *Loc { return f.Loc }
func (f *Field) isSelection() {}
