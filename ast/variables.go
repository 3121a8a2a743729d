package ast

// A GraphQL operation can be parameterized with variables, maximizing
// query reuse and avoiding costly string building in clients at
// runtime:
//
//	query getZuckProfile($devicePicSize: Int) {
//	  user(id: 4) {
//	    profilePic(size: $devicePicSize)
//	  }
//	}
//
// Variable is the `$name` reference; VariableDefinition is the
// declaration at the top of an operation that gives it a Type and,
// optionally, a DefaultValue.
type Variable struct {
	Name *Name
	Loc  *Loc
}

func (v *Variable) Kind() string          { return KindVariable }
func (v *Variable) GetLoc() *Loc          { return v.Loc }
func (v *Variable) GetValue() interface{} { return v.Name }
func (v *Variable) isValue()              {}

// VariableDefinition is `Variable : Type DefaultValue?`. DefaultValue is
// nil when no `= Value` was written; an explicit default, including
// `= null`, is a non-nil Value. The parser never uses ast.Undefined here;
// see ast.Undefined for the sentinel downstream tooling can use if it
// needs one.
type VariableDefinition struct {
	Variable     *Variable
	Type         Type
	DefaultValue Value
	Loc          *Loc
}

func (v *VariableDefinition) Kind() string { return KindVariableDefinition }
func (v *VariableDefinition) GetLoc() *Loc { return v.Loc }
