package ast

// Value is the literal-or-variable grammar accepted in argument and
// default-value position. Outside a constant context (a VariableDefinition
// default, or anywhere nested under one), a Value may also be a
// Variable; the parser enforces that distinction, not the AST.
type Value interface {
	Node
	GetValue() interface{}
	isValue()
}

var (
	_ Value = (*Variable)(nil)
	_ Value = (*IntValue)(nil)
	_ Value = (*FloatValue)(nil)
	_ Value = (*StringValue)(nil)
	_ Value = (*NullValue)(nil)
	_ Value = (*BooleanValue)(nil)
	_ Value = (*EnumValue)(nil)
	_ Value = (*ListValue)(nil)
	_ Value = (*ObjectValue)(nil)
)

// IntValue keeps its original lexeme (e.g. "-123") rather than a parsed
// int64, so that the source text round-trips losslessly; interpreting
// it numerically is the caller's concern (spec.md §3).
type IntValue struct {
	Value string
	Loc   *Loc
}

func (i *IntValue) Kind() string          { return KindIntValue }
func (i *IntValue) GetLoc() *Loc          { return i.Loc }
func (i *IntValue) GetValue() interface{} { return i.Value }
func (i *IntValue) isValue()              {}

// FloatValue keeps its original lexeme for the same reason as IntValue.
type FloatValue struct {
	Value string
	Loc   *Loc
}

func (f *FloatValue) Kind() string          { return KindFloatValue }
func (f *FloatValue) GetLoc() *Loc          { return f.Loc }
func (f *FloatValue) GetValue() interface{} { return f.Value }
func (f *FloatValue) isValue()              {}

// StringValue carries the decoded (unescaped) text of a string literal.
type StringValue struct {
	Value string
	Loc   *Loc
}

func (s *StringValue) Kind() string          { return KindStringValue }
func (s *StringValue) GetLoc() *Loc          { return s.Loc }
func (s *StringValue) GetValue() interface{} { return s.Value }
func (s *StringValue) isValue()              {}

// BooleanValue is one of the keywords `true` or `false` in value
// position.
type BooleanValue struct {
	Value bool
	Loc   *Loc
}

func (b *BooleanValue) Kind() string          { return KindBooleanValue }
func (b *BooleanValue) GetLoc() *Loc          { return b.Loc }
func (b *BooleanValue) GetValue() interface{} { return b.Value }
func (b *BooleanValue) isValue()              {}

// NullValue is the keyword `null` in value position. It is distinct
// from simply omitting a value: `field(arg: null)` explicitly provides
// null, while `field` provides nothing at all.
type NullValue struct {
	Loc *Loc
}

func (n *NullValue) Kind() string          { return KindNullValue }
func (n *NullValue) GetLoc() *Loc          { return n.Loc }
func (n *NullValue) GetValue() interface{} { return nil }
func (n *NullValue) isValue()              {}

// EnumValue is an unquoted Name in value position that isn't one of the
// reserved words true/false/null/on.
type EnumValue struct {
	Value string
	Loc   *Loc
}

func (e *EnumValue) Kind() string          { return KindEnumValue }
func (e *EnumValue) GetLoc() *Loc          { return e.Loc }
func (e *EnumValue) GetValue() interface{} { return e.Value }
func (e *EnumValue) isValue()              {}

// ListValue is `[ Value* ]`. Commas are optional throughout GraphQL, so
// repeated or trailing commas never change the Values slice.
type ListValue struct {
	Values []Value
	Loc    *Loc
}

func (l *ListValue) Kind() string          { return KindListValue }
func (l *ListValue) GetLoc() *Loc          { return l.Loc }
func (l *ListValue) GetValue() interface{} { return l.Values }
func (l *ListValue) isValue()              {}

// ObjectValue is `{ ObjectField* }`: an unordered set of keyed values.
// Fields are kept in the order they were written (two ObjectValues
// differing only in field order are semantically, not structurally,
// equal).
type ObjectValue struct {
	Fields []*ObjectField
	Loc    *Loc
}

func (o *ObjectValue) Kind() string          { return KindObjectValue }
func (o *ObjectValue) GetLoc() *Loc          { return o.Loc }
func (o *ObjectValue) GetValue() interface{} { return o.Fields }
func (o *ObjectValue) isValue()              {}

// ObjectField is one `Name : Value` entry of an ObjectValue.
type ObjectField struct {
	Name  *Name
	Value Value
	Loc   *Loc
}

func (o *ObjectField) Kind() string { return KindObjectField }
func (o *ObjectField) GetLoc() *Loc { return o.Loc }
