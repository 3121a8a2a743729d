package ast

// undefinedType is a zero-size, unexported type, so it cannot be
// instantiated outside this package; the only value of it this package
// exposes is the Undefined sentinel below.
type undefinedType struct{}

// Undefined denotes "no default value was provided" as distinct from an
// explicit NullValue default. The grammar itself never produces it — a
// VariableDefinition.DefaultValue is simply nil when no `= Value`
// appeared — but downstream tooling that needs to tell "not present" and
// "present and nil" apart (spec.md §9) can use this value rather than
// inventing its own sentinel per caller. It does not implement Value, so
// it cannot be stored in a VariableDefinition.DefaultValue field.
var Undefined = undefinedType{}
