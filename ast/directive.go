package ast

// Directive is a named annotation, `@name(args)`, attached to a
// selection, operation, or fragment.
type Directive struct {
	Name      *Name
	Arguments []*Argument
	Loc       *Loc
}

func (d *Directive) Kind() string { return KindDirective }
func (d *Directive) GetLoc() *Loc { return d.Loc }
