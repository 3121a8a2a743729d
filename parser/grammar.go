package parser

import (
	"github.com/shyptr/gqlparse/ast"
	"github.com/shyptr/gqlparse/lexer"
)

// Document : Definition+
func parseDocument(p *parser) *ast.Document {
	start := p.token.Start
	var definitions []ast.Definition
	for p.token.Kind != lexer.EOF {
		definitions = append(definitions, parseDefinition(p))
	}
	if len(definitions) == 0 {
		p.unexpected()
	}
	return &ast.Document{Definitions: definitions, Loc: p.loc(start)}
}

// Definition :
//   - { ... }                              (shorthand OperationDefinition)
//   - query|mutation|subscription ...      (OperationDefinition)
//   - fragment ...                         (FragmentDefinition)
func parseDefinition(p *parser) ast.Definition {
	if p.token.Kind == lexer.BRACE_L {
		return parseOperationShorthand(p)
	}
	if p.token.Kind == lexer.NAME {
		switch p.token.Value {
		case "query", "mutation", "subscription":
			return parseOperationDefinition(p)
		case "fragment":
			return parseFragmentDefinition(p)
		}
	}
	p.unexpected()
	panic("unreachable")
}

func parseOperationShorthand(p *parser) *ast.OperationDefinition {
	start := p.token.Start
	selectionSet := parseSelectionSet(p)
	return &ast.OperationDefinition{
		Operation:    ast.OperationTypeQuery,
		SelectionSet: selectionSet,
		Loc:          p.loc(start),
	}
}

// OperationDefinition : OperationType Name? VariableDefinitions? Directives? SelectionSet
func parseOperationDefinition(p *parser) *ast.OperationDefinition {
	start := p.token.Start
	operation := ast.OperationType(p.token.Value)
	p.advance()

	var name *ast.Name
	if p.token.Kind == lexer.NAME {
		name = parseName(p)
	}
	variableDefinitions := parseVariableDefinitions(p)
	directives := parseDirectives(p)
	selectionSet := parseSelectionSet(p)
	return &ast.OperationDefinition{
		Operation:           operation,
		Name:                name,
		VariableDefinitions: variableDefinitions,
		Directives:          directives,
		SelectionSet:        selectionSet,
		Loc:                 p.loc(start),
	}
}

// VariableDefinitions : ( VariableDefinition+ )
func parseVariableDefinitions(p *parser) []*ast.VariableDefinition {
	if p.token.Kind != lexer.PAREN_L {
		return nil
	}
	p.advance()
	defs := []*ast.VariableDefinition{parseVariableDefinition(p)}
	for p.token.Kind != lexer.PAREN_R {
		defs = append(defs, parseVariableDefinition(p))
	}
	p.expect(lexer.PAREN_R)
	return defs
}

// VariableDefinition : Variable : Type DefaultValue?
func parseVariableDefinition(p *parser) *ast.VariableDefinition {
	start := p.token.Start
	variable := parseVariable(p)
	p.expect(lexer.COLON)
	t := parseType(p)
	var defaultValue ast.Value
	if p.token.Kind == lexer.EQUALS {
		p.advance()
		defaultValue = parseValueLiteral(p, true)
	}
	return &ast.VariableDefinition{
		Variable:     variable,
		Type:         t,
		DefaultValue: defaultValue,
		Loc:          p.loc(start),
	}
}

// Variable : $ Name
func parseVariable(p *parser) *ast.Variable {
	start := p.token.Start
	p.expect(lexer.DOLLAR)
	name := parseName(p)
	return &ast.Variable{Name: name, Loc: p.loc(start)}
}

// Type :
//   - NamedType
//   - [ Type ]       (ListType)
//   - Type !         (NonNullType; applies once, to a NamedType or ListType)
func parseType(p *parser) ast.Type {
	start := p.token.Start
	var t ast.Type
	if p.token.Kind == lexer.BRACKET_L {
		p.advance()
		inner := parseType(p)
		p.expect(lexer.BRACKET_R)
		t = &ast.ListType{Type: inner, Loc: p.loc(start)}
	} else {
		t = parseNamedType(p)
	}
	if p.token.Kind == lexer.BANG {
		p.advance()
		return &ast.NonNullType{Type: t, Loc: p.loc(start)}
	}
	return t
}

func parseNamedType(p *parser) *ast.NamedType {
	start := p.token.Start
	name := parseName(p)
	return &ast.NamedType{Name: name, Loc: p.loc(start)}
}

func parseName(p *parser) *ast.Name {
	start := p.token.Start
	tok := p.expect(lexer.NAME)
	return &ast.Name{Value: tok.Value, Loc: p.loc(start)}
}

// SelectionSet : { Selection+ }
func parseSelectionSet(p *parser) *ast.SelectionSet {
	start := p.token.Start
	p.expect(lexer.BRACE_L)
	selections := []ast.Selection{parseSelection(p)}
	for p.token.Kind != lexer.BRACE_R {
		selections = append(selections, parseSelection(p))
	}
	p.expect(lexer.BRACE_R)
	return &ast.SelectionSet{Selections: selections, Loc: p.loc(start)}
}

// Selection : Field | FragmentSpread | InlineFragment
func parseSelection(p *parser) ast.Selection {
	if p.token.Kind == lexer.SPREAD {
		return parseFragment(p)
	}
	return parseField(p)
}

// Field : Alias? Name Arguments? Directives? SelectionSet?
// Alias : Name :
func parseField(p *parser) *ast.Field {
	start := p.token.Start
	nameOrAlias := parseName(p)

	var alias, name *ast.Name
	if p.token.Kind == lexer.COLON {
		p.advance()
		alias = nameOrAlias
		name = parseName(p)
	} else {
		name = nameOrAlias
	}

	arguments := parseArguments(p)
	directives := parseDirectives(p)
	var selectionSet *ast.SelectionSet
	if p.token.Kind == lexer.BRACE_L {
		selectionSet = parseSelectionSet(p)
	}
	return &ast.Field{
		Alias:        alias,
		Name:         name,
		Arguments:    arguments,
		Directives:   directives,
		SelectionSet: selectionSet,
		Loc:          p.loc(start),
	}
}

// Arguments : ( Argument+ )
func parseArguments(p *parser) []*ast.Argument {
	if p.token.Kind != lexer.PAREN_L {
		return nil
	}
	p.advance()
	args := []*ast.Argument{parseArgument(p)}
	for p.token.Kind != lexer.PAREN_R {
		args = append(args, parseArgument(p))
	}
	p.expect(lexer.PAREN_R)
	return args
}

// Argument : Name : Value
func parseArgument(p *parser) *ast.Argument {
	start := p.token.Start
	name := parseName(p)
	p.expect(lexer.COLON)
	value := parseValueLiteral(p, false)
	return &ast.Argument{Name: name, Value: value, Loc: p.loc(start)}
}

// Corresponds to both FragmentSpread and InlineFragment:
//
//	FragmentSpread : ... FragmentName Directives?
//	InlineFragment : ... TypeCondition? Directives? SelectionSet
//
// FragmentName is any Name other than "on"; a bare "on" always begins a
// TypeCondition, never a fragment name.
func parseFragment(p *parser) ast.Selection {
	start := p.token.Start
	p.expect(lexer.SPREAD)

	if p.token.Kind == lexer.NAME && p.token.Value != "on" {
		name := parseName(p)
		directives := parseDirectives(p)
		return &ast.FragmentSpread{Name: name, Directives: directives, Loc: p.loc(start)}
	}

	var typeCondition *ast.NamedType
	if p.token.Kind == lexer.NAME {
		p.advance() // "on"
		typeCondition = parseNamedType(p)
	}
	directives := parseDirectives(p)
	selectionSet := parseSelectionSet(p)
	return &ast.InlineFragment{
		TypeCondition: typeCondition,
		Directives:    directives,
		SelectionSet:  selectionSet,
		Loc:           p.loc(start),
	}
}

// FragmentDefinition : fragment FragmentName on TypeCondition Directives? SelectionSet
// TypeCondition : NamedType
func parseFragmentDefinition(p *parser) *ast.FragmentDefinition {
	start := p.token.Start
	p.advance() // "fragment"
	name := parseFragmentName(p)
	p.expectKeyword("on")
	typeCondition := parseNamedType(p)
	directives := parseDirectives(p)
	selectionSet := parseSelectionSet(p)
	return &ast.FragmentDefinition{
		Name:          name,
		TypeCondition: typeCondition,
		Directives:    directives,
		SelectionSet:  selectionSet,
		Loc:           p.loc(start),
	}
}

func parseFragmentName(p *parser) *ast.Name {
	if p.token.Kind == lexer.NAME && p.token.Value == "on" {
		p.unexpected()
	}
	return parseName(p)
}

// Directives : Directive*
func parseDirectives(p *parser) []*ast.Directive {
	var directives []*ast.Directive
	for p.token.Kind == lexer.AT {
		directives = append(directives, parseDirective(p))
	}
	return directives
}

// Directive : @ Name Arguments?
func parseDirective(p *parser) *ast.Directive {
	start := p.token.Start
	p.expect(lexer.AT)
	name := parseName(p)
	arguments := parseArguments(p)
	return &ast.Directive{Name: name, Arguments: arguments, Loc: p.loc(start)}
}

// Value[Const] :
//   - [~Const] Variable
//   - IntValue | FloatValue | StringValue
//   - true | false | null | EnumValue
//   - ListValue[?Const] | ObjectValue[?Const]
//
// constOnly selects the Const production: Variable is rejected there,
// and that rejection threads down into nested ListValue/ObjectValue.
func parseValueLiteral(p *parser, constOnly bool) ast.Value {
	start := p.token.Start
	switch p.token.Kind {
	case lexer.BRACKET_L:
		return parseList(p, constOnly)
	case lexer.BRACE_L:
		return parseObject(p, constOnly)
	case lexer.DOLLAR:
		if constOnly {
			p.unexpected()
		}
		return parseVariable(p)
	case lexer.INT:
		tok := p.token
		p.advance()
		return &ast.IntValue{Value: tok.Value, Loc: p.loc(start)}
	case lexer.FLOAT:
		tok := p.token
		p.advance()
		return &ast.FloatValue{Value: tok.Value, Loc: p.loc(start)}
	case lexer.STRING:
		tok := p.token
		p.advance()
		return &ast.StringValue{Value: tok.Value, Loc: p.loc(start)}
	case lexer.NAME:
		switch p.token.Value {
		case "true", "false":
			value := p.token.Value == "true"
			p.advance()
			return &ast.BooleanValue{Value: value, Loc: p.loc(start)}
		case "null":
			p.advance()
			return &ast.NullValue{Loc: p.loc(start)}
		case "on":
			p.unexpected()
		default:
			value := p.token.Value
			p.advance()
			return &ast.EnumValue{Value: value, Loc: p.loc(start)}
		}
	}
	p.unexpected()
	panic("unreachable")
}

// ListValue[Const] : [ ] | [ Value[?Const]+ ]
func parseList(p *parser, constOnly bool) *ast.ListValue {
	start := p.token.Start
	p.expect(lexer.BRACKET_L)
	var values []ast.Value
	for p.token.Kind != lexer.BRACKET_R {
		values = append(values, parseValueLiteral(p, constOnly))
	}
	p.expect(lexer.BRACKET_R)
	return &ast.ListValue{Values: values, Loc: p.loc(start)}
}

// ObjectValue[Const] : { } | { ObjectField[?Const]+ }
func parseObject(p *parser, constOnly bool) *ast.ObjectValue {
	start := p.token.Start
	p.expect(lexer.BRACE_L)
	var fields []*ast.ObjectField
	for p.token.Kind != lexer.BRACE_R {
		fields = append(fields, parseObjectField(p, constOnly))
	}
	p.expect(lexer.BRACE_R)
	return &ast.ObjectValue{Fields: fields, Loc: p.loc(start)}
}

// ObjectField[Const] : Name : Value[?Const]
func parseObjectField(p *parser, constOnly bool) *ast.ObjectField {
	start := p.token.Start
	name := parseName(p)
	p.expect(lexer.COLON)
	value := parseValueLiteral(p, constOnly)
	return &ast.ObjectField{Name: name, Value: value, Loc: p.loc(start)}
}
