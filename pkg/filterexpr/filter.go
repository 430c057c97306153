package filterexpr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/cel-go/cel"
)

// ValueKind describes the kind of literal value a field accepts.
type ValueKind string

const (
	KindString ValueKind = "string"
	KindNumber ValueKind = "number"
)

// Op represents a comparison operation that can be pushed down to storage.
type Op string

const (
	OpEQ  Op = "=="
	OpGT  Op = ">"
	OpGTE Op = ">="
	OpLT  Op = "<"
	OpLTE Op = "<="
	OpSW  Op = "startsWith"
	OpIN  Op = "in"
)

// Field declares a filterable variable and the storage column behind it.
// A non-empty Values closes the field to those literals.
type Field struct {
	Kind   ValueKind
	Column string
	Values []string
}

// Schema aggregates filtering and ordering rules for a record type.
type Schema struct {
	Fields map[string]Field
	Order  OrderSchema
}

// Filter is a compiled boolean CEL expression over the schema's fields.
// A nil *Filter matches everything.
type Filter struct {
	source  string
	schema  Schema
	env     *cel.Env
	program cel.Program
}

// Compile type-checks expr against the schema. An empty expression yields a nil filter.
func Compile(expr string, schema Schema) (*Filter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}
	if len(schema.Fields) == 0 {
		return nil, errors.New("filter schema has no fields defined")
	}

	env, err := buildEnv(schema.Fields)
	if err != nil {
		return nil, err
	}
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("invalid filter: %w", issues.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("filter must evaluate to bool, got %s", ast.OutputType())
	}
	parsed, err := cel.AstToParsedExpr(ast)
	if err != nil {
		return nil, fmt.Errorf("failed to convert AST: %w", err)
	}
	if err := checkClosedValues(parsed.GetExpr(), schema.Fields); err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}
	program, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("build filter program: %w", err)
	}
	return &Filter{source: expr, schema: schema, env: env, program: program}, nil
}

func buildEnv(fields map[string]Field) (*cel.Env, error) {
	opts := make([]cel.EnvOption, 0, len(fields)+1)
	for name, f := range fields {
		celType, err := celTypeForKind(f.Kind)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		opts = append(opts, cel.Variable(name, celType))
	}
	opts = append(opts, cel.CrossTypeNumericComparisons(true))
	return cel.NewEnv(opts...)
}

func celTypeForKind(kind ValueKind) (*cel.Type, error) {
	switch kind {
	case KindString:
		return cel.StringType, nil
	case KindNumber:
		return cel.DoubleType, nil
	default:
		return nil, fmt.Errorf("unsupported field kind %s", kind)
	}
}

// String returns the source expression.
func (f *Filter) String() string {
	if f == nil {
		return ""
	}
	return f.source
}

// Match evaluates the filter against one record's variables. Every schema
// field must be present in vars.
func (f *Filter) Match(vars map[string]any) (bool, error) {
	if f == nil {
		return true, nil
	}
	out, _, err := f.program.Eval(vars)
	if err != nil {
		return false, fmt.Errorf("evaluate filter %q: %w", f.source, err)
	}
	matched, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("filter %q returned %T", f.source, out.Value())
	}
	return matched, nil
}

// Predicates decomposes the filter into an AND-chain of simple comparisons
// that storage can evaluate. Disjunctions and negations are rejected.
func (f *Filter) Predicates() ([]Predicate, error) {
	if f == nil {
		return nil, nil
	}
	ast, issues := f.env.Parse(f.source)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("invalid filter: %w", issues.Err())
	}
	parsed, err := cel.AstToParsedExpr(ast)
	if err != nil {
		return nil, fmt.Errorf("failed to convert AST: %w", err)
	}
	conjuncts, err := splitAnd(parsed.GetExpr())
	if err != nil {
		return nil, err
	}

	preds := make([]Predicate, 0, len(conjuncts))
	for _, expr := range conjuncts {
		pred, err := resolvePredicate(expr, f.schema.Fields)
		if err != nil {
			return nil, err
		}
		preds = append(preds, pred)
	}
	return preds, nil
}
