package filterexpr

import (
	"errors"
	"fmt"
	"slices"

	exprpb "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// Predicate is one `field op literal` comparison of an AND-chain, already
// resolved to its storage column. Value is a string, a float64 or a []string
// for OpIN.
type Predicate struct {
	Field  string
	Column string
	Op     Op
	Value  any
}

// callOps maps CEL call names to the comparisons storage understands.
var callOps = map[string]Op{
	"_==_":       OpEQ,
	"_>_":        OpGT,
	"_>=_":       OpGTE,
	"_<_":        OpLT,
	"_<=_":       OpLTE,
	"@in":        OpIN,
	"startsWith": OpSW,
}

// splitAnd flattens nested && calls into their operands, left to right.
func splitAnd(root *exprpb.Expr) ([]*exprpb.Expr, error) {
	if root == nil {
		return nil, errors.New("empty expression")
	}
	var (
		out   []*exprpb.Expr
		stack = []*exprpb.Expr{root}
	)
	for len(stack) > 0 {
		expr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		call := expr.GetCallExpr()
		switch {
		case call == nil:
			out = append(out, expr)
		case call.Function == "_&&_":
			if call.Target != nil || len(call.Args) < 2 {
				return nil, errors.New("logical AND must have at least two operands")
			}
			for i := len(call.Args) - 1; i >= 0; i-- {
				stack = append(stack, call.Args[i])
			}
		case call.Function == "_||_", call.Function == "_?_:_", call.Function == "!_":
			return nil, fmt.Errorf("logical operator %q cannot be pushed down; only AND is allowed", call.Function)
		default:
			out = append(out, expr)
		}
	}
	return out, nil
}

// resolvePredicate turns one conjunct into a comparison on a declared field.
func resolvePredicate(expr *exprpb.Expr, fields map[string]Field) (Predicate, error) {
	call := expr.GetCallExpr()
	if call == nil {
		return Predicate{}, errors.New("unsupported expression; expected comparison or function call")
	}
	op, ok := callOps[call.Function]
	if !ok {
		return Predicate{}, fmt.Errorf("function %q is not supported", call.Function)
	}

	subject, operand, err := comparisonOperands(call, op)
	if err != nil {
		return Predicate{}, err
	}
	name, err := identName(subject)
	if err != nil {
		return Predicate{}, err
	}
	field, ok := fields[name]
	if !ok {
		return Predicate{}, fmt.Errorf("field %q is not allowed", name)
	}
	value, err := literalValue(operand)
	if err != nil {
		return Predicate{}, fmt.Errorf("field %q: %w", name, err)
	}
	if err := field.accepts(op, value); err != nil {
		return Predicate{}, fmt.Errorf("field %q: %w", name, err)
	}
	return Predicate{Field: name, Column: field.Column, Op: op, Value: value}, nil
}

// comparisonOperands returns the field side and the literal side of a call.
// startsWith is a receiver call; every other operator takes two arguments.
func comparisonOperands(call *exprpb.Expr_Call, op Op) (subject, operand *exprpb.Expr, err error) {
	if op == OpSW {
		if call.Target == nil || len(call.Args) != 1 {
			return nil, nil, errors.New("startsWith must be called on a field with one argument")
		}
		return call.Target, call.Args[0], nil
	}
	if call.Target != nil || len(call.Args) != 2 {
		return nil, nil, fmt.Errorf("operator %q expects two operands", string(op))
	}
	return call.Args[0], call.Args[1], nil
}

func identName(expr *exprpb.Expr) (string, error) {
	ident := expr.GetIdentExpr()
	if ident == nil {
		return "", errors.New("left-hand side must be a card field")
	}
	return ident.GetName(), nil
}

// literalValue decodes a constant or a list of string constants. Numbers are
// widened to float64 since every numeric card field is a frequency.
func literalValue(expr *exprpb.Expr) (any, error) {
	if constant := expr.GetConstExpr(); constant != nil {
		switch kind := constant.ConstantKind.(type) {
		case *exprpb.Constant_StringValue:
			return kind.StringValue, nil
		case *exprpb.Constant_Int64Value:
			return float64(kind.Int64Value), nil
		case *exprpb.Constant_Uint64Value:
			return float64(kind.Uint64Value), nil
		case *exprpb.Constant_DoubleValue:
			return kind.DoubleValue, nil
		default:
			return nil, fmt.Errorf("literal type %T is not supported", constant.ConstantKind)
		}
	}

	list := expr.GetListExpr()
	if list == nil {
		return nil, errors.New("right-hand side must be a literal or list literal")
	}
	values := make([]string, 0, len(list.GetElements()))
	for i, elem := range list.GetElements() {
		str, ok := elem.GetConstExpr().GetConstantKind().(*exprpb.Constant_StringValue)
		if !ok {
			return nil, fmt.Errorf("list literal element %d must be a string", i)
		}
		values = append(values, str.StringValue)
	}
	return values, nil
}

// accepts checks an operator and its literal against the field's kind and,
// for closed fields, against the declared values.
func (f Field) accepts(op Op, value any) error {
	switch f.Kind {
	case KindString:
		switch op {
		case OpIN:
			list, ok := value.([]string)
			if !ok {
				return fmt.Errorf("expected list of %s literals", f.Kind)
			}
			if len(list) == 0 {
				return errors.New("list literal must not be empty")
			}
			for _, v := range list {
				if err := f.known(v); err != nil {
					return err
				}
			}
		case OpEQ:
			str, ok := value.(string)
			if !ok {
				return fmt.Errorf("expected %s literal", f.Kind)
			}
			return f.known(str)
		case OpSW:
			if _, ok := value.(string); !ok {
				return fmt.Errorf("expected %s literal", f.Kind)
			}
		default:
			return fmt.Errorf("operator %q is not allowed on %s fields", string(op), f.Kind)
		}
	case KindNumber:
		if op == OpSW || op == OpIN {
			return fmt.Errorf("operator %q is not allowed on %s fields", string(op), f.Kind)
		}
		if _, ok := value.(float64); !ok {
			return fmt.Errorf("expected %s literal", f.Kind)
		}
	default:
		return fmt.Errorf("unsupported field kind %s", f.Kind)
	}
	return nil
}

// known rejects a value outside a closed field's value set.
func (f Field) known(value string) error {
	if len(f.Values) == 0 || slices.Contains(f.Values, value) {
		return nil
	}
	return fmt.Errorf("unknown value %q, expected one of %v", value, f.Values)
}

// checkClosedValues walks the whole expression, including branches that are
// never pushed down, and rejects equality or membership tests of closed
// fields against values no card can carry.
func checkClosedValues(expr *exprpb.Expr, fields map[string]Field) error {
	call := expr.GetCallExpr()
	if call == nil {
		return nil
	}
	if (call.Function == "_==_" || call.Function == "@in") && len(call.Args) == 2 {
		if name, err := identName(call.Args[0]); err == nil {
			if field, ok := fields[name]; ok && len(field.Values) > 0 {
				if value, err := literalValue(call.Args[1]); err == nil {
					if err := field.accepts(callOps[call.Function], value); err != nil {
						return fmt.Errorf("field %q: %w", name, err)
					}
				}
			}
		}
	}
	for _, arg := range slices.Concat([]*exprpb.Expr{call.Target}, call.Args) {
		if arg == nil {
			continue
		}
		if err := checkClosedValues(arg, fields); err != nil {
			return err
		}
	}
	return nil
}
