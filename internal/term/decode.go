package term

import (
	"fmt"
	"math/big"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// DecodeError reports the first raw token that could not be decoded as a
// constant literal expression.
type DecodeError struct {
	Token  string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("argument %q is not a constant expression: %s", e.Token, e.Reason)
}

// Decode turns a sequence of raw argument tokens into decoded values,
// preserving order. Tokens are decoded independently, left to right; the
// first failure aborts the whole decode and no partial list is returned.
func Decode(tokens []string) (List, error) {
	args := make(List, 0, len(tokens))
	for _, tok := range tokens {
		v, err := DecodeToken(tok)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return args, nil
}

// DecodeToken decodes a single raw token.
func DecodeToken(token string) (Value, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(token), "argument", hcl.InitialPos)
	if diags.HasErrors() {
		return nil, &DecodeError{Token: token, Reason: diags.Error()}
	}
	v, err := fold(expr)
	if err != nil {
		return nil, &DecodeError{Token: token, Reason: err.Error()}
	}
	return v, nil
}

// fold walks a parsed expression and builds the corresponding Value. It only
// accepts constructs that are constants at parse time; everything else is
// rejected by name so the diagnostic tells the operator what was wrong, not
// just that something was.
func fold(expr hclsyntax.Expression) (Value, error) {
	switch e := expr.(type) {
	case *hclsyntax.LiteralValueExpr:
		return fromCty(e.Val)

	case *hclsyntax.TemplateExpr:
		if !e.IsStringLiteral() {
			return nil, fmt.Errorf("string template with interpolation")
		}
		v, diags := e.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("string literal: %s", diags.Error())
		}
		return String(v.AsString()), nil

	case *hclsyntax.ScopeTraversalExpr:
		// A bare single-step identifier is a symbol, at any nesting depth.
		// Anything with further traversal steps is a variable reference.
		if len(e.Traversal) == 1 {
			if root, ok := e.Traversal[0].(hcl.TraverseRoot); ok {
				return Symbol(root.Name), nil
			}
		}
		return nil, fmt.Errorf("variable reference rooted at %q", e.Traversal.RootName())

	case *hclsyntax.UnaryOpExpr:
		if e.Op == hclsyntax.OpNegate {
			if lit, ok := e.Val.(*hclsyntax.LiteralValueExpr); ok && lit.Val.Type() == cty.Number {
				v, diags := e.Value(nil)
				if !diags.HasErrors() {
					return fromCty(v)
				}
			}
		}
		return nil, fmt.Errorf("unary operation on a non-literal operand")

	case *hclsyntax.TupleConsExpr:
		list := make(List, 0, len(e.Exprs))
		for _, el := range e.Exprs {
			v, err := fold(el)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil

	case *hclsyntax.ObjectConsExpr:
		rec := make(Record, 0, len(e.Items))
		for _, item := range e.Items {
			name, err := foldKey(item.KeyExpr)
			if err != nil {
				return nil, err
			}
			v, err := fold(item.ValueExpr)
			if err != nil {
				return nil, err
			}
			rec = append(rec, Field{Name: name, Value: v})
		}
		return rec, nil

	case *hclsyntax.ParenthesesExpr:
		return fold(e.Expression)

	case *hclsyntax.FunctionCallExpr:
		return nil, fmt.Errorf("call to function %q", e.Name)

	default:
		return nil, fmt.Errorf("%s is not a constant construct", exprName(expr))
	}
}

// foldKey resolves a record field name. Naked identifiers and quoted strings
// are both accepted as names.
func foldKey(expr hclsyntax.Expression) (string, error) {
	if key, ok := expr.(*hclsyntax.ObjectConsKeyExpr); ok {
		expr = key.Wrapped
	}
	v, err := fold(expr)
	if err != nil {
		return "", err
	}
	switch v := v.(type) {
	case Symbol:
		return string(v), nil
	case String:
		return string(v), nil
	}
	return "", fmt.Errorf("record field name must be an identifier or string, got %s", Render(v))
}

func fromCty(v cty.Value) (Value, error) {
	if v.IsNull() {
		return nil, fmt.Errorf("null is not a constant literal")
	}
	switch v.Type() {
	case cty.String:
		return String(v.AsString()), nil
	case cty.Bool:
		return Bool(v.True()), nil
	case cty.Number:
		bf := v.AsBigFloat()
		if i, acc := bf.Int64(); acc == big.Exact {
			return Int(i), nil
		}
		f, _ := bf.Float64()
		return Float(f), nil
	}
	return nil, fmt.Errorf("unsupported literal type %s", v.Type().FriendlyName())
}

func exprName(expr hclsyntax.Expression) string {
	switch expr.(type) {
	case *hclsyntax.TemplateWrapExpr:
		return "string template with interpolation"
	case *hclsyntax.BinaryOpExpr:
		return "binary operation"
	case *hclsyntax.ConditionalExpr:
		return "conditional expression"
	case *hclsyntax.IndexExpr:
		return "index expression"
	case *hclsyntax.SplatExpr:
		return "splat expression"
	case *hclsyntax.ForExpr:
		return "for expression"
	case *hclsyntax.RelativeTraversalExpr:
		return "attribute access"
	default:
		return "expression"
	}
}
