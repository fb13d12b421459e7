// Package literals converts between values and Starlark literals.
package literals

import (
	"fmt"
	"strings"

	"github.com/reusee/funcmap/values"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// ParseArgs parses src as a comma-separated list of Starlark literals,
// like `"Hello", 1, 2.5, True`. Lists, tuples and dicts of literals are
// accepted; names other than True, False and None, operators and calls
// are rejected.
func ParseArgs(src string) ([]values.Value, error) {
	if strings.TrimSpace(src) == "" {
		return nil, nil
	}
	opts := &syntax.FileOptions{}
	expr, err := opts.ParseExpr("args", src, 0)
	if err != nil {
		return nil, fmt.Errorf("parse arguments: %w", err)
	}
	exprs := []syntax.Expr{expr}
	if tuple, ok := expr.(*syntax.TupleExpr); ok {
		exprs = tuple.List
	}
	thread := &starlark.Thread{
		Name: "args",
	}
	ret := make([]values.Value, 0, len(exprs))
	for i, expr := range exprs {
		if err := checkLiteral(expr); err != nil {
			return nil, fmt.Errorf("parse arguments: argument %d: %w", i, err)
		}
		v, err := starlark.EvalExprOptions(opts, thread, expr, nil)
		if err != nil {
			return nil, fmt.Errorf("parse arguments: argument %d: %w", i, err)
		}
		arg, err := FromStarlark(v)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		ret = append(ret, arg)
	}
	return ret, nil
}

func checkLiteral(expr syntax.Expr) error {
	switch expr := expr.(type) {
	case *syntax.Literal:
		return nil
	case *syntax.Ident:
		switch expr.Name {
		case "True", "False", "None":
			return nil
		}
	case *syntax.UnaryExpr:
		if expr.Op == syntax.MINUS || expr.Op == syntax.PLUS {
			if _, ok := expr.X.(*syntax.Literal); ok {
				return nil
			}
		}
	case *syntax.ParenExpr:
		return checkLiteral(expr.X)
	case *syntax.ListExpr:
		for _, elem := range expr.List {
			if err := checkLiteral(elem); err != nil {
				return err
			}
		}
		return nil
	case *syntax.TupleExpr:
		for _, elem := range expr.List {
			if err := checkLiteral(elem); err != nil {
				return err
			}
		}
		return nil
	case *syntax.DictExpr:
		for _, entry := range expr.List {
			entry := entry.(*syntax.DictEntry)
			if err := checkLiteral(entry.Key); err != nil {
				return err
			}
			if err := checkLiteral(entry.Value); err != nil {
				return err
			}
		}
		return nil
	}
	start, _ := expr.Span()
	return fmt.Errorf("%s: not a literal", start)
}

// Format renders v as a Starlark literal.
func Format(v values.Value) (string, error) {
	s, err := ToStarlark(v)
	if err != nil {
		return "", err
	}
	return s.String(), nil
}
