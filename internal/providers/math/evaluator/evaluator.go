package evaluator

import (
	"context"
	"errors"
	"fmt"
	gomath "math"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/vm"
)

// Evaluator turns a fully substituted arithmetic expression into a number.
// Implementations report malformed input as an error; callers treat that
// as non-fatal.
type Evaluator interface {
	Evaluate(ctx context.Context, expression string) (float64, error)
}

// Func adapts a plain function to the Evaluator interface
type Func func(ctx context.Context, expression string) (float64, error)

// Evaluate calls f
func (f Func) Evaluate(ctx context.Context, expression string) (float64, error) {
	return f(ctx, expression)
}

var (
	ErrEmptyExpression = errors.New("empty expression")
	ErrNotNumeric      = errors.New("expression did not produce a number")
	ErrNotFinite       = errors.New("expression produced a non-finite number")
)

// DefaultCacheSize bounds the compiled program cache
const DefaultCacheSize = 256

var (
	rootWithParen  = regexp.MustCompile(`√\s*\(`)
	rootWithNumber = regexp.MustCompile(`√\s*([0-9]+(?:\.[0-9]+)?|\.[0-9]+)`)
	// identifiers are matched first so digits inside names are left alone
	numberToken = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*|[0-9]*\.?[0-9]+(?:[eE][+-]?[0-9]+)?`)
)

// Expr evaluates expressions with expr-lang/expr using a mathjs-style
// vocabulary: pi, e, sin, cos, tan, asin, acos, atan, log, ln, sqrt, abs,
// floor, ceil, round, exp, mod, factorial, ^ for exponentiation, postfix !
// and % as modulo. All arithmetic is float64.
type Expr struct {
	env     map[string]interface{}
	options []expr.Option

	mu        sync.Mutex
	cache     map[string]*vm.Program
	cacheSize int
}

// New creates an expression evaluator with the default cache size
func New() *Expr {
	return NewWithCache(DefaultCacheSize)
}

// NewWithCache creates an expression evaluator whose compiled program cache
// holds at most size entries. A size <= 0 disables caching.
func NewWithCache(size int) *Expr {
	env := map[string]interface{}{
		"pi": gomath.Pi,
		"e":  gomath.E,
	}

	options := []expr.Option{
		expr.Env(env),
		expr.DisableAllBuiltins(),
		expr.Patch(floatArithmetic{}),
	}
	for name, fn := range unaryFuncs {
		options = append(options, expr.Function(name, wrapUnary(name, fn)))
	}
	options = append(options,
		expr.Function("mod", modFunc),
		expr.Function("factorial", factorialFunc),
	)

	return &Expr{
		env:       env,
		options:   options,
		cache:     make(map[string]*vm.Program),
		cacheSize: size,
	}
}

// Evaluate compiles (or reuses) and runs the expression
func (e *Expr) Evaluate(ctx context.Context, expression string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	normalized := Normalize(expression)
	if normalized == "" {
		return 0, ErrEmptyExpression
	}

	program, err := e.compile(normalized)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", expression, err)
	}

	out, err := expr.Run(program, e.env)
	if err != nil {
		return 0, fmt.Errorf("evaluate %q: %w", expression, err)
	}

	value, ok := toFloat(out)
	if !ok {
		return 0, fmt.Errorf("evaluate %q: %w", expression, ErrNotNumeric)
	}
	if gomath.IsNaN(value) || gomath.IsInf(value, 0) {
		return 0, fmt.Errorf("evaluate %q: %w", expression, ErrNotFinite)
	}
	return value, nil
}

func (e *Expr) compile(expression string) (*vm.Program, error) {
	e.mu.Lock()
	program, ok := e.cache[expression]
	e.mu.Unlock()
	if ok {
		return program, nil
	}

	program, err := expr.Compile(expression, e.options...)
	if err != nil {
		return nil, err
	}

	if e.cacheSize > 0 {
		e.mu.Lock()
		if len(e.cache) >= e.cacheSize {
			e.cache = make(map[string]*vm.Program)
		}
		e.cache[expression] = program
		e.mu.Unlock()
	}
	return program, nil
}

// Normalize trims space and rewrites calculator notation the parser does not
// know: the radical sign becomes sqrt, postfix n! becomes factorial(n), and
// integer literals too large for int64 are read as floats.
func Normalize(expression string) string {
	s := strings.TrimSpace(expression)
	s = rootWithParen.ReplaceAllString(s, "sqrt(")
	s = rootWithNumber.ReplaceAllString(s, "sqrt($1)")
	s = rewriteFactorials(s)
	return numberToken.ReplaceAllStringFunc(s, func(tok string) string {
		if strings.Trim(tok, "0123456789") != "" {
			return tok
		}
		if _, err := strconv.ParseInt(tok, 10, 64); err != nil {
			return tok + ".0"
		}
		return tok
	})
}

// rewriteFactorials turns each postfix ! into a factorial call. The operand
// is the number or identifier before it, or a parenthesized group together
// with the function name that owns it.
func rewriteFactorials(s string) string {
	for {
		i := postfixBang(s)
		if i < 0 {
			return s
		}
		start := operandStart(s[:i])
		if start < 0 {
			return s
		}
		s = s[:start] + "factorial(" + strings.TrimSpace(s[start:i]) + ")" + s[i+1:]
	}
}

func postfixBang(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == '!' && (i+1 == len(s) || s[i+1] != '=') {
			return i
		}
	}
	return -1
}

func operandStart(prefix string) int {
	j := len(strings.TrimRight(prefix, " \t"))
	if j == 0 {
		return -1
	}

	if prefix[j-1] == ')' {
		depth := 0
		for k := j - 1; k >= 0; k-- {
			switch prefix[k] {
			case ')':
				depth++
			case '(':
				depth--
			}
			if depth == 0 {
				for k > 0 && isOperandByte(prefix[k-1]) {
					k--
				}
				return k
			}
		}
		return -1
	}

	if !isOperandByte(prefix[j-1]) {
		return -1
	}
	for j > 0 && isOperandByte(prefix[j-1]) {
		j--
	}
	return j
}

func isOperandByte(c byte) bool {
	return c == '_' || c == '.' ||
		('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// floatArithmetic rewrites integer literals into float literals and the %
// operator into a mod call, so no expression is evaluated in int arithmetic.
type floatArithmetic struct{}

func (floatArithmetic) Visit(node *ast.Node) {
	switch n := (*node).(type) {
	case *ast.IntegerNode:
		ast.Patch(node, &ast.FloatNode{Value: float64(n.Value)})
	case *ast.BinaryNode:
		if n.Operator == "%" {
			ast.Patch(node, &ast.CallNode{
				Callee:    &ast.IdentifierNode{Value: "mod"},
				Arguments: []ast.Node{n.Left, n.Right},
			})
		}
	}
}

var unaryFuncs = map[string]func(float64) float64{
	"sin":   gomath.Sin,
	"cos":   gomath.Cos,
	"tan":   gomath.Tan,
	"asin":  gomath.Asin,
	"acos":  gomath.Acos,
	"atan":  gomath.Atan,
	"log":   gomath.Log,
	"ln":    gomath.Log,
	"sqrt":  gomath.Sqrt,
	"abs":   gomath.Abs,
	"floor": gomath.Floor,
	"ceil":  gomath.Ceil,
	"round": gomath.Round,
	"exp":   gomath.Exp,
}

func wrapUnary(name string, fn func(float64) float64) func(params ...interface{}) (interface{}, error) {
	return func(params ...interface{}) (interface{}, error) {
		if len(params) != 1 {
			return nil, fmt.Errorf("%s expects 1 argument, got %d", name, len(params))
		}
		x, ok := toFloat(params[0])
		if !ok {
			return nil, fmt.Errorf("%s: argument is not a number", name)
		}
		return fn(x), nil
	}
}

// modFunc follows mathjs: the result takes the sign of the divisor
func modFunc(params ...interface{}) (interface{}, error) {
	if len(params) != 2 {
		return nil, fmt.Errorf("mod expects 2 arguments, got %d", len(params))
	}
	x, okX := toFloat(params[0])
	y, okY := toFloat(params[1])
	if !okX || !okY {
		return nil, errors.New("mod: arguments must be numbers")
	}
	if y == 0 {
		return x, nil
	}
	return x - y*gomath.Floor(x/y), nil
}

// factorialFunc computes n! exactly for whole numbers and through the gamma
// function otherwise. Negative input is an error.
func factorialFunc(params ...interface{}) (interface{}, error) {
	if len(params) != 1 {
		return nil, fmt.Errorf("factorial expects 1 argument, got %d", len(params))
	}
	n, ok := toFloat(params[0])
	if !ok {
		return nil, errors.New("factorial: argument is not a number")
	}
	if n < 0 {
		return nil, fmt.Errorf("factorial: negative argument %g", n)
	}
	if n != gomath.Trunc(n) {
		return gomath.Gamma(n + 1), nil
	}

	out := 1.0
	for i := 2.0; i <= n && !gomath.IsInf(out, 0); i++ {
		out *= i
	}
	return out, nil
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
