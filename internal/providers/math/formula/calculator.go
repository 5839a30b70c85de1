package formula

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/MathCore/backend/internal/providers/math/evaluator"
)

// Result is the outcome of evaluating a template. Err is set instead of
// Value when any stage fails; the shape is the same either way.
type Result struct {
	Template   string   `json:"template"`
	Expression string   `json:"expression"`
	Variables  []string `json:"variables"`
	Value      float64  `json:"value"`
	Err        error    `json:"-"`
}

// OK reports whether the evaluation produced a value
func (r Result) OK() bool { return r.Err == nil }

// Calculator binds variables into templates and hands the result to an
// evaluator
type Calculator struct {
	eval   evaluator.Evaluator
	logger *zap.Logger
}

// NewCalculator creates a calculator. A nil logger disables logging.
func NewCalculator(eval evaluator.Evaluator, logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{eval: eval, logger: logger}
}

// Evaluate validates bindings, substitutes them, and evaluates the result.
// Unresolved variables are reported without calling the evaluator.
func (c *Calculator) Evaluate(ctx context.Context, template string, bindings Bindings) Result {
	res := Result{
		Template:  template,
		Variables: ExtractVariables(template),
	}

	if err := ValidateBindings(template, bindings); err != nil {
		res.Err = err
		return res
	}

	res.Expression = Substitute(template, bindings)
	if left := Unresolved(res.Expression); len(left) > 0 {
		res.Err = &MissingVariablesError{Names: left}
		return res
	}

	value, err := c.eval.Evaluate(ctx, res.Expression)
	if err != nil {
		c.logger.Debug("Formula evaluation failed",
			zap.String("expression", res.Expression),
			zap.Error(err),
		)
		res.Err = fmt.Errorf("%w: %v", ErrEvaluation, err)
		return res
	}

	res.Value = value
	return res
}
