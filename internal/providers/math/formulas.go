package math

import (
	"context"
	"strings"

	"github.com/GriffinCanCode/MathCore/backend/internal/providers/math/common"
	"github.com/GriffinCanCode/MathCore/backend/internal/providers/math/formula"
	"github.com/GriffinCanCode/MathCore/backend/internal/shared/types"
)

// FormulaOps handles template binding and evaluation tools
type FormulaOps struct {
	calc     *formula.Calculator
	recorder recorder
}

// GetTools returns formula tool definitions
func (f *FormulaOps) GetTools() []types.Tool {
	template := types.Parameter{Name: "template", Type: "string", Description: "Formula template, e.g. (-b + sqrt(b^2 - 4*a*c)) / (2*a)", Required: true}
	bindings := types.Parameter{Name: "bindings", Type: "object", Description: "Variable name to numeric value", Required: true}

	return []types.Tool{
		{
			ID:          "math.formula.variables",
			Name:        "Extract Variables",
			Description: "List the free variables of a formula template",
			Parameters:  []types.Parameter{template},
			Returns:     "array",
		},
		{
			ID:          "math.formula.substitute",
			Name:        "Substitute Variables",
			Description: "Replace variables in a template with bound values",
			Parameters:  []types.Parameter{template, bindings},
			Returns:     "string",
		},
		{
			ID:          "math.formula.evaluate",
			Name:        "Evaluate Formula",
			Description: "Bind variables into a template and evaluate it",
			Parameters:  []types.Parameter{template, bindings},
			Returns:     "number",
		},
		{
			ID:          "math.calculate",
			Name:        "Calculate",
			Description: "Evaluate a plain expression such as 5! + 10 % 4",
			Parameters: []types.Parameter{
				{Name: "expression", Type: "string", Description: "Expression without variables", Required: true},
			},
			Returns: "number",
		},
	}
}

// Variables extracts the free variables of a template
func (f *FormulaOps) Variables(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	template, ok := common.GetString(params, "template")
	if !ok || template == "" {
		return common.Failure("template parameter required")
	}
	return common.Success(map[string]interface{}{
		"template":  template,
		"variables": formula.ExtractVariables(template),
	})
}

// Substitute binds values into a template without evaluating it
func (f *FormulaOps) Substitute(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	template, ok := common.GetString(params, "template")
	if !ok || template == "" {
		return common.Failure("template parameter required")
	}
	bindings, ok := common.GetStringMap(params, "bindings")
	if !ok {
		return common.Failure("bindings parameter must be an object of numbers")
	}
	// Partial bindings are allowed here; only the bound values must be numbers
	for name, value := range bindings {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if !formula.IsNumeric(value) {
			return common.Failure((&formula.InvalidValueError{Name: name, Value: value}).Error())
		}
	}

	expression := formula.Substitute(template, bindings)
	return common.Success(map[string]interface{}{
		"template":   template,
		"expression": expression,
		"unresolved": formula.Unresolved(expression),
	})
}

// Evaluate binds values into a template and evaluates the expression
func (f *FormulaOps) Evaluate(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	template, ok := common.GetString(params, "template")
	if !ok || template == "" {
		return common.Failure("template parameter required")
	}
	bindings, ok := common.GetStringMap(params, "bindings")
	if !ok {
		return common.Failure("bindings parameter must be an object of numbers")
	}

	res := f.calc.Evaluate(ctx, template, bindings)
	f.recorder.evaluation("formula", res.OK())
	if !res.OK() {
		return common.Failure(res.Err.Error())
	}

	return common.Success(map[string]interface{}{
		"template":   res.Template,
		"expression": res.Expression,
		"variables":  res.Variables,
		"result":     res.Value,
	})
}

// Calculate evaluates an expression that has no variables
func (f *FormulaOps) Calculate(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	expression, ok := common.GetString(params, "expression")
	if !ok || strings.TrimSpace(expression) == "" {
		return common.Failure("expression parameter required")
	}

	res := f.calc.Evaluate(ctx, expression, nil)
	f.recorder.evaluation("calculator", res.OK())
	if !res.OK() {
		return common.Failure(res.Err.Error())
	}

	return common.Success(map[string]interface{}{
		"expression": res.Expression,
		"result":     res.Value,
	})
}
