package math

import (
	"context"
	"strings"

	"github.com/GriffinCanCode/MathCore/backend/internal/providers/math/common"
	"github.com/GriffinCanCode/MathCore/backend/internal/providers/math/solver"
	"github.com/GriffinCanCode/MathCore/backend/internal/shared/types"
)

// ProblemOps handles problem classification and step synthesis tools
type ProblemOps struct {
	synth    *solver.Synthesizer
	recorder recorder
}

// GetTools returns problem tool definitions
func (p *ProblemOps) GetTools() []types.Tool {
	problem := types.Parameter{Name: "problem", Type: "string", Description: "Free-text math problem", Required: true}

	return []types.Tool{
		{
			ID:          "math.classify",
			Name:        "Classify Problem",
			Description: "Tag a problem with its category",
			Parameters:  []types.Parameter{problem},
			Returns:     "string",
		},
		{
			ID:          "math.solve",
			Name:        "Solve Problem",
			Description: "Classify a problem and synthesize solution steps",
			Parameters: []types.Parameter{
				problem,
				{Name: "category", Type: "string", Description: "Category override; classified when omitted", Required: false},
				{Name: "hint", Type: "boolean", Description: "Show only the first steps", Required: false},
			},
			Returns: "object",
		},
	}
}

// Classify tags a problem with its category
func (p *ProblemOps) Classify(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	problem, ok := common.GetString(params, "problem")
	if !ok || strings.TrimSpace(problem) == "" {
		return common.Failure("problem parameter required")
	}
	return common.Success(map[string]interface{}{
		"problem":  problem,
		"category": solver.Classify(problem),
	})
}

// Solve synthesizes a solution. Nothing is recorded in history.
func (p *ProblemOps) Solve(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	problem, ok := common.GetString(params, "problem")
	if !ok || strings.TrimSpace(problem) == "" {
		return common.Failure("problem parameter required")
	}
	hint, _ := common.GetBool(params, "hint")

	category := solver.Classify(problem)
	if raw, ok := common.GetString(params, "category"); ok && raw != "" {
		category = solver.Category(raw)
		if !category.Valid() {
			return common.Failuref("unknown problem category: %s", raw)
		}
	}

	sol := p.synth.Synthesize(ctx, problem, category, hint)
	p.recorder.solution(string(sol.Category), sol.IsHint)
	p.recorder.evaluation("problem", sol.Answer != nil)

	return common.Success(map[string]interface{}{"solution": sol})
}
