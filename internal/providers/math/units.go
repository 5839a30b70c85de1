package math

import (
	"context"

	"github.com/GriffinCanCode/MathCore/backend/internal/providers/math/common"
	"github.com/GriffinCanCode/MathCore/backend/internal/providers/math/conversion"
	"github.com/GriffinCanCode/MathCore/backend/internal/shared/types"
)

// UnitOps handles unit conversion tools
type UnitOps struct {
	engine   *conversion.Engine
	recorder recorder
}

// GetTools returns unit tool definitions
func (u *UnitOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.convert",
			Name:        "Convert Units",
			Description: "Convert a value between two units of one category",
			Parameters: []types.Parameter{
				{Name: "category", Type: "string", Description: "Category key (length, weight, temperature, volume, area, time)", Required: true},
				{Name: "value", Type: "number", Description: "Value to convert (number or numeric string)", Required: true},
				{Name: "from", Type: "string", Description: "Source unit key", Required: true},
				{Name: "to", Type: "string", Description: "Target unit key", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "math.units",
			Name:        "List Units",
			Description: "List conversion categories, or the units of one category",
			Parameters: []types.Parameter{
				{Name: "category", Type: "string", Description: "Category key", Required: false},
			},
			Returns: "object",
		},
	}
}

// Convert converts a value between units
func (u *UnitOps) Convert(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	category, ok := common.GetString(params, "category")
	if !ok || category == "" {
		return common.Failure("category parameter required")
	}
	from, ok := common.GetString(params, "from")
	if !ok || from == "" {
		return common.Failure("from parameter required")
	}
	to, ok := common.GetString(params, "to")
	if !ok || to == "" {
		return common.Failure("to parameter required")
	}
	if _, present := params["value"]; !present {
		return common.Failure("value parameter required")
	}
	value, ok := common.GetNumber(params, "value")
	if !ok {
		return common.Failuref("%v", conversion.ErrInvalidValue)
	}

	result, err := u.engine.Convert(category, value, from, to)
	label := category
	if _, known := u.engine.Category(category); !known {
		label = "unknown"
	}
	u.recorder.conversion(label, err == nil)
	if err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{
		"category":  category,
		"from":      from,
		"to":        to,
		"value":     value,
		"result":    result,
		"formatted": conversion.Format(result),
	})
}

// Units lists categories or the units of one category
func (u *UnitOps) Units(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	key, _ := common.GetString(params, "category")
	if key == "" {
		return common.Success(map[string]interface{}{"categories": u.engine.Categories()})
	}

	c, ok := u.engine.Category(key)
	if !ok {
		return common.Failuref("%v: %s", conversion.ErrUnknownCategory, key)
	}
	return common.Success(map[string]interface{}{"category": c})
}
