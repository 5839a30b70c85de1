package math

import (
	"context"

	"github.com/GriffinCanCode/MathCore/backend/internal/domain/formulas"
	"github.com/GriffinCanCode/MathCore/backend/internal/providers/math/common"
	"github.com/GriffinCanCode/MathCore/backend/internal/shared/types"
)

// CatalogOps exposes the formula catalog
type CatalogOps struct {
	registry *formulas.Registry
}

// GetTools returns catalog tool definitions
func (c *CatalogOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.formulas.search",
			Name:        "Search Formulas",
			Description: "Case-insensitive search over formula names, descriptions, subjects and topics",
			Parameters: []types.Parameter{
				{Name: "query", Type: "string", Description: "Search text; empty lists every formula", Required: false},
			},
			Returns: "array",
		},
	}
}

// Search finds catalog formulas
func (c *CatalogOps) Search(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	query, _ := common.GetString(params, "query")
	found := c.registry.Search(query)
	return common.Success(map[string]interface{}{
		"query":    query,
		"count":    len(found),
		"formulas": found,
	})
}
