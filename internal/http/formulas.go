package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/MathCore/backend/internal/domain/formulas"
	"github.com/GriffinCanCode/MathCore/backend/internal/domain/workspace"
	"github.com/GriffinCanCode/MathCore/backend/internal/shared/id"
	"github.com/GriffinCanCode/MathCore/backend/internal/shared/utils"
)

// FormulaRequest is the body of evaluate and variables
type FormulaRequest struct {
	Template string                 `json:"template" binding:"required"`
	Bindings map[string]interface{} `json:"bindings"`
}

// EvaluateFormula binds variables into a template and evaluates it
func (h *Handlers) EvaluateFormula(c *gin.Context) {
	var req FormulaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	if err := utils.ValidateTemplate(req.Template); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	if req.Bindings == nil {
		req.Bindings = map[string]interface{}{}
	}

	h.execute(c, "math.formula.evaluate", map[string]interface{}{
		"template": req.Template,
		"bindings": req.Bindings,
	})
}

// CalculateRequest is the body of calculate
type CalculateRequest struct {
	Expression string `json:"expression" binding:"required"`
}

// Calculate evaluates a plain expression
func (h *Handlers) Calculate(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	if err := utils.ValidateExpression(req.Expression); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	h.execute(c, "math.calculate", map[string]interface{}{"expression": req.Expression})
}

// ExtractVariables lists the free variables of a template
func (h *Handlers) ExtractVariables(c *gin.Context) {
	var req FormulaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	if err := utils.ValidateTemplate(req.Template); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	h.execute(c, "math.formula.variables", map[string]interface{}{"template": req.Template})
}

// ListFormulas browses the catalog by subject, or searches it when q is set
func (h *Handlers) ListFormulas(c *gin.Context) {
	query, searching := c.GetQuery("q")
	if !searching {
		ok(c, http.StatusOK, gin.H{"subjects": h.catalog.Subjects()})
		return
	}

	query = utils.SanitizeText(query)
	found := h.catalog.Search(query)
	ok(c, http.StatusOK, gin.H{
		"query":    query,
		"count":    len(found),
		"formulas": found,
	})
}

// GetSubject returns one subject with its topics
func (h *Handlers) GetSubject(c *gin.Context) {
	key := c.Param("subject")
	subject, found := h.catalog.Subject(key)
	if !found {
		fail(c, http.StatusNotFound, fmt.Errorf("%w: subject %s", formulas.ErrNotFound, key))
		return
	}
	ok(c, http.StatusOK, gin.H{"subject": subject})
}

// SaveFormula stores a custom formula
func (h *Handlers) SaveFormula(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Template    string `json:"template" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	req.Name = utils.SanitizeText(req.Name)
	req.Description = utils.SanitizeText(req.Description)
	for _, err := range []error{
		utils.ValidateName(req.Name, "name"),
		utils.ValidateTemplate(req.Template),
		utils.ValidateDescription(req.Description, "description", false),
	} {
		if err != nil {
			fail(c, http.StatusBadRequest, err)
			return
		}
	}

	f, err := h.workspace.SaveFormula(req.Name, req.Template, req.Description)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"formula": f})
}

// ListSavedFormulas returns the custom formulas
func (h *Handlers) ListSavedFormulas(c *gin.Context) {
	ok(c, http.StatusOK, gin.H{"formulas": h.workspace.Snapshot().SavedFormulas})
}

// AddFavorite favorites a catalog or saved formula by id
func (h *Handlers) AddFavorite(c *gin.Context) {
	var req struct {
		FormulaID string `json:"formula_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	if err := utils.ValidateID(req.FormulaID, "formula_id", true); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	fav, err := h.workspace.AddFavoriteByID(req.FormulaID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, formulas.ErrNotFound) {
			status = http.StatusNotFound
		}
		fail(c, status, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"favorite": fav})
}

// RemoveFavorite drops a favorite by its favorite id
func (h *Handlers) RemoveFavorite(c *gin.Context) {
	favoriteID := c.Param("id")
	if err := utils.ValidateID(favoriteID, "favorite_id", true); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	if err := h.workspace.RemoveFavorite(id.FavoriteID(favoriteID)); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, workspace.ErrFavoriteNotFound) {
			status = http.StatusNotFound
		}
		fail(c, status, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"favorite_id": favoriteID})
}

// ListFavorites returns the favorites in insertion order
func (h *Handlers) ListFavorites(c *gin.Context) {
	ok(c, http.StatusOK, gin.H{"favorites": h.workspace.Snapshot().Favorites})
}

// AddRecentTopic records a visited topic
func (h *Handlers) AddRecentTopic(c *gin.Context) {
	var req struct {
		Topic string `json:"topic" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	req.Topic = utils.SanitizeText(req.Topic)
	if err := utils.ValidateTopic(req.Topic); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	if err := h.workspace.AddRecentTopic(req.Topic); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"recent_topics": h.workspace.Snapshot().RecentTopics})
}
