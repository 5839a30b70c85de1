package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/MathCore/backend/internal/domain/workspace"
	"github.com/GriffinCanCode/MathCore/backend/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/MathCore/backend/internal/providers/math/solver"
	"github.com/GriffinCanCode/MathCore/backend/internal/shared/id"
	"github.com/GriffinCanCode/MathCore/backend/internal/shared/utils"
)

// ProblemRequest is the body of solve and classify
type ProblemRequest struct {
	Problem  string `json:"problem" binding:"required"`
	Hint     bool   `json:"hint"`
	Category string `json:"category,omitempty"`
}

func bindProblem(c *gin.Context) (ProblemRequest, bool) {
	var req ProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err)
		return req, false
	}
	req.Problem = strings.TrimSpace(req.Problem)
	if err := utils.ValidateProblem(req.Problem); err != nil {
		fail(c, http.StatusBadRequest, err)
		return req, false
	}
	return req, true
}

// SolveProblem classifies, synthesizes and records a solution
func (h *Handlers) SolveProblem(c *gin.Context) {
	req, valid := bindProblem(c)
	if !valid {
		return
	}

	ctx := c.Request.Context()
	var sol solver.Solution
	if req.Category != "" {
		category := solver.Category(req.Category)
		if !category.Valid() {
			fail(c, http.StatusBadRequest, fmt.Errorf("unknown problem category: %s", req.Category))
			return
		}
		sol = h.workspace.SolveAs(ctx, req.Problem, category, req.Hint)
	} else {
		sol = h.workspace.Solve(ctx, req.Problem, req.Hint)
	}

	h.logger.Debug("Problem solved",
		append(tracing.Fields(ctx),
			zap.String("solution_id", sol.ID.String()),
			zap.String("category", string(sol.Category)),
		)...,
	)
	ok(c, http.StatusOK, gin.H{"solution": sol})
}

// ClassifyProblem tags a problem without solving it
func (h *Handlers) ClassifyProblem(c *gin.Context) {
	req, valid := bindProblem(c)
	if !valid {
		return
	}
	ok(c, http.StatusOK, gin.H{
		"problem":  req.Problem,
		"category": solver.Classify(req.Problem),
	})
}

// RevealSolution swaps the hint of a recorded solution for its full steps
func (h *Handlers) RevealSolution(c *gin.Context) {
	solutionID := c.Param("id")
	if err := utils.ValidateID(solutionID, "solution_id", true); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	sol, err := h.workspace.Reveal(id.SolutionID(solutionID))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, workspace.ErrSolutionNotFound) {
			status = http.StatusNotFound
		}
		fail(c, status, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"solution": sol})
}

// GetHistory returns the workspace snapshot
func (h *Handlers) GetHistory(c *gin.Context) {
	ok(c, http.StatusOK, gin.H{"state": h.workspace.Snapshot()})
}
