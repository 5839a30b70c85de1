package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/MathCore/backend/internal/domain/formulas"
	"github.com/GriffinCanCode/MathCore/backend/internal/domain/workspace"
	"github.com/GriffinCanCode/MathCore/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/MathCore/backend/internal/providers/math"
	"github.com/GriffinCanCode/MathCore/backend/internal/providers/math/conversion"
	"github.com/GriffinCanCode/MathCore/backend/internal/providers/math/evaluator"
	"github.com/GriffinCanCode/MathCore/backend/internal/providers/math/solver"
	"github.com/GriffinCanCode/MathCore/backend/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	metrics := monitoring.NewMetricsWithRegistry(prometheus.NewRegistry())
	eval := evaluator.New()
	catalog := formulas.NewRegistry(nil)

	registry := service.NewRegistry()
	require.NoError(t, registry.Register(math.NewProvider(conversion.MustNewEngine(), eval, catalog, math.WithMetrics(metrics))))

	store := workspace.NewStore(solver.NewSynthesizer(eval), workspace.WithRegistry(catalog), workspace.WithMetrics(metrics))

	router := gin.New()
	NewHandlers(registry, catalog, store, metrics, nil).Register(router)
	return router
}

func do(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return w, out
}

func TestRootAndHealth(t *testing.T) {
	router := newTestRouter(t)

	w, body := do(t, router, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "online", body["status"])

	w, body = do(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.Contains(t, body, "metrics")
}

func TestListAndExecuteServices(t *testing.T) {
	router := newTestRouter(t)

	w, body := do(t, router, http.MethodGet, "/services", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	services := body["services"].([]interface{})
	require.Len(t, services, 1)

	w, body = do(t, router, http.MethodPost, "/services/execute", map[string]interface{}{
		"tool_id": "math.formula.variables",
		"params":  map[string]interface{}{"template": "pi * r^2"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []interface{}{"r"}, body["data"].(map[string]interface{})["variables"])

	w, body = do(t, router, http.MethodPost, "/services/execute", map[string]interface{}{"tool_id": "physics.run"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])

	w, _ = do(t, router, http.MethodPost, "/services/execute", map[string]interface{}{"tool_id": "math/../x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSolveThenReveal(t *testing.T) {
	router := newTestRouter(t)

	w, body := do(t, router, http.MethodPost, "/problems/solve", map[string]interface{}{
		"problem": "  2 + 3 * 4 ",
		"hint":    true,
	})
	require.Equal(t, http.StatusOK, w.Code)
	sol := body["solution"].(map[string]interface{})
	assert.Equal(t, "2 + 3 * 4", sol["problem"])
	assert.Equal(t, "arithmetic", sol["category"])
	assert.Equal(t, true, sol["is_hint"])
	assert.Len(t, sol["steps"], solver.HintSteps)

	solutionID := sol["id"].(string)
	w, body = do(t, router, http.MethodPost, "/solutions/"+solutionID+"/reveal", nil)
	require.Equal(t, http.StatusOK, w.Code)
	revealed := body["solution"].(map[string]interface{})
	assert.Equal(t, false, revealed["is_hint"])
	steps := revealed["steps"].([]interface{})
	assert.Equal(t, "Final answer: 14", steps[len(steps)-1])

	w, body = do(t, router, http.MethodGet, "/history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	state := body["state"].(map[string]interface{})
	assert.Len(t, state["history"], 1)
	assert.Equal(t, false, state["current"].(map[string]interface{})["is_hint"])

	w, body = do(t, router, http.MethodPost, "/solutions/sol_unknown/reveal", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])
}

func TestSolveValidation(t *testing.T) {
	router := newTestRouter(t)

	w, body := do(t, router, http.MethodPost, "/problems/solve", map[string]interface{}{"problem": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "problem is required", body["error"])

	w, body = do(t, router, http.MethodPost, "/problems/solve", map[string]interface{}{"problem": "2+2\u0007"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "problem contains invalid characters", body["error"])

	w, _ = do(t, router, http.MethodPost, "/problems/solve", map[string]interface{}{"problem": "2+2", "category": "astrology"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body = do(t, router, http.MethodPost, "/problems/solve", map[string]interface{}{"problem": "find the area", "category": "geometry"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "geometry", body["solution"].(map[string]interface{})["category"])
}

func TestClassify(t *testing.T) {
	router := newTestRouter(t)

	w, body := do(t, router, http.MethodPost, "/problems/classify", map[string]interface{}{"problem": "derivative of x"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "calculus", body["category"])

	w, body = do(t, router, http.MethodPost, "/problems/classify", map[string]interface{}{"problem": "solve 3<x and x>1"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "linear_equation", body["category"])
}

func TestCalculate(t *testing.T) {
	router := newTestRouter(t)

	w, body := do(t, router, http.MethodPost, "/calculate", map[string]interface{}{"expression": "5! + 10 % 4"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 122.0, body["data"].(map[string]interface{})["result"])

	w, body = do(t, router, http.MethodPost, "/calculate", map[string]interface{}{"expression": "1/0"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, false, body["success"])

	w, _ = do(t, router, http.MethodPost, "/calculate", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSolveKeepsInequalities(t *testing.T) {
	router := newTestRouter(t)

	for _, problem := range []string{"solve 3<x and x>1", "a<b>c = 4"} {
		w, body := do(t, router, http.MethodPost, "/problems/solve", map[string]interface{}{"problem": problem})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, problem, body["solution"].(map[string]interface{})["problem"])
	}
}

func TestConvertEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w, body := do(t, router, http.MethodPost, "/convert", map[string]interface{}{
		"category": "temperature",
		"value":    "32",
		"from":     "fahrenheit",
		"to":       "celsius",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0.000000", body["data"].(map[string]interface{})["formatted"])

	w, body = do(t, router, http.MethodPost, "/convert", map[string]interface{}{
		"category": "length",
		"value":    1,
		"from":     "meter",
		"to":       "parsec",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "unknown unit")
}

func TestUnitsEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w, body := do(t, router, http.MethodGet, "/units", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["data"].(map[string]interface{})["categories"], 6)

	w, body = do(t, router, http.MethodGet, "/units/weight", nil)
	require.Equal(t, http.StatusOK, w.Code)
	category := body["data"].(map[string]interface{})["category"].(map[string]interface{})
	assert.Equal(t, "kilogram", category["base"])

	w, _ = do(t, router, http.MethodGet, "/units/speed", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestFormulaEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w, body := do(t, router, http.MethodPost, "/formulas/evaluate", map[string]interface{}{
		"template": "P * (1 + r/n)^(n*t)",
		"bindings": map[string]interface{}{"P": 1000, "r": 0.05, "n": 1, "t": 2},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.InDelta(t, 1102.5, body["data"].(map[string]interface{})["result"], 1e-9)

	w, body = do(t, router, http.MethodPost, "/formulas/evaluate", map[string]interface{}{
		"template": "P * (1 + r)",
		"bindings": map[string]interface{}{"P": 1000},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "missing variable: r", body["error"])

	w, body = do(t, router, http.MethodPost, "/formulas/variables", map[string]interface{}{"template": "sqrt(a^2 + b^2)"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{"a", "b"}, body["data"].(map[string]interface{})["variables"])

	w, body = do(t, router, http.MethodGet, "/formulas?q=interest", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(3), body["count"])

	w, body = do(t, router, http.MethodGet, "/formulas", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, body["subjects"])

	w, body = do(t, router, http.MethodGet, "/formulas/subjects/geometry", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "geometry", body["subject"].(map[string]interface{})["key"])

	w, _ = do(t, router, http.MethodGet, "/formulas/subjects/alchemy", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSavedFormulasAndFavorites(t *testing.T) {
	router := newTestRouter(t)

	w, body := do(t, router, http.MethodPost, "/formulas", map[string]interface{}{
		"name":     "Kinetic energy",
		"template": "0.5 * m * v^2",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	saved := body["formula"].(map[string]interface{})
	assert.Equal(t, []interface{}{"m", "v"}, saved["variables"])

	w, body = do(t, router, http.MethodGet, "/formulas/saved", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["formulas"], 1)

	w, body = do(t, router, http.MethodPost, "/favorites", map[string]interface{}{"formula_id": saved["id"]})
	require.Equal(t, http.StatusCreated, w.Code)
	favoriteID := body["favorite"].(map[string]interface{})["id"].(string)

	w, _ = do(t, router, http.MethodPost, "/favorites", map[string]interface{}{"formula_id": "unknown"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, body = do(t, router, http.MethodGet, "/favorites", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["favorites"], 1)

	w, _ = do(t, router, http.MethodDelete, "/favorites/"+favoriteID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, router, http.MethodDelete, "/favorites/"+favoriteID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(t, router, http.MethodPost, "/formulas", map[string]interface{}{"name": "No template"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecentTopics(t *testing.T) {
	router := newTestRouter(t)

	do(t, router, http.MethodPost, "/topics/recent", map[string]interface{}{"topic": "algebra"})
	w, body := do(t, router, http.MethodPost, "/topics/recent", map[string]interface{}{"topic": "geometry"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{"geometry", "algebra"}, body["recent_topics"])

	w, _ = do(t, router, http.MethodPost, "/topics/recent", map[string]interface{}{"topic": "<p></p>"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
