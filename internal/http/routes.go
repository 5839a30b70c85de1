package http

import (
	"github.com/gin-gonic/gin"
)

// Register mounts every handler on router
func (h *Handlers) Register(router gin.IRouter) {
	router.GET("/", h.Root)
	router.GET("/health", h.Health)
	router.GET("/metrics/json", h.MetricsJSON)

	// Services
	router.GET("/services", h.ListServices)
	router.POST("/services/discover", h.DiscoverServices)
	router.POST("/services/execute", h.ExecuteService)

	// Problems
	router.POST("/problems/solve", h.SolveProblem)
	router.POST("/problems/classify", h.ClassifyProblem)
	router.POST("/solutions/:id/reveal", h.RevealSolution)
	router.GET("/history", h.GetHistory)

	// Units
	router.POST("/convert", h.Convert)
	router.GET("/units", h.ListUnits)
	router.GET("/units/:category", h.GetUnits)

	// Formulas
	router.POST("/calculate", h.Calculate)
	router.POST("/formulas/evaluate", h.EvaluateFormula)
	router.POST("/formulas/variables", h.ExtractVariables)
	router.GET("/formulas", h.ListFormulas)
	router.GET("/formulas/subjects/:subject", h.GetSubject)
	router.POST("/formulas", h.SaveFormula)
	router.GET("/formulas/saved", h.ListSavedFormulas)

	// Favorites and topics
	router.POST("/favorites", h.AddFavorite)
	router.GET("/favorites", h.ListFavorites)
	router.DELETE("/favorites/:id", h.RemoveFavorite)
	router.POST("/topics/recent", h.AddRecentTopic)
}
