package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Convert converts a value between units. The body matches the
// math.convert tool parameters.
func (h *Handlers) Convert(c *gin.Context) {
	var params map[string]interface{}
	if err := c.ShouldBindJSON(&params); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	h.execute(c, "math.convert", params)
}

// ListUnits lists every conversion category
func (h *Handlers) ListUnits(c *gin.Context) {
	h.execute(c, "math.units", map[string]interface{}{})
}

// GetUnits lists the units of one category
func (h *Handlers) GetUnits(c *gin.Context) {
	h.execute(c, "math.units", map[string]interface{}{"category": c.Param("category")})
}
