package http

import (
	"github.com/gin-gonic/gin"
)

// fail aborts with the failed-result body shape
func fail(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}

// ok writes a successful result with data merged at the top level
func ok(c *gin.Context, status int, data gin.H) {
	body := gin.H{"success": true}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(status, body)
}
