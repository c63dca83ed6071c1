package middlewares

import (
	"net/http"

	"github.com/EminenceChannel/initializers"

	"github.com/gin-gonic/gin"
)

// CheckStore fails closed when no live store connection exists. Handlers
// behind it can assume initializers.DB is usable.
func CheckStore(c *gin.Context) {
	if initializers.DB == nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Store unavailable. Please try again shortly."})
		return
	}
	c.Next()
}
