package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumicraft/docmailer/interfaces"
)

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Status reports whether the delivery provider is reachable with the
// configured credentials.
func Status(deliverer interfaces.EmailDeliverer) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := deliverer.VerifyConnection(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusOK, gin.H{
				"deliveryProvider": "unavailable",
				"error":            err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"deliveryProvider": "ok",
		})
	}
}
