package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/walavie/walavie-site/pkg/config"
	"github.com/walavie/walavie-site/pkg/logger"
)

const APIKeyHeader = "X-API-Key"

func APIKeyAuth(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.APIServer.Auth.Enabled {
			c.Next()
			return
		}

		apiKey := c.GetHeader(APIKeyHeader)

		if apiKey == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "API key required",
			})
			return
		}

		valid := false
		for _, validKey := range cfg.APIServer.Auth.APIKeys {
			if subtle.ConstantTimeCompare([]byte(apiKey), []byte(validKey)) == 1 {
				valid = true
				break
			}
		}

		if !valid {
			logger.Logger(c.Request.Context()).WithField("path", c.Request.URL.Path).Warn("rejected request with invalid API key")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid API key",
			})
			return
		}

		logger.Logger(c.Request.Context()).Debug("API request authenticated")
		c.Next()
	}
}
