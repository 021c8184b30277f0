package handlers

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jwoo-dev/tripnote-backend/config"
	"github.com/jwoo-dev/tripnote-backend/models"
	"github.com/jwoo-dev/tripnote-backend/utils"
)

// ServiceName identifies this API in the health response
const ServiceName = "tripnote-api"

// extractSecret reads the shared secret from either accepted header.
func extractSecret(c *gin.Context) string {
	if secret := c.GetHeader("X-App-Password"); secret != "" {
		return secret
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// secretMatches compares a candidate against the configured secret in
// constant time.
func secretMatches(candidate string) bool {
	expected := config.Get().AppPassword
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(expected)) == 1
}

// RequireAuth gates /api routes behind the shared secret. An empty configured
// secret disables the gate entirely (local development).
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.Get().AppPassword == "" {
			c.Next()
			return
		}
		if !secretMatches(extractSecret(c)) {
			utils.HandleError(c, utils.NewUnauthorizedError("Missing or incorrect password"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// VerifyPassword handles POST /auth/verify
func VerifyPassword(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}

	password, err := utils.RequiredString(body, "password", "password")
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	if config.Get().AppPassword != "" && !secretMatches(password) {
		utils.HandleError(c, utils.NewUnauthorizedError("Incorrect password"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// HealthCheck handles GET /health
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"service": ServiceName,
		"now":     models.Now(),
	})
}
