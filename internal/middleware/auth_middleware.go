package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// CredentialKey is the context key holding the raw Authorization value
const CredentialKey = "credential"

// CredentialExtractor copies the Authorization header into the context.
// Query parameters are never read, so credentials stay out of URLs and
// request logs. Nothing is rejected here; an absent credential is legal on
// some routes.
func CredentialExtractor() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(CredentialKey, strings.TrimSpace(c.GetHeader("Authorization")))
		c.Next()
	}
}

// Credential returns the credential stored by CredentialExtractor, falling
// back to the Authorization header when the middleware did not run.
func Credential(c *gin.Context) string {
	if v, ok := c.Get(CredentialKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return strings.TrimSpace(c.GetHeader("Authorization"))
}
