// Package handler provides HTTP handlers for routes that belong to no
// single feature: liveness, service metadata and the stubbed endpoints.
package handler

import "github.com/gin-gonic/gin"

// Health serves the liveness probes. It answers every method, prevents
// caching, and keeps HEAD and OPTIONS bodyless.
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case "HEAD":
		c.Status(200)
	case "OPTIONS":
		c.Status(204)
	default:
		c.JSON(200, gin.H{"status": "ok"})
	}
}
