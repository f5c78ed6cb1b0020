package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Service identity reported on the root route.
const (
	ServiceName    = "stock-gateway"
	ServiceVersion = "1.0.0"
	APIPrefix      = "/api/v1"
)

// Root reports service metadata so callers can discover the API prefix.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": ServiceName,
		"version": ServiceVersion,
		"prefix":  APIPrefix,
		"status":  "ok",
	})
}
