package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MetricsHandler adapts a prometheus exposition handler to gin.
func MetricsHandler(h http.Handler) gin.HandlerFunc {
	return gin.WrapH(h)
}
