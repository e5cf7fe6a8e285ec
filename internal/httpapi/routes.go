package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// SetupRoutes mounts the REST API on r.
func SetupRoutes(r *gin.Engine, h *Handler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "time": time.Now().UTC()})
	})

	api := r.Group("/api")
	api.GET("/champions", h.listChampions)
	api.POST("/sessions", h.createSession)

	sess := api.Group("/sessions/:code")
	sess.GET("", h.getSession)
	sess.DELETE("", h.deleteSession)
	sess.GET("/qr.png", h.qr)
	sess.PUT("/config", h.configure)
	sess.PUT("/players/:slot", h.setName)
	sess.POST("/players/:slot/reroll", h.reroll)
	sess.POST("/generate", h.generate)
	sess.POST("/reset", h.reset)
}

// AccessLog logs one line per request, skipping socket.io polling noise.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/socket.io") {
			return
		}
		log.Info().Str("method", c.Request.Method).Str("path", path).Int("status", c.Writer.Status()).Dur("dur", time.Since(start)).Msg("http")
	}
}
