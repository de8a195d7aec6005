package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/partidos/partidos-service/internal/status/repository"
	"github.com/partidos/partidos-service/pkg/logger"
)

// RegisterRoutes mounts the read-only quota status listing.
func RegisterRoutes(r gin.IRouter, repo repository.Repository) {
	r.GET("/status", func(c *gin.Context) {
		list, err := repo.List(c.Request.Context())
		if err != nil {
			logger.Errorf("list status: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener los datos"})
			return
		}
		c.JSON(http.StatusOK, list)
	})
}
