package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/partidos/partidos-service/internal/partido"
	"github.com/partidos/partidos-service/internal/partido/service"
	"github.com/partidos/partidos-service/pkg/logger"
)

// RegisterRoutes mounts the fixture CRUD endpoints consumed by the browser page.
func RegisterRoutes(r gin.IRouter, svc service.Service) {
	h := &partidosHandler{svc: svc}
	r.GET("/partidos", h.list)
	r.POST("/partidos", h.create)
	r.PUT("/partidos/:id", h.update)
	r.DELETE("/partidos/:id", h.delete)
}

type partidosHandler struct {
	svc service.Service
}

func (h *partidosHandler) list(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		logger.Errorf("list partidos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener los partidos"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *partidosHandler) create(c *gin.Context) {
	var p partido.Partido
	if err := c.ShouldBindJSON(&p); err != nil {
		logger.Errorf("create partido: decode body: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al guardar el partido"})
		return
	}
	created, err := h.svc.Create(c.Request.Context(), &p)
	if err != nil {
		logger.Errorf("create partido: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al guardar el partido"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"mensaje": "Partido agregado con éxito", "partido": created})
}

func (h *partidosHandler) update(c *gin.Context) {
	var pt partido.Patch
	if err := c.ShouldBindJSON(&pt); err != nil {
		// missing blocks are a 400; a body that does not decode is a 500
		var missing validator.ValidationErrors
		if errors.As(err, &missing) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Datos incompletos para actualizar el partido."})
			return
		}
		logger.Errorf("update partido %s: decode body: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor."})
		return
	}
	p, err := h.svc.Update(c.Request.Context(), c.Param("id"), pt)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Partido actualizado correctamente.", "partido": p})
	case errors.Is(err, service.ErrIncomplete):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos incompletos para actualizar el partido."})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Partido no encontrado."})
	default:
		logger.Errorf("update partido %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor."})
	}
}

func (h *partidosHandler) delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Partido eliminado correctamente."})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Partido no encontrado."})
	default:
		logger.Errorf("delete partido %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor."})
	}
}
