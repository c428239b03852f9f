package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"astrodash/internal/models"
	"astrodash/internal/service"
)

type LinksHandler struct {
	service service.LinksService
}

func NewLinksHandler(service service.LinksService) *LinksHandler {
	return &LinksHandler{service: service}
}

func (h *LinksHandler) GetLinks(c *gin.Context) {
	links, err := h.service.GetLinks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to read links file",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.LinksResponse{Links: links})
}
