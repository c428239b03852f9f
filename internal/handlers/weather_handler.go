package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"astrodash/internal/service"
)

type WeatherHandler struct {
	service service.WeatherService
}

func NewWeatherHandler(service service.WeatherService) *WeatherHandler {
	return &WeatherHandler{service: service}
}

func (h *WeatherHandler) GetWeather(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "query parameter 'q' is required (city name or lat,lon)",
		})
		return
	}

	current, err := h.service.GetCurrent(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "failed to get weather",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, current)
}
