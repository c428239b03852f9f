package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"astrodash/internal/models"
	"astrodash/internal/service"
)

type AstroHandler struct {
	service service.AstroService
}

func NewAstroHandler(service service.AstroService) *AstroHandler {
	return &AstroHandler{service: service}
}

// RegisterValidations вешает кастомные правила на валидатор gin'а.
// Вызывается один раз из main до регистрации роутов.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("iso8601date", func(fl validator.FieldLevel) bool {
			_, err := time.Parse("2006-01-02", fl.Field().String())
			return err == nil
		})
	}
}

func (h *AstroHandler) GetAstro(c *gin.Context) {
	var query models.AstroQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid query parameters",
			"message": err.Error(),
		})
		return
	}

	resp, err := h.service.GetAstro(c.Request.Context(), query)
	if err != nil {
		// Дата и таймзона — клиентские ошибки, лунный сбой — серверная.
		switch {
		case errors.Is(err, service.ErrInvalidDate), errors.Is(err, service.ErrBadTimezone):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "astro computation failed",
				"message": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
