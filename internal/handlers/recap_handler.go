package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "kasiswa/internal/errors"
	"kasiswa/internal/services"
)

// RecapHandler handles the yearly payment recap.
type RecapHandler struct {
	recapService services.RecapServicer
}

// NewRecapHandler creates a new RecapHandler.
func NewRecapHandler(recapService services.RecapServicer) *RecapHandler {
	return &RecapHandler{recapService: recapService}
}

// GetRecap handles the retrieval of the payment recap for a year.
// The year defaults to the current year when not provided.
func (h *RecapHandler) GetRecap(c *gin.Context) {
	year := time.Now().Year()
	if v := c.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid year"))
			return
		}
		if parsed < 2020 || parsed > 2030 {
			respondWithError(c, apperrors.ErrInvalidPaymentYear)
			return
		}
		year = parsed
	}

	recap, err := h.recapService.GetRecap(year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recap": recap})
}
