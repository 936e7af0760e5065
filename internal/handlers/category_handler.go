package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"duitku/internal/catalog"
	apperrors "duitku/internal/errors"
	"duitku/internal/models"
)

// CategoryHandler serves the static category catalog.
type CategoryHandler struct{}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// ListCategories returns the catalog, optionally restricted to one type.
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	if v := c.Query("type"); v != "" {
		t := models.TransactionType(v)
		if !t.Valid() {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid type, must be income or expense"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"categories": catalog.ByType(t)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": catalog.All()})
}

// GetCategoryByID resolves one catalog entry.
func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	entry, ok := catalog.Lookup(c.Param("id"))
	if !ok {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrNotFound, "Category not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": entry})
}
