package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vyoma/domain"
)

type CatalogHandler struct {
	catalogUC domain.CatalogUseCase
}

func NewCatalogHandler(r *gin.Engine, catalogUC domain.CatalogUseCase) {
	handler := &CatalogHandler{catalogUC: catalogUC}

	api := r.Group("/api")
	{
		api.GET("/opportunities", handler.ListOpportunities)
		api.GET("/companies", handler.ListCompanies)
		api.GET("/placements", handler.ListPlacements)
	}
}

func (h *CatalogHandler) ListOpportunities(c *gin.Context) {
	opportunities, err := h.catalogUC.ListOpportunities(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to load opportunities",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"opportunities": opportunities})
}

func (h *CatalogHandler) ListCompanies(c *gin.Context) {
	companies, err := h.catalogUC.ListCompanies(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to load companies",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

func (h *CatalogHandler) ListPlacements(c *gin.Context) {
	placements, err := h.catalogUC.ListPlacements(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to load placements",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"placements": placements})
}
