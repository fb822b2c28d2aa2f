package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saiharsha-plivo/money-manager/internal/dto"
	"github.com/saiharsha-plivo/money-manager/internal/registry"
)

// referenceHandler serves the static currency and category registries.
type referenceHandler struct{}

// registerReferenceRoutes registers the registry lookup routes. The data is
// static, so the routes sit outside the authenticated group.
func registerReferenceRoutes(r *gin.Engine) {
	h := &referenceHandler{}
	r.GET("/api/v1/currencies", h.listCurrencies)
	r.GET("/api/v1/currencies/:currencyID", h.getCurrency)
	r.GET("/api/v1/categories", h.listCategories)
	r.GET("/api/v1/categories/:categoryID", h.getCategory)
}

// listCurrencies godoc
// @Summary List currencies
// @Description Lists the currency registry.
// @Tags reference
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Router /currencies [get]
func (h *referenceHandler) listCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToCurrencyResponses(registry.Currencies()))
}

// getCurrency godoc
// @Summary Get a currency
// @Description Looks up a single currency by registry id.
// @Tags reference
// @Produce json
// @Param currencyID path string true "Currency ID"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} ErrorResponse
// @Router /currencies/{currencyID} [get]
func (h *referenceHandler) getCurrency(c *gin.Context) {
	id := c.Param("currencyID")
	currency, err := registry.LookupCurrency(id)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Unknown currency id"})
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(id, currency))
}

// listCategories godoc
// @Summary List categories
// @Description Lists the record category registry.
// @Tags reference
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Router /categories [get]
func (h *referenceHandler) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToCategoryResponses(registry.Categories()))
}

// getCategory godoc
// @Summary Get a category
// @Description Looks up a single record category by registry id.
// @Tags reference
// @Produce json
// @Param categoryID path string true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} ErrorResponse
// @Router /categories/{categoryID} [get]
func (h *referenceHandler) getCategory(c *gin.Context) {
	id := c.Param("categoryID")
	category, err := registry.LookupCategory(id)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Unknown category id"})
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(id, category))
}
