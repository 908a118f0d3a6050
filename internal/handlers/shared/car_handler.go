package handlers

import (
	"errors"

	"carhub/internal/filters"
	"carhub/internal/models"
	"carhub/internal/repositories/interfaces"
	"carhub/internal/services"
	"carhub/internal/utils"

	"github.com/gin-gonic/gin"
)

type CarHandler struct {
	catalog services.CatalogService
	compare services.CompareService
	debug   bool
}

func NewCarHandler(catalog services.CatalogService, compare services.CompareService, debug bool) *CarHandler {
	return &CarHandler{
		catalog: catalog,
		compare: compare,
		debug:   debug,
	}
}

// ListCars serves the filtered, sorted, paginated catalog listing.
func (h *CarHandler) ListCars(c *gin.Context) {
	result, err := h.catalog.List(c.Request.Context(), flattenQuery(c))
	if err != nil {
		h.renderError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// GetCar serves a single record by id.
func (h *CarHandler) GetCar(c *gin.Context) {
	car, err := h.catalog.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	utils.OKResponse(c, car)
}

// CompareCars aligns 2 to 4 records against the fixed specification schema.
func (h *CarHandler) CompareCars(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.compare.Compare(c.Request.Context(), &req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// GetBrands serves the distinct sorted brand list.
func (h *CarHandler) GetBrands(c *gin.Context) {
	brands, err := h.catalog.Brands(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	utils.OKResponse(c, gin.H{"brands": brands})
}

// GetFeatured serves flagged records, or the configured fallback list.
func (h *CarHandler) GetFeatured(c *gin.Context) {
	cars, err := h.catalog.Featured(c.Request.Context(), c.Query("limit"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	utils.OKResponse(c, cars)
}

// renderError maps domain errors onto the taxonomy: invalid input 400, absent
// records 404, store connectivity 503, everything else 500.
func (h *CarHandler) renderError(c *gin.Context, err error) {
	var invalidFilter *filters.InvalidFilterError
	var invalidRequest *services.InvalidRequestError
	var notFound *services.NotFoundError

	switch {
	case errors.As(err, &invalidFilter):
		utils.BadRequestResponse(c, invalidFilter.Error())
	case errors.As(err, &invalidRequest):
		utils.BadRequestResponse(c, invalidRequest.Error())
	case errors.As(err, &notFound):
		utils.NotFoundResponse(c, notFound.Error(), notFound.Missing)
	case errors.Is(err, interfaces.ErrNotFound):
		utils.NotFoundResponse(c, utils.ErrNotFound, nil)
	case errors.Is(err, interfaces.ErrUnavailable):
		utils.ServiceUnavailableResponse(c)
	default:
		utils.InternalErrorResponse(c, err, h.debug)
	}
}

// flattenQuery keeps the first value of each query parameter; repeated
// parameters beyond the first are ignored.
func flattenQuery(c *gin.Context) map[string]string {
	params := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return params
}
