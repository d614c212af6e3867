package transport

import (
	"net/http"

	"barcode-scanner/internal/middleware"
	"barcode-scanner/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BrandHandler handles HTTP requests for brand operations
type BrandHandler struct {
	catalog service.CatalogService
	logger  *zap.Logger
}

// NewBrandHandler creates a new BrandHandler
func NewBrandHandler(catalog service.CatalogService, logger *zap.Logger) *BrandHandler {
	return &BrandHandler{catalog: catalog, logger: logger}
}

// RegisterRoutes registers all brand routes
func (h *BrandHandler) RegisterRoutes(r chi.Router) {
	r.Get("/brands", h.List)
	r.Post("/brands", h.Create)
}

// List returns every brand
// @Summary list brands
// @Tags brands
// @Produce json
// @Success 200 {object} middleware.SuccessResponse{data=[]domain.Brand}
// @Failure 500 {object} middleware.ErrorResponse
// @Router /brands [get]
func (h *BrandHandler) List(w http.ResponseWriter, r *http.Request) {
	brands, err := h.catalog.ListBrands(r.Context())
	if err != nil {
		respondError(w, h.logger, err, nil)
		return
	}
	middleware.RespondWithData(w, http.StatusOK, brands)
}

// Create adds a brand
// @Summary add a brand
// @Tags brands
// @Accept json
// @Produce json
// @Param brand body service.BrandInput true "brand"
// @Success 201 {object} middleware.SuccessResponse{data=CreatedResponse}
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /brands [post]
func (h *BrandHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.BrandInput

	received, err := middleware.DecodeAndValidate(w, r, &input)
	if err != nil {
		h.logger.Debug("Brand payload rejected",
			zap.Error(err),
			zap.Any("validation_errors", middleware.FormatValidationErrors(err)),
		)

		message := "Invalid brand payload"
		if input.Name == "" && !middleware.IsDecodeError(err) {
			message = "Brand name is required"
		}
		middleware.RespondWithErrorDetails(w, http.StatusBadRequest, message, received)
		return
	}

	brand, err := h.catalog.CreateBrand(r.Context(), &input)
	if err != nil {
		respondError(w, h.logger, err, received)
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, middleware.SuccessResponse{
		Success: true,
		Data:    CreatedResponse{ID: brand.ID},
		Message: "Brand added successfully",
	})
}
