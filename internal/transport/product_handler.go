package transport

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"barcode-scanner/internal/middleware"
	"barcode-scanner/internal/repository"
	"barcode-scanner/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ScanRequest represents the scan request payload
type ScanRequest struct {
	Barcode string `json:"barcode" validate:"required" example:"8901030745649"`
}

// CreatedResponse carries the id of a newly created row
type CreatedResponse struct {
	ID int64 `json:"id"`
}

// ProductHandler handles HTTP requests for product operations
type ProductHandler struct {
	catalog     service.CatalogService
	defaultDays int
	logger      *zap.Logger
}

// NewProductHandler creates a new ProductHandler.
// defaultDays is the expiring-soon window used when the request does not name one.
func NewProductHandler(catalog service.CatalogService, defaultDays int, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		catalog:     catalog,
		defaultDays: defaultDays,
		logger:      logger,
	}
}

// RegisterRoutes registers all product routes. Fixed sub-paths come before /{barcode}.
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Post("/scan", h.Scan)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/expired", h.ListExpired)
		r.Get("/expiring-soon", h.ListExpiringSoon)
		r.Get("/search", h.Search)
		r.Get("/brand/{brand}", h.ListByBrand)
		r.Get("/{id}/alternates", h.Alternates)
		r.Get("/{barcode}", h.GetByBarcode)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// respondError maps service and repository errors onto the error envelopes
func respondError(w http.ResponseWriter, logger *zap.Logger, err error, received any) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		logger.Debug("Request rejected", zap.String("reason", ve.Message))
		middleware.RespondWithErrorDetails(w, http.StatusBadRequest, ve.Message, received)
	case errors.Is(err, repository.ErrProductNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, repository.ErrProductAlreadyExists):
		middleware.RespondWithError(w, http.StatusConflict, "Product with this barcode already exists")
	case errors.Is(err, repository.ErrBrandAlreadyExists):
		middleware.RespondWithError(w, http.StatusConflict, "Brand already exists")
	case errors.Is(err, repository.ErrValueOutOfRange):
		middleware.RespondWithErrorDetails(w, http.StatusBadRequest, "Numeric value out of range", received)
	default:
		logger.Error("Request failed", zap.Error(err))
		middleware.RespondWithInternalError(w, err)
	}
}

// pathParam returns a decoded path parameter. chi matches against RawPath when
// the request has one, so only then is the value still escaped.
func pathParam(r *http.Request, key string) string {
	value := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return value
	}
	if v, err := url.PathUnescape(value); err == nil {
		return v
	}
	return value
}

func parseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &service.ValidationError{Message: "Invalid product id"}
	}
	return id, nil
}

// Scan handles barcode lookups
// @Summary scan a barcode
// @Description look up a product by barcode and report alternates and freshness
// @Tags products
// @Accept json
// @Produce json
// @Param request body ScanRequest true "barcode to look up"
// @Success 200 {object} middleware.SuccessResponse{data=domain.EnrichedProduct}
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /scan [post]
func (h *ProductHandler) Scan(w http.ResponseWriter, r *http.Request) {
	var req ScanRequest

	received, err := middleware.DecodeAndValidate(w, r, &req)
	if err != nil {
		h.logger.Debug("Scan validation failed",
			zap.Error(err),
			zap.Any("validation_errors", middleware.FormatValidationErrors(err)),
		)
		middleware.RespondWithErrorDetails(w, http.StatusBadRequest, "Barcode is required", received)
		return
	}

	product, err := h.catalog.Scan(r.Context(), req.Barcode)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			h.logger.Debug("Product not found", zap.String("barcode", req.Barcode))
			middleware.RespondWithJSON(w, http.StatusNotFound, middleware.ErrorResponse{
				Message: "Product not found",
				Barcode: req.Barcode,
			})
			return
		}
		respondError(w, h.logger, err, received)
		return
	}

	middleware.RespondWithData(w, http.StatusOK, product)
}

// List returns every product
// @Summary list products
// @Tags products
// @Produce json
// @Success 200 {object} middleware.SuccessResponse{data=[]domain.Product}
// @Failure 500 {object} middleware.ErrorResponse
// @Router /products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		respondError(w, h.logger, err, nil)
		return
	}
	middleware.RespondWithList(w, products, nil)
}

// Create adds a product
// @Summary add a product
// @Tags products
// @Accept json
// @Produce json
// @Param product body service.ProductInput true "product"
// @Success 201 {object} middleware.SuccessResponse{data=CreatedResponse}
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /products [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.ProductInput

	received, err := middleware.DecodeAndValidate(w, r, &input)
	if err != nil {
		h.logger.Debug("Product payload rejected", zap.Error(err))
		middleware.RespondWithErrorDetails(w, http.StatusBadRequest, "Invalid product payload", received)
		return
	}

	product, err := h.catalog.CreateProduct(r.Context(), &input)
	if err != nil {
		respondError(w, h.logger, err, received)
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, middleware.SuccessResponse{
		Success: true,
		Data:    CreatedResponse{ID: product.ID},
		Message: "Product added successfully",
	})
}

// ListExpired returns products past their expiry date
// @Summary list expired products
// @Tags products
// @Produce json
// @Success 200 {object} middleware.SuccessResponse{data=[]domain.EnrichedProduct}
// @Failure 500 {object} middleware.ErrorResponse
// @Router /products/expired [get]
func (h *ProductHandler) ListExpired(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListExpired(r.Context())
	if err != nil {
		respondError(w, h.logger, err, nil)
		return
	}
	middleware.RespondWithList(w, products, nil)
}

// ListExpiringSoon returns products expiring within the requested number of days
// @Summary list products expiring soon
// @Tags products
// @Produce json
// @Param days query int false "window in days" default(7) minimum(0) maximum(36500)
// @Success 200 {object} middleware.SuccessResponse{data=[]domain.EnrichedProduct}
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /products/expiring-soon [get]
func (h *ProductHandler) ListExpiringSoon(w http.ResponseWriter, r *http.Request) {
	days := h.defaultDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			middleware.RespondWithErrorDetails(w, http.StatusBadRequest,
				"Days must be a non-negative integer", map[string]string{"days": raw})
			return
		}
		days = n
	}

	products, err := h.catalog.ListExpiringSoon(r.Context(), days)
	if err != nil {
		respondError(w, h.logger, err, map[string]int{"days": days})
		return
	}
	middleware.RespondWithList(w, products, map[string]any{"daysRange": days})
}

// Search matches products by name or brand
// @Summary search products
// @Tags products
// @Produce json
// @Param q query string true "search term"
// @Success 200 {object} middleware.SuccessResponse{data=[]domain.Product}
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /products/search [get]
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")

	products, err := h.catalog.Search(r.Context(), term)
	if err != nil {
		respondError(w, h.logger, err, nil)
		return
	}
	middleware.RespondWithList(w, products, map[string]any{"searchTerm": term})
}

// ListByBrand returns the products of one brand
// @Summary list products by brand
// @Tags products
// @Produce json
// @Param brand path string true "brand name"
// @Success 200 {object} middleware.SuccessResponse{data=[]domain.Product}
// @Failure 500 {object} middleware.ErrorResponse
// @Router /products/brand/{brand} [get]
func (h *ProductHandler) ListByBrand(w http.ResponseWriter, r *http.Request) {
	brand := pathParam(r, "brand")

	products, err := h.catalog.ListByBrand(r.Context(), brand)
	if err != nil {
		respondError(w, h.logger, err, nil)
		return
	}
	middleware.RespondWithList(w, products, map[string]any{"brand": brand})
}

// Alternates returns the alternate barcodes of a product
// @Summary list alternate barcodes
// @Tags products
// @Produce json
// @Param id path int true "product id"
// @Success 200 {object} middleware.SuccessResponse{data=[]string}
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /products/{id}/alternates [get]
func (h *ProductHandler) Alternates(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, h.logger, err, map[string]string{"id": chi.URLParam(r, "id")})
		return
	}

	alternates, err := h.catalog.Alternates(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err, nil)
		return
	}
	middleware.RespondWithData(w, http.StatusOK, alternates)
}

// GetByBarcode returns the stored product without enrichment
// @Summary get a product by barcode
// @Tags products
// @Produce json
// @Param barcode path string true "barcode"
// @Success 200 {object} middleware.SuccessResponse{data=domain.Product}
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /products/{barcode} [get]
func (h *ProductHandler) GetByBarcode(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.GetByBarcode(r.Context(), pathParam(r, "barcode"))
	if err != nil {
		respondError(w, h.logger, err, nil)
		return
	}
	middleware.RespondWithData(w, http.StatusOK, product)
}

// Update rewrites a product
// @Summary update a product
// @Description replace mode nulls omitted fields, merge mode keeps them
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "product id"
// @Param mode query string false "replace or merge"
// @Param product body service.ProductInput true "product"
// @Success 200 {object} middleware.SuccessResponse{data=domain.Product}
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /products/{id} [put]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, h.logger, err, map[string]string{"id": chi.URLParam(r, "id")})
		return
	}

	var input service.ProductInput
	received, err := middleware.DecodeAndValidate(w, r, &input)
	if err != nil {
		h.logger.Debug("Product payload rejected", zap.Error(err))
		middleware.RespondWithErrorDetails(w, http.StatusBadRequest, "Invalid product payload", received)
		return
	}

	mode, err := service.ParseUpdateMode(r.URL.Query().Get("mode"), h.catalog.DefaultUpdateMode())
	if err != nil {
		respondError(w, h.logger, err, received)
		return
	}

	product, err := h.catalog.UpdateProduct(r.Context(), id, &input, mode)
	if err != nil {
		respondError(w, h.logger, err, received)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, middleware.SuccessResponse{
		Success: true,
		Data:    product,
		Message: "Product updated successfully",
	})
}

// Delete removes a product
// @Summary delete a product
// @Tags products
// @Produce json
// @Param id path int true "product id"
// @Success 200 {object} middleware.SuccessResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondError(w, h.logger, err, map[string]string{"id": chi.URLParam(r, "id")})
		return
	}

	if err := h.catalog.DeleteProduct(r.Context(), id); err != nil {
		respondError(w, h.logger, err, nil)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, middleware.SuccessResponse{
		Success: true,
		Message: "Product deleted successfully",
	})
}
