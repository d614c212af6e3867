package server

import (
	"fmt"
	"net/http"
	"time"

	_ "barcode-scanner/docs"
	"barcode-scanner/internal/config"
	"barcode-scanner/internal/database"
	custommiddleware "barcode-scanner/internal/middleware"
	"barcode-scanner/internal/repository"
	"barcode-scanner/internal/service"
	"barcode-scanner/internal/transport"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	Catalog service.CatalogService
	config  *config.Config
	logger  *zap.Logger
	db      database.Service
}

// NewServer wires the postgres repositories and the catalog service into a server
func NewServer(cfg *config.Config, logger *zap.Logger, db database.Service) *Server {
	products := repository.NewProductRepository(db.DB(), cfg.Database.QueryTimeout)
	brands := repository.NewBrandRepository(db.DB(), cfg.Database.QueryTimeout)

	catalog := service.NewCatalogService(products, brands, logger,
		service.WithLocation(cfg.Catalog.Location()),
		service.WithUpdateMode(service.UpdateMode(cfg.Catalog.UpdateMode)),
	)

	return New(cfg, logger, db, catalog)
}

// New builds the router around an already constructed catalog service
func New(cfg *config.Config, logger *zap.Logger, db database.Service, catalog service.CatalogService) *Server {
	router := chi.NewRouter()

	metrics := custommiddleware.NewMetrics()

	// Add basic middleware
	for _, mw := range custommiddleware.DefaultMiddlewareStack() {
		router.Use(mw)
	}
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(cfg.Server.AllowedOrigins, cfg.Server.IsDevelopment()))
	router.Use(metrics.Middleware)

	router.NotFound(custommiddleware.NotFoundHandler)
	router.MethodNotAllowed(custommiddleware.NotFoundHandler)

	// Initialize handlers
	healthHandler := transport.NewHealthHandler(db, logger)
	productHandler := transport.NewProductHandler(catalog, cfg.Catalog.DefaultExpiringDays, logger)
	brandHandler := transport.NewBrandHandler(catalog, logger)

	// Register routes
	router.Route("/api", func(r chi.Router) {
		healthHandler.RegisterRoutes(r)
		productHandler.RegisterRoutes(r)
		brandHandler.RegisterRoutes(r)
	})

	router.Handle("/metrics", metrics.Handler())
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Catalog: catalog,
		config:  cfg,
		logger:  logger,
		db:      db,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
			return err
		}
	}

	return nil
}
