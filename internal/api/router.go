package api

import (
	"net/http"
	"strings"

	"product-compare/internal/api/handlers"
	"product-compare/internal/api/middleware"
	"product-compare/internal/api/models"
	"product-compare/internal/config"
	"product-compare/internal/session"
	"product-compare/internal/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires the HTML pages and the JSON API over store.
func NewRouter(cfg *config.Config, store *session.Store, logger *zap.Logger) (*gin.Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(middleware.ErrorHandler(logger.Named("recovery")))
	router.Use(middleware.Logger(logger.Named("http")))
	router.Use(middleware.Session())

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)
	router.StaticFS("/static", http.FS(web.Static()))

	pageHandler := handlers.NewPageHandler(store, cfg.UI.RevealDelay, logger.Named("pages"))
	productHandler := handlers.NewProductHandler(store, logger.Named("products"))
	rankHandler := handlers.NewRankHandler(store)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/", pageHandler.Index)
	router.POST("/products", pageHandler.AddProduct)
	router.POST("/calculate", pageHandler.Calculate)
	router.POST("/clear", pageHandler.Clear)
	router.POST("/language", pageHandler.ToggleLanguage)

	// API routes
	api := router.Group("/api/v1")
	api.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	{
		api.GET("/state", productHandler.GetState)
		api.POST("/products", productHandler.AddProduct)
		api.DELETE("/products", productHandler.ClearProducts)
		api.GET("/products/ranked", rankHandler.RankProducts)
		api.GET("/products.csv", productHandler.ExportCSV)
		api.POST("/calculate", productHandler.Calculate)
		api.POST("/language/toggle", productHandler.ToggleLanguage)
		// Preflight requests are answered by the CORS middleware.
		api.OPTIONS("/*path", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	}

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: models.ErrorDetail{Code: "NOT_FOUND", Message: "Not found"},
			})
			return
		}
		c.Redirect(http.StatusSeeOther, "/")
	})

	return router, nil
}
