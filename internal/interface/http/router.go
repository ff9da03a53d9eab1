package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/yt-summarizer/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *SummaryHandler, errTable *ErrorTable) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		recovery(errTable, handler.logger),
		requestID(),
		requestLogger(handler.logger),
		corsMiddleware(cfg.CORS.AllowedOrigins),
		errorHandlingMiddleware(errTable, handler.logger),
	)

	router.POST("/summarize", handler.Summarize)
	router.GET("/healthz", handler.Health)
	router.NoRoute(func(c *gin.Context) {
		abortWithError(c, NewHTTPError(http.StatusNotFound, "not_found", "", nil))
	})

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
