package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// corsMiddleware allows the configured origins. A "*" entry allows every
// origin; browser extension origins are accepted so the extension client can
// be listed explicitly. Requests from other origins are served without any
// Access-Control-Allow-* headers, leaving the browser to withhold the response.
func corsMiddleware(allowed []string) gin.HandlerFunc {
	cfg := corsConfig(allowed)
	handler := cors.New(cfg)
	if cfg.AllowAllOrigins {
		return handler
	}
	permitted := make(map[string]struct{}, len(cfg.AllowOrigins))
	for _, origin := range cfg.AllowOrigins {
		permitted[origin] = struct{}{}
	}
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if _, ok := permitted[origin]; origin != "" && !ok {
			c.Next()
			return
		}
		handler(c)
	}
}

func corsConfig(allowed []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:           []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:           []string{"Origin", "Content-Type", "Authorization", requestIDHeader},
		ExposeHeaders:          []string{requestIDHeader},
		AllowBrowserExtensions: true,
		MaxAge:                 12 * time.Hour,
	}
	if len(allowed) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	for _, origin := range allowed {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = allowed
	return cfg
}
