package main

import (
	"compress/gzip"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/janime/gojanime/internal/config"
	"github.com/janime/gojanime/internal/handlers"
	"github.com/janime/gojanime/internal/resolver"
	"github.com/janime/gojanime/pkg/logger"
)

// GzipResponseWriter wraps gin.ResponseWriter to provide gzip compression
type GzipResponseWriter struct {
	gin.ResponseWriter
	gzipWriter *gzip.Writer
}

func (w *GzipResponseWriter) Write(data []byte) (int, error) {
	return w.gzipWriter.Write(data)
}

func (w *GzipResponseWriter) WriteString(s string) (int, error) {
	return w.gzipWriter.Write([]byte(s))
}

// GzipMiddleware provides gzip compression for responses
func GzipMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.Contains(c.GetHeader("Accept-Encoding"), "gzip") {
			c.Next()
			return
		}

		c.Header("Content-Encoding", "gzip")
		c.Header("Vary", "Accept-Encoding")

		gzipWriter := gzip.NewWriter(c.Writer)
		defer func() {
			if err := gzipWriter.Close(); err != nil {
				log.Errorf("[App] failed to close gzip writer: %v", err)
			}
		}()

		c.Writer = &GzipResponseWriter{
			ResponseWriter: c.Writer,
			gzipWriter:     gzipWriter,
		}

		c.Next()
	}
}

func main() {
	// Load .env before reading any configuration
	_ = godotenv.Load()

	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[App] invalid configuration: %v", err)
	}

	container, err := buildServices(cfg, log)
	if err != nil {
		log.Fatalf("[App] failed to initialize services: %v", err)
	}

	r := gin.Default()
	r.Use(GzipMiddleware(log))

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Next()
	})

	handler := handlers.New(resolver.New(container), log)
	handler.RegisterRoutes(r)

	log.Infof("[App] starting HTTP server on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("[App] HTTP server failed: %v", err)
	}
}
