package api

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"transfleet/internal/repository"
	"transfleet/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db                    *sql.DB
	TransformerRepository repository.TransformerRepository
	ReportService         service.ReportService
	MaintenanceService    service.MaintenanceService
	StatsService          service.StatsService
	Logger                *zap.SugaredLogger

	// flipped once on SIGINT/SIGTERM; every request after that gets 503
	ShuttingDown *atomic.Bool
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.CustomRecovery(m.recoveryHandler))
	router.Use(cors.Default())
	router.Use(m.requestLogMiddleware)
	router.Use(m.shutdownMiddleware)

	router.StaticFile("/", "./static/index.html")
	router.GET("/api/customers", m.getCustomers)
	router.GET("/api/customers/contracts", m.getCustomersContracts)
	router.GET("/api/customers/unique", m.getUniqueCustomers)
	router.GET("/api/customers/count", m.getCustomerCount)
	router.GET("/api/customers/export", m.exportCustomers)
	router.GET("/api/customers/:name/contracts", m.getCustomerContracts)
	router.GET("/api/stats", m.getFleetStats)
	router.GET("/api/health", m.healthCheck)
	router.POST("/api/cleanup", m.cleanupDatabase)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return router
}

// StartApi serves the router until a shutdown signal arrives, then
// flips the shutdown flag and drains in-flight requests.
func (m ApiHandler) StartApi(port int) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: m.InitializeRouterEngine(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("failed to serve api: %w", err)
	case <-ctx.Done():
	}

	m.ShuttingDown.Store(true)
	m.Logger.Info("shutdown signal received, draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, http.StatusInternalServerError)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	zap.S().Error(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}

func (m ApiHandler) shutdownMiddleware(c *gin.Context) {
	if m.ShuttingDown != nil && m.ShuttingDown.Load() {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   "server is shutting down",
		})
		return
	}
	c.Next()
}

func (m ApiHandler) requestLogMiddleware(c *gin.Context) {
	requestID := uuid.NewString()
	c.Set("requestID", requestID)

	start := time.Now().UTC()
	c.Next()

	m.Logger.Infow("request handled",
		"requestID", requestID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
		"clientIP", c.ClientIP(),
	)
}

func (m ApiHandler) recoveryHandler(c *gin.Context, recovered any) {
	m.Logger.Errorw("panic while handling request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"panic", recovered,
	)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"error": "internal server error",
	})
}
