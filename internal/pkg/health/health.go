package health

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gracefleet/routeengine/internal/pkg/database"
	"github.com/gracefleet/routeengine/internal/pkg/logger"
	"github.com/gracefleet/routeengine/internal/pkg/nats"
)

// HealthChecker checks the health of a single dependency
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// PostgresHealthChecker checks PostgreSQL connectivity
type PostgresHealthChecker struct {
	client *database.PostgresClient
}

// NewPostgresHealthChecker creates a PostgreSQL health checker
func NewPostgresHealthChecker(client *database.PostgresClient) *PostgresHealthChecker {
	return &PostgresHealthChecker{client: client}
}

// CheckHealth pings the database
func (p *PostgresHealthChecker) CheckHealth(ctx context.Context) error {
	return p.client.Ping(ctx)
}

// RedisHealthChecker checks Redis connectivity
type RedisHealthChecker struct {
	client *database.RedisClient
}

// NewRedisHealthChecker creates a Redis health checker
func NewRedisHealthChecker(client *database.RedisClient) *RedisHealthChecker {
	return &RedisHealthChecker{client: client}
}

// CheckHealth pings Redis
func (r *RedisHealthChecker) CheckHealth(ctx context.Context) error {
	return r.client.Ping(ctx)
}

// NATSHealthChecker checks the NATS connection
type NATSHealthChecker struct {
	client *nats.Client
}

// NewNATSHealthChecker creates a NATS health checker
func NewNATSHealthChecker(client *nats.Client) *NATSHealthChecker {
	return &NATSHealthChecker{client: client}
}

// CheckHealth verifies the NATS connection is live
func (n *NATSHealthChecker) CheckHealth(ctx context.Context) error {
	if !n.client.IsConnected() {
		return fmt.Errorf("NATS connection is not active")
	}
	return nil
}

// HealthService aggregates health checks over all registered dependencies
type HealthService struct {
	mu       sync.RWMutex
	checkers map[string]HealthChecker
	logger   *logger.ZapLogger
}

// NewHealthService creates a new health service
func NewHealthService(zapLogger *logger.ZapLogger) *HealthService {
	return &HealthService{
		checkers: make(map[string]HealthChecker),
		logger:   zapLogger,
	}
}

// AddChecker registers a dependency health checker
func (h *HealthService) AddChecker(name string, checker HealthChecker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkers[name] = checker
}

// DependencyInfo describes one dependency's health
type DependencyInfo struct {
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	LatencyMs int64  `json:"latency_ms"`
}

// HealthResponse is the payload of the detailed health endpoint
type HealthResponse struct {
	Status       string                    `json:"status"`
	ServiceName  string                    `json:"service_name"`
	Version      string                    `json:"version"`
	GoVersion    string                    `json:"go_version"`
	Hostname     string                    `json:"hostname"`
	ServerTime   time.Time                 `json:"server_time"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// CheckAll runs every registered checker with a per-check timeout
func (h *HealthService) CheckAll(ctx context.Context) map[string]DependencyInfo {
	h.mu.RLock()
	defer h.mu.RUnlock()

	results := make(map[string]DependencyInfo, len(h.checkers))
	for name, checker := range h.checkers {
		checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		start := time.Now()
		err := checker.CheckHealth(checkCtx)
		cancel()

		info := DependencyInfo{
			Status:    "healthy",
			LatencyMs: time.Since(start).Milliseconds(),
		}
		if err != nil {
			info.Status = "unhealthy"
			info.Error = err.Error()
			h.logger.Warn("Dependency health check failed",
				logger.String("dependency", name),
				logger.Err(err))
		}
		results[name] = info
	}

	return results
}

// RegisterHealthEndpoints registers /ping, /health and /health/detailed
func RegisterHealthEndpoints(e *echo.Echo, serviceName, version string, service *HealthService) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	e.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": serviceName,
			"status":  "ok",
		})
	})

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/health/detailed", func(c echo.Context) error {
		deps := service.CheckAll(c.Request().Context())

		status := "healthy"
		code := http.StatusOK
		for _, dep := range deps {
			if dep.Status != "healthy" {
				status = "degraded"
				code = http.StatusServiceUnavailable
				break
			}
		}

		return c.JSON(code, HealthResponse{
			Status:       status,
			ServiceName:  serviceName,
			Version:      version,
			GoVersion:    runtime.Version(),
			Hostname:     hostname,
			ServerTime:   time.Now().UTC(),
			Dependencies: deps,
		})
	})
}
