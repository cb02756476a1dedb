package health

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/fern/pkg/normalizers"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// Probe reports whether a component is usable
type Probe interface {
	Health() bool
}

// Checker serves liveness, readiness and component health for fern
type Checker struct {
	mu        sync.RWMutex
	probes    map[string]Probe
	version   string
	startTime time.Time
	ready     atomic.Bool
}

func NewChecker(version string) *Checker {
	return &Checker{
		probes:    make(map[string]Probe),
		version:   version,
		startTime: time.Now(),
	}
}

// AddProbe registers a background component, such as the snapshot consumer
func (c *Checker) AddProbe(name string, probe Probe) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.probes[name] = probe
}

func (c *Checker) SetReady(ready bool) {
	c.ready.Store(ready)
}

func (c *Checker) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/health")
	g.GET("", c.Health)
	g.GET("/live", c.Live)
	g.GET("/ready", c.Ready)
}

type HealthStatus struct {
	Status      string                  `json:"status"`
	Version     string                  `json:"version"`
	Uptime      string                  `json:"uptime"`
	Normalizers []string                `json:"normalizers"`
	Checks      map[string]*CheckResult `json:"checks"`
	ReportedAt  time.Time               `json:"reported_at"`
}

type CheckResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// runProbes reports every registered probe and whether all of them passed
func (c *Checker) runProbes() (map[string]*CheckResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	healthy := true
	checks := make(map[string]*CheckResult, len(c.probes))
	for name, probe := range c.probes {
		if probe.Health() {
			checks[name] = &CheckResult{Status: statusHealthy}
			continue
		}
		healthy = false
		checks[name] = &CheckResult{Status: statusUnhealthy, Message: name + " is not available"}
	}
	return checks, healthy
}

func (c *Checker) Health(ctx echo.Context) error {
	checks, healthy := c.runProbes()

	status := &HealthStatus{
		Status:      statusHealthy,
		Version:     c.version,
		Uptime:      time.Since(c.startTime).Round(time.Second).String(),
		Normalizers: normalizers.Names(),
		Checks:      checks,
		ReportedAt:  time.Now(),
	}
	if !healthy {
		status.Status = statusUnhealthy
		return ctx.JSON(http.StatusServiceUnavailable, status)
	}
	return ctx.JSON(http.StatusOK, status)
}

// Live only reports that the process is serving requests
func (c *Checker) Live(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "alive"})
}

// Ready requires the server to be started and every probe to pass
func (c *Checker) Ready(ctx echo.Context) error {
	_, healthy := c.runProbes()
	if c.ready.Load() && healthy {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "ready"})
	}
	return ctx.JSON(http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
}
