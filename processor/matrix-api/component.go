// Package matrixapi serves the correlation model over HTTP: an interactive
// page, the JSON data view, and workbook and CSV downloads.
package matrixapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/c360studio/gorcmap/correlation"
	"github.com/c360studio/gorcmap/export"
)

// Component implements the matrix-api component.
type Component struct {
	name    string
	config  Config
	engine  Exporter
	logger  *slog.Logger
	metrics *metrics
	page    *pageRenderer

	// Lifecycle state machine
	// States: 0=stopped, 1=starting, 2=running, 3=stopping
	state     atomic.Int32
	startTime time.Time
	mu        sync.RWMutex
	server    *http.Server
	addr      net.Addr
	done      chan struct{}
}

const (
	stateStopped  = 0
	stateStarting = 1
	stateRunning  = 2
	stateStopping = 3
)

// Exporter produces export artifacts. *export.Engine implements it.
type Exporter interface {
	Export(ctx context.Context, req export.Request) (*export.Artifact, error)
}

// NewComponent constructs a matrix-api Component.
func NewComponent(config Config, engine Exporter, logger *slog.Logger) (*Component, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if engine == nil {
		return nil, fmt.Errorf("export engine cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	page, err := newPageRenderer()
	if err != nil {
		return nil, err
	}

	return &Component{
		name:    "matrix-api",
		config:  config,
		engine:  engine,
		logger:  logger,
		metrics: newMetrics(),
		page:    page,
	}, nil
}

// Initialize checks the bundled taxonomies and logs any authoring issues.
func (c *Component) Initialize() error {
	for _, t := range correlation.Variants() {
		for _, issue := range t.Matrix().Lint() {
			c.logger.Warn("Correlation data issue",
				"taxonomy", t.ID(),
				"category", issue.Category,
				"stage", issue.Stage,
				"problem", issue.Problem)
		}
	}
	c.logger.Debug("Initialized matrix-api", "addr", c.config.Addr)
	return nil
}

// Handler returns the component's routes wrapped in its middleware.
func (c *Component) Handler() http.Handler {
	mux := http.NewServeMux()
	c.RegisterHTTPHandlers("", mux)
	return c.withRequestID(c.withCORS(mux))
}

// Start binds the listen address and begins serving.
func (c *Component) Start(ctx context.Context) error {
	if !c.state.CompareAndSwap(stateStopped, stateStarting) {
		current := c.state.Load()
		if current == stateRunning || current == stateStarting {
			return fmt.Errorf("component already running or starting")
		}
		return fmt.Errorf("component in invalid state: %d", current)
	}

	defer func() {
		if c.state.Load() == stateStarting {
			c.state.Store(stateStopped)
		}
	}()

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", c.config.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", c.config.Addr, err)
	}

	server := &http.Server{
		Handler:      c.Handler(),
		ReadTimeout:  c.config.ReadTimeout,
		WriteTimeout: c.config.WriteTimeout,
		ErrorLog:     slog.NewLogLogger(c.logger.Handler(), slog.LevelError),
	}
	done := make(chan struct{})

	c.mu.Lock()
	c.server = server
	c.addr = ln.Addr()
	c.done = done
	c.startTime = time.Now()
	c.mu.Unlock()

	go func() {
		defer close(done)
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			c.logger.Error("HTTP server failed", "error", err)
		}
	}()

	c.state.Store(stateRunning)
	c.logger.Info("matrix-api started", "addr", ln.Addr().String())
	return nil
}

// Stop gracefully stops the component, waiting up to timeout for in-flight
// requests. A zero timeout uses the configured shutdown timeout.
func (c *Component) Stop(timeout time.Duration) error {
	if !c.state.CompareAndSwap(stateRunning, stateStopping) {
		current := c.state.Load()
		if current == stateStopped || current == stateStopping {
			return nil
		}
		return fmt.Errorf("component in unexpected state: %d", current)
	}
	defer c.state.Store(stateStopped)

	if timeout <= 0 {
		timeout = c.config.ShutdownTimeout
	}

	c.mu.Lock()
	server, done := c.server, c.done
	c.server = nil
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		_ = server.Close()
	}
	<-done

	c.logger.Info("matrix-api stopped")
	if err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Addr returns the bound listen address, or nil when not running.
func (c *Component) Addr() net.Addr {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.state.Load() != stateRunning {
		return nil
	}
	return c.addr
}

// Done is closed when the server stops serving.
func (c *Component) Done() <-chan struct{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.done
}

// HealthStatus describes the component's current state.
type HealthStatus struct {
	Healthy    bool          `json:"healthy"`
	Status     string        `json:"status"`
	LastCheck  time.Time     `json:"last_check"`
	Uptime     time.Duration `json:"uptime_ns"`
	Taxonomies []string      `json:"taxonomies"`
}

// Health returns the current health status.
func (c *Component) Health() HealthStatus {
	state := c.state.Load()
	running := state == stateRunning

	c.mu.RLock()
	startTime := c.startTime
	c.mu.RUnlock()

	status := "stopped"
	switch state {
	case stateStarting:
		status = "starting"
	case stateRunning:
		status = "running"
	case stateStopping:
		status = "stopping"
	}

	var uptime time.Duration
	if running {
		uptime = time.Since(startTime)
	}

	variants := correlation.Variants()
	ids := make([]string, 0, len(variants))
	for _, t := range variants {
		ids = append(ids, string(t.ID()))
	}

	return HealthStatus{
		Healthy:    running,
		Status:     status,
		LastCheck:  time.Now(),
		Uptime:     uptime,
		Taxonomies: ids,
	}
}
