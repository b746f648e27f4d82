package health

import (
	"context"
	"fmt"
	"time"

	"github.com/tumapesa/tumapesa/internal/pkg/database"
	"github.com/tumapesa/tumapesa/internal/pkg/logger"
	natspkg "github.com/tumapesa/tumapesa/internal/pkg/nats"
)

// Checker reports whether one dependency of the payments service is usable
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// PostgresChecker pings the transaction store
type PostgresChecker struct {
	client *database.PostgresClient
}

// NewPostgresChecker creates a health checker for the transaction store
func NewPostgresChecker(client *database.PostgresClient) *PostgresChecker {
	return &PostgresChecker{client: client}
}

// CheckHealth pings the database pool
func (p *PostgresChecker) CheckHealth(ctx context.Context) error {
	if p.client == nil {
		return nil
	}
	return p.client.GetDB().PingContext(ctx)
}

// RedisChecker pings the callback dedup marker store
type RedisChecker struct {
	client *database.RedisClient
}

// NewRedisChecker creates a health checker for the dedup marker store
func NewRedisChecker(client *database.RedisClient) *RedisChecker {
	return &RedisChecker{client: client}
}

// CheckHealth pings Redis
func (r *RedisChecker) CheckHealth(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Ping(ctx)
}

// NATSChecker verifies the payment event bus connection
type NATSChecker struct {
	client *natspkg.Client
}

// NewNATSChecker creates a health checker for the event bus
func NewNATSChecker(client *natspkg.Client) *NATSChecker {
	return &NATSChecker{client: client}
}

// CheckHealth verifies the connection is established
func (n *NATSChecker) CheckHealth(ctx context.Context) error {
	if n.client == nil {
		return nil
	}
	conn := n.client.GetConn()
	if conn == nil || !conn.IsConnected() {
		return fmt.Errorf("nats connection is down")
	}
	return nil
}

// Service runs health checks over the payment service's dependencies
type Service struct {
	serviceName string
	checkers    map[string]Checker
}

// NewService creates a health service for the named service
func NewService(serviceName string) *Service {
	return &Service{
		serviceName: serviceName,
		checkers:    make(map[string]Checker),
	}
}

// AddChecker registers a dependency checker under a name
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

// Report is the aggregate outcome of checking every dependency
type Report struct {
	Status       string                `json:"status"`
	Service      string                `json:"service"`
	Timestamp    time.Time             `json:"timestamp"`
	Dependencies map[string]Dependency `json:"dependencies"`
}

// Dependency is the outcome for a single dependency
type Dependency struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Check runs all registered checkers. Any failing dependency marks the
// whole report unhealthy; failures are logged with the dependency name.
func (s *Service) Check(ctx context.Context) Report {
	report := Report{
		Status:       "healthy",
		Service:      s.serviceName,
		Timestamp:    time.Now(),
		Dependencies: make(map[string]Dependency),
	}

	for name, checker := range s.checkers {
		if err := checker.CheckHealth(ctx); err != nil {
			logger.Warn("Dependency health check failed",
				logger.String("dependency", name),
				logger.Err(err),
			)
			report.Dependencies[name] = Dependency{Status: "unhealthy", Error: err.Error()}
			report.Status = "unhealthy"
			continue
		}
		report.Dependencies[name] = Dependency{Status: "healthy"}
	}

	return report
}
