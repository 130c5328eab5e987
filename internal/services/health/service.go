package health

import (
	"context"
	"time"
)

const (
	DatabaseOK          = "ok"
	DatabaseUnavailable = "unavailable"
	DatabaseDisabled    = "disabled"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Status is the health payload.
type Status struct {
	OK       bool   `json:"ok"`
	Database string `json:"database"`
}

// Service encapsulates health-related checks.
type Service struct {
	DB           Pinger
	DBConfigured bool
	Timeout      time.Duration
}

// NewService constructs a new health service. db may be nil when history is
// kept in memory; configured reports whether a database URL was supplied.
func NewService(db Pinger, configured bool) *Service {
	return &Service{DB: db, DBConfigured: configured, Timeout: 2 * time.Second}
}

// Check reports process and database health.
func (s *Service) Check(ctx context.Context) Status {
	if !s.DBConfigured {
		return Status{OK: true, Database: DatabaseDisabled}
	}
	if s.DB == nil {
		return Status{OK: false, Database: DatabaseUnavailable}
	}
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := s.DB.PingContext(pingCtx); err != nil {
		return Status{OK: false, Database: DatabaseUnavailable}
	}
	return Status{OK: true, Database: DatabaseOK}
}
