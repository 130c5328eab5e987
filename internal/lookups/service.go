package lookups

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"runwear/internal/clothing"
	"runwear/internal/queue"
	"runwear/internal/shared/metrics"
	"runwear/internal/shared/telemetry"
)

var errNoRepo = errors.New("lookups repo not configured")

// Service records recommendations and serves recent history.
type Service struct {
	Repo  Repo
	Queue queue.Client
	Now   func() time.Time
	NewID func() string
}

// NewService constructs a Service. q may be nil to skip publishing.
func NewService(repo Repo, q queue.Client) *Service {
	return &Service{Repo: repo, Queue: q}
}

// Record stores one recommendation. Publish failures are logged and do not
// fail the call since the record is already stored.
func (s *Service) Record(ctx context.Context, req clothing.Request, rec clothing.Recommendation) error {
	if s.Repo == nil {
		return errNoRepo
	}
	lookup := Lookup{
		ID:        s.newID(),
		Temp:      req.Temp,
		WindSpeed: req.WindSpeed,
		Bucket:    rec.Bucket,
		Condition: string(rec.Condition),
		Items:     rec.Items,
		ImageURLs: rec.ImageURLs,
		CreatedAt: s.now(),
	}
	if err := s.Repo.Create(ctx, lookup); err != nil {
		metrics.IncLookupRecorded(false)
		return fmt.Errorf("store lookup: %w", err)
	}
	metrics.IncLookupRecorded(true)

	if s.Queue == nil {
		return nil
	}
	requestID := telemetry.RequestID(ctx)
	msg := queue.NewLookupRecorded(lookup.ID, requestID, lookup.Bucket, lookup.Condition, lookup.Items, lookup.CreatedAt)
	if err := s.Queue.Send(ctx, msg); err != nil {
		telemetry.Warn("lookup.publish_failed", map[string]any{
			"lookup_id":  lookup.ID,
			"request_id": requestID,
			"error":      err.Error(),
		})
	}
	return nil
}

// ListRecent returns up to limit lookups, newest first.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]Lookup, error) {
	if s.Repo == nil {
		return nil, errNoRepo
	}
	return s.Repo.ListRecent(ctx, limit)
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

var _ clothing.Recorder = (*Service)(nil)
