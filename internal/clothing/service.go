package clothing

import (
	"context"

	"runwear/internal/shared/metrics"
	"runwear/internal/shared/telemetry"
)

// Recorder receives successful recommendations, e.g. for lookup history.
type Recorder interface {
	Record(ctx context.Context, req Request, rec Recommendation) error
}

// Service resolves recommendations and hands them to an optional Recorder.
type Service struct {
	Recorder Recorder
}

// NewService constructs a Service. rec may be nil.
func NewService(rec Recorder) *Service {
	return &Service{Recorder: rec}
}

// Recommend looks up clothing for req. Recorder failures are logged and
// never change the result. Out of range temperatures are not recorded.
func (s *Service) Recommend(ctx context.Context, req Request) Recommendation {
	rec := Recommend(req.Temp, req.WindSpeed)
	metrics.IncRecommendation(string(rec.Condition), len(rec.Items) > 0)

	if rec.OutOfRange {
		telemetry.Debug("clothing.temperature_out_of_range", map[string]any{
			"temp": req.Temp,
		})
		return rec
	}
	if s != nil && s.Recorder != nil {
		if err := s.Recorder.Record(ctx, req, rec); err != nil {
			telemetry.Error("lookup.record_failed", map[string]any{
				"bucket":    rec.Bucket,
				"condition": rec.Condition,
				"error":     err.Error(),
			})
		}
	}
	return rec
}

// CheckCatalog logs table identifiers that will never render.
func CheckCatalog() {
	missing := UncataloguedItems()
	if len(missing) == 0 {
		return
	}
	telemetry.Warn("clothing.catalog_incomplete", map[string]any{
		"missing": missing,
	})
}
