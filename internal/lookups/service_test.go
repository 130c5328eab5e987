package lookups

import (
	"context"
	"errors"
	"testing"
	"time"

	"runwear/internal/clothing"
	"runwear/internal/queue"
	"runwear/internal/shared/telemetry"
)

type fakeQueue struct {
	sent []queue.Message
	err  error
}

func (f *fakeQueue) Send(ctx context.Context, msg queue.Message) error {
	f.sent = append(f.sent, msg)
	return f.err
}

type failingRepo struct{ err error }

func (f failingRepo) Create(ctx context.Context, lookup Lookup) error { return f.err }
func (f failingRepo) ListRecent(ctx context.Context, limit int) ([]Lookup, error) {
	return nil, f.err
}

func fixedService(repo Repo, q queue.Client) *Service {
	svc := NewService(repo, q)
	svc.Now = func() time.Time { return time.Date(2026, 5, 2, 6, 15, 0, 0, time.UTC) }
	svc.NewID = func() string { return "lookup-fixed" }
	return svc
}

func TestServiceRecordStoresAndPublishes(t *testing.T) {
	repo := NewMemoryRepo()
	q := &fakeQueue{}
	svc := fixedService(repo, q)

	ctx := telemetry.WithRequestID(context.Background(), "req-9")
	rec := clothing.Recommend(58.9, 12)
	if err := svc.Record(ctx, clothing.Request{Temp: 58.9, WindSpeed: 12}, rec); err != nil {
		t.Fatalf("Record: %v", err)
	}

	stored, _ := repo.ListRecent(context.Background(), 1)
	if len(stored) != 1 {
		t.Fatalf("expected stored lookup")
	}
	got := stored[0]
	if got.ID != "lookup-fixed" || got.Bucket != 60 || got.Condition != "windy" || got.Temp != 58.9 {
		t.Fatalf("unexpected lookup %+v", got)
	}
	if len(q.sent) != 1 {
		t.Fatalf("expected one message, got %d", len(q.sent))
	}
	msg := q.sent[0]
	if msg.Type != queue.TypeLookupRecorded || msg.LookupID != "lookup-fixed" || msg.RequestID != "req-9" {
		t.Fatalf("unexpected message %+v", msg)
	}
	if msg.RecordedAt != "2026-05-02T06:15:00Z" {
		t.Fatalf("unexpected recordedAt %q", msg.RecordedAt)
	}
}

func TestServiceRecordIgnoresPublishFailure(t *testing.T) {
	q := &fakeQueue{err: errors.New("queue down")}
	svc := fixedService(NewMemoryRepo(), q)

	if err := svc.Record(context.Background(), clothing.Request{Temp: 70}, clothing.Recommend(70, 0)); err != nil {
		t.Fatalf("expected publish failure to be swallowed, got %v", err)
	}
}

func TestServiceRecordReturnsRepoError(t *testing.T) {
	boom := errors.New("insert failed")
	q := &fakeQueue{}
	svc := fixedService(failingRepo{err: boom}, q)

	err := svc.Record(context.Background(), clothing.Request{Temp: 70}, clothing.Recommend(70, 0))
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
	if len(q.sent) != 0 {
		t.Fatalf("expected no publish after failed store")
	}
}

func TestServiceWithoutQueue(t *testing.T) {
	svc := fixedService(NewMemoryRepo(), nil)
	if err := svc.Record(context.Background(), clothing.Request{Temp: 30}, clothing.Recommend(30, 20)); err != nil {
		t.Fatalf("Record: %v", err)
	}
}
