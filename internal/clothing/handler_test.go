package clothing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"runwear/internal/shared/telemetry"
)

type recorderFunc func(ctx context.Context, req Request, rec Recommendation) error

func (f recorderFunc) Record(ctx context.Context, req Request, rec Recommendation) error {
	return f(ctx, req, rec)
}

func newTestRouter(rec Recorder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(NewService(rec)).RegisterRoutes(r)
	return r
}

func postClothing(t *testing.T, r http.Handler, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/getClothing", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	var payload map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response %q: %v", resp.Body.String(), err)
	}
	return resp, payload
}

func TestGetClothingValid(t *testing.T) {
	r := newTestRouter(nil)

	resp, payload := postClothing(t, r, `{"temp":70,"windSpeed":5}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	urls, ok := payload["imageUrls"].([]any)
	if !ok {
		t.Fatalf("expected imageUrls list, got %T", payload["imageUrls"])
	}
	want := []string{"static/images/shirt.svg", "static/images/shorts.svg", "static/images/cap.svg"}
	if len(urls) != len(want) {
		t.Fatalf("expected %d urls, got %v", len(want), urls)
	}
	for i := range want {
		if urls[i] != want[i] {
			t.Fatalf("url %d: expected %s, got %v", i, want[i], urls[i])
		}
	}
}

func TestGetClothingOutsideTableReturnsEmptyList(t *testing.T) {
	r := newTestRouter(nil)

	resp, _ := postClothing(t, r, `{"temp":-40,"windSpeed":30}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if strings.TrimSpace(resp.Body.String()) != `{"imageUrls":[]}` {
		t.Fatalf("expected empty array, got %s", resp.Body.String())
	}
}

func TestGetClothingInvalidDataTypes(t *testing.T) {
	r := newTestRouter(nil)

	for _, body := range []string{
		`{"temp":"cool","windSpeed":"breezy"}`,
		`{}`,
		`{"windSpeed":4}`,
		`["temp","windSpeed"]`,
	} {
		resp, payload := postClothing(t, r, body)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, resp.Code)
		}
		msg, _ := payload["error"].(string)
		if !strings.Contains(msg, "Invalid data types provided") {
			t.Fatalf("body %s: unexpected error %q", body, msg)
		}
	}
}

func TestGetClothingMalformedJSONIs500(t *testing.T) {
	r := newTestRouter(nil)

	resp, payload := postClothing(t, r, `{"temp":`)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if msg, _ := payload["error"].(string); msg == "" {
		t.Fatalf("expected raw error text")
	}
}

func TestGetClothingRecordsLookup(t *testing.T) {
	var got Recommendation
	var gotReq Request
	r := newTestRouter(recorderFunc(func(ctx context.Context, req Request, rec Recommendation) error {
		gotReq = req
		got = rec
		return nil
	}))

	resp, _ := postClothing(t, r, `{"temp":41,"windSpeed":20}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gotReq.Temp != 41 || gotReq.WindSpeed != 20 {
		t.Fatalf("unexpected recorded request %+v", gotReq)
	}
	if got.Bucket != 40 || got.Condition != Windy {
		t.Fatalf("unexpected recorded recommendation %+v", got)
	}
}

func TestGetClothingRecorderFailureStill200(t *testing.T) {
	r := newTestRouter(recorderFunc(func(ctx context.Context, req Request, rec Recommendation) error {
		return errors.New("db down")
	}))

	resp, payload := postClothing(t, r, `{"temp":70,"windSpeed":5}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if _, ok := payload["imageUrls"]; !ok {
		t.Fatalf("expected imageUrls")
	}
}

func TestGetClothingHugeTemperatureIsNotRecorded(t *testing.T) {
	called := false
	r := newTestRouter(recorderFunc(func(ctx context.Context, req Request, rec Recommendation) error {
		called = true
		return nil
	}))

	resp, payload := postClothing(t, r, `{"temp":1e300,"windSpeed":5}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	urls, ok := payload["imageUrls"].([]any)
	if !ok || len(urls) != 0 {
		t.Fatalf("expected empty imageUrls, got %v", payload)
	}
	if called {
		t.Fatalf("expected recorder to be skipped")
	}
}

func TestGetClothingInvalidRequestLogsOneWarning(t *testing.T) {
	var buf bytes.Buffer
	telemetry.Configure(telemetry.Options{Output: &buf, Level: "debug"})
	t.Cleanup(func() { telemetry.Configure(telemetry.Options{}) })

	resp, _ := postClothing(t, newTestRouter(nil), `{"temp":"warm","windSpeed":5}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one log line, got %d: %s", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["level"] != "warn" {
		t.Fatalf("expected warn level, got %v", entry["level"])
	}
}
