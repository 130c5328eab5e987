package weather

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// fakeUpstream serves zippopotam and weather.gov shaped responses.
type fakeUpstream struct {
	server     *httptest.Server
	mu         sync.Mutex
	userAgents []string
	zipHits    atomic.Int32
	pointsHits atomic.Int32
	hourly     string
	pointsCode int
}

const testUserAgent = "runwear-test (test@example.com)"

func newFakeUpstream(t *testing.T) *fakeUpstream {
	t.Helper()
	f := &fakeUpstream{
		pointsCode: http.StatusOK,
		hourly: `{"properties":{"periods":[
			{"temperature":58,"temperatureUnit":"F","shortForecast":"Breezy","windSpeed":"5 to 15 mph","probabilityOfPrecipitation":{"value":10}},
			{"temperature":61,"temperatureUnit":"F","shortForecast":"Sunny","windSpeed":"3 mph","probabilityOfPrecipitation":{"value":null}}
		]}}`,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/us/", func(w http.ResponseWriter, r *http.Request) {
		f.zipHits.Add(1)
		f.record(r)
		switch strings.TrimPrefix(r.URL.Path, "/us/") {
		case "10001":
			fmt.Fprint(w, `{"post code":"10001","places":[{"place name":"New York","latitude":"40.7484","longitude":"-73.9967"}]}`)
		case "99999":
			http.NotFound(w, r)
		case "00000":
			fmt.Fprint(w, `{"places":[{"latitude":"north","longitude":"-73.9"}]}`)
		default:
			fmt.Fprint(w, `{"places":[]}`)
		}
	})
	mux.HandleFunc("/points/", func(w http.ResponseWriter, r *http.Request) {
		f.pointsHits.Add(1)
		f.record(r)
		if f.pointsCode != http.StatusOK {
			w.WriteHeader(f.pointsCode)
			return
		}
		fmt.Fprintf(w, `{"properties":{"forecastHourly":"%s/gridpoints/OKX/33,35/forecast/hourly"}}`, f.server.URL)
	})
	mux.HandleFunc("/gridpoints/", func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		fmt.Fprint(w, f.hourly)
	})
	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeUpstream) client(threshold uint32) *Client {
	return NewClient(ClientOptions{
		ZipBaseURL:       f.server.URL,
		PointsBaseURL:    f.server.URL,
		UserAgent:        testUserAgent,
		Timeout:          2 * time.Second,
		FailureThreshold: threshold,
		OpenTimeout:      time.Minute,
	})
}

func (f *fakeUpstream) record(r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.userAgents = append(f.userAgents, r.UserAgent())
}

func (f *fakeUpstream) agents() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.userAgents...)
}
