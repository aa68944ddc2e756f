package platform

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adfleet/internal/config/configs"
	"adfleet/internal/core/domain"
)

type reply struct {
	status int
	body   string
}

type recorded struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   map[string]any
}

// fakeAPI serves canned replies keyed by "METHOD /path" and records every
// request it sees.
type fakeAPI struct {
	*httptest.Server

	mu     sync.Mutex
	routes map[string]reply
	calls  []recorded
}

func newFakeAPI(t *testing.T, routes map[string]reply) *fakeAPI {
	t.Helper()
	f := &fakeAPI{routes: routes}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	rec := recorded{Method: r.Method, Path: r.URL.Path, Query: r.URL.Query(), Header: r.Header.Clone()}
	if b, _ := io.ReadAll(r.Body); len(b) > 0 {
		_ = json.Unmarshal(b, &rec.Body)
	}

	f.mu.Lock()
	f.calls = append(f.calls, rec)
	rp, ok := f.routes[r.Method+" "+r.URL.Path]
	f.mu.Unlock()

	if !ok {
		rp = reply{status: http.StatusNotFound, body: `{"error":"no route"}`}
	}
	if rp.status == 0 {
		rp.status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rp.status)
	_, _ = io.WriteString(w, rp.body)
}

func (f *fakeAPI) requests() []recorded {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recorded(nil), f.calls...)
}

func (f *fakeAPI) config() configs.Platform {
	return configs.Platform{
		ClientID:     "client",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost/callback",
		APIURL:       f.URL,
		TokenURL:     f.URL + "/oauth/token",
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:        uuid.MustParse("5b0c1a52-0d4e-4a7e-9d7b-0c9a3f4e2b11"),
		Name:      "Spring Sale",
		Budget:    domain.Budget{Total: dec("1000"), Daily: dec("100"), Spent: decimal.Zero},
		StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		Status:    domain.StatusDraft,
		TargetAudience: domain.Audience{
			AgeRange:  domain.AgeRange{Min: 25, Max: 45},
			Gender:    []domain.Gender{domain.GenderMale, domain.GenderFemale},
			Locations: []domain.Location{{Country: "US", State: "CA", City: "San Francisco"}},
			Interests: []string{"running"},
		},
		Platforms: []domain.PlatformSlot{
			{Name: domain.PlatformFacebook, Status: domain.SlotPending, Budget: domain.SlotBudget{Allocated: dec("500")}},
			{Name: domain.PlatformGoogle, Status: domain.SlotPending, Budget: domain.SlotBudget{Allocated: dec("250.50")}},
		},
		Creatives: []domain.Creative{
			{Type: domain.CreativeImage, Title: "Hero", CallToAction: "Shop Now", DestinationURL: "https://example.com"},
			{Type: domain.CreativeVideo, CallToAction: "Watch Later"},
		},
	}
}

func testConnection(account string) domain.PlatformConnection {
	return domain.PlatformConnection{
		Connected: true,
		Credentials: domain.Credentials{
			AccessToken: "tok",
			AccountID:   account,
			Expiry:      time.Now().Add(time.Hour),
		},
	}
}
