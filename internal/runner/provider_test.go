package runner

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/preston-bernstein/nhl-standings-service/internal/config"
	"github.com/preston-bernstein/nhl-standings-service/internal/metrics"
	"github.com/preston-bernstein/nhl-standings-service/internal/providers"
	"github.com/preston-bernstein/nhl-standings-service/internal/providers/fixture"
	"github.com/preston-bernstein/nhl-standings-service/internal/providers/nhl"
	"github.com/preston-bernstein/nhl-standings-service/internal/testutil"
)

func configWithProvider(name string) config.Config {
	return config.Config{Provider: name}
}

func TestSelectProvider(t *testing.T) {
	cases := []struct {
		provider string
		wantName string
	}{
		{"", nhl.ProviderName},
		{"nhl", nhl.ProviderName},
		{" NHL ", nhl.ProviderName},
		{"fixture", fixture.ProviderName},
	}
	for _, tc := range cases {
		p, name := selectProvider(configWithProvider(tc.provider), nil)
		if p == nil || name != tc.wantName {
			t.Fatalf("expected %s for %q, got %s", tc.wantName, tc.provider, name)
		}
	}
}

func TestSelectProviderUnknownFallsBackToFixture(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	p, name := selectProvider(configWithProvider("espn"), logger)
	if _, ok := p.(*fixture.Provider); !ok || name != fixture.ProviderName {
		t.Fatalf("expected fixture fallback, got %T %s", p, name)
	}
	if !strings.Contains(buf.String(), "unknown provider") {
		t.Fatalf("expected warning log, got %q", buf.String())
	}
}

func TestNewProviderInstrumentsNHLClient(t *testing.T) {
	srv := testutil.NewStandingsServer(t, http.StatusServiceUnavailable, "down")
	cfg := configWithProvider("nhl")
	cfg.NHL.BaseURL = srv.URL
	rec := metrics.NewRecorder()

	_, err := NewProvider(cfg, nil, rec).FetchStandings(context.Background())
	tErr, ok := providers.AsTransportError(err)
	if !ok || tErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected transport error from live client, got %v", err)
	}
	if rec.ProviderCalls(nhl.ProviderName) != 1 || rec.ProviderErrors(nhl.ProviderName) != 1 {
		t.Fatalf("expected one failed nhl attempt, got %+v", rec.Provider(nhl.ProviderName))
	}
}

func TestNewProviderServesNHLPayload(t *testing.T) {
	srv := testutil.NewStandingsServer(t, http.StatusOK, testutil.SamplePayloadJSON)
	cfg := configWithProvider("nhl")
	cfg.NHL.BaseURL = srv.URL

	snap, err := NewProvider(cfg, nil, nil).FetchStandings(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if snap.Season != "20242025" || len(snap.Teams) != 2 || snap.Teams[1].Team.Abbreviation != "TOR" {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}
