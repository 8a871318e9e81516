package fixture

import (
	"bytes"
	"context"
	_ "embed"

	"github.com/preston-bernstein/nhl-standings-service/internal/domain/standings"
	"github.com/preston-bernstein/nhl-standings-service/internal/normalize"
)

// ProviderName identifies the fixture provider in logs and metrics.
const ProviderName = "fixture"

//go:embed standings.json
var payload []byte

// Provider serves a static standings document through the same normalizer as the live client.
// It is useful for local runs without network access.
type Provider struct {
	raw []byte
}

// New creates a fixture provider backed by the embedded payload.
func New() *Provider {
	return &Provider{raw: payload}
}

// FetchStandings decodes and normalizes the embedded payload.
func (p *Provider) FetchStandings(ctx context.Context) (standings.StandingsSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return standings.StandingsSnapshot{}, err
	}
	doc, err := normalize.DecodePayload(bytes.NewReader(p.raw))
	if err != nil {
		return standings.StandingsSnapshot{}, err
	}
	return normalize.BuildSnapshot(doc)
}
