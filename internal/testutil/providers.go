package testutil

import (
	"context"

	"github.com/preston-bernstein/nhl-standings-service/internal/domain/standings"
	"github.com/preston-bernstein/nhl-standings-service/internal/providers"
)

// GoodProvider returns the provided snapshot with no error.
type GoodProvider struct {
	Snapshot standings.StandingsSnapshot
}

func (p GoodProvider) FetchStandings(ctx context.Context) (standings.StandingsSnapshot, error) {
	_ = ctx
	return p.Snapshot, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchStandings(ctx context.Context) (standings.StandingsSnapshot, error) {
	_ = ctx
	return standings.StandingsSnapshot{}, p.Err
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchStandings(ctx context.Context) (standings.StandingsSnapshot, error) {
	_ = ctx
	return standings.StandingsSnapshot{}, providers.ErrProviderUnavailable
}
