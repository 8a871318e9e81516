package providers

import (
	"context"

	"github.com/preston-bernstein/nhl-standings-service/internal/domain/standings"
)

// StandingsProvider fetches one standings payload and normalizes it into a snapshot.
// A single call makes at most one upstream request; there is no retry.
type StandingsProvider interface {
	FetchStandings(ctx context.Context) (standings.StandingsSnapshot, error)
}
