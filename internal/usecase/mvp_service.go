package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/footylab/mvp-selector/internal/domain/match"
)

// StatsProvider is the sports-data capability. Both operations degrade to
// absence-of-data: the service cannot tell "no stats" from an upstream
// failure, and does not try to.
type StatsProvider interface {
	FindFixture(ctx context.Context, team1, team2, date string) (match.Fixture, bool)
	PlayerStats(ctx context.Context, fixtureID int64) []match.TeamPlayerStats
}

// Completer is the language-model capability: prompt in, free text out.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type MVPService struct {
	stats     StatsProvider
	completer Completer
	logger    *slog.Logger
}

func NewMVPService(stats StatsProvider, completer Completer, logger *slog.Logger) *MVPService {
	if logger == nil {
		logger = slog.Default()
	}
	return &MVPService{
		stats:     stats,
		completer: completer,
		logger:    logger,
	}
}

// ValidateMatch confirms the queried match exists and returns its fixture.
func (s *MVPService) ValidateMatch(ctx context.Context, q match.Query) (match.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MVPService.ValidateMatch")
	defer span.End()

	team1 := strings.TrimSpace(q.Team1)
	team2 := strings.TrimSpace(q.Team2)
	date := strings.TrimSpace(q.Date)
	if team1 == "" || team2 == "" || date == "" {
		return match.Fixture{}, fmt.Errorf("%w: team names and date are required", ErrInvalidInput)
	}

	fixture, found := s.stats.FindFixture(ctx, team1, team2, date)
	if !found {
		return match.Fixture{}, fmt.Errorf("%w: no match between %s and %s on %s", ErrNotFound, team1, team2, date)
	}

	s.logger.InfoContext(ctx, "match validated",
		"fixture_id", fixture.ID,
		"home", fixture.HomeTeam,
		"away", fixture.AwayTeam,
	)
	return fixture, nil
}

// FetchMatchStats retrieves the per-team rosters for a fixture.
func (s *MVPService) FetchMatchStats(ctx context.Context, fixtureID int64) ([]match.TeamPlayerStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MVPService.FetchMatchStats")
	defer span.End()

	if fixtureID <= 0 {
		return nil, fmt.Errorf("%w: fixture id must be greater than zero", ErrInvalidInput)
	}

	teams := s.stats.PlayerStats(ctx, fixtureID)
	if len(teams) == 0 {
		return nil, fmt.Errorf("%w: no player statistics for fixture %d", ErrNotFound, fixtureID)
	}

	return teams, nil
}

// DetermineMVP filters the rosters, builds the digest+rubric prompt, and
// returns the model's free-text verdict untouched except for the appended
// inclusion summary. The model's chosen name is not parsed or validated.
func (s *MVPService) DetermineMVP(ctx context.Context, teams []match.TeamPlayerStats) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MVPService.DetermineMVP")
	defer span.End()

	if len(teams) == 0 {
		return "", fmt.Errorf("%w: no player statistics to analyze", ErrNotFound)
	}

	filtered, kept, total := filterRoster(teams)
	digest := buildDigest(filtered)
	prompt := buildPrompt(digest)

	s.logger.InfoContext(ctx, "requesting mvp verdict", "players_included", kept, "players_total", total)

	verdict, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDependencyUnavailable, err)
	}

	return fmt.Sprintf("%s\n\nAnalysis based on %d players (filtered out %d who played ≤%d minutes)", verdict, kept, total-kept, match.MinMinutes), nil
}
