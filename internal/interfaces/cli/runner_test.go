package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/footylab/mvp-selector/internal/domain/match"
	"github.com/footylab/mvp-selector/internal/usecase"
)

type fakeStats struct {
	fixture match.Fixture
	found   bool
	teams   []match.TeamPlayerStats
}

func (f *fakeStats) FindFixture(context.Context, string, string, string) (match.Fixture, bool) {
	return f.fixture, f.found
}

func (f *fakeStats) PlayerStats(context.Context, int64) []match.TeamPlayerStats {
	return f.teams
}

type fakeCompleter struct {
	reply string
	err   error
}

func (f *fakeCompleter) Complete(context.Context, string) (string, error) {
	return f.reply, f.err
}

func runWith(t *testing.T, stats usecase.StatsProvider, completer usecase.Completer, input string) string {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := usecase.NewMVPService(stats, completer, logger)

	var out bytes.Buffer
	runner := NewRunner(svc, strings.NewReader(input), &out, logger)
	if err := runner.Run(context.Background()); err != nil {
		t.Fatalf("unexpected loop error: %v", err)
	}
	return out.String()
}

func TestRun_ExitKeywords(t *testing.T) {
	t.Parallel()

	for _, keyword := range []string{"exit", "quit", "q", "EXIT", "Quit"} {
		out := runWith(t, &fakeStats{}, &fakeCompleter{}, keyword+"\n")
		if !strings.Contains(out, "Goodbye!") {
			t.Fatalf("keyword %q should end the loop with a goodbye:\n%s", keyword, out)
		}
	}
}

func TestRun_EndOfInput(t *testing.T) {
	t.Parallel()

	out := runWith(t, &fakeStats{}, &fakeCompleter{}, "")
	if !strings.Contains(out, "Football MVP Selector") {
		t.Fatalf("missing banner:\n%s", out)
	}
	if !strings.Contains(out, "Goodbye!") {
		t.Fatalf("EOF should end the loop with a goodbye:\n%s", out)
	}
}

func TestRun_InvalidFormat(t *testing.T) {
	t.Parallel()

	out := runWith(t, &fakeStats{}, &fakeCompleter{}, "gibberish line\nexit\n")
	if !strings.Contains(out, "Invalid format. Please use: 'Team1 vs Team2 on YYYY-MM-DD'") {
		t.Fatalf("missing invalid-format message:\n%s", out)
	}
	if !strings.Contains(out, "Goodbye!") {
		t.Fatalf("loop should keep running after an invalid line:\n%s", out)
	}
}

func TestRun_BlankLinesIgnored(t *testing.T) {
	t.Parallel()

	out := runWith(t, &fakeStats{}, &fakeCompleter{}, "\n   \nexit\n")
	if strings.Contains(out, "Invalid format") {
		t.Fatalf("blank lines should be ignored, not rejected:\n%s", out)
	}
}

func TestRun_MatchNotFound(t *testing.T) {
	t.Parallel()

	out := runWith(t, &fakeStats{found: false}, &fakeCompleter{},
		"Liverpool vs Everton on 2023-11-05\nexit\n")
	if !strings.Contains(out, "No match found between Liverpool and Everton on 2023-11-05. Please check team names and date.") {
		t.Fatalf("missing not-found message:\n%s", out)
	}
}

func TestRun_FullPipeline(t *testing.T) {
	t.Parallel()

	stats := &fakeStats{
		fixture: match.Fixture{ID: 868549, HomeTeam: "Real Madrid", AwayTeam: "Barcelona", Date: "2023-10-28"},
		found:   true,
		teams: []match.TeamPlayerStats{
			{Team: "Real Madrid", Players: []match.PlayerStats{
				{Name: "Bellingham", Position: "M", Minutes: 90, Goals: 2},
			}},
			{Team: "Barcelona", Players: []match.PlayerStats{
				{Name: "Gundogan", Position: "M", Minutes: 90},
				{Name: "Late Sub", Position: "F", Minutes: 2},
			}},
		},
	}
	completer := &fakeCompleter{reply: "MVP: Bellingham - decisive brace."}

	out := runWith(t, stats, completer, "Real Madrid vs Barcelona on 2023-10-28\nexit\n")

	if !strings.Contains(out, "Match found: Real Madrid vs Barcelona (fixture 868549)") {
		t.Fatalf("missing match confirmation:\n%s", out)
	}
	if !strings.Contains(out, "MVP: Bellingham - decisive brace.") {
		t.Fatalf("missing verdict:\n%s", out)
	}
	if !strings.Contains(out, "Analysis based on 2 players (filtered out 1 who played ≤5 minutes)") {
		t.Fatalf("missing inclusion summary:\n%s", out)
	}
}

func TestRun_CompleterFailure(t *testing.T) {
	t.Parallel()

	stats := &fakeStats{
		fixture: match.Fixture{ID: 1, HomeTeam: "A", AwayTeam: "B", Date: "2024-01-01"},
		found:   true,
		teams: []match.TeamPlayerStats{
			{Team: "A", Players: []match.PlayerStats{{Name: "P", Position: "M", Minutes: 90}}},
		},
	}
	completer := &fakeCompleter{err: io.ErrUnexpectedEOF}

	out := runWith(t, stats, completer, "A vs B on 2024-01-01\nexit\n")
	if !strings.Contains(out, "An error occurred. Please try again.") {
		t.Fatalf("missing generic error message:\n%s", out)
	}
	if !strings.Contains(out, "Goodbye!") {
		t.Fatalf("loop should survive a completer failure:\n%s", out)
	}
}
