package apifootball

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/footylab/mvp-selector/internal/domain/match"
	"github.com/footylab/mvp-selector/internal/platform/logging"
)

const defaultBaseURL = "https://api-football-v1.p.rapidapi.com/v3"

var (
	errAuthFailed   = crerr.New("apifootball authentication failed")
	errAccessDenied = crerr.New("apifootball access denied")
	errRateLimited  = crerr.New("apifootball rate limited")
)

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Key        string
	Host       string
	Timeout    time.Duration
	Logger     *logging.Logger
}

// Client talks to the API-Football service on RapidAPI. Both operations
// degrade to absence-of-data on any failure; transport, auth, rate-limit and
// decode problems are logged with detail but never surfaced to callers as
// distinct error types.
type Client struct {
	httpClient *http.Client
	baseURL    string
	key        string
	host       string
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 30 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		key:        strings.TrimSpace(cfg.Key),
		host:       strings.TrimSpace(cfg.Host),
		logger:     logger,
	}
}

// FindFixture looks up the fixture list for the date and scans it for a
// fixture whose home/away names contain both team names as case-insensitive
// substrings, in either order. First hit in list order wins; partial names
// like "City" can match an unintended fixture, which is a documented
// limitation of the lookup, not something this client disambiguates.
func (c *Client) FindFixture(ctx context.Context, team1, team2, date string) (match.Fixture, bool) {
	var envelope fixturesEnvelope
	if err := c.get(ctx, "fixtures", map[string]string{"date": date}, &envelope); err != nil {
		c.logger.WarnContext(ctx, "fixture search request failed", "date", date, "error", c.sanitize(err))
		return match.Fixture{}, false
	}
	if envelope.Errors.Present() {
		c.logger.WarnContext(ctx, "fixture search rejected by provider", "date", date, "provider_errors", envelope.Errors.String())
		return match.Fixture{}, false
	}

	want1 := strings.ToLower(strings.TrimSpace(team1))
	want2 := strings.ToLower(strings.TrimSpace(team2))
	for _, item := range envelope.Response {
		home := strings.ToLower(item.Teams.Home.Name)
		away := strings.ToLower(item.Teams.Away.Name)
		if home == "" || away == "" {
			continue
		}

		straight := strings.Contains(home, want1) && strings.Contains(away, want2)
		swapped := strings.Contains(home, want2) && strings.Contains(away, want1)
		if straight || swapped {
			c.logger.InfoContext(ctx, "fixture matched",
				"fixture_id", item.Fixture.ID,
				"home", item.Teams.Home.Name,
				"away", item.Teams.Away.Name,
			)
			return match.Fixture{
				ID:       item.Fixture.ID,
				HomeTeam: item.Teams.Home.Name,
				AwayTeam: item.Teams.Away.Name,
				Date:     item.Fixture.Date,
			}, true
		}
	}

	c.logger.WarnContext(ctx, "no fixture found", "team1", team1, "team2", team2, "date", date)
	return match.Fixture{}, false
}

// PlayerStats fetches per-team player statistics for a fixture. Null leaves
// in the payload map to zero counting fields and nil optionals; the
// summarizer decides what absence means.
func (c *Client) PlayerStats(ctx context.Context, fixtureID int64) []match.TeamPlayerStats {
	var envelope playersEnvelope
	params := map[string]string{"fixture": strconv.FormatInt(fixtureID, 10)}
	if err := c.get(ctx, "fixtures/players", params, &envelope); err != nil {
		c.logger.WarnContext(ctx, "player stats request failed", "fixture_id", fixtureID, "error", c.sanitize(err))
		return nil
	}
	if envelope.Errors.Present() {
		c.logger.WarnContext(ctx, "player stats rejected by provider", "fixture_id", fixtureID, "provider_errors", envelope.Errors.String())
		return nil
	}
	if len(envelope.Response) == 0 {
		c.logger.WarnContext(ctx, "no player statistics in response", "fixture_id", fixtureID)
		return nil
	}

	out := make([]match.TeamPlayerStats, 0, len(envelope.Response))
	for _, team := range envelope.Response {
		roster := match.TeamPlayerStats{
			Team:    team.Team.Name,
			Players: make([]match.PlayerStats, 0, len(team.Players)),
		}
		for _, item := range team.Players {
			roster.Players = append(roster.Players, mapPlayer(item))
		}
		out = append(out, roster)
	}

	c.logger.InfoContext(ctx, "player statistics fetched", "fixture_id", fixtureID, "teams", len(out))
	return out
}

func mapPlayer(item playerItem) match.PlayerStats {
	out := match.PlayerStats{Name: item.Player.Name, Position: "Unknown"}
	if len(item.Statistics) == 0 {
		return out
	}

	stats := item.Statistics[0]
	if position := strings.TrimSpace(stats.Games.Position); position != "" {
		out.Position = position
	}
	out.Minutes = intOrZero(stats.Games.Minutes)
	out.Rating = stats.Games.Rating.StringPtr()
	out.Goals = intOrZero(stats.Goals.Total)
	out.Assists = intOrZero(stats.Goals.Assists)
	out.Saves = intOrZero(stats.Goals.Saves)
	out.ShotsTotal = intOrZero(stats.Shots.Total)
	out.ShotsOn = intOrZero(stats.Shots.On)
	out.PassesTotal = intOrZero(stats.Passes.Total)
	out.PassAccuracy = stats.Passes.Accuracy.IntPtr()
	out.KeyPasses = intOrZero(stats.Passes.Key)
	out.Tackles = intOrZero(stats.Tackles.Total)
	out.Interceptions = intOrZero(stats.Tackles.Interceptions)
	out.DuelsTotal = intOrZero(stats.Duels.Total)
	out.DuelsWon = intOrZero(stats.Duels.Won)
	out.Yellow = intOrZero(stats.Cards.Yellow)
	out.Red = intOrZero(stats.Cards.Red)
	return out
}

func (c *Client) get(ctx context.Context, endpoint string, params map[string]string, target any) error {
	values := url.Values{}
	for key, value := range params {
		values.Set(key, value)
	}

	fullURL := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.key)
	req.Header.Set("X-RapidAPI-Host", c.host)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 6<<20))
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: status=401 body=%s", errAuthFailed, abbreviateBody(raw))
	case resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: status=403 body=%s", errAccessDenied, abbreviateBody(raw))
	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: status=429", errRateLimited)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}

	return nil
}

// sanitize keeps the API key out of logged error text.
func (c *Client) sanitize(err error) error {
	if err == nil || c.key == "" {
		return err
	}
	text := err.Error()
	if !strings.Contains(text, c.key) {
		return err
	}
	return crerr.New(strings.ReplaceAll(text, c.key, "REDACTED"))
}

func abbreviateBody(raw []byte) string {
	text := strings.TrimSpace(string(raw))
	if len(text) > 256 {
		return text[:256] + "..."
	}
	return text
}

func intOrZero(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}
