// MCP entrypoint: exposes the three selector operations as tools over stdio
// so any MCP client can drive the same validate/fetch/determine pipeline the
// console loop uses.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/footylab/mvp-selector/internal/app"
	"github.com/footylab/mvp-selector/internal/config"
	"github.com/footylab/mvp-selector/internal/domain/match"
	"github.com/footylab/mvp-selector/internal/usecase"
)

const (
	serverName    = "mvp-selector"
	serverVersion = "1.0.0"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	svc := app.NewMVPService(cfg, logger)

	s := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
	)
	registerTools(s, svc)

	if err := server.ServeStdio(s); err != nil {
		logger.Error("mcp server failed", "error", err)
		os.Exit(1)
	}
}

func registerTools(s *server.MCPServer, svc *usecase.MVPService) {
	s.AddTool(
		mcp.NewTool("validate_match",
			mcp.WithDescription("Validate that a match between two teams on a date exists. Returns fixture details when found."),
			mcp.WithString("team1", mcp.Required(), mcp.Description("First team name")),
			mcp.WithString("team2", mcp.Required(), mcp.Description("Second team name")),
			mcp.WithString("date", mcp.Required(), mcp.Description("Match date in YYYY-MM-DD format")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			query := match.Query{
				Team1: getStr(req.Params.Arguments, "team1"),
				Team2: getStr(req.Params.Arguments, "team2"),
				Date:  getStr(req.Params.Arguments, "date"),
			}
			fixture, err := svc.ValidateMatch(ctx, query)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf(
					"No match found between %s and %s on %s. Please check team names and date.",
					query.Team1, query.Team2, query.Date,
				)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf(
				"Match found! Fixture ID: %d, %s vs %s on %s",
				fixture.ID, fixture.HomeTeam, fixture.AwayTeam, fixture.Date,
			)), nil
		},
	)

	s.AddTool(
		mcp.NewTool("fetch_match_stats",
			mcp.WithDescription("Fetch player statistics for a fixture and report which teams and how many players are available."),
			mcp.WithNumber("fixture_id", mcp.Required(), mcp.Description("Fixture ID from validate_match")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			fixtureID := getInt64(req.Params.Arguments, "fixture_id")
			teams, err := svc.FetchMatchStats(ctx, fixtureID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("No player statistics found for fixture %d", fixtureID)), nil
			}

			total := 0
			names := make([]string, 0, len(teams))
			for _, team := range teams {
				total += len(team.Players)
				names = append(names, team.Team)
			}
			return mcp.NewToolResultText(fmt.Sprintf(
				"Fetched statistics for %d teams (%s) with %d total players. Ready for MVP analysis.",
				len(teams), strings.Join(names, ", "), total,
			)), nil
		},
	)

	s.AddTool(
		mcp.NewTool("determine_mvp",
			mcp.WithDescription("Analyze player statistics for a fixture and determine the MVP of the match."),
			mcp.WithNumber("fixture_id", mcp.Required(), mcp.Description("Fixture ID to analyze")),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			fixtureID := getInt64(req.Params.Arguments, "fixture_id")
			teams, err := svc.FetchMatchStats(ctx, fixtureID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("No player statistics found for fixture %d", fixtureID)), nil
			}
			verdict, err := svc.DetermineMVP(ctx, teams)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Error analyzing MVP: %v", err)), nil
			}
			return mcp.NewToolResultText(verdict), nil
		},
	)
}

func toMap(args any) map[string]any {
	if m, ok := args.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func getStr(args any, key string) string {
	if v, ok := toMap(args)[key].(string); ok {
		return v
	}
	return ""
}

func getInt64(args any, key string) int64 {
	if v, ok := toMap(args)[key].(float64); ok {
		return int64(v)
	}
	return 0
}
