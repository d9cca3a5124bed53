// Package cli drives the interactive console loop: read a match query,
// run validate -> fetch -> determine, print one result block per query.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/footylab/mvp-selector/internal/domain/match"
	"github.com/footylab/mvp-selector/internal/usecase"
)

const inputPrompt = "\nEnter match details (or 'exit' to quit): "

type Runner struct {
	svc    *usecase.MVPService
	in     io.Reader
	out    io.Writer
	logger *slog.Logger
}

func NewRunner(svc *usecase.MVPService, in io.Reader, out io.Writer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		svc:    svc,
		in:     in,
		out:    out,
		logger: logger,
	}
}

// Run loops until an exit keyword, end of input, or context cancellation.
// A failure inside one iteration never kills the loop.
func (r *Runner) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, "Football MVP Selector")
	fmt.Fprintln(r.out, "Enter match details in format: 'Team1 vs Team2 on YYYY-MM-DD'")
	fmt.Fprintln(r.out, "Example: 'Barcelona vs Real Madrid on 2024-03-17'")

	scanner := bufio.NewScanner(r.in)
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		fmt.Fprint(r.out, inputPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if isExitKeyword(line) {
			fmt.Fprintln(r.out, "Goodbye!")
			return nil
		}

		query, ok := match.ParseQuery(line)
		if !ok {
			fmt.Fprintln(r.out, "Invalid format. Please use: 'Team1 vs Team2 on YYYY-MM-DD'")
			continue
		}

		r.runQuery(ctx, query)
	}
}

func (r *Runner) runQuery(ctx context.Context, query match.Query) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.ErrorContext(ctx, "query processing panicked", "panic", rec)
			fmt.Fprintln(r.out, "An error occurred. Please try again.")
		}
	}()

	fixture, err := r.svc.ValidateMatch(ctx, query)
	if err != nil {
		r.reportError(ctx, err, fmt.Sprintf(
			"No match found between %s and %s on %s. Please check team names and date.",
			query.Team1, query.Team2, query.Date,
		))
		return
	}

	fmt.Fprintf(r.out, "Match found: %s vs %s (fixture %d)\n", fixture.HomeTeam, fixture.AwayTeam, fixture.ID)

	teams, err := r.svc.FetchMatchStats(ctx, fixture.ID)
	if err != nil {
		r.reportError(ctx, err, fmt.Sprintf("No player statistics found for fixture %d.", fixture.ID))
		return
	}

	verdict, err := r.svc.DetermineMVP(ctx, teams)
	if err != nil {
		r.reportError(ctx, err, "Could not determine the MVP. Please try again.")
		return
	}

	fmt.Fprintf(r.out, "\nResult:\n%s\n", verdict)
}

func (r *Runner) reportError(ctx context.Context, err error, notFoundMsg string) {
	if errors.Is(err, usecase.ErrNotFound) {
		fmt.Fprintln(r.out, notFoundMsg)
		return
	}
	r.logger.ErrorContext(ctx, "query failed", "error", err)
	fmt.Fprintln(r.out, "An error occurred. Please try again.")
}

func isExitKeyword(line string) bool {
	switch strings.ToLower(line) {
	case "exit", "quit", "q":
		return true
	default:
		return false
	}
}
