package usecase

import (
	"fmt"
	"strings"

	"github.com/footylab/mvp-selector/internal/domain/match"
)

// filterRoster drops players at or below the minutes threshold, keeping team
// grouping and roster order intact. It reports how many players survived and
// how many were fetched in total so the final summary line can cite both.
func filterRoster(teams []match.TeamPlayerStats) (filtered []match.TeamPlayerStats, kept, total int) {
	filtered = make([]match.TeamPlayerStats, 0, len(teams))
	for _, team := range teams {
		out := match.TeamPlayerStats{Team: team.Team}
		for _, player := range team.Players {
			total++
			if !player.Eligible() {
				continue
			}
			out.Players = append(out.Players, player)
			kept++
		}
		filtered = append(filtered, out)
	}
	return filtered, kept, total
}

// buildDigest renders one paragraph per player grouped by team, in roster
// order. Zero-valued clauses are omitted so the model is not drowned in "0"
// noise; rating and pass accuracy appear only when the provider sent them.
func buildDigest(teams []match.TeamPlayerStats) string {
	var b strings.Builder

	for _, team := range teams {
		fmt.Fprintf(&b, "\n=== %s ===\n", team.Team)

		for _, p := range team.Players {
			fmt.Fprintf(&b, "- %s (%s) - %dmin", p.Name, p.Position, p.Minutes)
			if p.Rating != nil {
				fmt.Fprintf(&b, ", Rating: %s", *p.Rating)
			}
			if p.Goals > 0 {
				fmt.Fprintf(&b, ", Goals: %d", p.Goals)
			}
			if p.Assists > 0 {
				fmt.Fprintf(&b, ", Assists: %d", p.Assists)
			}
			if p.Saves > 0 {
				fmt.Fprintf(&b, ", Saves: %d", p.Saves)
			}
			b.WriteString("\n")

			if p.ShotsTotal > 0 || p.PassesTotal > 0 {
				fmt.Fprintf(&b, "  Attack: %d shots (%d on target), %d passes", p.ShotsTotal, p.ShotsOn, p.PassesTotal)
				if p.PassAccuracy != nil {
					fmt.Fprintf(&b, " (%d%% acc)", *p.PassAccuracy)
				}
				if p.KeyPasses > 0 {
					fmt.Fprintf(&b, ", %d key passes", p.KeyPasses)
				}
				b.WriteString("\n")
			}

			if p.Tackles > 0 || p.Interceptions > 0 || p.DuelsTotal > 0 {
				fmt.Fprintf(&b, "  Defense: %d tackles, %d interceptions", p.Tackles, p.Interceptions)
				if p.DuelsTotal > 0 {
					fmt.Fprintf(&b, ", %d/%d duels won", p.DuelsWon, p.DuelsTotal)
				}
				b.WriteString("\n")
			}

			if p.Yellow > 0 || p.Red > 0 {
				fmt.Fprintf(&b, "  Cards: %d yellow, %d red\n", p.Yellow, p.Red)
			}

			b.WriteString("\n")
		}
	}

	return b.String()
}

const rubric = `Analyze key metrics such as:
- Goals and assists (most important)
- Overall rating
- Passing accuracy and key passes
- Defensive actions (tackles, interceptions, blocks)
- Goalkeeper saves (if applicable)
- Minutes played and impact on the game

Choose ONE player as MVP and provide a detailed explanation focusing on their most impactful contributions.
Format your response as: "MVP: [Player Name] - [Detailed explanation of why they deserve MVP]"`

func buildPrompt(digest string) string {
	var b strings.Builder
	b.WriteString("Based on the following player statistics summary from a football match, determine who was the Most Valuable Player (MVP) and explain why.\n\n")
	fmt.Fprintf(&b, "Note: Only players who played more than %d minutes are included in this analysis.\n", match.MinMinutes)
	b.WriteString(digest)
	b.WriteString("\n")
	b.WriteString(rubric)
	return b.String()
}
