package match

import (
	"regexp"
	"strings"
)

// Non-greedy one-or-more captures so empty team names never match. The date
// is shape-checked only; calendar validity is the provider's problem.
var queryPattern = regexp.MustCompile(`^(.+?)\s+(?i:vs|v)\s+(.+?)\s+(?i:on)\s+(\d{4}-\d{2}-\d{2})`)

// ParseQuery extracts (team1, team2, date) from free-text input of the form
// "Team1 vs Team2 on YYYY-MM-DD". Empty, whitespace-only, and malformed
// input all report ok=false; callers cannot tell those apart.
func ParseQuery(raw string) (Query, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Query{}, false
	}

	groups := queryPattern.FindStringSubmatch(raw)
	if groups == nil {
		return Query{}, false
	}

	return Query{
		Team1: strings.TrimSpace(groups[1]),
		Team2: strings.TrimSpace(groups[2]),
		Date:  strings.TrimSpace(groups[3]),
	}, true
}
