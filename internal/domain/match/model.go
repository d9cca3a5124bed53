package match

// MinMinutes is the inclusion threshold for MVP analysis: players must have
// played strictly more than this many minutes.
const MinMinutes = 5

// Fixture identifies one real-world match as returned by the stats provider.
// Built fresh per query, never persisted.
type Fixture struct {
	ID       int64
	HomeTeam string
	AwayTeam string
	Date     string
}

// TeamPlayerStats is one team's roster statistics for one fixture, in the
// order the provider returned it.
type TeamPlayerStats struct {
	Team    string
	Players []PlayerStats
}

// PlayerStats holds one player's match-level statistics. Counting fields are
// zero when the provider payload had null/absent leaves; Rating and
// PassAccuracy stay nil when absent because absence differs from zero there.
type PlayerStats struct {
	Name          string
	Position      string
	Minutes       int
	Rating        *string
	Goals         int
	Assists       int
	Saves         int
	ShotsTotal    int
	ShotsOn       int
	PassesTotal   int
	PassAccuracy  *int
	KeyPasses     int
	Tackles       int
	Interceptions int
	DuelsTotal    int
	DuelsWon      int
	Yellow        int
	Red           int
}

// Eligible reports whether the player clears the minutes threshold for MVP
// consideration.
func (p PlayerStats) Eligible() bool {
	return p.Minutes > MinMinutes
}

// Query is a parsed user request for one match.
type Query struct {
	Team1 string
	Team2 string
	Date  string
}
