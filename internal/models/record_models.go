package models

// Normalized flat records produced by the collectors. Each type corresponds
// to one exported dataset.

type Team struct {
	Name    string
	ID      string
	Logo    string
	League  string
	Country string
	Season  string
	Link    string
}

type Player struct {
	Name    string
	ID      string
	Profile string
	Coach   bool
	Team    string
	League  string
	Country string
	Season  string
	Link    string
}

type Event struct {
	ID         string
	League     string
	LeagueID   int
	Country    string
	Round      int
	Season     string
	SeasonID   int
	HomeTeamID int
	AwayTeamID int
	Link       string
}

// MatchResult is one team's view of a finished match; every event yields a
// Home row and an Away row.
type MatchResult struct {
	EventID      string
	Team         string
	TeamID       int
	ScoreFor     int
	ScoreAgainst int
	Win          bool
	Draw         bool
	Loss         bool
	Side         string
}

type HeatmapPoint struct {
	X        float64
	Y        float64
	Count    int
	PlayerID string
	LeagueID int
	SeasonID int
}

// PlayerSeason is one tournament-season a player has appeared in.
type PlayerSeason struct {
	Competition string
	LeagueID    int
	SeasonID    int
	PlayerID    string
}

type ShotEvent struct {
	Player                string
	PlayerID              int
	TeamID                int
	EventType             string
	X                     float64
	Y                     float64
	Min                   int
	OnTarget              bool
	ExpectedGoals         float64
	ExpectedGoalsOnTarget float64
	ShotType              string
	Situation             string
	Period                string
	OwnGoal               bool
	Team                  string
	League                string
	Season                string
}

// PositionProfile is one declared playing position of a player with how
// often they have occupied it.
type PositionProfile struct {
	PlayerName  string
	PlayerID    string
	PositionID  int
	Position    string
	PosShort    string
	Occurrences int
	Main        bool
}

type StandingRow struct {
	Rank         int
	Team         string
	Played       int
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
	GoalDiff     int
	Points       int
	League       string
	Country      string
	Season       string
}

// StatRow is one cell of a squad statistics table in long format.
type StatRow struct {
	Team    string
	Class   string
	Stat    string
	Value   string
	Table   string
	Target  string
	League  string
	Country string
	Season  string
}

// SquadStatRow is one cell of a team's per-player standard stats table in
// long format.
type SquadStatRow struct {
	Player  string
	Stat    string
	Value   string
	Team    string
	League  string
	Country string
	Season  string
}

// PercentileRow is one line of a player's scouting report: a statistic with
// its per-90 value and league percentile, bucketed into a coarse class.
type PercentileRow struct {
	Player     string
	PlayerID   string
	Statistic  string
	Per90      string
	Percentile int
	Class      string
}

// PlayerLink ties a player record from one source to the closest-named
// record in another source.
type PlayerLink struct {
	Name        string
	SourceID    string
	Source      string
	MatchedName string
	MatchedID   string
	MatchedIn   string
	Similarity  float64
}
