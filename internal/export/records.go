package export

import (
	"strconv"

	"github.com/pvdata/pitchdata/internal/lineup"
	"github.com/pvdata/pitchdata/internal/models"
)

// Converters from normalized records to CSV headers plus rows. The sink owns
// the column sets so every export run produces the same layout.

func formatBool(b bool) string {
	return strconv.FormatBool(b)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatFloatPtr(f *float64) string {
	if f == nil {
		return ""
	}
	return formatFloat(*f)
}

func formatIntPtr(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func TeamRecords(teams []models.Team) ([]string, [][]string) {
	headers := []string{"team", "id", "logo", "league", "country", "season", "link"}
	rows := make([][]string, len(teams))
	for i, t := range teams {
		rows[i] = []string{t.Name, t.ID, t.Logo, t.League, t.Country, t.Season, t.Link}
	}
	return headers, rows
}

func PlayerRecords(players []models.Player) ([]string, [][]string) {
	headers := []string{"name", "id", "profile", "coach", "team", "league", "country", "season", "link"}
	rows := make([][]string, len(players))
	for i, p := range players {
		rows[i] = []string{p.Name, p.ID, p.Profile, formatBool(p.Coach), p.Team, p.League, p.Country, p.Season, p.Link}
	}
	return headers, rows
}

func EventRecords(events []models.Event) ([]string, [][]string) {
	headers := []string{"id", "league", "league_id", "country", "round", "season", "season_id", "home_team_id", "away_team_id", "link"}
	rows := make([][]string, len(events))
	for i, e := range events {
		rows[i] = []string{
			e.ID, e.League, strconv.Itoa(e.LeagueID), e.Country,
			strconv.Itoa(e.Round), e.Season, strconv.Itoa(e.SeasonID),
			strconv.Itoa(e.HomeTeamID), strconv.Itoa(e.AwayTeamID), e.Link,
		}
	}
	return headers, rows
}

func LineupRecords(lineupRows []lineup.Row) ([]string, [][]string) {
	headers := []string{
		"event_id", "player", "id", "jersey", "position", "substitute",
		"minutes", "order", "line", "lat", "pos", "local", "team",
		"formation", "defense", "midfield", "attack",
		"averageX", "averageY", "pointsCount",
	}
	rows := make([][]string, len(lineupRows))
	for i, r := range lineupRows {
		rows[i] = []string{
			r.EventID, r.Player, strconv.Itoa(r.PlayerID), strconv.Itoa(r.Jersey),
			r.Position, formatBool(r.Substitute), strconv.Itoa(r.Minutes),
			strconv.Itoa(r.Order), r.Line, r.Slot, r.Code, r.Side, r.Team,
			r.Formation, strconv.Itoa(r.Defense), strconv.Itoa(r.Midfield),
			strconv.Itoa(r.Attack),
			formatFloatPtr(r.AverageX), formatFloatPtr(r.AverageY), formatIntPtr(r.PointsCount),
		}
	}
	return headers, rows
}

func ResultRecords(results []models.MatchResult) ([]string, [][]string) {
	headers := []string{"event_id", "team", "team_id", "score_for", "score_against", "win", "draw", "loss", "local"}
	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = []string{
			r.EventID, r.Team, strconv.Itoa(r.TeamID),
			strconv.Itoa(r.ScoreFor), strconv.Itoa(r.ScoreAgainst),
			formatBool(r.Win), formatBool(r.Draw), formatBool(r.Loss), r.Side,
		}
	}
	return headers, rows
}

func HeatmapRecords(points []models.HeatmapPoint) ([]string, [][]string) {
	headers := []string{"x", "y", "count", "player_id", "league_id", "season_id"}
	rows := make([][]string, len(points))
	for i, p := range points {
		rows[i] = []string{
			formatFloat(p.X), formatFloat(p.Y), strconv.Itoa(p.Count),
			p.PlayerID, strconv.Itoa(p.LeagueID), strconv.Itoa(p.SeasonID),
		}
	}
	return headers, rows
}

func ShotRecords(shots []models.ShotEvent) ([]string, [][]string) {
	headers := []string{
		"player", "player_id", "team_id", "event_type", "x", "y", "min",
		"on_target", "expected_goals", "expected_goals_on_target",
		"shot_type", "situation", "period", "own_goal",
		"team", "league", "season",
	}
	rows := make([][]string, len(shots))
	for i, s := range shots {
		rows[i] = []string{
			s.Player, strconv.Itoa(s.PlayerID), strconv.Itoa(s.TeamID), s.EventType,
			formatFloat(s.X), formatFloat(s.Y), strconv.Itoa(s.Min),
			formatBool(s.OnTarget), formatFloat(s.ExpectedGoals), formatFloat(s.ExpectedGoalsOnTarget),
			s.ShotType, s.Situation, s.Period, formatBool(s.OwnGoal),
			s.Team, s.League, s.Season,
		}
	}
	return headers, rows
}

func PositionRecords(positions []models.PositionProfile) ([]string, [][]string) {
	headers := []string{"player_name", "player_id", "pos_id", "position", "pos_short", "occurrences", "main"}
	rows := make([][]string, len(positions))
	for i, p := range positions {
		rows[i] = []string{
			p.PlayerName, p.PlayerID, strconv.Itoa(p.PositionID),
			p.Position, p.PosShort, strconv.Itoa(p.Occurrences), formatBool(p.Main),
		}
	}
	return headers, rows
}

func StandingRecords(standings []models.StandingRow) ([]string, [][]string) {
	headers := []string{"rank", "team", "played", "wins", "draws", "losses", "goals_for", "goals_against", "goal_diff", "points", "league", "country", "season"}
	rows := make([][]string, len(standings))
	for i, s := range standings {
		rows[i] = []string{
			strconv.Itoa(s.Rank), s.Team, strconv.Itoa(s.Played),
			strconv.Itoa(s.Wins), strconv.Itoa(s.Draws), strconv.Itoa(s.Losses),
			strconv.Itoa(s.GoalsFor), strconv.Itoa(s.GoalsAgainst),
			strconv.Itoa(s.GoalDiff), strconv.Itoa(s.Points),
			s.League, s.Country, s.Season,
		}
	}
	return headers, rows
}

func StatRecords(stats []models.StatRow) ([]string, [][]string) {
	headers := []string{"team", "class", "stat", "value", "table", "target", "league", "country", "season"}
	rows := make([][]string, len(stats))
	for i, s := range stats {
		rows[i] = []string{s.Team, s.Class, s.Stat, s.Value, s.Table, s.Target, s.League, s.Country, s.Season}
	}
	return headers, rows
}

func SquadStatRecords(stats []models.SquadStatRow) ([]string, [][]string) {
	headers := []string{"player", "stat", "value", "team", "league", "country", "season"}
	rows := make([][]string, len(stats))
	for i, s := range stats {
		rows[i] = []string{s.Player, s.Stat, s.Value, s.Team, s.League, s.Country, s.Season}
	}
	return headers, rows
}

func PercentileRecords(percentiles []models.PercentileRow) ([]string, [][]string) {
	headers := []string{"player", "player_id", "statistic", "per90", "percentile", "class"}
	rows := make([][]string, len(percentiles))
	for i, p := range percentiles {
		rows[i] = []string{p.Player, p.PlayerID, p.Statistic, p.Per90, strconv.Itoa(p.Percentile), p.Class}
	}
	return headers, rows
}

func PlayerSeasonRecords(seasons []models.PlayerSeason) ([]string, [][]string) {
	headers := []string{"competition_name", "tournaments_id", "season_id", "player_id"}
	rows := make([][]string, len(seasons))
	for i, s := range seasons {
		rows[i] = []string{s.Competition, strconv.Itoa(s.LeagueID), strconv.Itoa(s.SeasonID), s.PlayerID}
	}
	return headers, rows
}

func PlayerLinkRecords(links []models.PlayerLink) ([]string, [][]string) {
	headers := []string{"name", "source_id", "source", "matched_name", "matched_id", "matched_in", "similarity"}
	rows := make([][]string, len(links))
	for i, l := range links {
		rows[i] = []string{l.Name, l.SourceID, l.Source, l.MatchedName, l.MatchedID, l.MatchedIn, formatFloat(l.Similarity)}
	}
	return headers, rows
}
