package service

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/pvdata/pitchdata/internal/api/sofascore"
	"github.com/pvdata/pitchdata/internal/export"
	"github.com/pvdata/pitchdata/internal/lineup"
	"github.com/pvdata/pitchdata/internal/models"
	"github.com/pvdata/pitchdata/internal/repository/memory"
	"github.com/pvdata/pitchdata/internal/xref"
)

// Capability-typed views of the data sources. The collectors only depend on
// these, never on transport details.

type SofascoreSource interface {
	TournamentStanding(tournamentID, seasonID string) (*sofascore.StandingInfo, error)
	EventData(eventID int) (*models.SofascoreEvent, error)
	EventsForRound(tournamentID, seasonID string, round int) ([]models.SofascoreEvent, error)
	MatchLineups(event *models.SofascoreEvent) (lineup.Match, error)
	TeamPlayers(teamID int) ([]models.SofascorePlayer, error)
	PlayerSeasons(playerID string) ([]models.PlayerSeason, error)
	Heatmap(playerID string, leagueID, seasonID int) ([]models.HeatmapPoint, error)
}

type FotmobSource interface {
	TeamsFromLeague(leagueID string) ([]models.Team, error)
	PlayersFromTeam(team models.Team) ([]models.Player, error)
	Shotmap(playerID string) ([]models.FotmobShot, error)
	Positions(playerID, playerName string) ([]models.PositionProfile, error)
}

type FbrefSource interface {
	TeamsFromLeague(leagueURL string) ([]models.Team, error)
	Standings(leagueURL string) ([]models.StandingRow, error)
	LeagueStats(leagueURL string) ([]models.StatRow, error)
	SquadStats(team models.Team, leagueID string) ([]models.SquadStatRow, error)
	PlayersFromTeam(team models.Team) ([]models.Player, error)
	Percentiles(player models.Player) ([]models.PercentileRow, error)
}

type Sink interface {
	Write(name string, headers []string, rows [][]string) error
}

const maxRounds = 60

// CollectorService runs the batch collections. Every batch processes its
// items sequentially with a fixed pause between requests and contains
// failures at item granularity: a failed item is logged and skipped, the
// batch keeps going.
type CollectorService struct {
	sofascore SofascoreSource
	fotmob    FotmobSource
	fbref     FbrefSource
	repo      *memory.Repository
	sink      Sink
	delay     time.Duration
}

func NewCollectorService(sofa SofascoreSource, fm FotmobSource, fb FbrefSource, repo *memory.Repository, sink Sink, delay time.Duration) *CollectorService {
	return &CollectorService{
		sofascore: sofa,
		fotmob:    fm,
		fbref:     fb,
		repo:      repo,
		sink:      sink,
		delay:     delay,
	}
}

func (s *CollectorService) pause() {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
}

// parseSofascoreLeagueURL splits a league URL of the form
// .../tournament/.../laliga/8#id:61643 into tournament and season ids.
func parseSofascoreLeagueURL(leagueURL string) (tournamentID, seasonID string, err error) {
	parts := strings.Split(strings.TrimRight(leagueURL, "/"), "/")
	last := parts[len(parts)-1]

	tournamentID, seasonID, found := strings.Cut(last, "#id:")
	if !found || tournamentID == "" || seasonID == "" {
		return "", "", fmt.Errorf("unrecognized sofascore league url: %s", leagueURL)
	}
	return tournamentID, seasonID, nil
}

// CollectSofascoreTeams normalizes the league standings into team records.
func (s *CollectorService) CollectSofascoreTeams(leagueURL string) ([]models.Team, error) {
	tournamentID, seasonID, err := parseSofascoreLeagueURL(leagueURL)
	if err != nil {
		return nil, err
	}

	info, err := s.sofascore.TournamentStanding(tournamentID, seasonID)
	if err != nil {
		return nil, err
	}

	teams := make([]models.Team, len(info.Teams))
	for i, t := range info.Teams {
		teams[i] = models.Team{
			Name:    t.Name,
			ID:      strconv.Itoa(t.ID),
			Logo:    fmt.Sprintf("https://api.sofascore.app/api/v1/team/%d/image", t.ID),
			League:  info.League,
			Country: info.Country,
			Season:  info.Season,
			Link:    fmt.Sprintf("https://www.sofascore.com/team/football/%d", t.ID),
		}
	}

	s.repo.SaveTeams("sofascore", teams)
	headers, rows := export.TeamRecords(teams)
	if err := s.sink.Write("sofascore_teams", headers, rows); err != nil {
		return nil, err
	}
	return teams, nil
}

// CollectSofascoreEvents walks the league rounds and normalizes every listed
// event.
func (s *CollectorService) CollectSofascoreEvents(leagueURL string) ([]models.Event, error) {
	tournamentID, seasonID, err := parseSofascoreLeagueURL(leagueURL)
	if err != nil {
		return nil, err
	}

	var events []models.Event
	for round := 1; round <= maxRounds; round++ {
		s.pause()
		roundEvents, err := s.sofascore.EventsForRound(tournamentID, seasonID, round)
		if err != nil || len(roundEvents) == 0 {
			break
		}
		for _, ev := range roundEvents {
			events = append(events, models.Event{
				ID:         strconv.Itoa(ev.ID),
				League:     ev.Tournament.Name,
				LeagueID:   ev.Tournament.UniqueTournament.ID,
				Country:    ev.Tournament.Category.Name,
				Round:      round,
				Season:     ev.Season.Year,
				SeasonID:   ev.Season.ID,
				HomeTeamID: ev.HomeTeam.ID,
				AwayTeamID: ev.AwayTeam.ID,
				Link:       fmt.Sprintf("https://www.sofascore.com/event/%d", ev.ID),
			})
		}
	}

	s.repo.SaveEvents(events)
	headers, rows := export.EventRecords(events)
	if err := s.sink.Write("sofascore_events", headers, rows); err != nil {
		return nil, err
	}
	return events, nil
}

// CollectLineups assembles the per-player lineup table for every finished
// event. A failed event contributes nothing; the batch continues.
func (s *CollectorService) CollectLineups(events []models.Event) ([]lineup.Row, error) {
	var all []lineup.Row
	for _, ev := range events {
		s.pause()

		rows, err := s.eventLineups(ev)
		if err != nil {
			slog.Warn("Skipping event lineups", "event_id", ev.ID, "error", err)
			continue
		}
		all = append(all, rows...)
	}

	headers, rows := export.LineupRecords(all)
	if err := s.sink.Write("sofascore_lineup", headers, rows); err != nil {
		return nil, err
	}
	return all, nil
}

func (s *CollectorService) eventLineups(ev models.Event) ([]lineup.Row, error) {
	eventID, err := strconv.Atoi(ev.ID)
	if err != nil {
		return nil, fmt.Errorf("bad event id %q: %w", ev.ID, err)
	}

	event, err := s.sofascore.EventData(eventID)
	if err != nil {
		return nil, err
	}
	if event.Status.Type != "finished" {
		return nil, nil
	}

	match, err := s.sofascore.MatchLineups(event)
	if err != nil {
		return nil, err
	}
	return lineup.AssembleMatch(match)
}

// CollectResults produces a Home and an Away result row for every finished
// event.
func (s *CollectorService) CollectResults(events []models.Event) ([]models.MatchResult, error) {
	var results []models.MatchResult
	for _, ev := range events {
		s.pause()

		eventID, err := strconv.Atoi(ev.ID)
		if err != nil {
			slog.Warn("Skipping event result", "event_id", ev.ID, "error", err)
			continue
		}
		event, err := s.sofascore.EventData(eventID)
		if err != nil {
			slog.Warn("Skipping event result", "event_id", ev.ID, "error", err)
			continue
		}
		if event.Status.Type != "finished" {
			continue
		}

		home, away := event.HomeScore.Display, event.AwayScore.Display
		results = append(results,
			models.MatchResult{
				EventID: ev.ID, Team: event.HomeTeam.ShortName, TeamID: event.HomeTeam.ID,
				ScoreFor: home, ScoreAgainst: away,
				Win: home > away, Draw: home == away, Loss: home < away,
				Side: lineup.SideHome,
			},
			models.MatchResult{
				EventID: ev.ID, Team: event.AwayTeam.ShortName, TeamID: event.AwayTeam.ID,
				ScoreFor: away, ScoreAgainst: home,
				Win: away > home, Draw: away == home, Loss: away < home,
				Side: lineup.SideAway,
			},
		)
	}

	headers, rows := export.ResultRecords(results)
	if err := s.sink.Write("sofascore_results", headers, rows); err != nil {
		return nil, err
	}
	return results, nil
}

// CollectSofascorePlayers lists every team's current squad.
func (s *CollectorService) CollectSofascorePlayers(teams []models.Team) ([]models.Player, error) {
	var players []models.Player
	for _, team := range teams {
		s.pause()

		teamID, err := strconv.Atoi(team.ID)
		if err != nil {
			slog.Warn("Skipping team players", "team", team.Name, "error", err)
			continue
		}
		squad, err := s.sofascore.TeamPlayers(teamID)
		if err != nil {
			slog.Warn("Skipping team players", "team", team.Name, "error", err)
			continue
		}

		for _, p := range squad {
			players = append(players, models.Player{
				Name:    p.Name,
				ID:      strconv.Itoa(p.ID),
				Profile: fmt.Sprintf("https://api.sofascore.app/api/v1/player/%d/image", p.ID),
				Team:    team.Name,
				League:  team.League,
				Country: team.Country,
				Season:  team.Season,
				Link:    fmt.Sprintf("https://www.sofascore.com/player/%d", p.ID),
			})
		}
	}

	s.repo.SavePlayers("sofascore", players)
	headers, rows := export.PlayerRecords(players)
	if err := s.sink.Write("sofascore_players", headers, rows); err != nil {
		return nil, err
	}
	return players, nil
}

// CollectHeatmaps gathers per-tournament heatmap points for every player,
// exporting the visited player-seasons alongside the points.
func (s *CollectorService) CollectHeatmaps(players []models.Player) ([]models.HeatmapPoint, error) {
	var points []models.HeatmapPoint
	var allSeasons []models.PlayerSeason
	for _, player := range players {
		s.pause()

		seasons, err := s.sofascore.PlayerSeasons(player.ID)
		if err != nil {
			slog.Warn("Skipping player heatmaps", "player", player.Name, "error", err)
			continue
		}
		allSeasons = append(allSeasons, seasons...)

		for _, season := range seasons {
			heatmap, err := s.sofascore.Heatmap(player.ID, season.LeagueID, season.SeasonID)
			if err != nil {
				slog.Warn("Skipping heatmap", "player", player.Name, "league_id", season.LeagueID, "error", err)
				continue
			}
			points = append(points, heatmap...)
		}
	}

	seasonHeaders, seasonRows := export.PlayerSeasonRecords(allSeasons)
	if err := s.sink.Write("sofascore_player_seasons", seasonHeaders, seasonRows); err != nil {
		return nil, err
	}

	headers, rows := export.HeatmapRecords(points)
	if err := s.sink.Write("sofascore_heatmap", headers, rows); err != nil {
		return nil, err
	}
	return points, nil
}

func (s *CollectorService) CollectFotmobTeams(leagueID string) ([]models.Team, error) {
	teams, err := s.fotmob.TeamsFromLeague(leagueID)
	if err != nil {
		return nil, err
	}

	s.repo.SaveTeams("fotmob", teams)
	headers, rows := export.TeamRecords(teams)
	if err := s.sink.Write("fotmob_teams", headers, rows); err != nil {
		return nil, err
	}
	return teams, nil
}

func (s *CollectorService) CollectFotmobPlayers(teams []models.Team) ([]models.Player, error) {
	var players []models.Player
	for _, team := range teams {
		s.pause()

		squad, err := s.fotmob.PlayersFromTeam(team)
		if err != nil {
			slog.Warn("Skipping team players", "team", team.Name, "error", err)
			continue
		}
		players = append(players, squad...)
	}

	s.repo.SavePlayers("fotmob", players)
	headers, rows := export.PlayerRecords(players)
	if err := s.sink.Write("fotmob_players", headers, rows); err != nil {
		return nil, err
	}
	return players, nil
}

// CollectShotmaps gathers every player's shot events for the current
// season.
func (s *CollectorService) CollectShotmaps(players []models.Player) ([]models.ShotEvent, error) {
	var shots []models.ShotEvent
	for _, player := range players {
		s.pause()

		playerShots, err := s.fotmob.Shotmap(player.ID)
		if err != nil {
			slog.Warn("Skipping player shotmap", "player", player.Name, "error", err)
			continue
		}

		for _, shot := range playerShots {
			shots = append(shots, models.ShotEvent{
				Player:                shot.PlayerName,
				PlayerID:              shot.PlayerID,
				TeamID:                shot.TeamID,
				EventType:             shot.EventType,
				X:                     shot.X,
				Y:                     shot.Y,
				Min:                   shot.Min,
				OnTarget:              shot.IsOnTarget,
				ExpectedGoals:         shot.ExpectedGoals,
				ExpectedGoalsOnTarget: shot.ExpectedGoalsOnTarget,
				ShotType:              shot.ShotType,
				Situation:             shot.Situation,
				Period:                shot.Period,
				OwnGoal:               shot.IsOwnGoal,
				Team:                  player.Team,
				League:                player.League,
				Season:                player.Season,
			})
		}
	}

	headers, rows := export.ShotRecords(shots)
	if err := s.sink.Write("fotmob_shotmap", headers, rows); err != nil {
		return nil, err
	}
	return shots, nil
}

func (s *CollectorService) CollectPositions(players []models.Player) ([]models.PositionProfile, error) {
	var positions []models.PositionProfile
	for _, player := range players {
		s.pause()

		profile, err := s.fotmob.Positions(player.ID, player.Name)
		if err != nil {
			slog.Warn("Skipping player positions", "player", player.Name, "error", err)
			continue
		}
		if len(profile) == 0 {
			slog.Warn("No positions found for player", "player", player.Name, "player_id", player.ID)
			continue
		}
		positions = append(positions, profile...)
	}

	headers, rows := export.PositionRecords(positions)
	if err := s.sink.Write("fotmob_positions", headers, rows); err != nil {
		return nil, err
	}
	return positions, nil
}

func (s *CollectorService) CollectFbrefTeams(leagueURL string) ([]models.Team, error) {
	teams, err := s.fbref.TeamsFromLeague(leagueURL)
	if err != nil {
		return nil, err
	}

	s.repo.SaveTeams("fbref", teams)
	headers, rows := export.TeamRecords(teams)
	if err := s.sink.Write("fbref_teams", headers, rows); err != nil {
		return nil, err
	}
	return teams, nil
}

func (s *CollectorService) CollectFbrefStandings(leagueURL string) ([]models.StandingRow, error) {
	standings, err := s.fbref.Standings(leagueURL)
	if err != nil {
		return nil, err
	}

	headers, rows := export.StandingRecords(standings)
	if err := s.sink.Write("fbref_standings", headers, rows); err != nil {
		return nil, err
	}
	return standings, nil
}

func (s *CollectorService) CollectFbrefStats(leagueURL string) ([]models.StatRow, error) {
	stats, err := s.fbref.LeagueStats(leagueURL)
	if err != nil {
		return nil, err
	}

	headers, rows := export.StatRecords(stats)
	if err := s.sink.Write("fbref_stats", headers, rows); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *CollectorService) CollectFbrefSquads(teams []models.Team, leagueID string) ([]models.SquadStatRow, error) {
	var stats []models.SquadStatRow
	for _, team := range teams {
		s.pause()

		squad, err := s.fbref.SquadStats(team, leagueID)
		if err != nil {
			slog.Warn("Skipping squad stats", "team", team.Name, "error", err)
			continue
		}
		stats = append(stats, squad...)
	}

	headers, rows := export.SquadStatRecords(stats)
	if err := s.sink.Write("fbref_squads", headers, rows); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *CollectorService) CollectFbrefPlayers(teams []models.Team) ([]models.Player, error) {
	var players []models.Player
	for _, team := range teams {
		s.pause()

		squad, err := s.fbref.PlayersFromTeam(team)
		if err != nil {
			slog.Warn("Skipping team players", "team", team.Name, "error", err)
			continue
		}
		players = append(players, squad...)
	}

	s.repo.SavePlayers("fbref", players)
	headers, rows := export.PlayerRecords(players)
	if err := s.sink.Write("fbref_players", headers, rows); err != nil {
		return nil, err
	}
	return players, nil
}

func (s *CollectorService) CollectPercentiles(players []models.Player) ([]models.PercentileRow, error) {
	var percentiles []models.PercentileRow
	for _, player := range players {
		s.pause()

		report, err := s.fbref.Percentiles(player)
		if err != nil {
			slog.Warn("Skipping player percentiles", "player", player.Name, "error", err)
			continue
		}
		percentiles = append(percentiles, report...)
	}

	headers, rows := export.PercentileRecords(percentiles)
	if err := s.sink.Write("fbref_percentiles", headers, rows); err != nil {
		return nil, err
	}
	return percentiles, nil
}

// LinkPlayers ties the cached sofascore player records to their fotmob and
// fbref counterparts by name similarity.
func (s *CollectorService) LinkPlayers() ([]models.PlayerLink, error) {
	base := s.repo.Players("sofascore")
	links := xref.LinkPlayers("sofascore", base, "fotmob", s.repo.Players("fotmob"))
	links = append(links, xref.LinkPlayers("sofascore", base, "fbref", s.repo.Players("fbref"))...)

	headers, rows := export.PlayerLinkRecords(links)
	if err := s.sink.Write("player_links", headers, rows); err != nil {
		return nil, err
	}
	return links, nil
}
