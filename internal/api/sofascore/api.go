package sofascore

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pvdata/pitchdata/internal/lineup"
	"github.com/pvdata/pitchdata/internal/models"
)

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

// StandingInfo is the league context plus team listing extracted from a
// tournament standings response.
type StandingInfo struct {
	League  string
	Country string
	Season  string
	Teams   []models.SofascoreTeam
}

func (a *API) TournamentStanding(tournamentID, seasonID string) (*StandingInfo, error) {
	var resp models.SofascoreStandingsResponse
	endpoint := fmt.Sprintf("/unique-tournament/%s/season/%s/standings/total", tournamentID, seasonID)
	if err := a.client.Get(endpoint, &resp); err != nil {
		return nil, fmt.Errorf("fetching standings: %w", err)
	}
	if len(resp.Standings) == 0 {
		return nil, fmt.Errorf("no standings for tournament %s season %s", tournamentID, seasonID)
	}

	standing := resp.Standings[0]
	info := &StandingInfo{
		League:  standing.Tournament.Name,
		Country: standing.Tournament.Category.Name,
		Season:  strconv.Itoa(time.Unix(standing.UpdatedAtTimestamp, 0).Year()),
		Teams:   make([]models.SofascoreTeam, len(standing.Rows)),
	}
	for i, row := range standing.Rows {
		info.Teams[i] = row.Team
	}
	return info, nil
}

func (a *API) EventData(eventID int) (*models.SofascoreEvent, error) {
	var resp models.SofascoreEventResponse
	if err := a.client.Get(fmt.Sprintf("/event/%d", eventID), &resp); err != nil {
		return nil, fmt.Errorf("fetching event %d: %w", eventID, err)
	}
	return &resp.Event, nil
}

func (a *API) EventsForRound(tournamentID, seasonID string, round int) ([]models.SofascoreEvent, error) {
	var resp models.SofascoreEventsResponse
	endpoint := fmt.Sprintf("/unique-tournament/%s/season/%s/events/round/%d", tournamentID, seasonID, round)
	if err := a.client.Get(endpoint, &resp); err != nil {
		return nil, fmt.Errorf("fetching round %d: %w", round, err)
	}
	return resp.Events, nil
}

// MatchLineups fetches the lineups and average positions of a finished event
// and binds them into a single lineup input for the assembler.
func (a *API) MatchLineups(event *models.SofascoreEvent) (lineup.Match, error) {
	var lineups models.SofascoreLineupsResponse
	if err := a.client.Get(fmt.Sprintf("/event/%d/lineups", event.ID), &lineups); err != nil {
		return lineup.Match{}, fmt.Errorf("fetching lineups for event %d: %w", event.ID, err)
	}

	var positions models.SofascoreAveragePositionsResponse
	if err := a.client.Get(fmt.Sprintf("/event/%d/average-positions", event.ID), &positions); err != nil {
		return lineup.Match{}, fmt.Errorf("fetching average positions for event %d: %w", event.ID, err)
	}

	return lineup.Match{
		EventID: strconv.Itoa(event.ID),
		Home:    buildSide(event.HomeTeam.ShortName, lineups.Home, positions.Home),
		Away:    buildSide(event.AwayTeam.ShortName, lineups.Away, positions.Away),
	}, nil
}

func buildSide(team string, tl models.SofascoreTeamLineup, positions []models.SofascoreAveragePosition) lineup.Side {
	side := lineup.Side{
		Team:             team,
		Formation:        tl.Formation,
		Roster:           make([]lineup.RosterEntry, len(tl.Players)),
		AveragePositions: make([]lineup.AveragePositionSample, len(positions)),
	}
	for i, p := range tl.Players {
		side.Roster[i] = lineup.RosterEntry{
			Name:       p.Player.Name,
			PlayerID:   p.Player.ID,
			Jersey:     p.ShirtNumber,
			Position:   p.Position,
			Substitute: p.Substitute,
			Minutes:    p.Statistics.MinutesPlayed,
		}
	}
	for i, p := range positions {
		side.AveragePositions[i] = lineup.AveragePositionSample{
			PlayerID:    p.Player.ID,
			AverageX:    p.AverageX,
			AverageY:    p.AverageY,
			PointsCount: p.PointsCount,
		}
	}
	return side
}

// TeamPlayers lists the current squad of a team.
func (a *API) TeamPlayers(teamID int) ([]models.SofascorePlayer, error) {
	var resp models.SofascoreTeamPlayersResponse
	if err := a.client.Get(fmt.Sprintf("/team/%d/players", teamID), &resp); err != nil {
		return nil, fmt.Errorf("fetching players for team %d: %w", teamID, err)
	}

	players := make([]models.SofascorePlayer, len(resp.Players))
	for i, p := range resp.Players {
		players[i] = p.Player
	}
	return players, nil
}

// PlayerSeasons lists the tournament-seasons a player appeared in,
// restricted to the last two years.
func (a *API) PlayerSeasons(playerID string) ([]models.PlayerSeason, error) {
	var resp models.SofascoreSeasonsResponse
	endpoint := fmt.Sprintf("/player/%s/statistics/seasons", playerID)
	if err := a.client.Get(endpoint, &resp); err != nil {
		return nil, fmt.Errorf("fetching seasons for player %s: %w", playerID, err)
	}

	cutoff := time.Now().Year()%100 - 2

	var seasons []models.PlayerSeason
	for _, tournament := range resp.UniqueTournamentSeasons {
		for _, season := range tournament.Seasons {
			if len(season.Year) < 2 {
				continue
			}
			year, err := strconv.Atoi(season.Year[len(season.Year)-2:])
			if err != nil || year <= cutoff {
				continue
			}
			seasons = append(seasons, models.PlayerSeason{
				Competition: season.Name,
				LeagueID:    tournament.UniqueTournament.ID,
				SeasonID:    season.ID,
				PlayerID:    playerID,
			})
		}
	}
	return seasons, nil
}

func (a *API) Heatmap(playerID string, leagueID, seasonID int) ([]models.HeatmapPoint, error) {
	var resp models.SofascoreHeatmapResponse
	endpoint := fmt.Sprintf("/player/%s/unique-tournament/%d/season/%d/heatmap/overall", playerID, leagueID, seasonID)
	if err := a.client.Get(endpoint, &resp); err != nil {
		return nil, fmt.Errorf("fetching heatmap for player %s: %w", playerID, err)
	}

	points := make([]models.HeatmapPoint, len(resp.Points))
	for i, p := range resp.Points {
		points[i] = models.HeatmapPoint{
			X:        p.X,
			Y:        p.Y,
			Count:    p.Count,
			PlayerID: playerID,
			LeagueID: leagueID,
			SeasonID: seasonID,
		}
	}
	return points, nil
}
