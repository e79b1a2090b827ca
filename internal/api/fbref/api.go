package fbref

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pvdata/pitchdata/internal/models"
)

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

type leagueMeta struct {
	ID      string
	League  string
	Country string
	Season  string
}

// parseLeagueURL extracts the league id, display name, country and season
// from an FBref league URL such as
// .../comps/12/Estadisticas-de-La-Liga-Espana.
func parseLeagueURL(leagueURL string) (leagueMeta, error) {
	parts := strings.Split(strings.TrimRight(leagueURL, "/"), "/")
	if len(parts) < 2 {
		return leagueMeta{}, fmt.Errorf("unrecognized league url: %s", leagueURL)
	}

	slug := strings.ReplaceAll(parts[len(parts)-1], "Estadisticas-de-", "")
	final := strings.Split(strings.TrimRight(slug, "-"), "-")
	if len(final) < 3 {
		return leagueMeta{}, fmt.Errorf("unrecognized league url: %s", leagueURL)
	}

	return leagueMeta{
		ID:      parts[len(parts)-2],
		League:  final[len(final)-3] + " " + final[len(final)-2],
		Country: final[len(final)-1],
		Season:  strconv.Itoa(time.Now().Year()),
	}, nil
}

func (a *API) TeamsFromLeague(leagueURL string) ([]models.Team, error) {
	meta, err := parseLeagueURL(leagueURL)
	if err != nil {
		return nil, err
	}
	doc, err := a.client.Document(leagueURL)
	if err != nil {
		return nil, fmt.Errorf("fetching league page: %w", err)
	}
	return parseTeams(doc, meta), nil
}

func (a *API) Standings(leagueURL string) ([]models.StandingRow, error) {
	meta, err := parseLeagueURL(leagueURL)
	if err != nil {
		return nil, err
	}
	doc, err := a.client.Document(leagueURL)
	if err != nil {
		return nil, fmt.Errorf("fetching league page: %w", err)
	}
	return parseStandings(doc, meta), nil
}

// Squad statistics table ids scraped from a league page, in fetch order.
var statTableIDs = []string{
	"stats_squads_standard_for", "stats_squads_standard_against",
	"stats_squads_keeper_for", "stats_squads_keeper_against",
	"stats_squads_keeper_adv_for", "stats_squads_keeper_adv_against",
	"stats_squads_shooting_for", "stats_squads_shooting_against",
	"stats_squads_passing_for", "stats_squads_passing_against",
	"stats_squads_passing_types_for", "stats_squads_passing_types_against",
	"stats_squads_gca_for", "stats_squads_gca_against",
	"stats_squads_defense_for", "stats_squads_defense_against",
	"stats_squads_possession_for", "stats_squads_possession_against",
	"stats_squads_playing_time_for", "stats_squads_playing_time_against",
	"stats_squads_misc_for", "stats_squads_misc_against",
}

// LeagueStats melts every squad statistics table on the league page into one
// long-format dataset.
func (a *API) LeagueStats(leagueURL string) ([]models.StatRow, error) {
	meta, err := parseLeagueURL(leagueURL)
	if err != nil {
		return nil, err
	}
	doc, err := a.client.Document(leagueURL)
	if err != nil {
		return nil, fmt.Errorf("fetching league page: %w", err)
	}

	var rows []models.StatRow
	for _, tableID := range statTableIDs {
		rows = append(rows, parseStatTable(doc, tableID, meta)...)
	}
	return rows, nil
}

// SquadStats reads a team's standard stats table into long format.
func (a *API) SquadStats(team models.Team, leagueID string) ([]models.SquadStatRow, error) {
	doc, err := a.client.Document(team.Link)
	if err != nil {
		return nil, fmt.Errorf("fetching team page for %s: %w", team.Name, err)
	}
	meta := leagueMeta{ID: leagueID, League: team.League, Country: team.Country, Season: team.Season}
	return parseSquadTable(doc, "stats_standard_"+leagueID, team.Name, meta), nil
}

// Percentiles reads a player's scouting report table.
func (a *API) Percentiles(player models.Player) ([]models.PercentileRow, error) {
	doc, err := a.client.Document(player.Link)
	if err != nil {
		return nil, fmt.Errorf("fetching player page for %s: %w", player.Name, err)
	}
	return parsePercentiles(doc, player.Name, player.ID), nil
}

// PlayersFromTeam extracts player records from a team page's standard stats
// container.
func (a *API) PlayersFromTeam(team models.Team) ([]models.Player, error) {
	doc, err := a.client.Document(team.Link)
	if err != nil {
		return nil, fmt.Errorf("fetching team page for %s: %w", team.Name, err)
	}

	var players []models.Player
	seen := map[string]bool{}
	doc.Find(`div#all_stats_standard a[href]`).Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		if seen[href] || strings.Contains(href, "summary") || !strings.Contains(href, "/es/jugadores/") {
			return
		}
		seen[href] = true

		parts := strings.Split(strings.TrimRight(href, "/"), "/")
		if len(parts) < 2 {
			return
		}
		name := strings.ReplaceAll(parts[len(parts)-1], "-", " ")
		id := parts[len(parts)-2]

		players = append(players, models.Player{
			Name:    name,
			ID:      id,
			Profile: fmt.Sprintf("https://fbref.com/req/202302030/images/headshots/%s_2022.jpg", id),
			Team:    team.Name,
			League:  team.League,
			Country: team.Country,
			Season:  team.Season,
			Link:    siteURL + href,
		})
	})
	return players, nil
}
