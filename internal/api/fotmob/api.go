package fotmob

import (
	"fmt"
	"net/http"
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

// TeamsFromLeague reads the league table and normalizes every club into a
// team record.
func (a *API) TeamsFromLeague(leagueID string) ([]models.Team, error) {
	var resp []models.FotmobLeagueTable
	if err := a.client.Get(fmt.Sprintf("/tltable?leagueId=%s", leagueID), &resp); err != nil {
		return nil, fmt.Errorf("fetching league table: %w", err)
	}
	if len(resp) == 0 {
		return nil, fmt.Errorf("empty league table for league %s", leagueID)
	}

	data := resp[0].Data
	season := strconv.Itoa(time.Now().Year())

	teams := make([]models.Team, len(data.Table.All))
	for i, row := range data.Table.All {
		teams[i] = models.Team{
			Name:    row.Name,
			ID:      strconv.Itoa(row.ID),
			Logo:    fmt.Sprintf("https://images.fotmob.com/image_resources/logo/teamlogo/%d_xsmall.png", row.ID),
			League:  data.LeagueName,
			Country: data.Ccode,
			Season:  season,
			Link:    "https://www.fotmob.com/es" + row.PageURL,
		}
	}
	return teams, nil
}

// PlayersFromTeam harvests player links from a team's squad page and
// resolves each through the player data endpoint.
func (a *API) PlayersFromTeam(team models.Team) ([]models.Player, error) {
	url := strings.Replace(team.Link, "overview", "squad", 1)

	resp, err := a.client.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching squad page for %s: %w", team.Name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing squad page for %s: %w", team.Name, err)
	}

	var players []models.Player
	seen := map[string]bool{}
	doc.Find(`a[href]`).Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		if seen[href] || !strings.Contains(href, "/es/players/") {
			return
		}
		seen[href] = true

		parts := strings.Split(strings.TrimRight(href, "/"), "/")
		if len(parts) < 2 {
			return
		}
		playerID := parts[len(parts)-2]

		data, err := a.PlayerData(playerID)
		if err != nil {
			return
		}

		players = append(players, models.Player{
			Name:    data.Name,
			ID:      playerID,
			Profile: fmt.Sprintf("https://www.fotmob.com/_next/image?url=https%%3A%%2F%%2Fimages.fotmob.com%%2Fimage_resources%%2Fplayerimages%%2F%s.png&w=96&q=75", playerID),
			Coach:   data.IsCoach,
			Team:    team.Name,
			League:  team.League,
			Country: team.Country,
			Season:  team.Season,
			Link:    "https://www.fotmob.com" + href,
		})
	})
	return players, nil
}

func (a *API) PlayerData(playerID string) (*models.FotmobPlayerData, error) {
	var resp models.FotmobPlayerData
	if err := a.client.Get(fmt.Sprintf("/playerData?id=%s", playerID), &resp); err != nil {
		return nil, fmt.Errorf("fetching player %s: %w", playerID, err)
	}
	return &resp, nil
}

// Shotmap returns the player's shot events for their current season.
func (a *API) Shotmap(playerID string) ([]models.FotmobShot, error) {
	var resp models.FotmobPlayerStats
	endpoint := fmt.Sprintf("/playerStats?playerId=%s&seasonId=0-0&isFirstSeason=false", playerID)
	if err := a.client.Get(endpoint, &resp); err != nil {
		return nil, fmt.Errorf("fetching shotmap for player %s: %w", playerID, err)
	}
	if len(resp.Shotmap) == 0 {
		return nil, fmt.Errorf("no shotmap data for player %s", playerID)
	}
	return resp.Shotmap[0], nil
}

// Positions normalizes a player's declared position profile.
func (a *API) Positions(playerID, playerName string) ([]models.PositionProfile, error) {
	data, err := a.PlayerData(playerID)
	if err != nil {
		return nil, err
	}

	positions := make([]models.PositionProfile, len(data.PositionDescription.Positions))
	for i, p := range data.PositionDescription.Positions {
		positions[i] = models.PositionProfile{
			PlayerName:  playerName,
			PlayerID:    playerID,
			PositionID:  p.Position,
			Position:    p.StrPos.Label,
			PosShort:    p.StrPosShort.Label,
			Occurrences: p.Occurences,
			Main:        p.IsMainPosition,
		}
	}
	return positions, nil
}
