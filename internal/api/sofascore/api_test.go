package sofascore

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvdata/pitchdata/internal/models"
)

func testAPI(t *testing.T, handlers map[string]string) *API {
	t.Helper()

	mux := http.NewServeMux()
	for pattern, body := range handlers {
		payload := body
		mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, payload)
		})
	}

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return NewAPI(NewClientWithBaseURL(server.URL))
}

func TestTournamentStanding(t *testing.T) {
	api := testAPI(t, map[string]string{
		"/unique-tournament/8/season/61643/standings/total": `{
			"standings": [{
				"tournament": {"name": "LaLiga", "category": {"name": "Spain"}},
				"updatedAtTimestamp": 1716000000,
				"rows": [
					{"team": {"id": 2817, "name": "Barcelona", "shortName": "Barcelona"}, "position": 1},
					{"team": {"id": 2829, "name": "Real Madrid", "shortName": "Real Madrid"}, "position": 2}
				]
			}]
		}`,
	})

	info, err := api.TournamentStanding("8", "61643")
	require.NoError(t, err)

	assert.Equal(t, "LaLiga", info.League)
	assert.Equal(t, "Spain", info.Country)
	assert.Equal(t, "2024", info.Season)
	require.Len(t, info.Teams, 2)
	assert.Equal(t, 2817, info.Teams[0].ID)
	assert.Equal(t, "Barcelona", info.Teams[0].Name)
}

func TestTournamentStandingEmpty(t *testing.T) {
	api := testAPI(t, map[string]string{
		"/unique-tournament/8/season/61643/standings/total": `{"standings": []}`,
	})

	_, err := api.TournamentStanding("8", "61643")
	assert.Error(t, err)
}

func TestEventData(t *testing.T) {
	api := testAPI(t, map[string]string{
		"/event/12436870": `{
			"event": {
				"id": 12436870,
				"status": {"type": "finished"},
				"homeTeam": {"id": 2817, "shortName": "Barcelona"},
				"awayTeam": {"id": 2829, "shortName": "Real Madrid"},
				"homeScore": {"display": 2},
				"awayScore": {"display": 1}
			}
		}`,
	})

	event, err := api.EventData(12436870)
	require.NoError(t, err)

	assert.Equal(t, 12436870, event.ID)
	assert.Equal(t, "finished", event.Status.Type)
	assert.Equal(t, 2, event.HomeScore.Display)
	assert.Equal(t, "Real Madrid", event.AwayTeam.ShortName)
}

func TestMatchLineups(t *testing.T) {
	api := testAPI(t, map[string]string{
		"/event/12436870/lineups": `{
			"home": {
				"formation": "4-3-3",
				"players": [
					{"player": {"id": 71181, "name": "Ter Stegen"}, "shirtNumber": 1, "position": "G", "substitute": false, "statistics": {"minutesPlayed": 90}},
					{"player": {"id": 855906, "name": "Cubarsi"}, "shirtNumber": 2, "position": "D", "substitute": false, "statistics": {"minutesPlayed": 85}}
				]
			},
			"away": {
				"formation": "4-4-2",
				"players": [
					{"player": {"id": 70996, "name": "Courtois"}, "shirtNumber": 1, "position": "G", "substitute": false, "statistics": {"minutesPlayed": 90}}
				]
			}
		}`,
		"/event/12436870/average-positions": `{
			"home": [
				{"player": {"id": 71181}, "averageX": 8.5, "averageY": 50.1, "pointsCount": 40},
				{"player": {"id": 855906}, "averageX": 30.2, "averageY": 20.7, "pointsCount": 55}
			],
			"away": [
				{"player": {"id": 70996}, "averageX": 9.1, "averageY": 49.8, "pointsCount": 38}
			]
		}`,
	})

	event := &models.SofascoreEvent{
		ID:       12436870,
		HomeTeam: models.SofascoreTeam{ShortName: "Barcelona"},
		AwayTeam: models.SofascoreTeam{ShortName: "Real Madrid"},
	}

	match, err := api.MatchLineups(event)
	require.NoError(t, err)

	assert.Equal(t, "12436870", match.EventID)
	assert.Equal(t, "Barcelona", match.Home.Team)
	assert.Equal(t, "4-3-3", match.Home.Formation)
	require.Len(t, match.Home.Roster, 2)
	assert.Equal(t, "Ter Stegen", match.Home.Roster[0].Name)
	assert.Equal(t, 71181, match.Home.Roster[0].PlayerID)
	assert.Equal(t, 1, match.Home.Roster[0].Jersey)
	assert.Equal(t, 90, match.Home.Roster[0].Minutes)

	require.Len(t, match.Home.AveragePositions, 2)
	assert.Equal(t, 71181, match.Home.AveragePositions[0].PlayerID)
	assert.Equal(t, 8.5, match.Home.AveragePositions[0].AverageX)
	assert.Equal(t, 40, match.Home.AveragePositions[0].PointsCount)

	assert.Equal(t, "Real Madrid", match.Away.Team)
	require.Len(t, match.Away.Roster, 1)
}

func TestPlayerSeasonsKeepsRecentOnly(t *testing.T) {
	year := time.Now().Year() % 100
	recent := fmt.Sprintf("%02d/%02d", year-1, year)

	api := testAPI(t, map[string]string{
		"/player/12994/statistics/seasons": fmt.Sprintf(`{
			"uniqueTournamentSeasons": [{
				"uniqueTournament": {"id": 8, "name": "LaLiga"},
				"seasons": [
					{"id": 61643, "name": "LaLiga 25/26", "year": "%s"},
					{"id": 37223, "name": "LaLiga 15/16", "year": "15/16"},
					{"id": 1, "name": "Unknown", "year": ""}
				]
			}]
		}`, recent),
	})

	seasons, err := api.PlayerSeasons("12994")
	require.NoError(t, err)

	require.Len(t, seasons, 1)
	assert.Equal(t, 8, seasons[0].LeagueID)
	assert.Equal(t, 61643, seasons[0].SeasonID)
	assert.Equal(t, "12994", seasons[0].PlayerID)
}

func TestHeatmap(t *testing.T) {
	api := testAPI(t, map[string]string{
		"/player/12994/unique-tournament/8/season/61643/heatmap/overall": `{
			"points": [{"x": 55.1, "y": 30.2, "count": 4}, {"x": 60.0, "y": 42.8, "count": 2}]
		}`,
	})

	points, err := api.Heatmap("12994", 8, 61643)
	require.NoError(t, err)

	require.Len(t, points, 2)
	assert.Equal(t, 55.1, points[0].X)
	assert.Equal(t, 4, points[0].Count)
	assert.Equal(t, "12994", points[0].PlayerID)
	assert.Equal(t, 8, points[0].LeagueID)
	assert.Equal(t, 61643, points[0].SeasonID)
}

func TestClientGetNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(server.Close)

	client := NewClientWithBaseURL(server.URL)
	var out map[string]any
	err := client.Get("/event/1", &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
