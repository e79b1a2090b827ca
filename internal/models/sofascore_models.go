package models

// Response shapes for the Sofascore JSON API. Only the fields the collectors
// read are mapped.

type SofascoreEventResponse struct {
	Event SofascoreEvent `json:"event"`
}

type SofascoreEvent struct {
	ID         int                 `json:"id"`
	Status     SofascoreStatus     `json:"status"`
	Tournament SofascoreTournament `json:"tournament"`
	Season     SofascoreSeason     `json:"season"`
	RoundInfo  SofascoreRoundInfo  `json:"roundInfo"`
	HomeTeam   SofascoreTeam       `json:"homeTeam"`
	AwayTeam   SofascoreTeam       `json:"awayTeam"`
	HomeScore  SofascoreScore      `json:"homeScore"`
	AwayScore  SofascoreScore      `json:"awayScore"`
}

type SofascoreStatus struct {
	Type string `json:"type"`
}

type SofascoreTournament struct {
	Name             string                    `json:"name"`
	Category         SofascoreCategory         `json:"category"`
	UniqueTournament SofascoreUniqueTournament `json:"uniqueTournament"`
}

type SofascoreCategory struct {
	Name string `json:"name"`
}

type SofascoreUniqueTournament struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type SofascoreSeason struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Year string `json:"year"`
}

type SofascoreRoundInfo struct {
	Round int `json:"round"`
}

type SofascoreTeam struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
}

type SofascoreScore struct {
	Display int `json:"display"`
}

type SofascoreLineupsResponse struct {
	Home SofascoreTeamLineup `json:"home"`
	Away SofascoreTeamLineup `json:"away"`
}

type SofascoreTeamLineup struct {
	Formation string                 `json:"formation"`
	Players   []SofascoreLineupEntry `json:"players"`
}

type SofascoreLineupEntry struct {
	Player      SofascorePlayer     `json:"player"`
	ShirtNumber int                 `json:"shirtNumber"`
	Position    string              `json:"position"`
	Substitute  bool                `json:"substitute"`
	Statistics  SofascorePlayerStat `json:"statistics"`
}

type SofascorePlayer struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type SofascorePlayerStat struct {
	MinutesPlayed int `json:"minutesPlayed"`
}

type SofascoreAveragePositionsResponse struct {
	Home []SofascoreAveragePosition `json:"home"`
	Away []SofascoreAveragePosition `json:"away"`
}

type SofascoreAveragePosition struct {
	Player      SofascorePlayer `json:"player"`
	AverageX    float64         `json:"averageX"`
	AverageY    float64         `json:"averageY"`
	PointsCount int             `json:"pointsCount"`
}

type SofascoreStandingsResponse struct {
	Standings []SofascoreStanding `json:"standings"`
}

type SofascoreStanding struct {
	Tournament         SofascoreTournament    `json:"tournament"`
	UpdatedAtTimestamp int64                  `json:"updatedAtTimestamp"`
	Rows               []SofascoreStandingRow `json:"rows"`
}

type SofascoreStandingRow struct {
	Team     SofascoreTeam `json:"team"`
	Position int           `json:"position"`
}

type SofascoreEventsResponse struct {
	Events []SofascoreEvent `json:"events"`
}

type SofascoreSeasonsResponse struct {
	UniqueTournamentSeasons []SofascoreTournamentSeasons `json:"uniqueTournamentSeasons"`
}

type SofascoreTournamentSeasons struct {
	UniqueTournament SofascoreUniqueTournament `json:"uniqueTournament"`
	Seasons          []SofascoreSeason         `json:"seasons"`
}

type SofascoreTeamPlayersResponse struct {
	Players []SofascoreTeamPlayer `json:"players"`
}

type SofascoreTeamPlayer struct {
	Player SofascorePlayer `json:"player"`
}

type SofascoreHeatmapResponse struct {
	Points []SofascoreHeatmapPoint `json:"points"`
}

type SofascoreHeatmapPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Count int     `json:"count"`
}
