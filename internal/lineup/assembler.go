package lineup

import "fmt"

// RosterEntry is one player within a team's ordered match roster, as
// delivered by the data source: goalkeeper first, starters before
// substitutes.
type RosterEntry struct {
	Name       string
	PlayerID   int
	Jersey     int
	Position   string
	Substitute bool
	Minutes    int
}

// AveragePositionSample is a player's aggregated on-pitch coordinates for
// one match. Samples arrive aligned index-for-index with the roster list,
// but the reliable correlation key is the player id.
type AveragePositionSample struct {
	PlayerID    int
	AverageX    float64
	AverageY    float64
	PointsCount int
}

// Side is one team's raw lineup input for a match.
type Side struct {
	Team             string
	Formation        string
	Roster           []RosterEntry
	AveragePositions []AveragePositionSample
}

// Match is the full lineup input for one finished match.
type Match struct {
	EventID string
	Home    Side
	Away    Side
}

// Row is one player's normalized lineup record for one match. AverageX,
// AverageY and PointsCount are nil when no average-position sample matched
// the player.
type Row struct {
	EventID    string
	Player     string
	PlayerID   int
	Jersey     int
	Position   string
	Substitute bool
	Minutes    int
	Order      int
	Line       string
	Slot       string
	Code       string
	Team       string
	Formation  string
	Defense    int
	Midfield   int
	Attack     int
	Side       string

	AverageX    *float64
	AverageY    *float64
	PointsCount *int
}

const (
	SideHome = "Home"
	SideAway = "Away"
)

// AssembleMatch produces one Row per roster entry for both teams of a match,
// home rows first. It fails only on a malformed formation string; every
// other oddity degrades at row granularity.
func AssembleMatch(m Match) ([]Row, error) {
	homeShape, err := ParseFormation(m.Home.Formation)
	if err != nil {
		return nil, fmt.Errorf("event %s home: %w", m.EventID, err)
	}
	awayShape, err := ParseFormation(m.Away.Formation)
	if err != nil {
		return nil, fmt.Errorf("event %s away: %w", m.EventID, err)
	}

	rows := assembleSide(m.EventID, m.Home, homeShape, SideHome)
	rows = append(rows, assembleSide(m.EventID, m.Away, awayShape, SideAway)...)
	return rows, nil
}

func assembleSide(eventID string, side Side, shape Formation, tag string) []Row {
	samples := samplesByPlayer(side)

	rows := make([]Row, 0, len(side.Roster))
	for i, entry := range side.Roster {
		order := i + 1
		role := ResolvePosition(order, shape, entry.Substitute)

		row := Row{
			EventID:    eventID,
			Player:     entry.Name,
			PlayerID:   entry.PlayerID,
			Jersey:     entry.Jersey,
			Position:   entry.Position,
			Substitute: entry.Substitute,
			Minutes:    entry.Minutes,
			Order:      order,
			Line:       role.Line,
			Slot:       role.Slot,
			Code:       role.Code,
			Team:       side.Team,
			Formation:  side.Formation,
			Defense:    shape.Defense,
			Midfield:   shape.Midfield(),
			Attack:     shape.Attack,
			Side:       tag,
		}

		if sample, ok := samples[entry.PlayerID]; ok {
			x, y, count := sample.AverageX, sample.AverageY, sample.PointsCount
			row.AverageX = &x
			row.AverageY = &y
			row.PointsCount = &count
		}

		rows = append(rows, row)
	}
	return rows
}

// samplesByPlayer re-keys the index-aligned sample list by player id.
// Samples beyond the roster length carry no usable alignment and ids absent
// from the roster simply never match, which leaves the affected rows with
// nil spatial fields.
func samplesByPlayer(side Side) map[int]AveragePositionSample {
	samples := make(map[int]AveragePositionSample, len(side.AveragePositions))
	for i, sample := range side.AveragePositions {
		if i >= len(side.Roster) {
			break
		}
		samples[sample.PlayerID] = sample
	}
	return samples
}
