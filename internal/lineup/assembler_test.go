package lineup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSide(team, formation string, rosterSize int, idBase int) Side {
	side := Side{Team: team, Formation: formation}
	for i := 0; i < rosterSize; i++ {
		side.Roster = append(side.Roster, RosterEntry{
			Name:       team + " player",
			PlayerID:   idBase + i,
			Jersey:     i + 1,
			Position:   "M",
			Substitute: i >= 11,
			Minutes:    90,
		})
		side.AveragePositions = append(side.AveragePositions, AveragePositionSample{
			PlayerID:    idBase + i,
			AverageX:    float64(i) * 10,
			AverageY:    50,
			PointsCount: i + 1,
		})
	}
	return side
}

func TestAssembleMatch(t *testing.T) {
	match := Match{
		EventID: "10230001",
		Home:    testSide("Osasuna", "4-2-3-1", 14, 100),
		Away:    testSide("Alaves", "4-3-3", 14, 200),
	}

	rows, err := AssembleMatch(match)
	require.NoError(t, err)
	require.Len(t, rows, 28)

	home := rows[:14]
	away := rows[14:]

	for _, row := range home {
		assert.Equal(t, "10230001", row.EventID)
		assert.Equal(t, "Osasuna", row.Team)
		assert.Equal(t, SideHome, row.Side)
		assert.Equal(t, "4-2-3-1", row.Formation)
		assert.Equal(t, 4, row.Defense)
		assert.Equal(t, 5, row.Midfield)
		assert.Equal(t, 1, row.Attack)
	}
	for _, row := range away {
		assert.Equal(t, SideAway, row.Side)
		assert.Equal(t, "Alaves", row.Team)
		assert.Equal(t, 3, row.Midfield)
		assert.Equal(t, 3, row.Attack)
	}

	expected := []struct {
		order int
		line  string
		slot  string
		code  string
	}{
		{1, LineGoalkeeper, "1/1", CodeGoalkeeper},
		{2, LineDefense, "1/4", CodeDefender},
		{3, LineDefense, "2/4", CodeDefender},
		{4, LineDefense, "3/4", CodeDefender},
		{5, LineDefense, "4/4", CodeDefender},
		{6, LineMidfield0, "1/2", CodeMidfielder},
		{7, LineMidfield0, "2/2", CodeMidfielder},
		{8, LineMidfield2, "1/3", CodeMidfielder},
		{9, LineMidfield2, "2/3", CodeMidfielder},
		{10, LineMidfield2, "3/3", CodeMidfielder},
		{11, LineAttack, "1/1", CodeForward},
		{12, "", "", CodeSubstitute},
		{13, "", "", CodeSubstitute},
		{14, "", "", CodeSubstitute},
	}
	for i, exp := range expected {
		row := home[i]
		assert.Equal(t, exp.order, row.Order)
		assert.Equal(t, exp.line, row.Line)
		assert.Equal(t, exp.slot, row.Slot)
		assert.Equal(t, exp.code, row.Code)
	}

	// Away midfield is the single middle band of a 3-group shape.
	for i := 5; i <= 7; i++ {
		assert.Equal(t, LineMidfield1, away[i].Line)
	}
}

func TestAssembleMatchMergesSamplesByPlayerID(t *testing.T) {
	home := testSide("Girona", "4-4-2", 11, 100)

	// Shuffle the sample order so index alignment alone cannot explain a
	// correct merge.
	samples := home.AveragePositions
	samples[0], samples[10] = samples[10], samples[0]
	samples[3], samples[7] = samples[7], samples[3]

	match := Match{
		EventID: "10230002",
		Home:    home,
		Away:    testSide("Getafe", "4-4-2", 11, 200),
	}

	rows, err := AssembleMatch(match)
	require.NoError(t, err)

	for i, row := range rows[:11] {
		require.NotNil(t, row.AverageX, "order %d", row.Order)
		require.NotNil(t, row.AverageY, "order %d", row.Order)
		require.NotNil(t, row.PointsCount, "order %d", row.Order)
		assert.Equal(t, float64(i)*10, *row.AverageX)
		assert.Equal(t, i+1, *row.PointsCount)
	}
}

func TestAssembleMatchUnmatchedPlayersKeepNilSpatialFields(t *testing.T) {
	home := testSide("Sevilla", "4-4-2", 14, 100)

	// Substitutes usually carry no average-position sample.
	home.AveragePositions = home.AveragePositions[:11]

	match := Match{
		EventID: "10230003",
		Home:    home,
		Away:    testSide("Valencia", "4-4-2", 11, 200),
	}

	rows, err := AssembleMatch(match)
	require.NoError(t, err)

	for _, row := range rows[:11] {
		assert.NotNil(t, row.AverageX, "order %d", row.Order)
	}
	for _, row := range rows[11:14] {
		assert.Nil(t, row.AverageX, "order %d", row.Order)
		assert.Nil(t, row.AverageY, "order %d", row.Order)
		assert.Nil(t, row.PointsCount, "order %d", row.Order)
	}
}

func TestAssembleMatchIgnoresExcessSamples(t *testing.T) {
	home := testSide("Betis", "4-4-2", 11, 100)
	home.AveragePositions = append(home.AveragePositions, AveragePositionSample{
		PlayerID: 999,
		AverageX: 1,
		AverageY: 1,
	})

	match := Match{
		EventID: "10230004",
		Home:    home,
		Away:    testSide("Celta", "4-4-2", 11, 200),
	}

	rows, err := AssembleMatch(match)
	require.NoError(t, err)
	require.Len(t, rows, 22)
}

func TestAssembleMatchMalformedFormation(t *testing.T) {
	match := Match{
		EventID: "10230005",
		Home:    testSide("Mallorca", "4-4-2", 11, 100),
		Away:    testSide("Cadiz", "not-a-shape", 11, 200),
	}

	_, err := AssembleMatch(match)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedFormation)
	assert.Contains(t, err.Error(), "10230005")
}
