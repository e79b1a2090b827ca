package xref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvdata/pitchdata/internal/models"
)

func TestLinkPlayers(t *testing.T) {
	players := []models.Player{
		{Name: "Robert Lewandowski", ID: "s1"},
		{Name: "Vinicius Junior", ID: "s2"},
		{Name: "Unrelated Somebody", ID: "s3"},
	}
	candidates := []models.Player{
		{Name: "Vinícius Júnior", ID: "f2"},
		{Name: "R. Lewandowski", ID: "f1"},
		{Name: "Antoine Griezmann", ID: "f3"},
	}

	links := LinkPlayers("sofascore", players, "fotmob", candidates)
	require.Len(t, links, 1)

	link := links[0]
	assert.Equal(t, "Vinicius Junior", link.Name)
	assert.Equal(t, "s2", link.SourceID)
	assert.Equal(t, "sofascore", link.Source)
	assert.Equal(t, "Vinícius Júnior", link.MatchedName)
	assert.Equal(t, "f2", link.MatchedID)
	assert.Equal(t, "fotmob", link.MatchedIn)
	assert.Greater(t, link.Similarity, 0.75)
}

func TestLinkPlayersExactMatch(t *testing.T) {
	players := []models.Player{{Name: "Jude Bellingham", ID: "s1"}}
	candidates := []models.Player{
		{Name: "Jude Bellingham", ID: "f1"},
		{Name: "Jobe Bellingham", ID: "f2"},
	}

	links := LinkPlayers("sofascore", players, "fbref", candidates)
	require.Len(t, links, 1)
	assert.Equal(t, "f1", links[0].MatchedID)
	assert.Equal(t, 1.0, links[0].Similarity)
}

func TestLinkPlayersNoCandidates(t *testing.T) {
	players := []models.Player{{Name: "Pedri", ID: "s1"}}

	assert.Empty(t, LinkPlayers("sofascore", players, "fotmob", nil))
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, similarity("Pedri", "pedri"))
	assert.Equal(t, 0.0, similarity("", ""))
	assert.InDelta(t, 0.8, similarity("abcde", "abcdx"), 0.001)
}
