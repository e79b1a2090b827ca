package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pvdata/pitchdata/internal/models"
)

func TestRepositoryKeepsSourcesSeparate(t *testing.T) {
	repo := NewRepository()

	repo.SaveTeams("sofascore", []models.Team{{Name: "Barcelona", ID: "2817"}})
	repo.SaveTeams("fotmob", []models.Team{{Name: "Barcelona", ID: "8634"}})
	repo.SavePlayers("sofascore", []models.Player{{Name: "Pedri", ID: "934235"}})

	assert.Equal(t, "2817", repo.Teams("sofascore")[0].ID)
	assert.Equal(t, "8634", repo.Teams("fotmob")[0].ID)
	assert.Len(t, repo.Players("sofascore"), 1)
	assert.Empty(t, repo.Players("fbref"))
	assert.Empty(t, repo.Teams("fbref"))
}

func TestRepositoryEvents(t *testing.T) {
	repo := NewRepository()
	assert.Empty(t, repo.Events())

	repo.SaveEvents([]models.Event{{ID: "1"}, {ID: "2"}})
	assert.Len(t, repo.Events(), 2)
}
