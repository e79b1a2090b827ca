package memory

import (
	"sync"

	"github.com/pvdata/pitchdata/internal/models"
)

// Repository caches intermediate datasets within one collection run so
// downstream collectors (players need teams, lineups need events) reuse
// already-fetched data instead of re-fetching it.
type Repository struct {
	teams   map[string][]models.Team
	players map[string][]models.Player
	events  []models.Event
	mu      sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{
		teams:   make(map[string][]models.Team),
		players: make(map[string][]models.Player),
	}
}

func (r *Repository) SaveTeams(source string, teams []models.Team) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teams[source] = teams
}

func (r *Repository) Teams(source string) []models.Team {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.teams[source]
}

func (r *Repository) SavePlayers(source string, players []models.Player) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.players[source] = players
}

func (r *Repository) Players(source string) []models.Player {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.players[source]
}

func (r *Repository) SaveEvents(events []models.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = events
}

func (r *Repository) Events() []models.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.events
}
