package xref

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/pvdata/pitchdata/internal/models"
)

// Player names rarely match byte-for-byte across sources (accents, short
// forms, ordering), so records are linked by Levenshtein similarity instead
// of equality.
const defaultThreshold = 0.75

// LinkPlayers ties every player from one source to the closest-named player
// of another source. Players without a candidate above the similarity
// threshold produce no link.
func LinkPlayers(source string, players []models.Player, targetSource string, candidates []models.Player) []models.PlayerLink {
	var links []models.PlayerLink

	for _, player := range players {
		best := -1
		bestScore := 0.0

		for i, candidate := range candidates {
			score := similarity(player.Name, candidate.Name)
			if score > defaultThreshold && (best == -1 || score > bestScore) {
				best = i
				bestScore = score
			}
		}

		if best == -1 {
			continue
		}
		links = append(links, models.PlayerLink{
			Name:        player.Name,
			SourceID:    player.ID,
			Source:      source,
			MatchedName: candidates[best].Name,
			MatchedID:   candidates[best].ID,
			MatchedIn:   targetSource,
			Similarity:  bestScore,
		})
	}
	return links
}

func similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	distance := fuzzy.LevenshteinDistance(a, b)
	maxLen := max(len(a), len(b))
	if maxLen == 0 {
		return 0
	}
	return 1 - float64(distance)/float64(maxLen)
}
