package fbref

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pvdata/pitchdata/internal/models"
)

const siteURL = "https://www.fbref.com"

func cell(row *goquery.Selection, stat string) string {
	return strings.TrimSpace(row.Find(`[data-stat="` + stat + `"]`).First().Text())
}

func intCell(row *goquery.Selection, stat string) int {
	n, _ := strconv.Atoi(cell(row, stat))
	return n
}

func parseTeams(doc *goquery.Document, meta leagueMeta) []models.Team {
	var teams []models.Team
	seen := map[string]bool{}

	doc.Find(`div[id^="div_results"] a[href]`).Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		if seen[href] || !strings.Contains(href, "/es/equipos/") {
			return
		}
		seen[href] = true

		parts := strings.Split(strings.TrimRight(href, "/"), "/")
		if len(parts) < 2 {
			return
		}
		name := strings.ReplaceAll(strings.ReplaceAll(parts[len(parts)-1], "Estadisticas-de-", ""), "-", " ")
		id := parts[len(parts)-2]

		teams = append(teams, models.Team{
			Name:    name,
			ID:      id,
			Logo:    "https://cdn.ssref.net/req/202408052/tlogo/fb/" + id + ".png",
			League:  meta.League,
			Country: meta.Country,
			Season:  meta.Season,
			Link:    siteURL + href,
		})
	})
	return teams
}

func parseStandings(doc *goquery.Document, meta leagueMeta) []models.StandingRow {
	var rows []models.StandingRow

	table := doc.Find(`table[id^="results"][id$="_overall"]`).First()
	table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		team := cell(tr, "team")
		if team == "" {
			return
		}
		rows = append(rows, models.StandingRow{
			Rank:         intCell(tr, "rank"),
			Team:         team,
			Played:       intCell(tr, "games"),
			Wins:         intCell(tr, "wins"),
			Draws:        intCell(tr, "ties"),
			Losses:       intCell(tr, "losses"),
			GoalsFor:     intCell(tr, "goals_for"),
			GoalsAgainst: intCell(tr, "goals_against"),
			GoalDiff:     intCell(tr, "goal_diff"),
			Points:       intCell(tr, "points"),
			League:       meta.League,
			Country:      meta.Country,
			Season:       meta.Season,
		})
	})
	return rows
}

// parseStatTable melts one squad statistics table into long format. A stat
// key with an underscore splits into a class prefix and stat suffix, the
// same shape the flattened column names had on the source tables.
func parseStatTable(doc *goquery.Document, tableID string, meta leagueMeta) []models.StatRow {
	tableName, target := describeStatTable(tableID)

	var rows []models.StatRow
	doc.Find(`table#` + tableID + ` tbody tr`).Each(func(_ int, tr *goquery.Selection) {
		team := cell(tr, "team")
		if team == "" {
			return
		}
		tr.Find("[data-stat]").Each(func(_ int, td *goquery.Selection) {
			stat, _ := td.Attr("data-stat")
			if stat == "team" {
				return
			}
			class := ""
			if i := strings.Index(stat, "_"); i > 0 {
				class, stat = stat[:i], stat[i+1:]
			}
			rows = append(rows, models.StatRow{
				Team:    team,
				Class:   class,
				Stat:    stat,
				Value:   strings.TrimSpace(td.Text()),
				Table:   tableName,
				Target:  target,
				League:  meta.League,
				Country: meta.Country,
				Season:  meta.Season,
			})
		})
	})
	return rows
}

func describeStatTable(tableID string) (name, target string) {
	name = strings.TrimPrefix(tableID, "stats_squads_")
	switch {
	case strings.HasSuffix(name, "_for"):
		name, target = strings.TrimSuffix(name, "_for"), "For"
	case strings.HasSuffix(name, "_against"):
		name, target = strings.TrimSuffix(name, "_against"), "Against"
	}
	words := strings.Split(name, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " "), target
}

func parseSquadTable(doc *goquery.Document, tableID, team string, meta leagueMeta) []models.SquadStatRow {
	var rows []models.SquadStatRow
	doc.Find(`table#` + tableID + ` tbody tr`).Each(func(_ int, tr *goquery.Selection) {
		player := cell(tr, "player")
		if player == "" {
			return
		}
		tr.Find("[data-stat]").Each(func(_ int, td *goquery.Selection) {
			stat, _ := td.Attr("data-stat")
			if stat == "player" {
				return
			}
			rows = append(rows, models.SquadStatRow{
				Player:  player,
				Stat:    stat,
				Value:   strings.TrimSpace(td.Text()),
				Team:    team,
				League:  meta.League,
				Country: meta.Country,
				Season:  meta.Season,
			})
		})
	})
	return rows
}

// Percentile class buckets. The keeper report has a different row layout
// than the outfield one; it is recognized by its first statistic.
var (
	outfieldBins   = [4]int{0, 7, 15, 21}
	outfieldLabels = [3]string{"Offensive", "Passing", "Defensive"}
	keeperBins     = [4]int{0, 6, 11, 15}
	keeperLabels   = [3]string{"Keeper", "Passing", "Defensive"}
)

func parsePercentiles(doc *goquery.Document, player, playerID string) []models.PercentileRow {
	table := doc.Find(`table[id^="scout_summary_"]`).First()
	if table.Length() == 0 {
		return nil
	}

	bins, labels := outfieldBins, outfieldLabels
	if cell(table.Find("tbody tr").First(), "statistic") == "PSxG-GA" {
		bins, labels = keeperBins, keeperLabels
	}

	var rows []models.PercentileRow
	table.Find("tbody tr").Each(func(i int, tr *goquery.Selection) {
		stat := cell(tr, "statistic")
		if stat == "" {
			return
		}
		rows = append(rows, models.PercentileRow{
			Player:     player,
			PlayerID:   playerID,
			Statistic:  stat,
			Per90:      cell(tr, "per90"),
			Percentile: intCell(tr, "percentile"),
			Class:      classify(i, bins, labels),
		})
	})
	return rows
}

func classify(idx int, bins [4]int, labels [3]string) string {
	for i := 0; i < 3; i++ {
		if idx >= bins[i] && idx < bins[i+1] {
			return labels[i]
		}
	}
	return ""
}
