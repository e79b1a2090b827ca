package service

import "log/slog"

// RunConfig selects which leagues to collect from each source. An empty
// value skips that source entirely.
type RunConfig struct {
	SofascoreLeagueURL string
	FotmobLeagueID     string
	FbrefLeagueURL     string
	FbrefLeagueID      string
}

// Run executes a full collection pass. Sources are independent: a failure in
// one is logged and the rest still run.
func (s *CollectorService) Run(cfg RunConfig) {
	if cfg.SofascoreLeagueURL != "" {
		s.runSofascore(cfg.SofascoreLeagueURL)
	}
	if cfg.FotmobLeagueID != "" {
		s.runFotmob(cfg.FotmobLeagueID)
	}
	if cfg.FbrefLeagueURL != "" {
		s.runFbref(cfg.FbrefLeagueURL, cfg.FbrefLeagueID)
	}
	if _, err := s.LinkPlayers(); err != nil {
		slog.Error("Failed to link players", "error", err)
	}
}

func (s *CollectorService) runSofascore(leagueURL string) {
	teams, err := s.CollectSofascoreTeams(leagueURL)
	if err != nil {
		slog.Error("Failed to collect sofascore teams", "error", err)
		return
	}
	slog.Info("Collected sofascore teams", "count", len(teams))

	events, err := s.CollectSofascoreEvents(leagueURL)
	if err != nil {
		slog.Error("Failed to collect sofascore events", "error", err)
		return
	}
	slog.Info("Collected sofascore events", "count", len(events))

	lineups, err := s.CollectLineups(events)
	if err != nil {
		slog.Error("Failed to collect lineups", "error", err)
	} else {
		slog.Info("Collected lineups", "rows", len(lineups))
	}

	results, err := s.CollectResults(events)
	if err != nil {
		slog.Error("Failed to collect results", "error", err)
	} else {
		slog.Info("Collected results", "rows", len(results))
	}

	players, err := s.CollectSofascorePlayers(teams)
	if err != nil {
		slog.Error("Failed to collect sofascore players", "error", err)
		return
	}
	slog.Info("Collected sofascore players", "count", len(players))

	heatmaps, err := s.CollectHeatmaps(players)
	if err != nil {
		slog.Error("Failed to collect heatmaps", "error", err)
	} else {
		slog.Info("Collected heatmap points", "count", len(heatmaps))
	}
}

func (s *CollectorService) runFotmob(leagueID string) {
	teams, err := s.CollectFotmobTeams(leagueID)
	if err != nil {
		slog.Error("Failed to collect fotmob teams", "error", err)
		return
	}
	slog.Info("Collected fotmob teams", "count", len(teams))

	players, err := s.CollectFotmobPlayers(teams)
	if err != nil {
		slog.Error("Failed to collect fotmob players", "error", err)
		return
	}
	slog.Info("Collected fotmob players", "count", len(players))

	if _, err := s.CollectShotmaps(players); err != nil {
		slog.Error("Failed to collect shotmaps", "error", err)
	}
	if _, err := s.CollectPositions(players); err != nil {
		slog.Error("Failed to collect positions", "error", err)
	}
}

func (s *CollectorService) runFbref(leagueURL, leagueID string) {
	teams, err := s.CollectFbrefTeams(leagueURL)
	if err != nil {
		slog.Error("Failed to collect fbref teams", "error", err)
		return
	}
	slog.Info("Collected fbref teams", "count", len(teams))

	if _, err := s.CollectFbrefStandings(leagueURL); err != nil {
		slog.Error("Failed to collect fbref standings", "error", err)
	}
	if _, err := s.CollectFbrefStats(leagueURL); err != nil {
		slog.Error("Failed to collect fbref stats", "error", err)
	}
	if _, err := s.CollectFbrefSquads(teams, leagueID); err != nil {
		slog.Error("Failed to collect fbref squads", "error", err)
	}

	players, err := s.CollectFbrefPlayers(teams)
	if err != nil {
		slog.Error("Failed to collect fbref players", "error", err)
		return
	}
	slog.Info("Collected fbref players", "count", len(players))

	if _, err := s.CollectPercentiles(players); err != nil {
		slog.Error("Failed to collect percentiles", "error", err)
	}
}
