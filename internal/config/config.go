package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Collector Collector
	Sofascore Sofascore
	Fotmob    Fotmob
	Fbref     Fbref
	Schedule  Schedule
}

type Collector struct {
	OutputDir string        `envconfig:"OUTPUT_DIR" default:"data"`
	Delay     time.Duration `envconfig:"REQUEST_DELAY" default:"5s"`
}

type Sofascore struct {
	LeagueURL string `envconfig:"SOFASCORE_LEAGUE_URL"`
}

type Fotmob struct {
	LeagueID string `envconfig:"FOTMOB_LEAGUE_ID"`
}

type Fbref struct {
	LeagueURL string `envconfig:"FBREF_LEAGUE_URL"`
	LeagueID  string `envconfig:"FBREF_LEAGUE_ID"`
}

type Schedule struct {
	Enabled bool `envconfig:"SCHEDULE_ENABLED" default:"false"`
	Hour    int  `envconfig:"SCHEDULE_HOUR" default:"6"`
	Minute  int  `envconfig:"SCHEDULE_MINUTE" default:"0"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
