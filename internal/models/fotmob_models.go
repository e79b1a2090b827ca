package models

// Response shapes for the FotMob JSON API.

type FotmobLeagueTable struct {
	Data FotmobLeagueData `json:"data"`
}

type FotmobLeagueData struct {
	LeagueName string          `json:"leagueName"`
	Ccode      string          `json:"ccode"`
	Table      FotmobTableView `json:"table"`
}

type FotmobTableView struct {
	All []FotmobTableRow `json:"all"`
}

type FotmobTableRow struct {
	Name    string `json:"name"`
	ID      int    `json:"id"`
	PageURL string `json:"pageUrl"`
}

type FotmobPlayerData struct {
	ID                  int                       `json:"id"`
	Name                string                    `json:"name"`
	IsCoach             bool                      `json:"isCoach"`
	PositionDescription FotmobPositionDescription `json:"positionDescription"`
}

type FotmobPositionDescription struct {
	Positions []FotmobPosition `json:"positions"`
}

type FotmobPosition struct {
	StrPos         FotmobLabel `json:"strPos"`
	StrPosShort    FotmobLabel `json:"strPosShort"`
	Position       int         `json:"position"`
	Occurences     int         `json:"occurences"`
	IsMainPosition bool        `json:"isMainPosition"`
}

type FotmobLabel struct {
	Label string `json:"label"`
}

type FotmobPlayerStats struct {
	Shotmap [][]FotmobShot `json:"shotmap"`
}

type FotmobShot struct {
	ID                    int     `json:"id"`
	EventType             string  `json:"eventType"`
	TeamID                int     `json:"teamId"`
	PlayerID              int     `json:"playerId"`
	PlayerName            string  `json:"playerName"`
	X                     float64 `json:"x"`
	Y                     float64 `json:"y"`
	Min                   int     `json:"min"`
	IsOnTarget            bool    `json:"isOnTarget"`
	ExpectedGoals         float64 `json:"expectedGoals"`
	ExpectedGoalsOnTarget float64 `json:"expectedGoalsOnTarget"`
	ShotType              string  `json:"shotType"`
	Situation             string  `json:"situation"`
	Period                string  `json:"period"`
	IsOwnGoal             bool    `json:"isOwnGoal"`
}
