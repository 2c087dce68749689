package model

// Team is an immutable snapshot of one fantasy team's standing, supplied
// by the league data source per request. The engine never mutates it.
type Team struct {
	Key           string  `json:"key"`
	Name          string  `json:"name"`
	OwnerName     string  `json:"ownerName"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	PointsFor     float64 `json:"pointsFor"`
	PointsAgainst float64 `json:"pointsAgainst"`
}

type TeamScore struct {
	Team   Team    `json:"team"`
	Points float64 `json:"points"`
}

// Matchup is one week's head-to-head pairing. A well-formed matchup has
// exactly two entries in Teams; the analyzer skips anything else.
// WinnerTeamKey and IsTied are hints from the source and are ignored, the
// analyzer recomputes the outcome from the points.
type Matchup struct {
	Week          int         `json:"week"`
	Teams         []TeamScore `json:"teams"`
	WinnerTeamKey string      `json:"winnerTeamKey,omitempty"`
	IsTied        bool        `json:"isTied,omitempty"`
}
