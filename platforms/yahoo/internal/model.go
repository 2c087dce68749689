package internal

type FantasyContent struct {
	League *League `xml:"league"`
}

type League struct {
	Key        string      `xml:"league_key"`
	Name       string      `xml:"name"`
	Standings  *Standings  `xml:"standings"`
	Scoreboard *Scoreboard `xml:"scoreboard"`
	Players    *Players    `xml:"players"`
}

type Standings struct {
	Teams *Teams `xml:"teams"`
}

type Teams struct {
	Teams []Team `xml:"team"`
}

type Team struct {
	Key           string         `xml:"team_key"`
	Name          string         `xml:"name"`
	Managers      *Managers      `xml:"managers"`
	TeamPoints    *TeamPoints    `xml:"team_points"`
	TeamStandings *TeamStandings `xml:"team_standings"`
}

type Managers struct {
	Managers []Manager `xml:"manager"`
}

type Manager struct {
	Nickname string `xml:"nickname"`
}

type TeamPoints struct {
	Total float64 `xml:"total"`
}

type TeamStandings struct {
	Outcomes      *OutcomeTotals `xml:"outcome_totals"`
	PointsFor     float64        `xml:"points_for"`
	PointsAgainst float64        `xml:"points_against"`
}

type OutcomeTotals struct {
	Wins   int `xml:"wins"`
	Losses int `xml:"losses"`
	Ties   int `xml:"ties"`
}

type Scoreboard struct {
	Week     int       `xml:"week"`
	Matchups *Matchups `xml:"matchups"`
}

type Matchups struct {
	Matchups []Matchup `xml:"matchup"`
}

type Matchup struct {
	Week          int    `xml:"week"`
	WinnerTeamKey string `xml:"winner_team_key"`
	IsTied        int    `xml:"is_tied"`
	Teams         *Teams `xml:"teams"`
}

type Players struct {
	Players []Player `xml:"player"`
}

type Player struct {
	Key               string             `xml:"player_key"`
	ID                string             `xml:"player_id"`
	Name              *PlayerName        `xml:"name"`
	Position          string             `xml:"primary_position"`
	EligiblePositions *EligiblePositions `xml:"eligible_positions"`
}

type PlayerName struct {
	Full  string `xml:"full"`
	First string `xml:"first"`
	Last  string `xml:"last"`
}

type EligiblePositions struct {
	Positions []string `xml:"position"`
}
