package model

import (
	"strings"
)

// NFLTeam is a real NFL franchise. Candidate recommendations arrive with
// whatever team label the expert source used ("SF", "SFO", "Niners"), so
// lookups accept the common aliases and normalize to one abbreviation.
type NFLTeam struct {
	abbr    string
	name    string
	aliases []string
}

func (t *NFLTeam) String() string {
	return t.abbr
}

func (t *NFLTeam) Friendly() string {
	if t.name == "" {
		return t.abbr
	}
	return t.name
}

// TEAM_FA is the catch-all for free agents and unrecognized labels.
var TEAM_FA = &NFLTeam{abbr: "FA"}

var nflTeams = []*NFLTeam{
	// NFC
	{abbr: "ARI", name: "Arizona Cardinals", aliases: []string{"Cards"}},
	{abbr: "ATL", name: "Atlanta Falcons"},
	{abbr: "CAR", name: "Carolina Panthers"},
	{abbr: "CHI", name: "Chicago Bears"},
	{abbr: "DAL", name: "Dallas Cowboys"},
	{abbr: "DET", name: "Detroit Lions"},
	{abbr: "GBP", name: "Green Bay Packers", aliases: []string{"GB"}},
	{abbr: "LAR", name: "Los Angeles Rams"},
	{abbr: "MIN", name: "Minnesota Vikings"},
	{abbr: "NOS", name: "New Orleans Saints", aliases: []string{"NO"}},
	{abbr: "NYG", name: "New York Giants"},
	{abbr: "PHI", name: "Philadelphia Eagles", aliases: []string{"Philly"}},
	{abbr: "SFO", name: "San Francisco 49ers", aliases: []string{"SF", "Niners"}},
	{abbr: "SEA", name: "Seattle Seahawks", aliases: []string{"Hawks"}},
	{abbr: "TBB", name: "Tampa Bay Buccaneers", aliases: []string{"TB", "Bucs"}},
	{abbr: "WAS", name: "Washington Commanders"},
	// AFC
	{abbr: "BAL", name: "Baltimore Ravens"},
	{abbr: "BUF", name: "Buffalo Bills"},
	{abbr: "CIN", name: "Cincinnati Bengals"},
	{abbr: "CLE", name: "Cleveland Browns"},
	{abbr: "DEN", name: "Denver Broncos"},
	{abbr: "HOU", name: "Houston Texans"},
	{abbr: "IND", name: "Indianapolis Colts", aliases: []string{"Indy"}},
	{abbr: "JAC", name: "Jacksonville Jaguars", aliases: []string{"JAX", "Jags"}},
	{abbr: "KCC", name: "Kansas City Chiefs", aliases: []string{"KC"}},
	{abbr: "LVR", name: "Las Vegas Raiders", aliases: []string{"LV"}},
	{abbr: "LAC", name: "Los Angeles Chargers"},
	{abbr: "MIA", name: "Miami Dolphins"},
	{abbr: "NEP", name: "New England Patriots", aliases: []string{"NE", "Pats"}},
	{abbr: "NYJ", name: "New York Jets"},
	{abbr: "PIT", name: "Pittsburgh Steelers", aliases: []string{"Pitt"}},
	{abbr: "TEN", name: "Tennessee Titans"},
}

var nflTeamLookup = buildNFLTeamLookup()

// ParseNFLTeam resolves a team label to a franchise, or TEAM_FA when the
// label is not recognized.
func ParseNFLTeam(label string) *NFLTeam {
	if t, ok := nflTeamLookup[strings.ToLower(strings.TrimSpace(label))]; ok {
		return t
	}
	return TEAM_FA
}

func buildNFLTeamLookup() map[string]*NFLTeam {
	lookup := make(map[string]*NFLTeam)
	for _, t := range nflTeams {
		lookup[strings.ToLower(t.abbr)] = t
		if t.name != "" {
			lookup[strings.ToLower(t.name)] = t
			// The mascot alone is a common label, e.g. "Steelers".
			parts := strings.Split(t.name, " ")
			lookup[strings.ToLower(parts[len(parts)-1])] = t
		}
		for _, a := range t.aliases {
			lookup[strings.ToLower(a)] = t
		}
	}
	lookup[strings.ToLower(TEAM_FA.abbr)] = TEAM_FA
	return lookup
}
